package pointcloud

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriteASC(t *testing.T) {
	var buf bytes.Buffer
	c := Cloud{{X: 0.1, Y: -0.25, Z: 1}, {X: 1e-17, Y: 0.30000000000000004, Z: -0.7071067811865476}}
	if err := WriteASC(&buf, c, "pair"); err != nil {
		t.Fatalf("WriteASC failed: %v", err)
	}

	want := strings.Join([]string{
		"# Exported points: pair (2)",
		"# Format: X Y Z",
		"0.100000 -0.250000 1.000000",
		"0.000000 0.300000 -0.707107",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteASC output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteASC_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteASC(&buf, nil, "none"); err != nil {
		t.Fatalf("WriteASC failed: %v", err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 2 {
		t.Errorf("expected header only, got %d lines", lines)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteASC_WriteError(t *testing.T) {
	if err := WriteASC(failingWriter{}, Cloud{{}}, "x"); err == nil {
		t.Error("expected write error")
	}
}
