package monitoring

import (
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) {
		called = true
	})
	Logf("test message")
	if !called {
		t.Error("Custom logger was not called")
	}

	// nil installs a no-op rather than leaving a nil func behind
	called = false
	SetLogger(nil)
	Logf("test")
	if called {
		t.Error("No-op logger should not have triggered callback")
	}
}

func TestCapture(t *testing.T) {
	original := Logf
	rec, restore := Capture()

	Logf("saved %q", "tree")
	Logf("listed %d designs", 3)

	lines := rec.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != `saved "tree"` || lines[1] != "listed 3 designs" {
		t.Errorf("unexpected lines: %q", lines)
	}

	restore()
	Logf("after restore")
	if len(rec.Lines()) != 2 {
		t.Error("recorder received lines after restore")
	}
	if Logf == nil {
		t.Fatal("restore left Logf nil")
	}
	Logf = original
}

func TestLogf_Default(t *testing.T) {
	if Logf == nil {
		t.Error("Logf should not be nil by default")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logf panicked: %v", r)
		}
	}()

	Logf("test message: %s", "value")
}
