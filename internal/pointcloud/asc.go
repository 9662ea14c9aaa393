package pointcloud

import (
	"bufio"
	"fmt"
	"io"
)

// WriteASC writes c as a CloudCompare-compatible .asc file: two comment
// lines then one "X Y Z" row per point with six decimals. An empty cloud
// writes only the header.
func WriteASC(w io.Writer, c Cloud, title string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Exported points: %s (%d)\n", title, len(c))
	fmt.Fprintf(bw, "# Format: X Y Z\n")
	for _, p := range c {
		fmt.Fprintf(bw, "%.6f %.6f %.6f\n", p.X, p.Y, p.Z)
	}
	return bw.Flush()
}
