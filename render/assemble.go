package render

import (
	"fmt"

	mandel "github.com/marben/parallel_mandel"
)

// Assemble copies the workers' rows into a new buffer. results[k] holds the
// rows of worker k in the order Partition assigned them. Rows whose owner
// produced nothing for them stay black.
func Assemble(width, height int, results [][][]uint8) (*mandel.PixelBuffer, error) {
	buf := mandel.NewPixelBuffer(width, height)
	threads := len(results)
	if threads == 0 {
		return buf, nil
	}
	for y := range height {
		rows := results[y%threads]
		j := y / threads
		if j >= len(rows) {
			continue
		}
		if err := buf.SetRow(y, rows[j]); err != nil {
			return nil, fmt.Errorf("worker %d: %w", y%threads, err)
		}
	}
	return buf, nil
}
