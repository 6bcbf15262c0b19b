package render

import mandel "github.com/marben/parallel_mandel"

// RenderRows computes every row of a, in order. The returned rows are owned
// by the caller; nothing is shared with other workers.
func RenderRows(a Assignment, m Mapper, width int, b mandel.Budget) [][]uint8 {
	rows := make([][]uint8, len(a.Rows))
	for j, y := range a.Rows {
		line := make([]uint8, width)
		i := m.Imag(y)
		for x := range line {
			c := complex(m.Real(x), i)
			line[x] = Intensity(Escape(c, b.Iterations), b.ColorFactor)
		}
		rows[j] = line
	}
	return rows
}
