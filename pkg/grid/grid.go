// Package grid maps text onto a fixed character grid.
package grid

// GetGridCoords returns the column and row of the cell at index in a grid
// cols cells wide. A grid narrower than one cell is treated as one column.
func GetGridCoords(index, cols int) (x, y int) {
	cols = max(cols, 1)
	return index % cols, index / cols
}

// Wrap splits each line into rows of at most cols runes. An empty line
// still occupies one row. cols below 1 wraps one rune per row.
func Wrap(lines []string, cols int) []string {
	cols = max(cols, 1)
	var rows []string
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) == 0 {
			rows = append(rows, "")
			continue
		}
		start := len(rows)
		for i, r := range runes {
			x, y := GetGridCoords(i, cols)
			if x == 0 {
				rows = append(rows, "")
			}
			rows[start+y] += string(r)
		}
	}
	return rows
}

// Tail returns the last n rows, or all of them when there are fewer.
func Tail(rows []string, n int) []string {
	if len(rows) <= n {
		return rows
	}
	return rows[len(rows)-n:]
}
