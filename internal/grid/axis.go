package grid

import (
	"time"
)

// MinColumns is the smallest number of time columns in a grid
const MinColumns = 3

// labelPadding is the room taken by the separator next to the label
const labelPadding = 5

// ColumnCount returns how many time columns fit in width next to a label
// column of labelWidth. It never returns less than MinColumns, even if the
// result is wider than width.
func ColumnCount(width, labelWidth int, mode Mode) int {
	avail := width - labelWidth - labelPadding
	if avail < 0 {
		return MinColumns
	}
	return max(avail/mode.CellWidth(), MinColumns)
}

// Axis returns the hourly instants centred on ref. count is rounded down
// to an odd number of at least MinColumns, and ref is always at index
// len/2.
func Axis(ref time.Time, count int) []time.Time {
	count = max(count, MinColumns)
	half := (count - 1) / 2

	axis := make([]time.Time, 0, 2*half+1)
	for k := -half; k <= half; k++ {
		axis = append(axis, ref.Add(time.Duration(k)*time.Hour))
	}
	return axis
}
