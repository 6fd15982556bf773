package forest

import (
	"math"
	"sort"
)

// columnMedians computes the per-column median ignoring NaN values. Columns
// with no finite values impute to 0.
func columnMedians(xs [][]float64, width int) []float64 {
	medians := make([]float64, width)
	column := make([]float64, 0, len(xs))

	for col := 0; col < width; col++ {
		column = column[:0]
		for _, row := range xs {
			if col < len(row) && !math.IsNaN(row[col]) {
				column = append(column, row[col])
			}
		}
		if len(column) == 0 {
			continue
		}
		sort.Float64s(column)
		mid := len(column) / 2
		if len(column)%2 == 1 {
			medians[col] = column[mid]
		} else {
			medians[col] = (column[mid-1] + column[mid]) / 2
		}
	}
	return medians
}

func imputeAll(xs [][]float64, medians []float64) [][]float64 {
	out := make([][]float64, len(xs))
	for i, row := range xs {
		out[i] = impute(row, medians)
	}
	return out
}

func impute(row []float64, medians []float64) []float64 {
	out := make([]float64, len(medians))
	for col := range medians {
		if col < len(row) && !math.IsNaN(row[col]) {
			out[col] = row[col]
		} else {
			out[col] = medians[col]
		}
	}
	return out
}
