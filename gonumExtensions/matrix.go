package gonumExtensions

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Ones returns a (m by n) matrix filled with ones
func Ones(m, n int) mat.Matrix {
	return Full(m, n, 1.)
}

// Full returns a (m by n) matrix filled with value
func Full(m, n int, value float64) mat.Matrix {
	data := make([]float64, m*n)
	for index := range data {
		data[index] = value
	}
	tmp := mat.NewDense(m, n, data)
	return tmp
}

// Eye returns a (m by n) matrix with ones on the k:th diagonal, where
// k = 0 is the main diagonal, k > 0 lies above it and k < 0 below.
func Eye(m, n, k int) mat.Matrix {
	if k == 0 {
		data := make([]float64, int(math.Min(float64(m), float64(n))))
		for entry := range data {
			data[entry] = 1
		}
		return mat.NewDiagonalRect(m, n, data)
	}
	tmp := mat.NewDense(m, n, nil)
	for row := 0; row < m; row++ {
		col := row + k
		if col >= 0 && col < n {
			tmp.Set(row, col, 1)
		}
	}
	return tmp
}

// NANORINF checks if there are any NAN or INF in matrix
func NANORINF(matrix mat.Matrix) bool {
	m, n := matrix.Dims()
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			if math.IsNaN(matrix.At(row, col)) || math.IsInf(matrix.At(row, col), 0) {
				return true
			}
		}
	}
	return false
}

// BlockDiag returns the block diagonal join
//
//	[ a_0  0  ...  0  ]
//	[  0  a_1 ...  0  ]
//	[  0   0  ... a_N ]
//
// of the given matrices. Row and column counts both sum across the blocks.
func BlockDiag(blocks ...mat.Matrix) *mat.Dense {
	var m, n int
	for _, block := range blocks {
		bm, bn := block.Dims()
		m += bm
		n += bn
	}
	res := mat.NewDense(m, n, nil)
	var rowOffset, colOffset int
	for _, block := range blocks {
		bm, bn := block.Dims()
		res.Slice(rowOffset, rowOffset+bm, colOffset, colOffset+bn).(*mat.Dense).Copy(block)
		rowOffset += bm
		colOffset += bn
	}
	return res
}

// SelectColumns returns a new matrix made of the named columns of matrix,
// in the given order. The cols slice must be non-empty and within bounds.
func SelectColumns(matrix mat.Matrix, cols []int) *mat.Dense {
	m, _ := matrix.Dims()
	res := mat.NewDense(m, len(cols), nil)
	for to, from := range cols {
		for row := 0; row < m; row++ {
			res.Set(row, to, matrix.At(row, from))
		}
	}
	return res
}
