// Package dense_test provides runnable examples for the dense matrix
// container. Every example prints through the public rendering path, so the
// expected blocks double as format regression tests.
package dense_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dmatrix/dense"
)

// Build a diagonal matrix and print it at the package default width.
func ExampleNewDiagonal() {
	c, err := dense.NewDiagonal([]int{1, 2, 3})
	if err != nil {
		panic(err)
	}
	fmt.Print(c)
	// Output:
	// (     1     0     0 )
	// (     0     2     0 )
	// (     0     0     3 )
}

// Seed a matrix row by row from a flat slice and render it narrow.
func ExampleNewFromSlice() {
	e, err := dense.NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		panic(err)
	}
	_ = dense.Fprint(os.Stdout, e, dense.WithOutputWidth(3))
	// Output:
	// (   1   2   3 )
	// (   4   5   6 )
}

// Checked reads report out-of-range indices instead of panicking.
func ExampleMatrix_At() {
	m, _ := dense.New[int](2, 3)
	_ = m.Set(1, 2, 42)

	v, _ := m.At(1, 2)
	_, err := m.At(5, 0)
	fmt.Println(v, err != nil)
	// Output:
	// 42 true
}

// Patch one cell through the unchecked accessor, then weight the columns by
// multiplying with a diagonal matrix.
func ExampleMul() {
	e, _ := dense.NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	*e.Element(0, 2) = 7 // indices known good, skip the bounds check

	c, _ := dense.NewDiagonal([]float64{1, 2, 3})
	g, err := dense.Mul(e, c)
	if err != nil {
		panic(err)
	}
	_ = dense.Fprint(os.Stdout, g, dense.WithOutputWidth(3))
	// Output:
	// (   1   4  21 )
	// (   4  10  18 )
}

// Element-wise sum of two equally shaped matrices.
func ExampleAdd() {
	e, _ := dense.NewFromSlice(2, 3, []float64{1, 2, 7, 4, 5, 6})
	g, _ := dense.NewFromSlice(2, 3, []float64{1, 4, 21, 4, 10, 18})

	sum, err := dense.Add(e, g)
	if err != nil {
		panic(err)
	}
	_ = dense.Fprint(os.Stdout, sum, dense.WithOutputWidth(3))
	// Output:
	// (   2   6  28 )
	// (   8  15  24 )
}

// Scalar multiplication keeps the shape and scales every element.
func ExampleScale() {
	c, _ := dense.NewDiagonal([]float64{1, 2, 3})

	s, err := dense.Scale(7, c)
	if err != nil {
		panic(err)
	}
	_ = dense.Fprint(os.Stdout, s, dense.WithOutputWidth(3))
	// Output:
	// (   7   0   0 )
	// (   0  14   0 )
	// (   0   0  21 )
}

// The compound form folds the sum into the receiver.
func ExampleMatrix_AddInPlace() {
	a, _ := dense.NewFromSlice(2, 2, []int{1, 2, 3, 4})
	b, _ := dense.NewFromSlice(2, 2, []int{5, 6, 7, 8})

	if err := a.AddInPlace(b); err != nil {
		panic(err)
	}
	_ = dense.Fprint(os.Stdout, a, dense.WithOutputWidth(3))
	// Output:
	// (   6   8 )
	// (  10  12 )
}

// Take drains the source; the drained matrix stays usable and renders as the
// empty marker.
func ExampleMatrix_Take() {
	a, _ := dense.NewFilled(2, 2, 1)

	b := a.Take()
	fmt.Print(a)
	fmt.Println(a.IsEmpty(), b.Rows())
	// Output:
	// ()
	// true 2
}
