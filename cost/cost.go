package cost

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrNilOperation indicates that Of was handed a nil add or compare function.
var ErrNilOperation = errors.New("cost: algebra operation must be non-nil")

// Algebra supplies the identity element, accumulation, and total order for a
// cost type C. Every pathfind algorithm threads one of these instead of
// assuming a built-in numeric type.
//
// Compare follows the cmp.Compare sign convention:
//
//	< 0 if a ranks before b,
//	  0 if a and b rank equally,
//	> 0 if a ranks after b.
//
// Only the sign is significant.
type Algebra[C any] interface {
	// Zero returns the identity element: Add(Zero(), c) must equal c.
	Zero() C

	// Add folds two costs into one. Must be associative.
	Add(a, b C) C

	// Compare imposes a total order on costs.
	Compare(a, b C) int
}

// Number is the type set covered by Numeric: every built-in integer and
// float type, including their named derivatives.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric returns the standard algebra for a built-in number type:
// Zero is the type's zero value, Add is +, Compare is the < / > order.
//
// Complexity: all operations O(1), no allocations.
func Numeric[T Number]() Algebra[T] {
	return numeric[T]{}
}

// numeric is the zero-size implementation backing Numeric.
type numeric[T Number] struct{}

func (numeric[T]) Zero() T { var zero T; return zero }

func (numeric[T]) Add(a, b T) T { return a + b }

func (numeric[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Of adapts a (zero, add, compare) function triple into an Algebra.
// Use it for cost types Numeric cannot cover, e.g. tuples combined
// lexicographically or saturating arithmetic.
//
// Panics with ErrNilOperation if add or compare is nil; a partially
// specified algebra is a configuration bug, not a runtime condition.
func Of[C any](zero C, add func(a, b C) C, compare func(a, b C) int) Algebra[C] {
	if add == nil || compare == nil {
		panic(ErrNilOperation.Error())
	}

	return funcAlgebra[C]{zero: zero, add: add, compare: compare}
}

// funcAlgebra backs Of: each operation delegates to the captured function.
type funcAlgebra[C any] struct {
	zero    C
	add     func(a, b C) C
	compare func(a, b C) int
}

func (f funcAlgebra[C]) Zero() C { return f.zero }

func (f funcAlgebra[C]) Add(a, b C) C { return f.add(a, b) }

func (f funcAlgebra[C]) Compare(a, b C) int { return f.compare(a, b) }
