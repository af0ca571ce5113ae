package counter

import "golang.org/x/exp/constraints"

// Zeroer supplies the additive identity of C.
type Zeroer[C any] interface {
	Zero() C
}

// Oner supplies the multiplicative unit of C, the amount added for every
// observed occurrence of an item.
type Oner[C any] interface {
	One() C
}

// Adder adds two values of C.
type Adder[C any] interface {
	Add(x, y C) C
}

// Arith is the arithmetic a Counter needs from its count type.
//
// Implementations are usually empty structs so that the zero value of the
// algebra is ready to use. Algebras carrying state (a modulus, a precision)
// are passed to NewWith.
type Arith[C any] interface {
	Zeroer[C]
	Oner[C]
	Adder[C]
}

// Number is the set of built-in numeric count types, including defined
// types whose underlying type is one of them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric is the algebra of the built-in numeric types.
type Numeric[C Number] struct{}

func (Numeric[C]) Zero() C { return 0 }

func (Numeric[C]) One() C { return 1 }

func (Numeric[C]) Add(x, y C) C { return x + y }
