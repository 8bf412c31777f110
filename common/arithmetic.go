package common

import "fmt"

// cross combines f and g with the cross multiplication rule
// (f.n*g.d <op> g.n*f.d) / (f.d*g.d), shared by Add and Sub.
func (f Fraction) cross(g Fraction, op func(a, b int64) (int64, error)) (Fraction, error) {
	ad, err := CheckedMul(f.n, g.Denominator())
	if err != nil {
		return Fraction{}, err
	}
	bc, err := CheckedMul(g.n, f.Denominator())
	if err != nil {
		return Fraction{}, err
	}
	n, err := op(ad, bc)
	if err != nil {
		return Fraction{}, err
	}
	d, err := CheckedMul(f.Denominator(), g.Denominator())
	if err != nil {
		return Fraction{}, err
	}
	return canonical(n, d)
}

func (f Fraction) Add(g Fraction) (Fraction, error) {
	return f.cross(g, CheckedAdd)
}

func (f Fraction) Sub(g Fraction) (Fraction, error) {
	return f.cross(g, CheckedSub)
}

func (f Fraction) Mul(g Fraction) (Fraction, error) {
	n, err := CheckedMul(f.n, g.n)
	if err != nil {
		return Fraction{}, err
	}
	d, err := CheckedMul(f.Denominator(), g.Denominator())
	if err != nil {
		return Fraction{}, err
	}
	return canonical(n, d)
}

// Div returns f / g, or ErrDivisionByZero when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.n == 0 {
		return Fraction{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, f, g)
	}
	n, err := CheckedMul(f.n, g.Denominator())
	if err != nil {
		return Fraction{}, err
	}
	d, err := CheckedMul(f.Denominator(), g.n)
	if err != nil {
		return Fraction{}, err
	}
	return canonical(n, d)
}

// The assign variants replace the receiver only when the operation succeeds.

func (f *Fraction) AddAssign(g Fraction) error {
	return f.assign(f.Add, g)
}

func (f *Fraction) SubAssign(g Fraction) error {
	return f.assign(f.Sub, g)
}

func (f *Fraction) MulAssign(g Fraction) error {
	return f.assign(f.Mul, g)
}

func (f *Fraction) DivAssign(g Fraction) error {
	return f.assign(f.Div, g)
}

func (f *Fraction) assign(op func(Fraction) (Fraction, error), g Fraction) error {
	r, err := op(g)
	if err != nil {
		return err
	}
	*f = r
	return nil
}

// Inc adds one whole unit to f and returns the new value.
func (f *Fraction) Inc() (Fraction, error) {
	return f.step(CheckedAdd)
}

// Dec subtracts one whole unit from f and returns the new value.
func (f *Fraction) Dec() (Fraction, error) {
	return f.step(CheckedSub)
}

// PostInc is Inc but returns the value f had before.
func (f *Fraction) PostInc() (Fraction, error) {
	old := *f
	_, err := f.Inc()
	if err != nil {
		return Fraction{}, err
	}
	return old, nil
}

// PostDec is Dec but returns the value f had before.
func (f *Fraction) PostDec() (Fraction, error) {
	old := *f
	_, err := f.Dec()
	if err != nil {
		return Fraction{}, err
	}
	return old, nil
}

func (f *Fraction) step(op func(a, b int64) (int64, error)) (Fraction, error) {
	n, err := op(f.n, f.Denominator())
	if err != nil {
		return Fraction{}, err
	}
	r, err := canonical(n, f.Denominator())
	if err != nil {
		return Fraction{}, err
	}
	*f = r
	return r, nil
}

func (f Fraction) Neg() (Fraction, error) {
	n, err := CheckedNeg(f.n)
	if err != nil {
		return Fraction{}, err
	}
	return canonical(n, f.Denominator())
}

func (f Fraction) Abs() (Fraction, error) {
	if f.n < 0 {
		return f.Neg()
	}
	return f, nil
}

// Inv returns 1/f.
func (f Fraction) Inv() (Fraction, error) {
	if f.n == 0 {
		return Fraction{}, fmt.Errorf("%w: 1 / %s", ErrDivisionByZero, f)
	}
	return canonical(f.Denominator(), f.n)
}

// Not reports whether f is zero.
func (f Fraction) Not() bool {
	return f.n == 0
}

func (f Fraction) IsZero() bool {
	return f.n == 0
}

func (f Fraction) IsInteger() bool {
	return f.d == 0
}

func (f Fraction) Sign() int {
	switch {
	case f.n < 0:
		return -1
	case f.n > 0:
		return 1
	}
	return 0
}
