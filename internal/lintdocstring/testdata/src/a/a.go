package a

// Scale applies a scaling factor.
//
// Args:
//
//	alpha (float64): Scaling factor.
//	beta (int): Not a real parameter.
func Scale(alpha float64) float64 { // want `Scale: undocumented-param: Args\.beta`
	return alpha
}

// Shift moves a value.
//
// Args:
//
//	delta (int): Amount to shift.
func Shift(delta int64, carry bool) { // want `Shift: missing-param: Args\.carry` `Shift: type-mismatch: Args\.delta`
	_ = delta
	_ = carry
}

// Plain has an ordinary prose comment and is not held to section rules.
func Plain(x int) {
	_ = x
}

// Counter accumulates integers.
type Counter struct{ n int }

// Add increments the counter.
//
// Args:
//
//	delta (int): Amount to add.
func (c *Counter) Add(delta int) {
	c.n += delta
}
