package capper

// Capper is an operation-count budget with a sticky failure bit.
//
// Incr(amount) must be called before a primitive does substantive work; it
// reports whether the budget was not yet exceeded *before* this call, then
// adds amount to the running total. Fail reports whether the budget has been
// exceeded, without advancing the counter (it is equivalent to calling
// Incr(0) and negating the result).
type Capper interface {
	// Incr returns true iff the counter was <= the budget before this call,
	// then adds amount to the counter. Calling Incr(0) never needs addition but
	// still reports the current state and therefore never mutates the bit.
	Incr(amount uint64) bool

	// Fail reports whether the budget has been exceeded. It never advances
	// the counter, so it is safe to call repeatedly without affecting state.
	Fail() bool
}

// unbounded never fails; Incr always succeeds and the counter is not even
// tracked, mirroring NoCapOperationCapper's unconditional true.
type unbounded struct{}

// NewUnbounded returns a Capper with no budget: every Incr succeeds and Fail
// is always false. Used when the caller does not want a capper-driven abort.
func NewUnbounded() Capper {
	return unbounded{}
}

func (unbounded) Incr(uint64) bool { return true }
func (unbounded) Fail() bool       { return false }

// bounded is a counter checked against a fixed budget. The check happens
// before the counter is advanced ("last mercy"): a call that pushes the
// counter past budget still reports success for that call, and only the
// *next* call observes the failure.
type bounded struct {
	counter uint64
	budget  uint64
}

// NewBounded returns a Capper that fails once its running total strictly
// exceeds budget.
func NewBounded(budget uint64) Capper {
	return &bounded{budget: budget}
}

func (b *bounded) Incr(amount uint64) bool {
	ok := b.counter <= b.budget
	b.counter += amount
	return ok
}

func (b *bounded) Fail() bool {
	return !b.Incr(0)
}
