package greenops

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrNegativeValue indicates a negative emissions total. A footprint
	// with recycling credits can be small but never below zero.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow indicates a non-finite input or result.
	ErrCalculationOverflow = constError("calculation overflow")
)
