package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is().
var (
	// ErrInvalidInput indicates a SurveyResponse field outside its declared domain.
	// Returned errors wrap it with the offending field name.
	ErrInvalidInput = constError("invalid input")

	// ErrInvalidFactors indicates an emission factor table that is incomplete or out of range.
	ErrInvalidFactors = constError("invalid emission factors")
)
