package engine

// Error is a custom error type for match engine failures
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidConfiguration Error = "invalid match configuration"
	ErrValidationViolation  Error = "round validation violation"
	ErrCorruptLog           Error = "corrupt round log"
	ErrNothingToFinish      Error = "no rounds recorded, nothing to finish"
	ErrMatchFinished        Error = "match is finished"
)
