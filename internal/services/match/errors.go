package match

// Error is a custom error type for match service errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          Error = "config cannot be nil"
	ErrNilMatchRepo       Error = "match repository cannot be nil"
	ErrNilPlayerRepo      Error = "player repository cannot be nil"
	ErrNilSeatPicker      Error = "seat picker cannot be nil"
	ErrNilClock           Error = "clock cannot be nil"
	ErrMatchNotFound      Error = "match not found"
	ErrNoActiveMatch      Error = "no match in progress in this channel"
	ErrMatchAlreadyActive Error = "a match is already in progress in this channel"
	ErrTooManyPlayers     Error = "too many players"
	ErrEmptyRound         Error = "nobody scored this round, confirm to record it anyway"
	ErrNothingToPause     Error = "nobody has points yet, abandon the match instead"
	ErrMatchNotInProgress Error = "match is not in progress"
	ErrMatchNotFinished   Error = "match is not finished"
)
