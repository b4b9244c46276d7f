package models

import (
	"time"
)

// MatchStatus represents the persisted state of a match
type MatchStatus string

const (
	// MatchStatusInProgress indicates a match that still accepts rounds.
	// A paused match is an in-progress match that is not bound to a channel.
	MatchStatusInProgress MatchStatus = "in-progress"

	// MatchStatusFinished indicates a match that has a winner and is terminal
	MatchStatusFinished MatchStatus = "finished"
)

// Match represents one game of Tysiąc from the first deal until a winner is known
type Match struct {
	// ID is the unique identifier for the match, empty until the first save
	ID string

	// ChannelID is the Discord channel the match is played in
	ChannelID string

	// Status is the current state of the match
	Status MatchStatus

	// Winner is the name of the winning player, set only when finished
	Winner string

	// DealerOffset shifts which seat deals the first round
	DealerOffset int

	// PlayerNames holds the players in seat order
	PlayerNames []string

	// CreatedAt is when the match was created
	CreatedAt time.Time

	// UpdatedAt is when the match was last saved
	UpdatedAt time.Time
}

// IsFinished reports whether the match is terminal
func (m *Match) IsFinished() bool {
	return m.Status == MatchStatusFinished
}

// PausedMatchSummary describes an in-progress match that can be resumed
type PausedMatchSummary struct {
	// MatchID is the identifier of the paused match
	MatchID string

	// UpdatedAt is when the match was last saved
	UpdatedAt time.Time

	// Rounds is the number of rounds recorded so far
	Rounds int

	// Scores holds the running totals in seat order
	Scores []*Standing
}

// MatchReport is the full scoresheet of a match
type MatchReport struct {
	// Match is the match the report belongs to
	Match *Match

	// Rounds holds one row of score deltas per round, columns in seat order
	Rounds [][]int

	// Totals holds the final totals in seat order
	Totals []*Standing

	// Log is the raw round log the report was built from
	Log []*RoundLogEntry
}
