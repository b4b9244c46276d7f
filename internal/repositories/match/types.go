package match

import "github.com/KirkDiggler/tysiac/internal/models"

type SaveMatchInput struct {
	Match *models.Match
	Log   []*models.RoundLogEntry
}

type SaveMatchOutput struct {
	MatchID string
}

type GetMatchInput struct {
	MatchID string
}

type GetMatchOutput struct {
	Match *models.Match
	Log   []*models.RoundLogEntry
}

type GetMatchByChannelInput struct {
	ChannelID string
}

// ReleaseChannelInput unbinds ChannelID. When MatchID is set the channel is
// released only if it is still bound to that match.
type ReleaseChannelInput struct {
	ChannelID string
	MatchID   string
}

type DeleteMatchInput struct {
	MatchID string
}

type ListMatchesInput struct {
	Status models.MatchStatus

	// Limit caps the number of matches returned, zero means no limit
	Limit int
}

type ListMatchesOutput struct {
	Matches []*models.Match
}
