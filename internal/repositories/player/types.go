package player

import "github.com/KirkDiggler/tysiac/internal/models"

// AddPlayerNamesInput contains parameters for remembering player names
type AddPlayerNamesInput struct {
	Names []string
}

// GetPlayerNamesInput contains parameters for listing player names
type GetPlayerNamesInput struct {
}

// GetPlayerNamesOutput contains the known player names
type GetPlayerNamesOutput struct {
	Names []string
}

// SetMatchTalliesInput contains the meld counts of one match
type SetMatchTalliesInput struct {
	MatchID string
	Tallies []*models.MeldTally
}

// DeleteMatchTalliesInput identifies the match whose tallies are removed
type DeleteMatchTalliesInput struct {
	MatchID string
}

// RecordWinInput contains parameters for recording a win
type RecordWinInput struct {
	PlayerName string
}

// GetTopPlayersInput contains parameters for reading a leaderboard
type GetTopPlayersInput struct {
	Board models.Board

	// Limit caps the number of rows, zero means every player
	Limit int
}

// GetTopPlayersOutput contains the leaderboard rows, best first
type GetTopPlayersOutput struct {
	Stats []*models.PlayerStat
}
