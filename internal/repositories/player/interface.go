package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tysiac/internal/repositories/player Repository

import (
	"context"
)

// Repository defines the interface for player names and all-time counters
type Repository interface {
	// AddPlayerNames remembers player names for suggestions
	AddPlayerNames(ctx context.Context, input *AddPlayerNamesInput) error

	// GetPlayerNames retrieves every known player name, sorted
	GetPlayerNames(ctx context.Context, input *GetPlayerNamesInput) (*GetPlayerNamesOutput, error)

	// SetMatchTallies replaces a match's contribution to the meld leaderboards
	SetMatchTallies(ctx context.Context, input *SetMatchTalliesInput) error

	// DeleteMatchTallies removes a match's contribution to the meld leaderboards
	DeleteMatchTallies(ctx context.Context, input *DeleteMatchTalliesInput) error

	// RecordWin adds one win to a player
	RecordWin(ctx context.Context, input *RecordWinInput) error

	// GetTopPlayers retrieves the best players of a leaderboard
	GetTopPlayers(ctx context.Context, input *GetTopPlayersInput) (*GetTopPlayersOutput, error)
}
