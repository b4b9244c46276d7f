package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tysiac/internal/repositories/match Repository

import (
	"context"
)

// Repository defines the interface for match persistence
type Repository interface {
	// SaveMatch replaces the stored match and its whole round log, assigning an ID on first save
	SaveMatch(ctx context.Context, input *SaveMatchInput) (*SaveMatchOutput, error)

	// GetMatch retrieves a match and its ordered round log
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// GetMatchByChannel retrieves the match currently bound to a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchOutput, error)

	// ReleaseChannel unbinds a channel from its match
	ReleaseChannel(ctx context.Context, input *ReleaseChannelInput) error

	// DeleteMatch removes a match and its round log
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error

	// ListMatches retrieves matches with a given status, most recently saved first
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)
}
