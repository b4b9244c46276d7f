package archive

//go:generate mockgen -package=mocks -destination=mocks/mock_archiver.go github.com/KirkDiggler/tysiac/internal/archive Archiver

import (
	"context"
	"time"

	"github.com/KirkDiggler/tysiac/internal/models"
)

// Archiver stores finished matches outside of Redis
type Archiver interface {
	ArchiveMatch(ctx context.Context, input *ArchiveMatchInput) error
}

// ArchiveMatchInput contains the match to archive
type ArchiveMatchInput struct {
	Match *models.Match
	Log   []*models.RoundLogEntry
}

// document is the JSON layout of an archived match
type document struct {
	ID           string                  `json:"id"`
	ChannelID    string                  `json:"channel_id"`
	Status       models.MatchStatus      `json:"status"`
	Winner       string                  `json:"winner"`
	DealerOffset int                     `json:"dealer_offset"`
	PlayerNames  []string                `json:"player_names"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
	Log          []*models.RoundLogEntry `json:"log"`
}

func newDocument(input *ArchiveMatchInput) *document {
	return &document{
		ID:           input.Match.ID,
		ChannelID:    input.Match.ChannelID,
		Status:       input.Match.Status,
		Winner:       input.Match.Winner,
		DealerOffset: input.Match.DealerOffset,
		PlayerNames:  input.Match.PlayerNames,
		CreatedAt:    input.Match.CreatedAt,
		UpdatedAt:    input.Match.UpdatedAt,
		Log:          input.Log,
	}
}
