package messaging

import "context"

// Service picks the flavor text shown alongside scoreboards
type Service interface {
	// GetRoundMessage returns a comment on the round that was just recorded
	GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error)
}
