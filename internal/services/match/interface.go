package match

import "context"

// Service defines the interface for match operations
type Service interface {
	// StartMatch seats the players and binds a new match to a channel
	StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error)

	// SubmitRound records one round of the channel's match and saves it
	SubmitRound(ctx context.Context, input *SubmitRoundInput) (*SubmitRoundOutput, error)

	// GetStatus returns the scoreboard of the channel's match
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// PauseMatch frees the channel, leaving the match to be resumed later
	PauseMatch(ctx context.Context, input *PauseMatchInput) (*PauseMatchOutput, error)

	// ResumeMatch binds a paused match to a channel
	ResumeMatch(ctx context.Context, input *ResumeMatchInput) (*ResumeMatchOutput, error)

	// FinishMatch ends a match early, the leader wins
	FinishMatch(ctx context.Context, input *FinishMatchInput) (*FinishMatchOutput, error)

	// AbandonMatch deletes a match that is still in progress
	AbandonMatch(ctx context.Context, input *AbandonMatchInput) (*AbandonMatchOutput, error)

	// Rematch starts a new match with the seats of a finished one
	Rematch(ctx context.Context, input *RematchInput) (*RematchOutput, error)

	// ListPausedMatches returns in-progress matches not bound to any channel
	ListPausedMatches(ctx context.Context, input *ListPausedMatchesInput) (*ListPausedMatchesOutput, error)

	// GetHistory returns finished matches, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// GetMatchReport returns the full scoresheet of a match
	GetMatchReport(ctx context.Context, input *GetMatchReportInput) (*GetMatchReportOutput, error)

	// GetLeaderboard returns the all-time leaderboards
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetPlayerNames returns every player name seen so far
	GetPlayerNames(ctx context.Context, input *GetPlayerNamesInput) (*GetPlayerNamesOutput, error)
}
