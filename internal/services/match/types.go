package match

import (
	"github.com/KirkDiggler/tysiac/internal/archive"
	"github.com/KirkDiggler/tysiac/internal/common/clock"
	"github.com/KirkDiggler/tysiac/internal/dealer"
	"github.com/KirkDiggler/tysiac/internal/engine"
	"github.com/KirkDiggler/tysiac/internal/models"
	matchRepo "github.com/KirkDiggler/tysiac/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/tysiac/internal/repositories/player"
	"github.com/KirkDiggler/tysiac/internal/scoring"
)

const (
	defaultMaxPlayers       = 4
	defaultLeaderboardLimit = 5
)

// Config holds configuration for the match service
type Config struct {
	// Maximum number of players per match, defaults to 4
	MaxPlayers int

	// Number of rows per leaderboard, defaults to 5
	LeaderboardLimit int

	// Repository dependencies
	MatchRepo  matchRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	SeatPicker dealer.Picker
	Clock      clock.Clock

	// Archiver is optional, finished matches are only kept in Redis without it
	Archiver archive.Archiver
}

// Scoreboard is what players see between rounds
type Scoreboard struct {
	Match *models.Match

	// Round is the number of the round to be played next
	Round int

	// Dealer is the name of the player dealing the next round
	Dealer string

	// Standings holds every player in seat order
	Standings []*models.Standing
}

// StartMatchInput contains parameters for starting a match
type StartMatchInput struct {
	ChannelID   string
	PlayerNames []string
}

// StartMatchOutput contains the new match
type StartMatchOutput struct {
	Scoreboard *Scoreboard
}

// SubmitRoundInput contains one round of the channel's match
type SubmitRoundInput struct {
	ChannelID string

	// Inputs holds one entry per seat, in seat order
	Inputs []scoring.RoundInput

	// ConfirmEmpty records a round in which nobody scored
	ConfirmEmpty bool
}

// SubmitRoundOutput contains the result of a recorded round
type SubmitRoundOutput struct {
	Scoreboard *Scoreboard

	// Round is the number of the round that was recorded
	Round int

	// Deltas holds the score change per seat
	Deltas []int

	Outcome engine.Outcome

	// Winner is set when the round finished the match
	Winner string
}

// GetStatusInput identifies the channel
type GetStatusInput struct {
	ChannelID string
}

// GetStatusOutput contains the channel's scoreboard
type GetStatusOutput struct {
	Scoreboard *Scoreboard
}

// PauseMatchInput identifies the channel
type PauseMatchInput struct {
	ChannelID string
}

// PauseMatchOutput contains the paused match
type PauseMatchOutput struct {
	Scoreboard *Scoreboard
}

// ResumeMatchInput contains parameters for resuming a match
type ResumeMatchInput struct {
	ChannelID string
	MatchID   string
}

// ResumeMatchOutput contains the resumed match
type ResumeMatchOutput struct {
	Scoreboard *Scoreboard
}

// FinishMatchInput identifies the match to finish. MatchID takes
// precedence, otherwise the channel's match is finished.
type FinishMatchInput struct {
	ChannelID string
	MatchID   string
}

// FinishMatchOutput contains the finished match
type FinishMatchOutput struct {
	Scoreboard *Scoreboard
	Winner     string
}

// AbandonMatchInput identifies the match to delete. MatchID takes
// precedence, otherwise the channel's match is deleted.
type AbandonMatchInput struct {
	ChannelID string
	MatchID   string
}

// AbandonMatchOutput contains the deleted match ID
type AbandonMatchOutput struct {
	MatchID string
}

// RematchInput contains parameters for a rematch
type RematchInput struct {
	ChannelID string

	// MatchID is the finished match whose seats are reused
	MatchID string
}

// RematchOutput contains the new match
type RematchOutput struct {
	Scoreboard *Scoreboard
}

// ListPausedMatchesInput contains parameters for listing paused matches
type ListPausedMatchesInput struct {
	Limit int
}

// ListPausedMatchesOutput contains the paused matches, most recently saved first
type ListPausedMatchesOutput struct {
	Matches []*models.PausedMatchSummary
}

// GetHistoryInput contains parameters for listing finished matches
type GetHistoryInput struct {
	Limit int
}

// GetHistoryOutput contains finished matches, newest first
type GetHistoryOutput struct {
	Matches []*models.Match
}

// GetMatchReportInput identifies the match
type GetMatchReportInput struct {
	MatchID string
}

// GetMatchReportOutput contains the scoresheet
type GetMatchReportOutput struct {
	Report *models.MatchReport
}

// GetLeaderboardInput contains parameters for the leaderboards
type GetLeaderboardInput struct {
	// Limit overrides the configured number of rows when set
	Limit int
}

// GetLeaderboardOutput contains the leaderboards
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetPlayerNamesInput contains parameters for listing player names
type GetPlayerNamesInput struct {
}

// GetPlayerNamesOutput contains the known player names
type GetPlayerNamesOutput struct {
	Names []string
}
