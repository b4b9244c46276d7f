package match

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/tysiac/internal/archive"
	"github.com/KirkDiggler/tysiac/internal/common/clock"
	"github.com/KirkDiggler/tysiac/internal/dealer"
	"github.com/KirkDiggler/tysiac/internal/engine"
	"github.com/KirkDiggler/tysiac/internal/models"
	matchRepo "github.com/KirkDiggler/tysiac/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/tysiac/internal/repositories/player"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	// mu serializes every operation that writes a match
	mu sync.Mutex

	maxPlayers       int
	leaderboardLimit int
	matchRepo        matchRepo.Repository
	playerRepo       playerRepo.Repository
	seatPicker       dealer.Picker
	clock            clock.Clock
	archiver         archive.Archiver
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.SeatPicker == nil {
		return nil, ErrNilSeatPicker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = defaultMaxPlayers
	}

	leaderboardLimit := cfg.LeaderboardLimit
	if leaderboardLimit <= 0 {
		leaderboardLimit = defaultLeaderboardLimit
	}

	return &service{
		maxPlayers:       maxPlayers,
		leaderboardLimit: leaderboardLimit,
		matchRepo:        cfg.MatchRepo,
		playerRepo:       cfg.PlayerRepo,
		seatPicker:       cfg.SeatPicker,
		clock:            cfg.Clock,
		archiver:         cfg.Archiver,
	}, nil
}

// StartMatch creates a match with a random first dealer and binds it to the channel
func (s *service) StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	if len(input.PlayerNames) > s.maxPlayers {
		return nil, fmt.Errorf("%w: %d seats, at most %d", ErrTooManyPlayers, len(input.PlayerNames), s.maxPlayers)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureChannelFree(ctx, input.ChannelID); err != nil {
		return nil, err
	}

	offset := s.seatPicker.PickSeat(len(input.PlayerNames))
	eng, err := engine.New(input.PlayerNames, offset)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	m := &models.Match{
		ChannelID:    input.ChannelID,
		Status:       models.MatchStatusInProgress,
		DealerOffset: eng.DealerOffset(),
		PlayerNames:  eng.Players(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.save(ctx, m, eng); err != nil {
		return nil, err
	}

	if err := s.playerRepo.AddPlayerNames(ctx, &playerRepo.AddPlayerNamesInput{
		Names: m.PlayerNames,
	}); err != nil {
		log.Printf("Failed to remember player names for match %s: %v", m.ID, err)
	}

	log.Printf("Started match %s in channel %s with %v, %s deals first", m.ID, m.ChannelID, m.PlayerNames, eng.CurrentDealer())

	return &StartMatchOutput{
		Scoreboard: scoreboard(m, eng),
	}, nil
}

// SubmitRound validates and records one round, then saves the whole match
func (s *service) SubmitRound(ctx context.Context, input *SubmitRoundInput) (*SubmitRoundOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	// Only one player may play under a declaration
	if err := engine.ValidateDeclarations(input.Inputs); err != nil {
		return nil, err
	}

	if !input.ConfirmEmpty && engine.IsEmptyRound(input.Inputs) {
		return nil, ErrEmptyRound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, eng, err := s.loadActive(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	result, err := eng.SubmitRound(input.Inputs)
	if err != nil {
		return nil, err
	}

	m.UpdatedAt = s.clock.Now()
	if result.Outcome == engine.OutcomeFinished {
		m.Status = models.MatchStatusFinished
		m.Winner = result.Winner
	}

	if err := s.save(ctx, m, eng); err != nil {
		return nil, err
	}

	if m.IsFinished() {
		log.Printf("Match %s won by %s in round %d", m.ID, m.Winner, result.Round)
		s.completeMatch(ctx, m, eng.Log())
	}

	return &SubmitRoundOutput{
		Scoreboard: scoreboard(m, eng),
		Round:      result.Round,
		Deltas:     result.Deltas,
		Outcome:    result.Outcome,
		Winner:     result.Winner,
	}, nil
}

// GetStatus returns the scoreboard of the channel's match
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	m, eng, err := s.loadActive(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	return &GetStatusOutput{
		Scoreboard: scoreboard(m, eng),
	}, nil
}

// PauseMatch unbinds the channel's match so it can be resumed anywhere later.
// A match in which nobody has points cannot be paused.
func (s *service) PauseMatch(ctx context.Context, input *PauseMatchInput) (*PauseMatchOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, eng, err := s.loadActive(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	if !eng.HasPoints() {
		return nil, ErrNothingToPause
	}

	m.ChannelID = ""
	m.UpdatedAt = s.clock.Now()
	if err := s.save(ctx, m, eng); err != nil {
		return nil, err
	}

	if err := s.matchRepo.ReleaseChannel(ctx, &matchRepo.ReleaseChannelInput{
		ChannelID: input.ChannelID,
		MatchID:   m.ID,
	}); err != nil {
		return nil, err
	}

	log.Printf("Paused match %s after %d rounds", m.ID, eng.RoundsPlayed())

	return &PauseMatchOutput{
		Scoreboard: scoreboard(m, eng),
	}, nil
}

// ResumeMatch binds a paused match to the channel
func (s *service) ResumeMatch(ctx context.Context, input *ResumeMatchInput) (*ResumeMatchOutput, error) {
	if input == nil || input.ChannelID == "" || input.MatchID == "" {
		return nil, errors.New("input, channel ID and match ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureChannelFree(ctx, input.ChannelID); err != nil {
		return nil, err
	}

	m, eng, err := s.loadByID(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if m.IsFinished() {
		return nil, ErrMatchNotInProgress
	}

	// Still being played somewhere else
	if m.ChannelID != "" {
		return nil, fmt.Errorf("%w: match %s is bound to channel %s", ErrMatchAlreadyActive, m.ID, m.ChannelID)
	}

	m.ChannelID = input.ChannelID
	m.UpdatedAt = s.clock.Now()
	if err := s.save(ctx, m, eng); err != nil {
		return nil, err
	}

	log.Printf("Resumed match %s in channel %s at round %d", m.ID, m.ChannelID, eng.Round())

	return &ResumeMatchOutput{
		Scoreboard: scoreboard(m, eng),
	}, nil
}

// FinishMatch force-finishes a match. The player with the highest total wins,
// the earliest seat on ties. A match in which nobody has points cannot be
// finished, it can only be abandoned.
func (s *service) FinishMatch(ctx context.Context, input *FinishMatchInput) (*FinishMatchOutput, error) {
	if input == nil || (input.ChannelID == "" && input.MatchID == "") {
		return nil, errors.New("channel ID or match ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, eng, err := s.restoreTarget(ctx, input.ChannelID, input.MatchID)
	if err != nil {
		return nil, err
	}

	if !eng.HasPoints() {
		return nil, fmt.Errorf("%w: nobody has points in match %s", engine.ErrNothingToFinish, m.ID)
	}

	winner, err := eng.ForceFinish()
	if err != nil {
		return nil, err
	}

	m.Status = models.MatchStatusFinished
	m.Winner = winner
	m.UpdatedAt = s.clock.Now()
	if err := s.save(ctx, m, eng); err != nil {
		return nil, err
	}

	log.Printf("Match %s finished early, %s wins", m.ID, winner)
	s.completeMatch(ctx, m, eng.Log())

	return &FinishMatchOutput{
		Scoreboard: scoreboard(m, eng),
		Winner:     winner,
	}, nil
}

// AbandonMatch deletes an in-progress match and its leaderboard contribution
func (s *service) AbandonMatch(ctx context.Context, input *AbandonMatchInput) (*AbandonMatchOutput, error) {
	if input == nil || (input.ChannelID == "" && input.MatchID == "") {
		return nil, errors.New("channel ID or match ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.loadTarget(ctx, input.ChannelID, input.MatchID)
	if err != nil {
		return nil, err
	}
	m := stored.Match

	if err := s.matchRepo.DeleteMatch(ctx, &matchRepo.DeleteMatchInput{
		MatchID: m.ID,
	}); err != nil {
		return nil, err
	}

	if err := s.playerRepo.DeleteMatchTallies(ctx, &playerRepo.DeleteMatchTalliesInput{
		MatchID: m.ID,
	}); err != nil {
		return nil, err
	}

	log.Printf("Abandoned match %s", m.ID)

	return &AbandonMatchOutput{
		MatchID: m.ID,
	}, nil
}

// Rematch seats the players of a finished match again with a fresh first dealer
func (s *service) Rematch(ctx context.Context, input *RematchInput) (*RematchOutput, error) {
	if input == nil || input.ChannelID == "" || input.MatchID == "" {
		return nil, errors.New("input, channel ID and match ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureChannelFree(ctx, input.ChannelID); err != nil {
		return nil, err
	}

	previous, eng, err := s.loadByID(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if !previous.IsFinished() {
		return nil, ErrMatchNotFinished
	}

	next, err := eng.StartRematch(s.seatPicker)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	m := &models.Match{
		ChannelID:    input.ChannelID,
		Status:       models.MatchStatusInProgress,
		DealerOffset: next.DealerOffset(),
		PlayerNames:  next.Players(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.save(ctx, m, next); err != nil {
		return nil, err
	}

	log.Printf("Started rematch %s of match %s, %s deals first", m.ID, previous.ID, next.CurrentDealer())

	return &RematchOutput{
		Scoreboard: scoreboard(m, next),
	}, nil
}

// ListPausedMatches summarizes in-progress matches that no channel is playing
func (s *service) ListPausedMatches(ctx context.Context, input *ListPausedMatchesInput) (*ListPausedMatchesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	listed, err := s.matchRepo.ListMatches(ctx, &matchRepo.ListMatchesInput{
		Status: models.MatchStatusInProgress,
	})
	if err != nil {
		return nil, err
	}

	var paused []*models.Match
	for _, m := range listed.Matches {
		if m.ChannelID != "" {
			continue
		}
		paused = append(paused, m)
		if input.Limit > 0 && len(paused) == input.Limit {
			break
		}
	}

	// Logs are loaded concurrently, each goroutine writes its own slot
	summaries := make([]*models.PausedMatchSummary, len(paused))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range paused {
		i, m := i, m // per-iteration copies (go < 1.22 loop semantics)
		g.Go(func() error {
			stored, err := s.matchRepo.GetMatch(gctx, &matchRepo.GetMatchInput{
				MatchID: m.ID,
			})
			if err != nil {
				return fmt.Errorf("failed to load paused match %s: %w", m.ID, err)
			}

			rounds := roundsPlayed(stored.Log)
			summaries[i] = &models.PausedMatchSummary{
				MatchID:   stored.Match.ID,
				UpdatedAt: stored.Match.UpdatedAt,
				Rounds:    rounds,
				Scores:    standingsFromLog(stored.Match, stored.Log, rounds+1),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListPausedMatchesOutput{
		Matches: summaries,
	}, nil
}

// GetHistory lists finished matches, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	listed, err := s.matchRepo.ListMatches(ctx, &matchRepo.ListMatchesInput{
		Status: models.MatchStatusFinished,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetHistoryOutput{
		Matches: listed.Matches,
	}, nil
}

// GetMatchReport builds the per-round scoresheet of a stored match
func (s *service) GetMatchReport(ctx context.Context, input *GetMatchReportInput) (*GetMatchReportOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	stored, err := s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	rounds := roundsPlayed(stored.Log)
	return &GetMatchReportOutput{
		Report: &models.MatchReport{
			Match:  stored.Match,
			Rounds: engine.ScoreGrid(stored.Log, stored.Match.PlayerNames),
			Totals: standingsFromLog(stored.Match, stored.Log, rounds+1),
			Log:    stored.Log,
		},
	}, nil
}

// GetLeaderboard reads the three all-time leaderboards concurrently
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := s.leaderboardLimit
	if input.Limit > 0 {
		limit = input.Limit
	}

	board := &models.Leaderboard{}
	targets := map[models.Board]*[]*models.PlayerStat{
		models.BoardWins:     &board.Wins,
		models.BoardMelds:    &board.Melds,
		models.BoardHundreds: &board.Hundreds,
	}

	g, gctx := errgroup.WithContext(ctx)
	for name, target := range targets {
		name, target := name, target // per-iteration copies (go < 1.22 loop semantics)
		g.Go(func() error {
			output, err := s.playerRepo.GetTopPlayers(gctx, &playerRepo.GetTopPlayersInput{
				Board: name,
				Limit: limit,
			})
			if err != nil {
				return fmt.Errorf("failed to get %s leaderboard: %w", name, err)
			}
			*target = output.Stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Leaderboard: board,
	}, nil
}

// GetPlayerNames returns every player name seen so far
func (s *service) GetPlayerNames(ctx context.Context, input *GetPlayerNamesInput) (*GetPlayerNamesOutput, error) {
	output, err := s.playerRepo.GetPlayerNames(ctx, &playerRepo.GetPlayerNamesInput{})
	if err != nil {
		return nil, err
	}

	return &GetPlayerNamesOutput{
		Names: output.Names,
	}, nil
}

// ensureChannelFree fails when the channel already plays a match
func (s *service) ensureChannelFree(ctx context.Context, channelID string) error {
	_, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
		ChannelID: channelID,
	})
	if err == nil {
		return ErrMatchAlreadyActive
	}

	if errors.Is(err, matchRepo.ErrMatchNotFound) {
		return nil
	}

	return err
}

// loadActive restores the match bound to the channel
func (s *service) loadActive(ctx context.Context, channelID string) (*models.Match, *engine.Engine, error) {
	return s.restoreTarget(ctx, channelID, "")
}

// restoreTarget restores the engine of the match picked by loadTarget
func (s *service) restoreTarget(ctx context.Context, channelID, matchID string) (*models.Match, *engine.Engine, error) {
	stored, err := s.loadTarget(ctx, channelID, matchID)
	if err != nil {
		return nil, nil, err
	}

	eng, err := restore(stored.Match, stored.Log)
	if err != nil {
		return nil, nil, err
	}

	return stored.Match, eng, nil
}

// loadByID restores a stored match in any status
func (s *service) loadByID(ctx context.Context, matchID string) (*models.Match, *engine.Engine, error) {
	stored, err := s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: matchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, nil, ErrMatchNotFound
		}
		return nil, nil, err
	}

	eng, err := restore(stored.Match, stored.Log)
	if err != nil {
		return nil, nil, err
	}

	return stored.Match, eng, nil
}

// loadTarget fetches an in-progress match by ID, or the channel's match when no ID is given
func (s *service) loadTarget(ctx context.Context, channelID, matchID string) (*matchRepo.GetMatchOutput, error) {
	var stored *matchRepo.GetMatchOutput
	var err error
	if matchID != "" {
		stored, err = s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
			MatchID: matchID,
		})
	} else {
		stored, err = s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
			ChannelID: channelID,
		})
	}

	if err != nil {
		if !errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, err
		}
		if matchID != "" {
			return nil, ErrMatchNotFound
		}
		return nil, ErrNoActiveMatch
	}

	if stored.Match.IsFinished() {
		if matchID != "" {
			return nil, ErrMatchNotInProgress
		}
		return nil, ErrNoActiveMatch
	}

	return stored, nil
}

// restore rebuilds the engine of a stored match
func restore(m *models.Match, roundLog []*models.RoundLogEntry) (*engine.Engine, error) {
	if len(roundLog) == 0 {
		return engine.New(m.PlayerNames, m.DealerOffset)
	}

	eng, err := engine.Rehydrate(roundLog, m.DealerOffset)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", m.ID, err)
	}

	return eng, nil
}

// save writes the match with its whole log and refreshes its meld tallies
func (s *service) save(ctx context.Context, m *models.Match, eng *engine.Engine) error {
	roundLog := eng.Log()
	output, err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: m,
		Log:   roundLog,
	})
	if err != nil {
		return err
	}
	m.ID = output.MatchID

	if len(roundLog) == 0 {
		return nil
	}

	return s.playerRepo.SetMatchTallies(ctx, &playerRepo.SetMatchTalliesInput{
		MatchID: m.ID,
		Tallies: engine.MeldTallies(roundLog),
	})
}

// completeMatch records the win and archives the match. Both are best effort,
// the finished match is already saved.
func (s *service) completeMatch(ctx context.Context, m *models.Match, roundLog []*models.RoundLogEntry) {
	if err := s.playerRepo.RecordWin(ctx, &playerRepo.RecordWinInput{
		PlayerName: m.Winner,
	}); err != nil {
		log.Printf("Failed to record win of %s in match %s: %v", m.Winner, m.ID, err)
	}

	if s.archiver == nil {
		return
	}

	if err := s.archiver.ArchiveMatch(ctx, &archive.ArchiveMatchInput{
		Match: m,
		Log:   roundLog,
	}); err != nil {
		log.Printf("Failed to archive match %s: %v", m.ID, err)
	}
}

func scoreboard(m *models.Match, eng *engine.Engine) *Scoreboard {
	return &Scoreboard{
		Match:     m,
		Round:     eng.Round(),
		Dealer:    eng.CurrentDealer(),
		Standings: eng.Standings(),
	}
}

func roundsPlayed(roundLog []*models.RoundLogEntry) int {
	rounds := 0
	for _, entry := range roundLog {
		if entry.Round > rounds {
			rounds = entry.Round
		}
	}
	return rounds
}

// standingsFromLog sums a stored log per seat without rebuilding an engine
func standingsFromLog(m *models.Match, roundLog []*models.RoundLogEntry, nextRound int) []*models.Standing {
	if len(m.PlayerNames) == 0 {
		return nil
	}

	totals := engine.Totals(roundLog)
	dealer := engine.DealerSeat(nextRound, m.DealerOffset, len(m.PlayerNames))
	standings := make([]*models.Standing, len(m.PlayerNames))
	for seat, name := range m.PlayerNames {
		standings[seat] = &models.Standing{
			Seat:       seat,
			PlayerName: name,
			Score:      totals[name],
			IsDealer:   seat == dealer,
		}
	}
	return standings
}
