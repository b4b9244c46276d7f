package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/tysiac/internal/archive"
	archiveMocks "github.com/KirkDiggler/tysiac/internal/archive/mocks"
	"github.com/KirkDiggler/tysiac/internal/common/clock/mocks"
	dealerMocks "github.com/KirkDiggler/tysiac/internal/dealer/mocks"
	"github.com/KirkDiggler/tysiac/internal/engine"
	"github.com/KirkDiggler/tysiac/internal/models"
	matchRepo "github.com/KirkDiggler/tysiac/internal/repositories/match"
	matchMocks "github.com/KirkDiggler/tysiac/internal/repositories/match/mocks"
	playerRepo "github.com/KirkDiggler/tysiac/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/tysiac/internal/repositories/player/mocks"
	"github.com/KirkDiggler/tysiac/internal/scoring"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MatchServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockMatchRepo  *matchMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockPicker     *dealerMocks.MockPicker
	mockClock      *mocks.MockClock
	mockArchiver   *archiveMocks.MockArchiver
	matchService   Service
	ctx            context.Context

	// Test data
	testTime      time.Time
	testMatchID   string
	testChannelID string
	testPlayers   []string
}

func (s *MatchServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMatchRepo = matchMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockPicker = dealerMocks.NewMockPicker(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockArchiver = archiveMocks.NewMockArchiver(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testMatchID = "test-match-id"
	s.testChannelID = "test-channel-id"
	s.testPlayers = []string{"Ala", "Ola", "Ela"}

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		MatchRepo:  s.mockMatchRepo,
		PlayerRepo: s.mockPlayerRepo,
		SeatPicker: s.mockPicker,
		Clock:      s.mockClock,
		Archiver:   s.mockArchiver,
	})
	s.Require().NoError(err)
	s.matchService = svc
}

func (s *MatchServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchServiceSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}

func (s *MatchServiceTestSuite) storedMatch(status models.MatchStatus, channelID string) *models.Match {
	return &models.Match{
		ID:          s.testMatchID,
		ChannelID:   channelID,
		Status:      status,
		PlayerNames: append([]string(nil), s.testPlayers...),
		CreatedAt:   s.testTime.Add(-time.Hour),
		UpdatedAt:   s.testTime.Add(-time.Minute),
	}
}

// roundEntries builds one log round with a delta per seat of testPlayers
func (s *MatchServiceTestSuite) roundEntries(round int, deltas ...int) []*models.RoundLogEntry {
	entries := make([]*models.RoundLogEntry, len(deltas))
	for seat, delta := range deltas {
		entries[seat] = &models.RoundLogEntry{
			Round:      round,
			PlayerName: s.testPlayers[seat],
			ScoreDelta: delta,
		}
	}
	return entries
}

func (s *MatchServiceTestSuite) expectNoActiveMatch() {
	s.mockMatchRepo.EXPECT().
		GetMatchByChannel(gomock.Any(), &matchRepo.GetMatchByChannelInput{ChannelID: s.testChannelID}).
		Return(nil, matchRepo.ErrMatchNotFound)
}

func (s *MatchServiceTestSuite) expectActiveMatch(m *models.Match, log []*models.RoundLogEntry) {
	s.mockMatchRepo.EXPECT().
		GetMatchByChannel(gomock.Any(), &matchRepo.GetMatchByChannelInput{ChannelID: s.testChannelID}).
		Return(&matchRepo.GetMatchOutput{Match: m, Log: log}, nil)
}

func (s *MatchServiceTestSuite) expectStoredMatch(m *models.Match, log []*models.RoundLogEntry) {
	s.mockMatchRepo.EXPECT().
		GetMatch(gomock.Any(), &matchRepo.GetMatchInput{MatchID: m.ID}).
		Return(&matchRepo.GetMatchOutput{Match: m, Log: log}, nil)
}

func (s *MatchServiceTestSuite) TestNew_MissingDependencies() {
	testCases := []struct {
		name     string
		cfg      *Config
		expected error
	}{
		{"nil config", nil, ErrNilConfig},
		{"nil match repo", &Config{}, ErrNilMatchRepo},
		{"nil player repo", &Config{MatchRepo: s.mockMatchRepo}, ErrNilPlayerRepo},
		{"nil seat picker", &Config{MatchRepo: s.mockMatchRepo, PlayerRepo: s.mockPlayerRepo}, ErrNilSeatPicker},
		{"nil clock", &Config{MatchRepo: s.mockMatchRepo, PlayerRepo: s.mockPlayerRepo, SeatPicker: s.mockPicker}, ErrNilClock},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := New(tc.cfg)
			s.ErrorIs(err, tc.expected)
			s.Nil(svc)
		})
	}
}

func (s *MatchServiceTestSuite) TestStartMatch_Success() {
	s.expectNoActiveMatch()
	s.mockPicker.EXPECT().PickSeat(3).Return(1)
	s.mockMatchRepo.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.SaveMatchInput) (*matchRepo.SaveMatchOutput, error) {
			s.Equal("", input.Match.ID)
			s.Equal(s.testChannelID, input.Match.ChannelID)
			s.Equal(models.MatchStatusInProgress, input.Match.Status)
			s.Equal(1, input.Match.DealerOffset)
			s.Equal(s.testPlayers, input.Match.PlayerNames)
			s.Equal(s.testTime, input.Match.CreatedAt)
			s.Empty(input.Log)
			return &matchRepo.SaveMatchOutput{MatchID: s.testMatchID}, nil
		})
	s.mockPlayerRepo.EXPECT().
		AddPlayerNames(gomock.Any(), &playerRepo.AddPlayerNamesInput{Names: s.testPlayers}).
		Return(nil)

	output, err := s.matchService.StartMatch(s.ctx, &StartMatchInput{
		ChannelID:   s.testChannelID,
		PlayerNames: []string{" Ala", "Ola ", "Ela"},
	})
	s.Require().NoError(err)

	board := output.Scoreboard
	s.Equal(s.testMatchID, board.Match.ID)
	s.Equal(1, board.Round)
	s.Equal("Ola", board.Dealer)
	s.Require().Len(board.Standings, 3)
	s.True(board.Standings[1].IsDealer)
	for _, standing := range board.Standings {
		s.Zero(standing.Score)
	}
}

func (s *MatchServiceTestSuite) TestStartMatch_PlayerNamesFailureIsIgnored() {
	s.expectNoActiveMatch()
	s.mockPicker.EXPECT().PickSeat(2).Return(0)
	s.mockMatchRepo.EXPECT().SaveMatch(gomock.Any(), gomock.Any()).
		Return(&matchRepo.SaveMatchOutput{MatchID: s.testMatchID}, nil)
	s.mockPlayerRepo.EXPECT().AddPlayerNames(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	output, err := s.matchService.StartMatch(s.ctx, &StartMatchInput{
		ChannelID:   s.testChannelID,
		PlayerNames: []string{"Ala", "Ola"},
	})
	s.Require().NoError(err)
	s.Equal("Ala", output.Scoreboard.Dealer)
}

func (s *MatchServiceTestSuite) TestStartMatch_TooManyPlayers() {
	output, err := s.matchService.StartMatch(s.ctx, &StartMatchInput{
		ChannelID:   s.testChannelID,
		PlayerNames: []string{"A", "B", "C", "D", "E"},
	})
	s.ErrorIs(err, ErrTooManyPlayers)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestStartMatch_ChannelBusy() {
	s.expectActiveMatch(s.storedMatch(models.MatchStatusInProgress, s.testChannelID), nil)

	output, err := s.matchService.StartMatch(s.ctx, &StartMatchInput{
		ChannelID:   s.testChannelID,
		PlayerNames: s.testPlayers,
	})
	s.ErrorIs(err, ErrMatchAlreadyActive)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestStartMatch_DuplicatePlayers() {
	s.expectNoActiveMatch()
	s.mockPicker.EXPECT().PickSeat(2).Return(0)

	output, err := s.matchService.StartMatch(s.ctx, &StartMatchInput{
		ChannelID:   s.testChannelID,
		PlayerNames: []string{"Ala", "Ala"},
	})
	s.ErrorIs(err, engine.ErrInvalidConfiguration)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestSubmitRound_Continuing() {
	stored := s.storedMatch(models.MatchStatusInProgress, s.testChannelID)
	s.expectActiveMatch(stored, s.roundEntries(1, 100, 0, -120))

	s.mockMatchRepo.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.SaveMatchInput) (*matchRepo.SaveMatchOutput, error) {
			s.Equal(models.MatchStatusInProgress, input.Match.Status)
			s.Equal(s.testTime, input.Match.UpdatedAt)
			s.Len(input.Log, 6)
			s.Equal(2, input.Log[3].Round)
			s.True(input.Log[3].Melds.Forty)
			return &matchRepo.SaveMatchOutput{MatchID: s.testMatchID}, nil
		})
	s.mockPlayerRepo.EXPECT().
		SetMatchTallies(gomock.Any(), &playerRepo.SetMatchTalliesInput{
			MatchID: s.testMatchID,
			Tallies: []*models.MeldTally{
				{PlayerName: "Ala", Total: 1},
				{PlayerName: "Ola"},
				{PlayerName: "Ela"},
			},
		}).
		Return(nil)

	output, err := s.matchService.SubmitRound(s.ctx, &SubmitRoundInput{
		ChannelID: s.testChannelID,
		Inputs: []scoring.RoundInput{
			{CardPoints: 57, Melds: models.Melds{Forty: true}},
			{CardPoints: 63},
			{},
		},
	})
	s.Require().NoError(err)

	s.Equal(engine.OutcomeContinuing, output.Outcome)
	s.Equal(2, output.Round)
	s.Equal([]int{100, 60, 0}, output.Deltas)
	s.Empty(output.Winner)
	s.Equal(3, output.Scoreboard.Round)
	s.Equal("Ela", output.Scoreboard.Dealer)
	s.Equal(200, output.Scoreboard.Standings[0].Score)
	s.Equal(60, output.Scoreboard.Standings[1].Score)
	s.Equal(-120, output.Scoreboard.Standings[2].Score)
}

func (s *MatchServiceTestSuite) TestSubmitRound_WinningRound() {
	stored := s.storedMatch(models.MatchStatusInProgress, s.testChannelID)
	s.expectActiveMatch(stored, s.roundEntries(1, 900, 0, 0))

	s.mockMatchRepo.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.SaveMatchInput) (*matchRepo.SaveMatchOutput, error) {
			s.Equal(models.MatchStatusFinished, input.Match.Status)
			s.Equal("Ala", input.Match.Winner)
			return &matchRepo.SaveMatchOutput{MatchID: s.testMatchID}, nil
		})
	s.mockPlayerRepo.EXPECT().SetMatchTallies(gomock.Any(), gomock.Any()).Return(nil)
	s.mockPlayerRepo.EXPECT().
		RecordWin(gomock.Any(), &playerRepo.RecordWinInput{PlayerName: "Ala"}).
		Return(nil)
	s.mockArchiver.EXPECT().
		ArchiveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *archive.ArchiveMatchInput) error {
			s.Equal(s.testMatchID, input.Match.ID)
			s.Len(input.Log, 6)
			return nil
		})

	output, err := s.matchService.SubmitRound(s.ctx, &SubmitRoundInput{
		ChannelID: s.testChannelID,
		Inputs: []scoring.RoundInput{
			{CardPoints: 100},
			{CardPoints: 20},
			{CardPoints: 0},
		},
	})
	s.Require().NoError(err)
	s.Equal(engine.OutcomeFinished, output.Outcome)
	s.Equal("Ala", output.Winner)
	s.True(output.Scoreboard.Match.IsFinished())
}

func (s *MatchServiceTestSuite) TestSubmitRound_ArchiveFailureIsIgnored() {
	stored := s.storedMatch(models.MatchStatusInProgress, s.testChannelID)
	s.expectActiveMatch(stored, s.roundEntries(1, 990, 0, 0))

	s.mockMatchRepo.EXPECT().SaveMatch(gomock.Any(), gomock.Any()).
		Return(&matchRepo.SaveMatchOutput{MatchID: s.testMatchID}, nil)
	s.mockPlayerRepo.EXPECT().SetMatchTallies(gomock.Any(), gomock.Any()).Return(nil)
	s.mockPlayerRepo.EXPECT().RecordWin(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	s.mockArchiver.EXPECT().ArchiveMatch(gomock.Any(), gomock.Any()).Return(errors.New("access denied"))

	output, err := s.matchService.SubmitRound(s.ctx, &SubmitRoundInput{
		ChannelID: s.testChannelID,
		Inputs:    []scoring.RoundInput{{CardPoints: 10}, {}, {}},
	})
	s.Require().NoError(err)
	s.Equal("Ala", output.Winner)
}

func (s *MatchServiceTestSuite) TestSubmitRound_TwoDeclarations() {
	output, err := s.matchService.SubmitRound(s.ctx, &SubmitRoundInput{
		ChannelID: s.testChannelID,
		Inputs: []scoring.RoundInput{
			{CardPoints: 120, Declaring: true, DeclaredPoints: 100},
			{CardPoints: 120, Declaring: true, DeclaredPoints: 110},
			{},
		},
	})
	s.ErrorIs(err, engine.ErrValidationViolation)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestSubmitRound_DuplicateMeld() {
	s.expectActiveMatch(s.storedMatch(models.MatchStatusInProgress, s.testChannelID), nil)

	output, err := s.matchService.SubmitRound(s.ctx, &SubmitRoundInput{
		ChannelID: s.testChannelID,
		Inputs: []scoring.RoundInput{
			{Melds: models.Melds{Eighty: true}},
			{Melds: models.Melds{Eighty: true}},
			{},
		},
	})
	s.ErrorIs(err, engine.ErrValidationViolation)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestSubmitRound_EmptyRoundNeedsConfirmation() {
	output, err := s.matchService.SubmitRound(s.ctx, &SubmitRoundInput{
		ChannelID: s.testChannelID,
		Inputs:    make([]scoring.RoundInput, 3),
	})
	s.ErrorIs(err, ErrEmptyRound)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestSubmitRound_ConfirmedEmptyRound() {
	s.expectActiveMatch(s.storedMatch(models.MatchStatusInProgress, s.testChannelID), nil)
	s.mockMatchRepo.EXPECT().SaveMatch(gomock.Any(), gomock.Any()).
		Return(&matchRepo.SaveMatchOutput{MatchID: s.testMatchID}, nil)
	s.mockPlayerRepo.EXPECT().SetMatchTallies(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.matchService.SubmitRound(s.ctx, &SubmitRoundInput{
		ChannelID:    s.testChannelID,
		Inputs:       make([]scoring.RoundInput, 3),
		ConfirmEmpty: true,
	})
	s.Require().NoError(err)
	s.Equal(1, output.Round)
	s.Equal([]int{0, 0, 0}, output.Deltas)
}

func (s *MatchServiceTestSuite) TestSubmitRound_NoActiveMatch() {
	s.expectNoActiveMatch()

	output, err := s.matchService.SubmitRound(s.ctx, &SubmitRoundInput{
		ChannelID: s.testChannelID,
		Inputs:    []scoring.RoundInput{{CardPoints: 10}, {}, {}},
	})
	s.ErrorIs(err, ErrNoActiveMatch)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestSubmitRound_CorruptLog() {
	log := s.roundEntries(1, 10, 20, 30)
	log = append(log, s.roundEntries(3, 10, 20, 30)...)
	s.expectActiveMatch(s.storedMatch(models.MatchStatusInProgress, s.testChannelID), log)

	output, err := s.matchService.SubmitRound(s.ctx, &SubmitRoundInput{
		ChannelID: s.testChannelID,
		Inputs:    []scoring.RoundInput{{CardPoints: 10}, {}, {}},
	})
	s.ErrorIs(err, engine.ErrCorruptLog)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestGetStatus() {
	stored := s.storedMatch(models.MatchStatusInProgress, s.testChannelID)
	stored.DealerOffset = 2
	s.expectActiveMatch(stored, s.roundEntries(1, 820, 30, 0))

	output, err := s.matchService.GetStatus(s.ctx, &GetStatusInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(2, output.Scoreboard.Round)
	s.Equal("Ala", output.Scoreboard.Dealer)
	s.True(output.Scoreboard.Standings[0].UnderTheLine())
	s.False(output.Scoreboard.Standings[1].UnderTheLine())
}

func (s *MatchServiceTestSuite) TestPauseMatch_Success() {
	stored := s.storedMatch(models.MatchStatusInProgress, s.testChannelID)
	s.expectActiveMatch(stored, s.roundEntries(1, 100, 0, -120))

	s.mockMatchRepo.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.SaveMatchInput) (*matchRepo.SaveMatchOutput, error) {
			s.Empty(input.Match.ChannelID)
			s.Equal(models.MatchStatusInProgress, input.Match.Status)
			return &matchRepo.SaveMatchOutput{MatchID: s.testMatchID}, nil
		})
	s.mockPlayerRepo.EXPECT().SetMatchTallies(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMatchRepo.EXPECT().
		ReleaseChannel(gomock.Any(), &matchRepo.ReleaseChannelInput{
			ChannelID: s.testChannelID,
			MatchID:   s.testMatchID,
		}).
		Return(nil)

	output, err := s.matchService.PauseMatch(s.ctx, &PauseMatchInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(s.testMatchID, output.Scoreboard.Match.ID)
}

func (s *MatchServiceTestSuite) TestPauseMatch_NothingToPause() {
	s.expectActiveMatch(s.storedMatch(models.MatchStatusInProgress, s.testChannelID), s.roundEntries(1, 0, 0, 0))

	output, err := s.matchService.PauseMatch(s.ctx, &PauseMatchInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrNothingToPause)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestResumeMatch_Success() {
	paused := s.storedMatch(models.MatchStatusInProgress, "")
	paused.DealerOffset = 1
	s.expectNoActiveMatch()
	s.expectStoredMatch(paused, s.roundEntries(1, 100, 0, -120))

	s.mockMatchRepo.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.SaveMatchInput) (*matchRepo.SaveMatchOutput, error) {
			s.Equal(s.testChannelID, input.Match.ChannelID)
			s.Len(input.Log, 3)
			return &matchRepo.SaveMatchOutput{MatchID: s.testMatchID}, nil
		})
	s.mockPlayerRepo.EXPECT().SetMatchTallies(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.matchService.ResumeMatch(s.ctx, &ResumeMatchInput{
		ChannelID: s.testChannelID,
		MatchID:   s.testMatchID,
	})
	s.Require().NoError(err)
	s.Equal(2, output.Scoreboard.Round)
	s.Equal("Ela", output.Scoreboard.Dealer)
	s.Equal(100, output.Scoreboard.Standings[0].Score)
}

func (s *MatchServiceTestSuite) TestResumeMatch_BoundElsewhere() {
	s.expectNoActiveMatch()
	s.expectStoredMatch(s.storedMatch(models.MatchStatusInProgress, "other-channel"), s.roundEntries(1, 10, 0, 0))

	output, err := s.matchService.ResumeMatch(s.ctx, &ResumeMatchInput{
		ChannelID: s.testChannelID,
		MatchID:   s.testMatchID,
	})
	s.ErrorIs(err, ErrMatchAlreadyActive)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestResumeMatch_Finished() {
	s.expectNoActiveMatch()
	s.expectStoredMatch(s.storedMatch(models.MatchStatusFinished, ""), s.roundEntries(1, 1000, 0, 0))

	output, err := s.matchService.ResumeMatch(s.ctx, &ResumeMatchInput{
		ChannelID: s.testChannelID,
		MatchID:   s.testMatchID,
	})
	s.ErrorIs(err, ErrMatchNotInProgress)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestResumeMatch_NotFound() {
	s.expectNoActiveMatch()
	s.mockMatchRepo.EXPECT().
		GetMatch(gomock.Any(), &matchRepo.GetMatchInput{MatchID: "missing"}).
		Return(nil, matchRepo.ErrMatchNotFound)

	output, err := s.matchService.ResumeMatch(s.ctx, &ResumeMatchInput{
		ChannelID: s.testChannelID,
		MatchID:   "missing",
	})
	s.ErrorIs(err, ErrMatchNotFound)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestFinishMatch_PausedByID() {
	paused := s.storedMatch(models.MatchStatusInProgress, "")
	s.expectStoredMatch(paused, s.roundEntries(1, 50, 120, 120))

	s.mockMatchRepo.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.SaveMatchInput) (*matchRepo.SaveMatchOutput, error) {
			s.Equal(models.MatchStatusFinished, input.Match.Status)
			s.Equal("Ola", input.Match.Winner)
			return &matchRepo.SaveMatchOutput{MatchID: s.testMatchID}, nil
		})
	s.mockPlayerRepo.EXPECT().SetMatchTallies(gomock.Any(), gomock.Any()).Return(nil)
	s.mockPlayerRepo.EXPECT().
		RecordWin(gomock.Any(), &playerRepo.RecordWinInput{PlayerName: "Ola"}).
		Return(nil)
	s.mockArchiver.EXPECT().ArchiveMatch(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.matchService.FinishMatch(s.ctx, &FinishMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal("Ola", output.Winner)
}

func (s *MatchServiceTestSuite) TestFinishMatch_NothingToFinish() {
	s.expectActiveMatch(s.storedMatch(models.MatchStatusInProgress, s.testChannelID), nil)

	output, err := s.matchService.FinishMatch(s.ctx, &FinishMatchInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, engine.ErrNothingToFinish)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestFinishMatch_ZeroScore() {
	paused := s.storedMatch(models.MatchStatusInProgress, "")
	s.expectStoredMatch(paused, s.roundEntries(1, 0, 0, 0))

	output, err := s.matchService.FinishMatch(s.ctx, &FinishMatchInput{MatchID: s.testMatchID})
	s.ErrorIs(err, engine.ErrNothingToFinish)
	s.Nil(output)
	s.Equal(models.MatchStatusInProgress, paused.Status)
	s.Empty(paused.Winner)
}

func (s *MatchServiceTestSuite) TestFinishMatch_ZeroScoreActive() {
	s.expectActiveMatch(s.storedMatch(models.MatchStatusInProgress, s.testChannelID),
		append(s.roundEntries(1, 0, 0, 0), s.roundEntries(2, 0, 0, 0)...))

	output, err := s.matchService.FinishMatch(s.ctx, &FinishMatchInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, engine.ErrNothingToFinish)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestFinishMatch_AlreadyFinished() {
	s.expectStoredMatch(s.storedMatch(models.MatchStatusFinished, ""), s.roundEntries(1, 1000, 0, 0))

	output, err := s.matchService.FinishMatch(s.ctx, &FinishMatchInput{MatchID: s.testMatchID})
	s.ErrorIs(err, ErrMatchNotInProgress)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestAbandonMatch_ActiveMatch() {
	s.expectActiveMatch(s.storedMatch(models.MatchStatusInProgress, s.testChannelID), nil)
	s.mockMatchRepo.EXPECT().
		DeleteMatch(gomock.Any(), &matchRepo.DeleteMatchInput{MatchID: s.testMatchID}).
		Return(nil)
	s.mockPlayerRepo.EXPECT().
		DeleteMatchTallies(gomock.Any(), &playerRepo.DeleteMatchTalliesInput{MatchID: s.testMatchID}).
		Return(nil)

	output, err := s.matchService.AbandonMatch(s.ctx, &AbandonMatchInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(s.testMatchID, output.MatchID)
}

func (s *MatchServiceTestSuite) TestAbandonMatch_CorruptLogCanStillBeDeleted() {
	log := s.roundEntries(2, 10, 20, 30)
	s.expectStoredMatch(s.storedMatch(models.MatchStatusInProgress, ""), log)
	s.mockMatchRepo.EXPECT().DeleteMatch(gomock.Any(), gomock.Any()).Return(nil)
	s.mockPlayerRepo.EXPECT().DeleteMatchTallies(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.matchService.AbandonMatch(s.ctx, &AbandonMatchInput{MatchID: s.testMatchID})
	s.NoError(err)
}

func (s *MatchServiceTestSuite) TestAbandonMatch_FinishedIsKept() {
	s.expectStoredMatch(s.storedMatch(models.MatchStatusFinished, ""), s.roundEntries(1, 1000, 0, 0))

	output, err := s.matchService.AbandonMatch(s.ctx, &AbandonMatchInput{MatchID: s.testMatchID})
	s.ErrorIs(err, ErrMatchNotInProgress)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestRematch_Success() {
	finished := s.storedMatch(models.MatchStatusFinished, s.testChannelID)
	finished.Winner = "Ala"
	s.expectNoActiveMatch()
	s.expectStoredMatch(finished, s.roundEntries(1, 1000, 0, 0))
	s.mockPicker.EXPECT().PickSeat(3).Return(2)
	s.mockMatchRepo.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.SaveMatchInput) (*matchRepo.SaveMatchOutput, error) {
			s.Empty(input.Match.ID)
			s.Equal(2, input.Match.DealerOffset)
			s.Equal(s.testPlayers, input.Match.PlayerNames)
			s.Empty(input.Log)
			return &matchRepo.SaveMatchOutput{MatchID: "rematch-id"}, nil
		})

	output, err := s.matchService.Rematch(s.ctx, &RematchInput{
		ChannelID: s.testChannelID,
		MatchID:   s.testMatchID,
	})
	s.Require().NoError(err)
	s.Equal("rematch-id", output.Scoreboard.Match.ID)
	s.Equal("Ela", output.Scoreboard.Dealer)
	s.Equal(1, output.Scoreboard.Round)
}

func (s *MatchServiceTestSuite) TestRematch_NotFinished() {
	s.expectNoActiveMatch()
	s.expectStoredMatch(s.storedMatch(models.MatchStatusInProgress, ""), s.roundEntries(1, 10, 0, 0))

	output, err := s.matchService.Rematch(s.ctx, &RematchInput{
		ChannelID: s.testChannelID,
		MatchID:   s.testMatchID,
	})
	s.ErrorIs(err, ErrMatchNotFinished)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestListPausedMatches() {
	active := s.storedMatch(models.MatchStatusInProgress, s.testChannelID)
	active.ID = "active-id"
	paused := s.storedMatch(models.MatchStatusInProgress, "")

	s.mockMatchRepo.EXPECT().
		ListMatches(gomock.Any(), &matchRepo.ListMatchesInput{Status: models.MatchStatusInProgress}).
		Return(&matchRepo.ListMatchesOutput{Matches: []*models.Match{active, paused}}, nil)

	log := s.roundEntries(1, 100, 0, -120)
	log = append(log, s.roundEntries(2, 30, 60, 0)...)
	s.expectStoredMatch(paused, log)

	output, err := s.matchService.ListPausedMatches(s.ctx, &ListPausedMatchesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 1)

	summary := output.Matches[0]
	s.Equal(s.testMatchID, summary.MatchID)
	s.Equal(2, summary.Rounds)
	s.Equal(130, summary.Scores[0].Score)
	s.Equal(60, summary.Scores[1].Score)
	s.Equal(-120, summary.Scores[2].Score)
	s.True(summary.Scores[2].IsDealer)
}

func (s *MatchServiceTestSuite) TestListPausedMatches_LoadFailure() {
	paused := s.storedMatch(models.MatchStatusInProgress, "")
	s.mockMatchRepo.EXPECT().ListMatches(gomock.Any(), gomock.Any()).
		Return(&matchRepo.ListMatchesOutput{Matches: []*models.Match{paused}}, nil)
	s.mockMatchRepo.EXPECT().GetMatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	output, err := s.matchService.ListPausedMatches(s.ctx, &ListPausedMatchesInput{})
	s.Error(err)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestGetHistory() {
	finished := s.storedMatch(models.MatchStatusFinished, "")
	s.mockMatchRepo.EXPECT().
		ListMatches(gomock.Any(), &matchRepo.ListMatchesInput{Status: models.MatchStatusFinished, Limit: 10}).
		Return(&matchRepo.ListMatchesOutput{Matches: []*models.Match{finished}}, nil)

	output, err := s.matchService.GetHistory(s.ctx, &GetHistoryInput{Limit: 10})
	s.Require().NoError(err)
	s.Equal([]*models.Match{finished}, output.Matches)
}

func (s *MatchServiceTestSuite) TestGetMatchReport() {
	finished := s.storedMatch(models.MatchStatusFinished, "")
	finished.Winner = "Ala"
	log := s.roundEntries(1, 900, 20, -100)
	log = append(log, s.roundEntries(2, 100, 0, 40)...)
	s.expectStoredMatch(finished, log)

	output, err := s.matchService.GetMatchReport(s.ctx, &GetMatchReportInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	report := output.Report
	s.Equal([][]int{{900, 20, -100}, {100, 0, 40}}, report.Rounds)
	s.Equal(1000, report.Totals[0].Score)
	s.Equal(20, report.Totals[1].Score)
	s.Equal(-60, report.Totals[2].Score)
	s.Equal(log, report.Log)
}

func (s *MatchServiceTestSuite) TestGetMatchReport_NotFound() {
	s.mockMatchRepo.EXPECT().GetMatch(gomock.Any(), gomock.Any()).Return(nil, matchRepo.ErrMatchNotFound)

	output, err := s.matchService.GetMatchReport(s.ctx, &GetMatchReportInput{MatchID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestGetLeaderboard() {
	wins := []*models.PlayerStat{{PlayerName: "Ala", Value: 3}}
	melds := []*models.PlayerStat{{PlayerName: "Ola", Value: 12}, {PlayerName: "Ala", Value: 7}}
	hundreds := []*models.PlayerStat{{PlayerName: "Ela", Value: 2}}

	s.mockPlayerRepo.EXPECT().
		GetTopPlayers(gomock.Any(), &playerRepo.GetTopPlayersInput{Board: models.BoardWins, Limit: 5}).
		Return(&playerRepo.GetTopPlayersOutput{Stats: wins}, nil)
	s.mockPlayerRepo.EXPECT().
		GetTopPlayers(gomock.Any(), &playerRepo.GetTopPlayersInput{Board: models.BoardMelds, Limit: 5}).
		Return(&playerRepo.GetTopPlayersOutput{Stats: melds}, nil)
	s.mockPlayerRepo.EXPECT().
		GetTopPlayers(gomock.Any(), &playerRepo.GetTopPlayersInput{Board: models.BoardHundreds, Limit: 5}).
		Return(&playerRepo.GetTopPlayersOutput{Stats: hundreds}, nil)

	output, err := s.matchService.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Equal(wins, output.Leaderboard.Wins)
	s.Equal(melds, output.Leaderboard.Melds)
	s.Equal(hundreds, output.Leaderboard.Hundreds)
}

func (s *MatchServiceTestSuite) TestGetLeaderboard_Failure() {
	s.mockPlayerRepo.EXPECT().GetTopPlayers(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down")).MinTimes(1).MaxTimes(3)

	output, err := s.matchService.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Error(err)
	s.Nil(output)
}

func (s *MatchServiceTestSuite) TestGetPlayerNames() {
	s.mockPlayerRepo.EXPECT().GetPlayerNames(gomock.Any(), gomock.Any()).
		Return(&playerRepo.GetPlayerNamesOutput{Names: []string{"Ala", "Ola"}}, nil)

	output, err := s.matchService.GetPlayerNames(s.ctx, &GetPlayerNamesInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Ala", "Ola"}, output.Names)
}
