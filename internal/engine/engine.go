// Package engine owns the state of a single match: seats, running scores,
// the dealer rotation and the append-only round log.
//
// An Engine is not safe for concurrent use. Each match gets its own Engine
// and there is no shared state between instances.
package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tysiac/internal/models"
	"github.com/KirkDiggler/tysiac/internal/scoring"
)

// State is the lifecycle state of a match held by an Engine
type State int

const (
	// StateCreated means seats are fixed and no round was played yet
	StateCreated State = iota

	// StateInProgress means at least one round was played and nobody won yet
	StateInProgress

	// StateFinished is terminal
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateInProgress:
		return "in-progress"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome tells the caller what happened after a round was recorded
type Outcome string

const (
	// OutcomeContinuing means the match goes on
	OutcomeContinuing Outcome = "continuing"

	// OutcomeFinished means a player reached the winning score
	OutcomeFinished Outcome = "finished"
)

// RoundResult is returned by SubmitRound
type RoundResult struct {
	// Outcome is continuing or finished
	Outcome Outcome

	// Round is the number of the round that was just recorded
	Round int

	// Deltas holds the resolved score change per seat
	Deltas []int

	// Winner is set when Outcome is finished
	Winner string
}

// SeatPicker chooses a seat index in [0, playerCount)
type SeatPicker interface {
	PickSeat(playerCount int) int
}

// Engine holds the mutable state of one match
type Engine struct {
	players      []string
	scores       []int
	dealerOffset int
	round        int
	log          []*models.RoundLogEntry
	state        State
	winner       string
}

// New creates a match for the given players in seat order.
// Names are trimmed; at least two distinct, non-empty names are required.
func New(playerNames []string, dealerOffset int) (*Engine, error) {
	players, err := seatPlayers(playerNames)
	if err != nil {
		return nil, err
	}

	return &Engine{
		players:      players,
		scores:       make([]int, len(players)),
		dealerOffset: dealerOffset,
		round:        1,
		state:        StateCreated,
	}, nil
}

func seatPlayers(names []string) ([]string, error) {
	players := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty player name", ErrInvalidConfiguration)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate player %q", ErrInvalidConfiguration, name)
		}
		seen[name] = true
		players = append(players, name)
	}

	if len(players) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 players, got %d", ErrInvalidConfiguration, len(players))
	}

	return players, nil
}

// SubmitRound records one round. inputs holds one entry per seat, in seat order.
//
// Meld exclusivity is enforced here. Declaration exclusivity is not: when the
// engine is driven directly the caller must make sure at most one player
// declares, see ValidateDeclarations.
//
// Either the whole round is applied or, on error, nothing changes.
func (e *Engine) SubmitRound(inputs []scoring.RoundInput) (*RoundResult, error) {
	if e.state == StateFinished {
		return nil, ErrMatchFinished
	}

	if len(inputs) != len(e.players) {
		return nil, fmt.Errorf("%w: got %d inputs for %d players",
			ErrValidationViolation, len(inputs), len(e.players))
	}

	if err := ValidateMelds(inputs); err != nil {
		return nil, err
	}

	for seat, in := range inputs {
		if in.Declaring && in.DeclaredPoints < 0 {
			return nil, fmt.Errorf("%w: %s declared %d points",
				ErrValidationViolation, e.players[seat], in.DeclaredPoints)
		}
	}

	round := e.round
	deltas := make([]int, len(inputs))
	entries := make([]*models.RoundLogEntry, len(inputs))
	for seat, in := range inputs {
		deltas[seat] = scoring.Resolve(in)

		declared := 0
		if in.Declaring {
			declared = in.DeclaredPoints
		}
		entries[seat] = &models.RoundLogEntry{
			Round:          round,
			PlayerName:     e.players[seat],
			ScoreDelta:     deltas[seat],
			Melds:          in.Melds,
			IsDeclaration:  in.Declaring,
			DeclaredPoints: declared,
		}
	}

	for seat, delta := range deltas {
		e.scores[seat] += delta
	}
	e.log = append(e.log, entries...)
	e.round++
	e.state = StateInProgress

	result := &RoundResult{
		Outcome: OutcomeContinuing,
		Round:   round,
		Deltas:  deltas,
	}

	if seat := leader(e.scores); e.scores[seat] >= models.WinningScore {
		e.finish(e.players[seat])
		result.Outcome = OutcomeFinished
		result.Winner = e.winner
	}

	return result, nil
}

// ForceFinish ends the match early. The highest total wins, earliest seat on ties.
func (e *Engine) ForceFinish() (string, error) {
	if e.state == StateFinished {
		return "", ErrMatchFinished
	}

	if len(e.log) == 0 {
		return "", ErrNothingToFinish
	}

	e.finish(e.players[leader(e.scores)])
	return e.winner, nil
}

func (e *Engine) finish(winner string) {
	e.winner = winner
	e.state = StateFinished
}

// Rehydrate rebuilds an in-progress match from a stored log ordered by round.
//
// Players are seated in order of first appearance. Entries are trusted as
// recorded facts: meld exclusivity is not checked again and the winning
// score is not re-evaluated. The log must start at round 1 and every round
// must hold exactly one entry per player.
func Rehydrate(log []*models.RoundLogEntry, dealerOffset int) (*Engine, error) {
	if len(log) == 0 {
		return nil, fmt.Errorf("%w: log is empty", ErrCorruptLog)
	}

	players := PlayersFromLog(log)
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: log holds %d players", ErrCorruptLog, len(players))
	}

	seats := make(map[string]int, len(players))
	for seat, name := range players {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: empty player name", ErrCorruptLog)
		}
		seats[name] = seat
	}

	scores := make([]int, len(players))
	entries := make([]*models.RoundLogEntry, 0, len(log))
	current := 0
	seen := make(map[string]bool, len(players))
	for _, entry := range log {
		if entry.Round != current {
			if entry.Round != current+1 {
				return nil, fmt.Errorf("%w: round %d follows round %d", ErrCorruptLog, entry.Round, current)
			}
			if current > 0 && len(seen) != len(players) {
				return nil, fmt.Errorf("%w: round %d is missing players", ErrCorruptLog, current)
			}
			current = entry.Round
			seen = make(map[string]bool, len(players))
		}

		if seen[entry.PlayerName] {
			return nil, fmt.Errorf("%w: %q appears twice in round %d", ErrCorruptLog, entry.PlayerName, current)
		}
		seen[entry.PlayerName] = true

		scores[seats[entry.PlayerName]] += entry.ScoreDelta
		copied := *entry
		entries = append(entries, &copied)
	}

	if len(seen) != len(players) {
		return nil, fmt.Errorf("%w: round %d is missing players", ErrCorruptLog, current)
	}

	return &Engine{
		players:      players,
		scores:       scores,
		dealerOffset: dealerOffset,
		round:        current + 1,
		log:          entries,
		state:        StateInProgress,
	}, nil
}

// StartRematch creates a fresh match with the same seats and a dealer offset
// drawn from picker. The receiver is left untouched.
func (e *Engine) StartRematch(picker SeatPicker) (*Engine, error) {
	if picker == nil {
		return nil, fmt.Errorf("%w: seat picker is nil", ErrInvalidConfiguration)
	}

	offset := picker.PickSeat(len(e.players))
	if offset < 0 || offset >= len(e.players) {
		return nil, fmt.Errorf("%w: dealer offset %d out of range", ErrInvalidConfiguration, offset)
	}

	return New(e.Players(), offset)
}

// DealerSeat returns the seat dealing the given 1-based round
func DealerSeat(round, dealerOffset, playerCount int) int {
	seat := (round - 1 + dealerOffset) % playerCount
	if seat < 0 {
		seat += playerCount
	}
	return seat
}

// DealerSeat returns the seat dealing the current round
func (e *Engine) DealerSeat() int {
	return DealerSeat(e.round, e.dealerOffset, len(e.players))
}

// CurrentDealer returns the name of the player dealing the current round
func (e *Engine) CurrentDealer() string {
	return e.players[e.DealerSeat()]
}

// Players returns the player names in seat order
func (e *Engine) Players() []string {
	return append([]string(nil), e.players...)
}

// Scores returns the cumulative scores in seat order
func (e *Engine) Scores() []int {
	return append([]int(nil), e.scores...)
}

// Standings returns every player's seat, score and dealer flag
func (e *Engine) Standings() []*models.Standing {
	dealer := e.DealerSeat()
	standings := make([]*models.Standing, len(e.players))
	for seat, name := range e.players {
		standings[seat] = &models.Standing{
			Seat:       seat,
			PlayerName: name,
			Score:      e.scores[seat],
			IsDealer:   seat == dealer,
		}
	}
	return standings
}

// Log returns a copy of the round log
func (e *Engine) Log() []*models.RoundLogEntry {
	log := make([]*models.RoundLogEntry, len(e.log))
	for i, entry := range e.log {
		copied := *entry
		log[i] = &copied
	}
	return log
}

// Round returns the number of the round that will be recorded next
func (e *Engine) Round() int {
	return e.round
}

// RoundsPlayed returns how many rounds were recorded
func (e *Engine) RoundsPlayed() int {
	return e.round - 1
}

// HasPoints reports whether any player has a non-zero score
func (e *Engine) HasPoints() bool {
	for _, score := range e.scores {
		if score != 0 {
			return true
		}
	}
	return false
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Winner() string {
	return e.winner
}

func (e *Engine) DealerOffset() int {
	return e.dealerOffset
}
