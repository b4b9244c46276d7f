package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/tysiac/internal/models"
)

// bigLoss is the drop at which a round counts as painful
const bigLoss = -100

var (
	ErrNilConfig    = errors.New("messaging: config is nil")
	ErrInvalidRound = errors.New("messaging: round inputs differ in length")
)

// Templates take the featured player's name, except the quiet ones
var roundMessages = map[RoundEvent][]string{
	RoundEventWin: {
		"%s takes it all. Shuffle up for the rematch?",
		"A thousand points for %s. Somebody buy them a drink.",
		"%s crosses the finish line. The rest of you can blame the cards.",
		"Game over, %s wins. Nobody saw that coming. Except %[1]s.",
	},
	RoundEventCrossedLine: {
		"%s is under the line. Every point counts now.",
		"Watch out, %s just crossed 800.",
		"%s can smell the thousand from here.",
	},
	RoundEventBigLoss: {
		"Ouch. %s promised more than the cards could deliver.",
		"%s bid big and paid for it.",
		"That declaration did not survive contact with %s's hand.",
		"%s is going to remember this round.",
	},
	RoundEventQuiet: {
		"A whole round and nobody scored. Impressive.",
		"Zeros across the board. Did anyone look at their cards?",
	},
	RoundEventPlain: {
		"%s had the best of that one.",
		"Nice round, %s.",
		"%s moves ahead of the pack this round.",
	},
}

var roundTones = map[RoundEvent]MessageTone{
	RoundEventWin:         ToneCelebration,
	RoundEventCrossedLine: ToneEncouraging,
	RoundEventBigLoss:     ToneFunny,
	RoundEventQuiet:       ToneSarcastic,
	RoundEventPlain:       ToneNeutral,
}

type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, ErrNilConfig
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetRoundMessage classifies the round and picks a message for it
func (s *service) GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error) {
	if input == nil {
		return nil, ErrInvalidRound
	}
	if len(input.Deltas) != len(input.PlayerNames) || len(input.Scores) != len(input.PlayerNames) {
		return nil, ErrInvalidRound
	}

	event, player := classifyRound(input)

	message := s.pick(roundMessages[event])
	if event != RoundEventQuiet {
		message = fmt.Sprintf(message, player)
	}

	return &GetRoundMessageOutput{
		Event:   event,
		Tone:    roundTones[event],
		Message: message,
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// classifyRound returns the event and the player it features. Events are
// checked in order: win, crossing the line, a big loss, a quiet round.
func classifyRound(input *GetRoundMessageInput) (RoundEvent, string) {
	if input.Winner != "" {
		return RoundEventWin, input.Winner
	}

	for seat, score := range input.Scores {
		before := score - input.Deltas[seat]
		if before < models.UnderTheLineScore && score >= models.UnderTheLineScore {
			return RoundEventCrossedLine, input.PlayerNames[seat]
		}
	}

	worst, best := 0, 0
	for seat, delta := range input.Deltas {
		if delta < input.Deltas[worst] {
			worst = seat
		}
		if delta > input.Deltas[best] {
			best = seat
		}
	}

	if len(input.Deltas) > 0 && input.Deltas[worst] <= bigLoss {
		return RoundEventBigLoss, input.PlayerNames[worst]
	}
	if len(input.Deltas) == 0 || (input.Deltas[best] == 0 && input.Deltas[worst] == 0) {
		return RoundEventQuiet, ""
	}
	return RoundEventPlain, input.PlayerNames[best]
}
