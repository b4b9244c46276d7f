package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	ToneNeutral     MessageTone = "neutral"
	ToneFunny       MessageTone = "funny"
	ToneSarcastic   MessageTone = "sarcastic"
	ToneEncouraging MessageTone = "encouraging"
	ToneCelebration MessageTone = "celebration"
)

// RoundEvent is the most notable thing that happened in a round
type RoundEvent string

const (
	// RoundEventWin means the round finished the match
	RoundEventWin RoundEvent = "win"

	// RoundEventCrossedLine means a player reached the 800 point mark
	RoundEventCrossedLine RoundEvent = "crossed_line"

	// RoundEventBigLoss means a player lost at least 100 points, usually a failed declaration
	RoundEventBigLoss RoundEvent = "big_loss"

	// RoundEventQuiet means nobody scored anything
	RoundEventQuiet RoundEvent = "quiet"

	// RoundEventPlain is everything else
	RoundEventPlain RoundEvent = "plain"
)

// ServiceConfig holds the configuration for the messaging service
type ServiceConfig struct {
	// Seed for the message picker, zero seeds from the current time
	Seed int64
}

// GetRoundMessageInput describes a recorded round, indexed by seat
type GetRoundMessageInput struct {
	PlayerNames []string

	// Deltas are the score changes of the round
	Deltas []int

	// Scores are the totals after the round
	Scores []int

	// Winner is set when the round finished the match
	Winner string
}

// GetRoundMessageOutput contains the picked message
type GetRoundMessageOutput struct {
	Event   RoundEvent
	Tone    MessageTone
	Message string
}
