package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/tysiac/internal/models"
	"github.com/KirkDiggler/tysiac/internal/scoring"
)

// ErrInvalidNotation is returned when a round or player list cannot be parsed
var ErrInvalidNotation = errors.New("invalid notation")

// ParsePlayers splits a comma separated list of names, dropping empty entries
func ParsePlayers(text string) []string {
	var names []string
	for _, part := range strings.Split(text, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ParseRound parses one round written as seats separated by ';', in seat order.
// A seat holds at most one signed number of card points, meld tokens
// (m40, m60, m80, m100 or +40, +60, +80, +100) and at most one declaration
// d<N>. An empty seat scored nothing. A trailing ';' closes the last seat
// unless it is needed to leave the last seat empty.
// Example: "120 m40; 60 d150; -37".
func ParseRound(text string, seats int) ([]scoring.RoundInput, error) {
	parts := strings.Split(strings.TrimSpace(text), ";")
	if len(parts) == seats+1 && strings.TrimSpace(parts[seats]) == "" {
		parts = parts[:seats]
	}
	if len(parts) != seats {
		return nil, fmt.Errorf("%w: got %d seats, expected %d", ErrInvalidNotation, len(parts), seats)
	}

	inputs := make([]scoring.RoundInput, seats)
	for seat, part := range parts {
		in, err := parseSeat(part)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat+1, err)
		}
		inputs[seat] = in
	}

	return inputs, nil
}

func parseSeat(text string) (scoring.RoundInput, error) {
	var in scoring.RoundInput
	hasPoints := false

	for _, token := range strings.Fields(strings.ToLower(text)) {
		if meld, ok := parseMeld(token); ok {
			if in.Melds.Has(meld) {
				return in, fmt.Errorf("%w: meld %d given twice", ErrInvalidNotation, meld)
			}
			in.Melds = in.Melds.With(meld)
			continue
		}

		if strings.HasPrefix(token, "d") {
			if in.Declaring {
				return in, fmt.Errorf("%w: more than one declaration", ErrInvalidNotation)
			}
			declared, err := strconv.Atoi(token[1:])
			if err != nil || declared < 0 {
				return in, fmt.Errorf("%w: bad declaration %q", ErrInvalidNotation, token)
			}
			in.Declaring = true
			in.DeclaredPoints = declared
			continue
		}

		points, err := strconv.Atoi(token)
		if err != nil {
			return in, fmt.Errorf("%w: unknown token %q", ErrInvalidNotation, token)
		}
		if hasPoints {
			return in, fmt.Errorf("%w: more than one card point value", ErrInvalidNotation)
		}
		in.CardPoints = points
		hasPoints = true
	}

	return in, nil
}

func parseMeld(token string) (models.Meld, bool) {
	var value string
	switch {
	case strings.HasPrefix(token, "m"):
		value = token[1:]
	case strings.HasPrefix(token, "+"):
		value = token[1:]
	default:
		return 0, false
	}

	for _, meld := range models.AllMelds {
		if value == strconv.Itoa(int(meld)) {
			return meld, true
		}
	}
	return 0, false
}
