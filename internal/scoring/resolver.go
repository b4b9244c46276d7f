// Package scoring turns one player's raw round inputs into a score delta.
package scoring

import (
	"math"

	"github.com/KirkDiggler/tysiac/internal/models"
)

// RoundInput is what a single player brings to one round
type RoundInput struct {
	// CardPoints are the points taken in tricks, any sign
	CardPoints int

	// Melds are the marriages the player announced
	Melds models.Melds

	// Declaring indicates the player plays under a declaration
	Declaring bool

	// DeclaredPoints is the declared value, used only when Declaring is set
	DeclaredPoints int
}

// IsEmpty reports whether the input carries no points, melds or declaration
func (in RoundInput) IsEmpty() bool {
	return in.CardPoints == 0 && in.Melds.Count() == 0 && !in.Declaring
}

// Resolve returns the score delta for one player's round.
// It depends on nothing but its input.
func Resolve(in RoundInput) int {
	meldPoints := in.Melds.Points()

	if !in.Declaring {
		cardPoints := RoundCardPoints(in.CardPoints)
		if cardPoints > math.MaxInt-meldPoints {
			return math.MaxInt
		}
		return cardPoints + meldPoints
	}

	// Under a declaration only the declared value counts, won or lost.
	// DeclaredPoints is non-negative here.
	if in.CardPoints >= in.DeclaredPoints-meldPoints {
		return in.DeclaredPoints
	}
	return -in.DeclaredPoints
}

// RoundCardPoints rounds non-negative card points to the nearest ten, halves up.
// Negative points pass through unchanged. Values too close to math.MaxInt to
// round up are rounded down.
func RoundCardPoints(points int) int {
	if points < 0 {
		return points
	}
	if points > math.MaxInt-5 {
		return points - points%10
	}
	return (points + 5) / 10 * 10
}
