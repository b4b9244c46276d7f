package engine

import (
	"fmt"

	"github.com/KirkDiggler/tysiac/internal/models"
	"github.com/KirkDiggler/tysiac/internal/scoring"
)

// ValidateMelds checks that no meld value is claimed by more than one input.
// The returned error names the meld and the first two seats that claimed it.
func ValidateMelds(inputs []scoring.RoundInput) error {
	for _, meld := range models.AllMelds {
		holder := -1
		for seat, in := range inputs {
			if !in.Melds.Has(meld) {
				continue
			}
			if holder >= 0 {
				return fmt.Errorf("%w: meld %d claimed by seats %d and %d",
					ErrValidationViolation, meld, holder, seat)
			}
			holder = seat
		}
	}
	return nil
}

// ValidateDeclarations checks that at most one input plays under a declaration
// and that declared values are not negative.
func ValidateDeclarations(inputs []scoring.RoundInput) error {
	declarer := -1
	for seat, in := range inputs {
		if !in.Declaring {
			continue
		}
		if in.DeclaredPoints < 0 {
			return fmt.Errorf("%w: seat %d declared %d points",
				ErrValidationViolation, seat, in.DeclaredPoints)
		}
		if declarer >= 0 {
			return fmt.Errorf("%w: seats %d and %d both declared",
				ErrValidationViolation, declarer, seat)
		}
		declarer = seat
	}
	return nil
}

// ValidateRound runs every check a presentation layer should run before submitting
func ValidateRound(inputs []scoring.RoundInput) error {
	if err := ValidateMelds(inputs); err != nil {
		return err
	}
	return ValidateDeclarations(inputs)
}

// IsEmptyRound reports whether nobody scored, melded or declared.
// Such a round is legal but callers should confirm it first.
func IsEmptyRound(inputs []scoring.RoundInput) bool {
	for _, in := range inputs {
		if !in.IsEmpty() {
			return false
		}
	}
	return true
}
