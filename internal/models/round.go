package models

// Meld is a marriage (king and queen of one suit) named by the points it is worth
type Meld int

const (
	Meld40  Meld = 40  // spades
	Meld60  Meld = 60  // clubs
	Meld80  Meld = 80  // diamonds
	Meld100 Meld = 100 // hearts
)

// AllMelds lists every meld from the lowest value to the highest
var AllMelds = []Meld{Meld40, Meld60, Meld80, Meld100}

// Melds holds which marriages a player announced in a round
type Melds struct {
	Forty   bool `json:"meld_40"`
	Sixty   bool `json:"meld_60"`
	Eighty  bool `json:"meld_80"`
	Hundred bool `json:"meld_100"`
}

// Has reports whether the given meld is set
func (m Melds) Has(meld Meld) bool {
	switch meld {
	case Meld40:
		return m.Forty
	case Meld60:
		return m.Sixty
	case Meld80:
		return m.Eighty
	case Meld100:
		return m.Hundred
	default:
		return false
	}
}

// With returns a copy of m with the given meld set
func (m Melds) With(meld Meld) Melds {
	switch meld {
	case Meld40:
		m.Forty = true
	case Meld60:
		m.Sixty = true
	case Meld80:
		m.Eighty = true
	case Meld100:
		m.Hundred = true
	}
	return m
}

// Points returns the sum of the values of all set melds
func (m Melds) Points() int {
	total := 0
	for _, meld := range AllMelds {
		if m.Has(meld) {
			total += int(meld)
		}
	}
	return total
}

// Count returns how many melds are set
func (m Melds) Count() int {
	count := 0
	for _, meld := range AllMelds {
		if m.Has(meld) {
			count++
		}
	}
	return count
}

// RoundLogEntry is the immutable record of one player's result in one round
type RoundLogEntry struct {
	// Round is the 1-based round number
	Round int `json:"round_number"`

	// PlayerName is the player the entry belongs to
	PlayerName string `json:"player_name"`

	// ScoreDelta is the resolved change to the player's score
	ScoreDelta int `json:"score_delta"`

	// Melds are the marriages applied in this round
	Melds Melds `json:"melds"`

	// IsDeclaration indicates the player played under a declaration
	IsDeclaration bool `json:"is_declaration"`

	// DeclaredPoints is the declared value, meaningful only with IsDeclaration
	DeclaredPoints int `json:"declared_points"`
}
