package models

// UnderTheLineScore is the total from which a player is close enough to win to be marked
const UnderTheLineScore = 800

// WinningScore is the total a player must reach to win a match
const WinningScore = 1000

// Standing is a player's position in a match
type Standing struct {
	// Seat is the 0-based seat index of the player
	Seat int

	// PlayerName is the name of the player
	PlayerName string

	// Score is the cumulative score of the player
	Score int

	// IsDealer indicates the player deals the current round
	IsDealer bool
}

// UnderTheLine reports whether the player is at or above the 800 point mark
func (s *Standing) UnderTheLine() bool {
	return s.Score >= UnderTheLineScore
}

// Board identifies one of the all-time leaderboards
type Board string

const (
	// BoardWins ranks players by matches won
	BoardWins Board = "wins"

	// BoardMelds ranks players by total melds announced
	BoardMelds Board = "melds"

	// BoardHundreds ranks players by 100 melds announced
	BoardHundreds Board = "hundreds"
)

// PlayerStat is one row of a leaderboard
type PlayerStat struct {
	// PlayerName is the name of the player
	PlayerName string

	// Value is the counter the board is ranked by
	Value int
}

// Leaderboard holds the all-time standings
type Leaderboard struct {
	Wins     []*PlayerStat
	Melds    []*PlayerStat
	Hundreds []*PlayerStat
}

// MeldTally counts the melds a player announced in one match
type MeldTally struct {
	// PlayerName is the name of the player
	PlayerName string

	// Total is the number of melds of any value
	Total int

	// Hundreds is the number of 100 melds
	Hundreds int
}
