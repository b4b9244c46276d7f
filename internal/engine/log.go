package engine

import (
	"github.com/KirkDiggler/tysiac/internal/models"
)

// PlayersFromLog returns the distinct player names in order of first appearance
func PlayersFromLog(log []*models.RoundLogEntry) []string {
	seen := make(map[string]bool)
	var names []string
	for _, entry := range log {
		if seen[entry.PlayerName] {
			continue
		}
		seen[entry.PlayerName] = true
		names = append(names, entry.PlayerName)
	}
	return names
}

// Totals sums the score deltas of the log per player
func Totals(log []*models.RoundLogEntry) map[string]int {
	totals := make(map[string]int)
	for _, entry := range log {
		totals[entry.PlayerName] += entry.ScoreDelta
	}
	return totals
}

// MeldTallies counts the melds each player announced, in order of first appearance
func MeldTallies(log []*models.RoundLogEntry) []*models.MeldTally {
	byName := make(map[string]*models.MeldTally)
	var tallies []*models.MeldTally
	for _, entry := range log {
		tally, ok := byName[entry.PlayerName]
		if !ok {
			tally = &models.MeldTally{PlayerName: entry.PlayerName}
			byName[entry.PlayerName] = tally
			tallies = append(tallies, tally)
		}
		tally.Total += entry.Melds.Count()
		if entry.Melds.Hundred {
			tally.Hundreds++
		}
	}
	return tallies
}

// ScoreGrid lays the log out as one row per round with columns in the given seat order.
// Missing entries read as zero.
func ScoreGrid(log []*models.RoundLogEntry, players []string) [][]int {
	seats := make(map[string]int, len(players))
	for i, name := range players {
		seats[name] = i
	}

	var grid [][]int
	for _, entry := range log {
		for len(grid) < entry.Round {
			grid = append(grid, make([]int, len(players)))
		}
		seat, ok := seats[entry.PlayerName]
		if !ok || entry.Round < 1 {
			continue
		}
		grid[entry.Round-1][seat] = entry.ScoreDelta
	}
	return grid
}

// leader returns the seat with the highest score, earliest seat on ties
func leader(scores []int) int {
	best := 0
	for seat := 1; seat < len(scores); seat++ {
		if scores[seat] > scores[best] {
			best = seat
		}
	}
	return best
}
