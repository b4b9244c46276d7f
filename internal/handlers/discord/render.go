package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/tysiac/internal/engine"
	"github.com/KirkDiggler/tysiac/internal/models"
	"github.com/KirkDiggler/tysiac/internal/services/match"
	"github.com/bwmarrin/discordgo"
)

const (
	colorInfo     = 0x00ff00
	colorFinished = 0xffd700
	colorPaused   = 0x808080

	// maxDescription stays under Discord's 4096 character embed limit
	maxDescription = 3900

	// maxButtons is the number of buttons Discord fits in one action row
	maxButtons = 5
)

// Component custom ID prefixes, the match ID follows the colon
const (
	ButtonRematchPrefix = "rematch"
	ButtonResumePrefix  = "resume"
)

// componentID builds a custom ID such as "rematch:<match id>"
func componentID(action, matchID string) string {
	return action + ":" + matchID
}

// parseComponentID splits a custom ID into its action and match ID
func parseComponentID(customID string) (string, string, bool) {
	action, matchID, ok := strings.Cut(customID, ":")
	if !ok || matchID == "" {
		return "", "", false
	}
	return action, matchID, true
}

// renderStandings writes one line per seat, marking the dealer and players under the line
func renderStandings(standings []*models.Standing) string {
	var sb strings.Builder
	for _, standing := range standings {
		marker := "▫️"
		if standing.IsDealer {
			marker = "🃏"
		}
		sb.WriteString(fmt.Sprintf("%s **%s**: %d", marker, standing.PlayerName, standing.Score))
		if standing.UnderTheLine() {
			sb.WriteString(" ⚠️ under the line")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderScoreboard renders the state of a match between rounds
func renderScoreboard(title string, board *match.Scoreboard) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: renderStandings(board.Standings),
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Match " + board.Match.ID,
		},
	}

	if board.Match.IsFinished() {
		embed.Color = colorFinished
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Winner",
			Value:  "🏆 " + board.Match.Winner,
			Inline: true,
		})
		return embed
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:   "Next round",
			Value:  fmt.Sprintf("%d", board.Round),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   "Dealer",
			Value:  board.Dealer,
			Inline: true,
		},
	)
	return embed
}

// renderRoundResult renders a recorded round with its per-seat deltas and an
// optional comment above the standings
func renderRoundResult(output *match.SubmitRoundOutput, comment string) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	title := fmt.Sprintf("Round %d recorded", output.Round)
	if output.Outcome == engine.OutcomeFinished {
		title = fmt.Sprintf("🏆 %s wins!", output.Winner)
	}

	embed := renderScoreboard(title, output.Scoreboard)
	if comment != "" {
		embed.Description = "*" + comment + "*\n\n" + embed.Description
	}

	var deltas strings.Builder
	for seat, delta := range output.Deltas {
		if seat < len(output.Scoreboard.Standings) {
			deltas.WriteString(fmt.Sprintf("%s %+d\n", output.Scoreboard.Standings[seat].PlayerName, delta))
		}
	}
	embed.Fields = append([]*discordgo.MessageEmbedField{{
		Name:  fmt.Sprintf("Round %d", output.Round),
		Value: deltas.String(),
	}}, embed.Fields...)

	if output.Outcome != engine.OutcomeFinished {
		return embed, nil
	}
	return embed, rematchComponents(output.Scoreboard.Match.ID)
}

// rematchComponents renders the button that starts a rematch of a finished match
func rematchComponents(matchID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Rematch",
					Style:    discordgo.PrimaryButton,
					CustomID: componentID(ButtonRematchPrefix, matchID),
					Emoji: &discordgo.ComponentEmoji{
						Name: "🔁",
					},
				},
			},
		},
	}
}

// renderPausedMatches lists paused matches with a resume button for the first few
func renderPausedMatches(summaries []*models.PausedMatchSummary) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: "⏸️ Paused matches",
		Color: colorPaused,
	}

	if len(summaries) == 0 {
		embed.Description = "No paused matches."
		return embed, nil
	}

	var buttons []discordgo.MessageComponent
	for _, summary := range summaries {
		if len(embed.Fields) == 25 {
			break
		}

		scores := make([]string, len(summary.Scores))
		for seat, standing := range summary.Scores {
			scores[seat] = fmt.Sprintf("%s %d", standing.PlayerName, standing.Score)
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s (%d rounds, %s)", summary.MatchID, summary.Rounds,
				summary.UpdatedAt.Format(time.DateTime)),
			Value: strings.Join(scores, " · "),
		})

		if len(buttons) < maxButtons {
			buttons = append(buttons, discordgo.Button{
				Label:    fmt.Sprintf("Resume %d", len(buttons)+1),
				Style:    discordgo.SecondaryButton,
				CustomID: componentID(ButtonResumePrefix, summary.MatchID),
			})
		}
	}

	return embed, []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// renderHistory lists finished matches, newest first
func renderHistory(matches []*models.Match) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📜 Finished matches",
		Color: colorFinished,
	}

	if len(matches) == 0 {
		embed.Description = "No finished matches yet."
		return embed
	}

	var sb strings.Builder
	for _, m := range matches {
		line := fmt.Sprintf("`%s` %s 🏆 **%s** (%s)\n", m.ID, m.UpdatedAt.Format(time.DateOnly),
			m.Winner, strings.Join(m.PlayerNames, ", "))
		if sb.Len()+len(line) > maxDescription {
			break
		}
		sb.WriteString(line)
	}
	embed.Description = sb.String()
	return embed
}

// renderReport renders the scoresheet as a monospaced table, dropping the
// oldest rounds when it does not fit
func renderReport(report *models.MatchReport) *discordgo.MessageEmbed {
	players := report.Match.PlayerNames

	header := fmt.Sprintf("%4s", "#")
	for _, name := range players {
		header += fmt.Sprintf(" %8s", truncate(name, 8))
	}

	rows := make([]string, len(report.Rounds))
	for i, deltas := range report.Rounds {
		row := fmt.Sprintf("%4d", i+1)
		for _, delta := range deltas {
			row += fmt.Sprintf(" %8d", delta)
		}
		rows[i] = row
	}

	footer := fmt.Sprintf("%4s", "Σ")
	for _, total := range report.Totals {
		footer += fmt.Sprintf(" %8d", total.Score)
	}

	// Leave room for the code fence, header, footer and an ellipsis row
	budget := maxDescription - len(header) - len(footer) - 32
	start := len(rows)
	used := 0
	for start > 0 && used+len(rows[start-1])+1 <= budget {
		start--
		used += len(rows[start]) + 1
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	sb.WriteString(header + "\n")
	if start > 0 {
		sb.WriteString(fmt.Sprintf("%4s\n", "…"))
	}
	for _, row := range rows[start:] {
		sb.WriteString(row + "\n")
	}
	sb.WriteString(footer + "\n")
	sb.WriteString("```")

	embed := &discordgo.MessageEmbed{
		Title:       "🧾 Match report",
		Description: sb.String(),
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Match " + report.Match.ID,
		},
	}

	if report.Match.IsFinished() {
		embed.Color = colorFinished
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Winner",
			Value: "🏆 " + report.Match.Winner,
		})
	}

	return embed
}

// renderLeaderboard renders the three all-time leaderboards side by side
func renderLeaderboard(board *models.Leaderboard) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🏆 Leaderboard",
		Color: colorFinished,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wins", Value: renderStats(board.Wins), Inline: true},
			{Name: "Melds", Value: renderStats(board.Melds), Inline: true},
			{Name: "Hundreds", Value: renderStats(board.Hundreds), Inline: true},
		},
	}
}

func renderStats(stats []*models.PlayerStat) string {
	if len(stats) == 0 {
		return "-"
	}

	rankEmojis := []string{"🥇", "🥈", "🥉"}
	var sb strings.Builder
	for i, stat := range stats {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(rankEmojis) {
			rank = rankEmojis[i]
		}
		sb.WriteString(fmt.Sprintf("%s %s: %d\n", rank, stat.PlayerName, stat.Value))
	}
	return sb.String()
}

// renderPlayers lists the known player names
func renderPlayers(names []string) string {
	if len(names) == 0 {
		return "No players yet."
	}
	return "Known players: " + strings.Join(names, ", ")
}

func truncate(text string, length int) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return string(runes[:length])
}
