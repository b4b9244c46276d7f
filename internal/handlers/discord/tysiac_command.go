package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/tysiac/internal/engine"
	"github.com/KirkDiggler/tysiac/internal/services/match"
	"github.com/KirkDiggler/tysiac/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const historyLimit = 10

// TysiacCommand handles the /tysiac command
type TysiacCommand struct {
	BaseCommand
	matchService     match.Service
	messagingService messaging.Service
}

// NewTysiacCommand creates a new tysiac command handler, messagingService may be nil
func NewTysiacCommand(matchService match.Service, messagingService messaging.Service) *TysiacCommand {
	matchIDOption := func(required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "Match ID",
			Required:    required,
		}
	}

	return &TysiacCommand{
		BaseCommand: BaseCommand{
			Name:        "tysiac",
			Description: "Tysiąc (1000) scorekeeper",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a match in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "players",
							Description: "Players in seat order, comma separated",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "round",
					Description: "Record a round, e.g. \"120 m40; 60 d150; -37\"",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "scores",
							Description: "One entry per seat separated by ';': points, m40..m100, d<declared>",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "confirm",
							Description: "Record the round even if nobody scored",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the scores of this channel's match",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pause",
					Description: "Pause this channel's match to resume it later",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "resume",
					Description: "Resume a paused match in this channel",
					Options:     []*discordgo.ApplicationCommandOption{matchIDOption(true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "finish",
					Description: "Finish a match now, the leader wins",
					Options:     []*discordgo.ApplicationCommandOption{matchIDOption(false)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abandon",
					Description: "Delete a match that is still in progress",
					Options:     []*discordgo.ApplicationCommandOption{matchIDOption(false)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "paused",
					Description: "List paused matches",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "List finished matches",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "report",
					Description: "Show the scoresheet of a match",
					Options:     []*discordgo.ApplicationCommandOption{matchIDOption(true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the all-time leaderboards",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "players",
					Description: "List known player names",
				},
			},
		},
		matchService:     matchService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the tysiac command
func (c *TysiacCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	channelID := i.ChannelID
	sub := data.Options[0]
	options := optionMap(sub.Options)

	switch sub.Name {
	case "start":
		return c.handleStart(ctx, s, i, channelID, options)
	case "round":
		return c.handleRound(ctx, s, i, channelID, options)
	case "status":
		return c.handleStatus(ctx, s, i, channelID)
	case "pause":
		return c.handlePause(ctx, s, i, channelID)
	case "resume":
		return c.handleResume(ctx, s, i, channelID, stringOption(options, "id"))
	case "finish":
		return c.handleFinish(ctx, s, i, channelID, stringOption(options, "id"))
	case "abandon":
		return c.handleAbandon(ctx, s, i, channelID, stringOption(options, "id"))
	case "paused":
		return c.handlePaused(ctx, s, i)
	case "history":
		return c.handleHistory(ctx, s, i)
	case "report":
		return c.handleReport(ctx, s, i, stringOption(options, "id"))
	case "leaderboard":
		return c.handleLeaderboard(ctx, s, i)
	case "players":
		return c.handlePlayers(ctx, s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleStart handles the start subcommand
func (c *TysiacCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	output, err := c.matchService.StartMatch(ctx, &match.StartMatchInput{
		ChannelID:   channelID,
		PlayerNames: ParsePlayers(stringOption(options, "players")),
	})
	if err != nil {
		return respondServiceError(s, i, "start match", err)
	}

	return respondEmbed(s, i, renderScoreboard("🃏 New match", output.Scoreboard), nil)
}

// handleRound handles the round subcommand
func (c *TysiacCommand) handleRound(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	// The seat count is needed to parse the notation
	status, err := c.matchService.GetStatus(ctx, &match.GetStatusInput{
		ChannelID: channelID,
	})
	if err != nil {
		return respondServiceError(s, i, "get status", err)
	}

	inputs, err := ParseRound(stringOption(options, "scores"), len(status.Scoreboard.Standings))
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	confirm := false
	if option, ok := options["confirm"]; ok {
		confirm = option.BoolValue()
	}

	output, err := c.matchService.SubmitRound(ctx, &match.SubmitRoundInput{
		ChannelID:    channelID,
		Inputs:       inputs,
		ConfirmEmpty: confirm,
	})
	if err != nil {
		return respondServiceError(s, i, "submit round", err)
	}

	embed, components := renderRoundResult(output, c.roundComment(ctx, output))
	return respondEmbed(s, i, embed, components)
}

// roundComment picks a flavor line for the round, empty when none is available
func (c *TysiacCommand) roundComment(ctx context.Context, output *match.SubmitRoundOutput) string {
	if c.messagingService == nil {
		return ""
	}

	standings := output.Scoreboard.Standings
	names := make([]string, len(standings))
	scores := make([]int, len(standings))
	for seat, standing := range standings {
		names[seat] = standing.PlayerName
		scores[seat] = standing.Score
	}

	comment, err := c.messagingService.GetRoundMessage(ctx, &messaging.GetRoundMessageInput{
		PlayerNames: names,
		Deltas:      output.Deltas,
		Scores:      scores,
		Winner:      output.Winner,
	})
	if err != nil {
		log.Printf("Failed to get round message: %v", err)
		return ""
	}
	return comment.Message
}

// handleStatus handles the status subcommand
func (c *TysiacCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.matchService.GetStatus(ctx, &match.GetStatusInput{
		ChannelID: channelID,
	})
	if err != nil {
		return respondServiceError(s, i, "get status", err)
	}

	return respondEmbed(s, i, renderScoreboard("📋 Scores", output.Scoreboard), nil)
}

// handlePause handles the pause subcommand
func (c *TysiacCommand) handlePause(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.matchService.PauseMatch(ctx, &match.PauseMatchInput{
		ChannelID: channelID,
	})
	if err != nil {
		return respondServiceError(s, i, "pause match", err)
	}

	embed := renderScoreboard("⏸️ Match paused", output.Scoreboard)
	embed.Color = colorPaused
	embed.Description += fmt.Sprintf("\nResume with `/tysiac resume id:%s`", output.Scoreboard.Match.ID)
	return respondEmbed(s, i, embed, nil)
}

// handleResume handles the resume subcommand and the resume button
func (c *TysiacCommand) handleResume(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID, matchID string) error {
	output, err := c.matchService.ResumeMatch(ctx, &match.ResumeMatchInput{
		ChannelID: channelID,
		MatchID:   matchID,
	})
	if err != nil {
		return respondServiceError(s, i, "resume match", err)
	}

	return respondEmbed(s, i, renderScoreboard("▶️ Match resumed", output.Scoreboard), nil)
}

// handleFinish handles the finish subcommand
func (c *TysiacCommand) handleFinish(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID, matchID string) error {
	output, err := c.matchService.FinishMatch(ctx, &match.FinishMatchInput{
		ChannelID: channelID,
		MatchID:   matchID,
	})
	if err != nil {
		return respondServiceError(s, i, "finish match", err)
	}

	embed := renderScoreboard(fmt.Sprintf("🏁 %s wins!", output.Winner), output.Scoreboard)
	return respondEmbed(s, i, embed, rematchComponents(output.Scoreboard.Match.ID))
}

// handleAbandon handles the abandon subcommand
func (c *TysiacCommand) handleAbandon(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID, matchID string) error {
	output, err := c.matchService.AbandonMatch(ctx, &match.AbandonMatchInput{
		ChannelID: channelID,
		MatchID:   matchID,
	})
	if err != nil {
		return respondServiceError(s, i, "abandon match", err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Match `%s` abandoned. Start a new one with `/tysiac start`.", output.MatchID))
}

// handlePaused handles the paused subcommand
func (c *TysiacCommand) handlePaused(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.matchService.ListPausedMatches(ctx, &match.ListPausedMatchesInput{})
	if err != nil {
		return respondServiceError(s, i, "list paused matches", err)
	}

	embed, components := renderPausedMatches(output.Matches)
	return respondEmbed(s, i, embed, components)
}

// handleHistory handles the history subcommand
func (c *TysiacCommand) handleHistory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.matchService.GetHistory(ctx, &match.GetHistoryInput{
		Limit: historyLimit,
	})
	if err != nil {
		return respondServiceError(s, i, "get history", err)
	}

	return respondEmbed(s, i, renderHistory(output.Matches), nil)
}

// handleReport handles the report subcommand
func (c *TysiacCommand) handleReport(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, matchID string) error {
	output, err := c.matchService.GetMatchReport(ctx, &match.GetMatchReportInput{
		MatchID: matchID,
	})
	if err != nil {
		return respondServiceError(s, i, "get match report", err)
	}

	return respondEmbed(s, i, renderReport(output.Report), nil)
}

// handleLeaderboard handles the leaderboard subcommand
func (c *TysiacCommand) handleLeaderboard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.matchService.GetLeaderboard(ctx, &match.GetLeaderboardInput{})
	if err != nil {
		return respondServiceError(s, i, "get leaderboard", err)
	}

	return respondEmbed(s, i, renderLeaderboard(output.Leaderboard), nil)
}

// handlePlayers handles the players subcommand
func (c *TysiacCommand) handlePlayers(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.matchService.GetPlayerNames(ctx, &match.GetPlayerNamesInput{})
	if err != nil {
		return respondServiceError(s, i, "get player names", err)
	}

	return RespondWithEphemeralMessage(s, i, renderPlayers(output.Names))
}

// handleRematch starts a rematch from the button under a finished match
func (c *TysiacCommand) handleRematch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID, matchID string) error {
	output, err := c.matchService.Rematch(ctx, &match.RematchInput{
		ChannelID: channelID,
		MatchID:   matchID,
	})
	if err != nil {
		return respondServiceError(s, i, "start rematch", err)
	}

	return respondEmbed(s, i, renderScoreboard("🔁 Rematch", output.Scoreboard), nil)
}

// respondServiceError logs a service error and tells the user what went wrong
func respondServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) error {
	log.Printf("Error trying to %s: %v", action, err)
	return RespondWithError(s, i, userMessage(err))
}

// userMessage turns service errors into text for players
func userMessage(err error) string {
	switch {
	case errors.Is(err, match.ErrNoActiveMatch):
		return "No match in progress here. Use `/tysiac start` or `/tysiac resume`."
	case errors.Is(err, match.ErrMatchAlreadyActive):
		return "A match is already in progress here. Finish, pause or abandon it first."
	case errors.Is(err, match.ErrEmptyRound):
		return "Nobody scored this round. Repeat the command with `confirm:True` to record it anyway."
	case errors.Is(err, match.ErrNothingToPause):
		return "Nobody has points yet, there is nothing to pause. Use `/tysiac abandon` instead."
	case errors.Is(err, match.ErrMatchNotFound):
		return "No match with that ID."
	case errors.Is(err, match.ErrMatchNotInProgress):
		return "That match is already finished."
	case errors.Is(err, match.ErrMatchNotFinished):
		return "That match is not finished yet."
	case errors.Is(err, engine.ErrNothingToFinish):
		return "Nobody has points yet, there is nothing to finish. Use `/tysiac abandon` to discard the match."
	case errors.Is(err, engine.ErrCorruptLog):
		return "The stored rounds of this match are damaged and it cannot be played on. Use `/tysiac abandon` to discard it."
	case errors.Is(err, match.ErrTooManyPlayers),
		errors.Is(err, engine.ErrInvalidConfiguration),
		errors.Is(err, engine.ErrValidationViolation):
		return err.Error()
	default:
		return "Something went wrong, please try again."
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, option := range options {
		byName[option.Name] = option
	}
	return byName
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if option, ok := options[name]; ok {
		return option.StringValue()
	}
	return ""
}
