package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/tysiac/internal/common/uuid"
	"github.com/KirkDiggler/tysiac/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	roundsKeyPrefix  = "match_rounds:"
	channelKeyPrefix = "channel_match:"
	statusKeyPrefix  = "matches:"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator assigns IDs to new matches
	UUIDGenerator uuid.Generator
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	uuid   uuid.Generator
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		uuid:   cfg.UUIDGenerator,
	}, nil
}

func matchKey(matchID string) string {
	return matchKeyPrefix + matchID
}

func roundsKey(matchID string) string {
	return roundsKeyPrefix + matchID
}

func channelKey(channelID string) string {
	return channelKeyPrefix + channelID
}

func statusKey(status models.MatchStatus) string {
	return statusKeyPrefix + string(status)
}

// SaveMatch writes the match hash and overwrites its round log in one transaction
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) (*SaveMatchOutput, error) {
	if input == nil || input.Match == nil {
		return nil, errors.New("input and match cannot be nil")
	}

	m := input.Match
	if m.Status != models.MatchStatusInProgress && m.Status != models.MatchStatusFinished {
		return nil, fmt.Errorf("invalid match status %q", m.Status)
	}

	if m.ID == "" {
		m.ID = r.uuid.NewID()
	}

	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = time.Now().UTC()
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = m.UpdatedAt
	}

	fields, err := matchToHash(m)
	if err != nil {
		return nil, err
	}

	entries := make([]interface{}, 0, len(input.Log))
	for _, entry := range input.Log {
		entryJSON, err := json.Marshal(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal round entry: %w", err)
		}
		entries = append(entries, entryJSON)
	}

	// A finished match gives its channel back, but only if nothing else took it
	releaseChannel := false
	if m.Status == models.MatchStatusFinished && m.ChannelID != "" {
		boundID, err := r.client.Get(ctx, channelKey(m.ChannelID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("failed to get channel match: %w", err)
		}
		releaseChannel = boundID == m.ID
	}

	pipe := r.client.TxPipeline()

	pipe.HSet(ctx, matchKey(m.ID), fields)

	// The log is always replaced as a whole
	pipe.Del(ctx, roundsKey(m.ID))
	if len(entries) > 0 {
		pipe.RPush(ctx, roundsKey(m.ID), entries...)
	}

	score := float64(m.UpdatedAt.UnixNano())
	for _, status := range []models.MatchStatus{models.MatchStatusInProgress, models.MatchStatusFinished} {
		if status == m.Status {
			pipe.ZAdd(ctx, statusKey(status), redis.Z{Score: score, Member: m.ID})
		} else {
			pipe.ZRem(ctx, statusKey(status), m.ID)
		}
	}

	if m.Status == models.MatchStatusInProgress && m.ChannelID != "" {
		pipe.Set(ctx, channelKey(m.ChannelID), m.ID, 0)
	}

	if releaseChannel {
		pipe.Del(ctx, channelKey(m.ChannelID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	return &SaveMatchOutput{
		MatchID: m.ID,
	}, nil
}

// GetMatch retrieves a match and its round log
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	matchCmd := pipe.HGetAll(ctx, matchKey(input.MatchID))
	roundsCmd := pipe.LRange(ctx, roundsKey(input.MatchID), 0, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	fields := matchCmd.Val()
	if len(fields) == 0 {
		return nil, ErrMatchNotFound
	}

	m, err := matchFromHash(fields)
	if err != nil {
		return nil, err
	}

	rows := roundsCmd.Val()
	log := make([]*models.RoundLogEntry, 0, len(rows))
	for i, row := range rows {
		var entry models.RoundLogEntry
		if err := json.Unmarshal([]byte(row), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round entry %d of match %s: %w", i, m.ID, err)
		}
		log = append(log, &entry)
	}

	return &GetMatchOutput{
		Match: m,
		Log:   log,
	}, nil
}

// GetMatchByChannel retrieves the match bound to a channel
func (r *redisRepository) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	matchID, err := r.client.Get(ctx, channelKey(input.ChannelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match ID for channel: %w", err)
	}

	return r.GetMatch(ctx, &GetMatchInput{
		MatchID: matchID,
	})
}

// ReleaseChannel removes the channel binding
func (r *redisRepository) ReleaseChannel(ctx context.Context, input *ReleaseChannelInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	key := channelKey(input.ChannelID)
	if input.MatchID != "" {
		boundID, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return fmt.Errorf("failed to get channel match: %w", err)
		}
		if boundID != input.MatchID {
			return nil
		}
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release channel: %w", err)
	}

	return nil
}

// DeleteMatch removes a match, its log and every index entry pointing at it
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, matchKey(input.MatchID)).Result()
	if err != nil {
		return fmt.Errorf("failed to get match: %w", err)
	}
	if len(fields) == 0 {
		return ErrMatchNotFound
	}

	channelID := fields["channel_id"]
	releaseChannel := false
	if channelID != "" {
		boundID, err := r.client.Get(ctx, channelKey(channelID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get channel match: %w", err)
		}
		releaseChannel = boundID == input.MatchID
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, matchKey(input.MatchID), roundsKey(input.MatchID))
	pipe.ZRem(ctx, statusKey(models.MatchStatusInProgress), input.MatchID)
	pipe.ZRem(ctx, statusKey(models.MatchStatusFinished), input.MatchID)
	if releaseChannel {
		pipe.Del(ctx, channelKey(channelID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}

// ListMatches retrieves matches by status, newest first. Round logs are not loaded.
func (r *redisRepository) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	if input == nil || input.Status == "" {
		return nil, errors.New("input and status cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	matchIDs, err := r.client.ZRevRange(ctx, statusKey(input.Status), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return &ListMatchesOutput{
			Matches: []*models.Match{},
		}, nil
	}

	// Get all matches in one round trip
	pipe := r.client.Pipeline()
	matchCommands := make([]*redis.MapStringStringCmd, len(matchIDs))
	for i, matchID := range matchIDs {
		matchCommands[i] = pipe.HGetAll(ctx, matchKey(matchID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for i, cmd := range matchCommands {
		fields := cmd.Val()
		if len(fields) == 0 {
			// Match was deleted between reading the index and fetching it
			continue
		}

		m, err := matchFromHash(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to read match %s: %w", matchIDs[i], err)
		}
		matches = append(matches, m)
	}

	return &ListMatchesOutput{
		Matches: matches,
	}, nil
}

func matchToHash(m *models.Match) (map[string]interface{}, error) {
	playersJSON, err := json.Marshal(m.PlayerNames)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal players: %w", err)
	}

	return map[string]interface{}{
		"id":            m.ID,
		"channel_id":    m.ChannelID,
		"status":        string(m.Status),
		"winner":        m.Winner,
		"dealer_offset": m.DealerOffset,
		"players":       string(playersJSON),
		"created_at":    m.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":    m.UpdatedAt.Format(time.RFC3339Nano),
	}, nil
}

func matchFromHash(fields map[string]string) (*models.Match, error) {
	dealerOffset, err := strconv.Atoi(fields["dealer_offset"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse dealer offset: %w", err)
	}

	var players []string
	if err := json.Unmarshal([]byte(fields["players"]), &players); err != nil {
		return nil, fmt.Errorf("failed to unmarshal players: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, fields["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &models.Match{
		ID:           fields["id"],
		ChannelID:    fields["channel_id"],
		Status:       models.MatchStatus(fields["status"]),
		Winner:       fields["winner"],
		DealerOffset: dealerOffset,
		PlayerNames:  players,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
