package player

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/tysiac/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playersKey           = "players"
	leaderboardKeyPrefix = "leaderboard:"
	matchMeldsKeyPrefix  = "match_melds:"
)

// ErrUnknownBoard is returned for a leaderboard that does not exist
var ErrUnknownBoard = errors.New("unknown leaderboard")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func boardKey(board models.Board) string {
	return leaderboardKeyPrefix + string(board)
}

func matchTotalKey(matchID string) string {
	return matchMeldsKeyPrefix + matchID + ":total"
}

func matchHundredsKey(matchID string) string {
	return matchMeldsKeyPrefix + matchID + ":hundreds"
}

func validBoard(board models.Board) bool {
	switch board {
	case models.BoardWins, models.BoardMelds, models.BoardHundreds:
		return true
	default:
		return false
	}
}

// AddPlayerNames adds names to the set of known players
func (r *redisRepository) AddPlayerNames(ctx context.Context, input *AddPlayerNamesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if len(input.Names) == 0 {
		return nil
	}

	members := make([]interface{}, len(input.Names))
	for i, name := range input.Names {
		members[i] = name
	}

	if err := r.client.SAdd(ctx, playersKey, members...).Err(); err != nil {
		return fmt.Errorf("failed to add player names: %w", err)
	}

	return nil
}

// GetPlayerNames returns every known player name in alphabetical order
func (r *redisRepository) GetPlayerNames(ctx context.Context, input *GetPlayerNamesInput) (*GetPlayerNamesOutput, error) {
	names, err := r.client.SMembers(ctx, playersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player names: %w", err)
	}

	sort.Strings(names)

	return &GetPlayerNamesOutput{
		Names: names,
	}, nil
}

// SetMatchTallies applies the difference between the stored and the new
// tallies of a match to the meld leaderboards in one transaction
func (r *redisRepository) SetMatchTallies(ctx context.Context, input *SetMatchTalliesInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	totals := make(map[string]int, len(input.Tallies))
	hundreds := make(map[string]int, len(input.Tallies))
	for _, tally := range input.Tallies {
		totals[tally.PlayerName] += tally.Total
		hundreds[tally.PlayerName] += tally.Hundreds
	}

	return r.replaceTallies(ctx, input.MatchID, totals, hundreds)
}

// DeleteMatchTallies subtracts a match's stored tallies from the meld leaderboards
func (r *redisRepository) DeleteMatchTallies(ctx context.Context, input *DeleteMatchTalliesInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	return r.replaceTallies(ctx, input.MatchID, nil, nil)
}

func (r *redisRepository) replaceTallies(ctx context.Context, matchID string, totals, hundreds map[string]int) error {
	pipe := r.client.Pipeline()
	oldTotalsCmd := pipe.HGetAll(ctx, matchTotalKey(matchID))
	oldHundredsCmd := pipe.HGetAll(ctx, matchHundredsKey(matchID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to get match tallies: %w", err)
	}

	oldTotals, err := parseCounts(oldTotalsCmd.Val())
	if err != nil {
		return err
	}

	oldHundreds, err := parseCounts(oldHundredsCmd.Val())
	if err != nil {
		return err
	}

	tx := r.client.TxPipeline()
	applyDiff(ctx, tx, boardKey(models.BoardMelds), oldTotals, totals)
	applyDiff(ctx, tx, boardKey(models.BoardHundreds), oldHundreds, hundreds)

	tx.Del(ctx, matchTotalKey(matchID), matchHundredsKey(matchID))
	if len(totals) > 0 {
		tx.HSet(ctx, matchTotalKey(matchID), countsToHash(totals))
		tx.HSet(ctx, matchHundredsKey(matchID), countsToHash(hundreds))
	}

	if _, err := tx.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update match tallies: %w", err)
	}

	return nil
}

// applyDiff queues ZINCRBY commands moving a board from old to new counts.
// Players seen for the first time are added even with a zero count.
func applyDiff(ctx context.Context, pipe redis.Pipeliner, key string, old, new map[string]int) {
	for name, count := range new {
		previous, seen := old[name]
		if diff := count - previous; diff != 0 || !seen {
			pipe.ZIncrBy(ctx, key, float64(diff), name)
		}
	}

	for name, count := range old {
		if _, kept := new[name]; !kept && count != 0 {
			pipe.ZIncrBy(ctx, key, float64(-count), name)
		}
	}
}

func parseCounts(fields map[string]string) (map[string]int, error) {
	counts := make(map[string]int, len(fields))
	for name, value := range fields {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse tally for %s: %w", name, err)
		}
		counts[name] = count
	}
	return counts, nil
}

func countsToHash(counts map[string]int) map[string]interface{} {
	fields := make(map[string]interface{}, len(counts))
	for name, count := range counts {
		fields[name] = count
	}
	return fields
}

// RecordWin increments the player's win counter
func (r *redisRepository) RecordWin(ctx context.Context, input *RecordWinInput) error {
	if input == nil || input.PlayerName == "" {
		return errors.New("input and player name cannot be empty")
	}

	if err := r.client.ZIncrBy(ctx, boardKey(models.BoardWins), 1, input.PlayerName).Err(); err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	return nil
}

// GetTopPlayers reads a leaderboard, highest counter first
func (r *redisRepository) GetTopPlayers(ctx context.Context, input *GetTopPlayersInput) (*GetTopPlayersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !validBoard(input.Board) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBoard, input.Board)
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	rows, err := r.client.ZRevRangeWithScores(ctx, boardKey(input.Board), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard %s: %w", input.Board, err)
	}

	stats := make([]*models.PlayerStat, 0, len(rows))
	for _, row := range rows {
		name, ok := row.Member.(string)
		if !ok {
			continue
		}
		stats = append(stats, &models.PlayerStat{
			PlayerName: name,
			Value:      int(row.Score),
		})
	}

	return &GetTopPlayersOutput{
		Stats: stats,
	}, nil
}
