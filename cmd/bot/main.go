package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/KirkDiggler/tysiac/internal/archive"
	"github.com/KirkDiggler/tysiac/internal/common/clock"
	"github.com/KirkDiggler/tysiac/internal/common/uuid"
	"github.com/KirkDiggler/tysiac/internal/dealer"
	"github.com/KirkDiggler/tysiac/internal/handlers/discord"
	"github.com/KirkDiggler/tysiac/internal/repositories/match"
	"github.com/KirkDiggler/tysiac/internal/repositories/player"
	matchService "github.com/KirkDiggler/tysiac/internal/services/match"
	"github.com/KirkDiggler/tysiac/internal/services/messaging"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load a local .env file when there is one
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load .env file: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	matchRepo, err := match.NewRedis(&match.Config{
		RedisClient:   redisClient,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create match repository: %v", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	svcConfig := &matchService.Config{
		MaxPlayers: getEnvInt("MAX_PLAYERS", 4),
		MatchRepo:  matchRepo,
		PlayerRepo: playerRepo,
		SeatPicker: dealer.New(&dealer.Config{}),
		Clock:      clock.New(),
	}

	// Finished matches are archived to S3 only when a bucket is configured
	if bucket := getEnv("ARCHIVE_BUCKET", ""); bucket != "" {
		s3Archive, err := archive.NewS3(ctx, &archive.S3Config{
			Bucket: bucket,
		})
		if err != nil {
			log.Fatalf("Failed to create match archive: %v", err)
		}
		svcConfig.Archiver = s3Archive
		log.Printf("Archiving finished matches to bucket %s", bucket)
	}

	// Initialize match service
	matchSvc, err := matchService.New(svcConfig)
	if err != nil {
		log.Fatalf("Failed to create match service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            discordToken,
		ApplicationID:    getEnv("APPLICATION_ID", ""),
		GuildID:          getEnv("GUILD_ID", ""),
		MatchService:     matchSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, value)
	}
	return parsed
}
