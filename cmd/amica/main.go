// Package main is the entry point for the amica conversational agent.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/moodloop/amica/internal/chat"
	"github.com/moodloop/amica/internal/chatlog"
	"github.com/moodloop/amica/internal/config"
	"github.com/moodloop/amica/internal/models"
	"github.com/moodloop/amica/internal/mood"
	"github.com/moodloop/amica/internal/objective"
	"github.com/moodloop/amica/internal/persona"
	"github.com/moodloop/amica/internal/prompt"
	"github.com/moodloop/amica/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records := persona.Load(cfg.PersonaDir, logger)

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.SessionBackend).Msg("failed to open session store")
	}
	defer store.Close()

	generator, err := models.NewGenerator(ctx, models.ProviderConfig{
		Provider:   cfg.Provider,
		APIKey:     cfg.ProviderAPIKey(),
		BaseURL:    cfg.OpenAIBaseURL,
		Model:      cfg.Model,
		SystemHead: cfg.Provider == "openai",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize generation backend")
	}

	state, err := openSession(ctx, cfg, store, records, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize session")
	}

	transcript := chatlog.New(cfg.Transcript)
	defer transcript.Close()
	if err := transcript.Event("system", "session started"); err != nil {
		logger.Warn().Err(err).Msg("failed to open transcript")
	}

	personaName := records.Identity.Name
	if personaName == "" {
		personaName = "amica"
	}

	orchestrator := chat.New(chat.Options{
		Engine:      mood.NewEngine(),
		Tracker:     objective.NewTracker(),
		Generator:   generator,
		Store:       store,
		Transcript:  transcript,
		State:       state,
		Triggers:    records.Relationship.JealousyBehavior.TriggerWords,
		PersonaName: personaName,
		SaveEvery:   cfg.SaveEvery,
		Logger:      logger,
	})

	// Flush the session even when stdin is still blocking on a read.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		orchestrator.Shutdown(shutdownCtx)
		transcript.Close()
		fmt.Println()
		os.Exit(0)
	}()

	if cfg.IdleStarter {
		go orchestrator.RunIdleStarter(ctx, func(line string) {
			fmt.Printf("\n%s: %s\nYou: ", personaName, line)
		})
	}

	fmt.Printf("Chatting with %s (session %s). Type 'exit' to quit.\n\n", personaName, state.SessionID)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			break
		}
		reply := orchestrator.HandleTurn(ctx, line)
		fmt.Printf("%s: %s\n\n", personaName, reply)
	}

	orchestrator.Shutdown(ctx)
	fmt.Printf("%s: Bye! Talk to you soon.\n", personaName)
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(parsed).
		With().Timestamp().Logger()
}

// openStore selects the snapshot backend from configuration.
func openStore(ctx context.Context, cfg config.Config) (session.Store, error) {
	switch cfg.SessionBackend {
	case "file":
		return session.NewFileStore(cfg.SessionDir)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		return session.NewRedisStore(client, session.RedisStoreConfig{}), nil
	case "postgres":
		return session.NewPostgresStore(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported session backend: %s", cfg.SessionBackend)
	}
}

// openSession restores the configured session if a snapshot exists,
// otherwise starts a fresh one seeded with the composed persona
// directive and the persona's starting mood and objectives.
func openSession(ctx context.Context, cfg config.Config, store session.Store, records persona.Records, logger zerolog.Logger) (*session.State, error) {
	if cfg.SessionID != "" {
		snap, err := store.Load(ctx, cfg.SessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load session %s: %w", cfg.SessionID, err)
		}
		if snap != nil {
			logger.Info().Str("session_id", cfg.SessionID).
				Int("interactions", snap.InteractionCount).
				Msg("restored previous session")
			return session.FromSnapshot(snap, cfg.MaxExchanges), nil
		}
		logger.Info().Str("session_id", cfg.SessionID).Msg("no snapshot found, starting fresh")
	}

	state := session.New(cfg.MaxExchanges)
	if cfg.SessionID != "" {
		state.SessionID = cfg.SessionID
	}
	if records.Mood.CurrentMood.State != "" {
		state.Mood = records.Mood.CurrentMood
	}
	state.Objectives = records.Objective.ToSet()

	directive, err := prompt.NewComposer().Compose(prompt.ComposeContext{
		Identity:     records.Identity,
		Partner:      records.Partner,
		Personality:  records.Personality,
		Mood:         state.Mood,
		Relationship: records.Relationship,
		Objectives:   state.Objectives,
	})
	if err != nil {
		return nil, err
	}
	state.Window.SeedDirective(directive)
	return state, nil
}
