package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	slackapi "github.com/slack-go/slack"

	"dicebot/clients/discord"
	slackclient "dicebot/clients/slack"
	"dicebot/config"
	"dicebot/db"
	"dicebot/evaluator"
	"dicebot/handlers"
	"dicebot/rules"
	"dicebot/services/cards"
	"dicebot/usecases/dice"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	cardsRepo := db.NewPostgresCardsRepository(dbConn, cfg.DatabaseSchema)
	aliases := rules.NewAliasTable(rules.DefaultAliases())
	cardsService := cards.NewCardsService(cardsRepo, aliases)
	diceEvaluator := evaluator.NewDiceScriptEvaluator()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Each transport gets its own use case: caches are keyed by
	// platform-scoped message IDs and must not mix across transports.
	if cfg.DiscordConfig.IsConfigured() {
		if err := startDiscord(cfg, diceEvaluator, cardsService, aliases); err != nil {
			return err
		}
	}

	if cfg.SlackConfig.IsConfigured() {
		if err := startSlack(ctx, cfg, diceEvaluator, cardsService, aliases); err != nil {
			return err
		}
	}

	// HTTP surface: health check plus read-only card lookups
	router := mux.NewRouter()
	handlers.NewCardsHTTPHandler(cardsService).SetupEndpoints(router)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func startDiscord(
	cfg *config.AppConfig,
	diceEvaluator evaluator.Evaluator,
	cardsService *cards.CardsService,
	aliases *rules.AliasTable,
) error {
	session, err := discordgo.New("Bot " + cfg.DiscordConfig.BotToken)
	if err != nil {
		return err
	}
	session.Identify.Intents = discord.Intents

	useCase, err := dice.NewDiceUseCase(
		discord.NewDiscordClient(session),
		diceEvaluator,
		cardsService,
		aliases,
		rules.DefaultOpposedRule,
	)
	if err != nil {
		return err
	}
	discord.RegisterHandlers(session, useCase)

	if err := session.Open(); err != nil {
		return err
	}
	log.Printf("✅ Discord gateway connected")
	return nil
}

func startSlack(
	ctx context.Context,
	cfg *config.AppConfig,
	diceEvaluator evaluator.Evaluator,
	cardsService *cards.CardsService,
	aliases *rules.AliasTable,
) error {
	api := slackapi.New(
		cfg.SlackConfig.BotToken,
		slackapi.OptionAppLevelToken(cfg.SlackConfig.AppToken),
	)

	chatClient, err := slackclient.NewSlackClient(api)
	if err != nil {
		return err
	}

	useCase, err := dice.NewDiceUseCase(
		chatClient,
		diceEvaluator,
		cardsService,
		aliases,
		rules.DefaultOpposedRule,
	)
	if err != nil {
		return err
	}

	gateway := slackclient.NewGateway(api, useCase)
	go func() {
		if err := gateway.Run(ctx); err != nil {
			log.Printf("❌ Slack gateway terminated: %v", err)
		}
	}()
	log.Printf("✅ Slack gateway connecting")
	return nil
}

func handleGracefulShutdown(server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
