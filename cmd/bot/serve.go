package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/language-teacher-bot/internal/delivery/telegram"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/language-teacher-bot/internal/scheduler"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
	"github.com/aliskhannn/language-teacher-bot/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations and start polling Telegram for updates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := openPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := migrateUp(ctx, pool, log); err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		log.Error("failed to create telegram client", zap.Error(err))
		return errors.New("create telegram client: authorization failed")
	}
	bot.Debug = cfg.Debug
	log.Info("authorized on account", zap.String("username", bot.Self.UserName))

	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Начать / 开始",
		},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		log.Warn("failed to set bot commands", zap.Error(err))
	}

	// Initialize repositories and use cases.
	profileRepo := repository.NewProfileRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	unknownRepo := repository.NewUnknownWordRepository(pool)
	favoriteRepo := repository.NewFavoriteWordRepository(pool)

	chats := storage.NewChatStore()

	profileService := service.NewProfileService(profileRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	wordListService := service.NewWordListService(unknownRepo, favoriteRepo)
	flashcardService := service.NewFlashcardService(
		profileRepo, catalogRepo, wordListService, chats, cfg.Game.PracticeTestURL,
	)
	sentenceService := service.NewSentenceService(
		profileRepo, catalogRepo, chats, scheduler.Timer{}, cfg.Game.SentenceDelay,
	)
	janitor := service.NewJanitor(chats, cfg.Sessions.IdleTTL, cfg.Sessions.SweepSchedule, log.Named("janitor"))

	handler := telegram.NewHandler(
		bot,
		log.Named("telegram"),
		telegram.Services{
			Profiles:   profileService,
			Catalog:    catalogService,
			WordLists:  wordListService,
			Flashcards: flashcardService,
			Sentences:  sentenceService,
		},
		chats,
		telegram.Options{
			PollTimeout:    cfg.Bot.PollTimeout,
			HandshakeRetry: cfg.Bot.HandshakeRetry,
			ErrorBackoff:   cfg.Bot.ErrorBackoff,
		},
	)
	sentenceService.SetPresenter(handler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return handler.Run(gctx) })
	g.Go(func() error { return janitor.Start(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve: %w", err)
	}

	log.Info("shutdown signal received")
	return nil
}
