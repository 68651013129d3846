package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"buybot/internal/card"
	"buybot/internal/config"
	"buybot/internal/core"
	"buybot/internal/db"
	"buybot/internal/discord"
	"buybot/internal/emitter"
	"buybot/internal/ethereum"
	"buybot/internal/http/handler"
	"buybot/internal/http/handler/middleware"
	"buybot/internal/http/payload"
	"buybot/internal/http/server"
	"buybot/internal/poller"
	"buybot/internal/repository"
	"buybot/internal/webhook"
	"buybot/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap/zapcore"
)

const serviceName = "FomoFrog Bot"

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))

	// expect a signal to gracefully shutdown every component
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewPurchaseRepository(dbConn)
	if err = repo.EnsureSchema(); err != nil {
		logger.Errorw("failed to prepare purchases table", "error", err)
		return err
	}
	logger.Infow("purchases table ready")

	rpcClient, err := rpc.DialContext(ctx, cfg.NodeURL)
	if err != nil {
		logger.Errorw("rpc connection failed", "error", err, "url", cfg.NodeURL)
		return err
	}
	defer rpcClient.Close()

	ethService := ethereum.NewEthService(ethclient.NewClient(rpcClient), rpcClient, cfg.HTTPTimeout)

	var notifier core.Notifier
	if cfg.NotificationsEnabled() {
		notifier = webhook.NewSender(logger, cfg.WebhookURL, webhook.WithTimeout(cfg.HTTPTimeout))
	} else {
		logger.Warnw("no webhook configured, purchases will be stored without notification")
	}

	var publisher core.EventPublisher
	if cfg.KafkaBroker != "" {
		kafkaEmitter := emitter.NewKafkaEmitter(logger, cfg.KafkaBroker, cfg.KafkaTopic)
		defer kafkaEmitter.Close()
		publisher = kafkaEmitter
	}

	purchases := core.NewPurchaseService(
		logger,
		core.Settings{
			TokenAddress:   cfg.TokenAddress,
			MinAmount:      cfg.MinTokenAmount,
			PublishTimeout: cfg.HTTPTimeout,
		},
		ethService,
		repo,
		card.NewRenderer(),
		notifier,
		publisher)

	// discord
	session, err := discord.NewSession(cfg.BotToken)
	if err != nil {
		logger.Errorw("failed to create discord session", "error", err)
		return err
	}
	gateway := discord.NewGateway(logger, purchases, session)
	bot := discord.NewBot(logger, session, gateway)
	if err = bot.Start(ctx); err != nil {
		logger.Errorw("failed to start discord bot", "error", err)
		return err
	}
	defer func() {
		if err := bot.Close(); err != nil {
			logger.Errorw("failed to close discord bot", "error", err)
		}
	}()

	if cfg.RunPoll {
		p := poller.NewPoller(logger, ethService, purchases, cfg.PollInterval, poller.DefaultBackoff)
		pollDone := p.Start(ctx)
		// runs before the bot, rpc and database defers above
		defer func() {
			stop()
			<-pollDone
		}()
	}

	// handler
	purchaseHlr := handler.NewPurchaseHandler(
		logger,
		serviceName,
		payload.QueryDecoder{},
		purchases)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Status, purchaseHlr.HandleStatus)
	mux.HandleFunc(handler.Rank, purchaseHlr.HandleRank)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(ctx, srv)
}

func run(ctx context.Context, server *server.HTTPServer) error {
	errChan := server.Run()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
