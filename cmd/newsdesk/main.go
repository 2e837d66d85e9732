package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/oauth2/clientcredentials"

	"newsdesk/internal/api"
	"newsdesk/internal/config"
	"newsdesk/internal/domain"
	"newsdesk/internal/llm"
	"newsdesk/internal/metadata"
	"newsdesk/internal/publisher"
	"newsdesk/internal/research"
	"newsdesk/internal/scheduler"
	"newsdesk/internal/service"
	"newsdesk/internal/social/x"
	"newsdesk/internal/source/article"
	"newsdesk/internal/source/feed"
	"newsdesk/internal/source/youtube"
	"newsdesk/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	// Lifecycle events are optional; a nil publisher disables them.
	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	// Stores
	sourceStore := postgres.NewSourceStore(db)
	fetchLogStore := postgres.NewFetchLogStore(db)
	articleStore := postgres.NewArticleStore(db)
	postStore := postgres.NewPostStore(db)
	artistStore := postgres.NewArtistStore(db)
	tagStore := postgres.NewTagStore(db)
	txManager := postgres.NewTransactionManager(db)

	writer := llm.New(llm.Config{
		APIKey:    cfg.Anthropic.APIKey,
		BaseURL:   cfg.Anthropic.BaseURL,
		Model:     cfg.Anthropic.Model,
		MaxTokens: cfg.Anthropic.MaxTokens,
		Timeout:   cfg.Anthropic.Timeout,
	}, logger)

	// Sources
	feeds := feed.New(feed.Config{
		Timeout:        cfg.Fetch.Timeout,
		UserAgent:      cfg.Fetch.UserAgent,
		MaxAttempts:    cfg.Fetch.Retry.MaxAttempts,
		InitialBackoff: cfg.Fetch.Retry.InitialBackoff,
		MaxBackoff:     cfg.Fetch.Retry.MaxBackoff,
	}, logger)

	var youtubeAPI *youtube.Client
	var videoLookup metadata.VideoLookup
	if cfg.YouTube.APIKey != "" {
		youtubeAPI = youtube.NewClient(cfg.YouTube.BaseURL, cfg.YouTube.APIKey, cfg.Fetch.Timeout)
		videoLookup = youtubeAPI
	}

	scraper := article.NewScraper(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)

	fetchers := map[domain.SourceType]service.Fetcher{
		domain.SourceTypeRSS:        feeds,
		domain.SourceTypeYouTube:    youtube.NewFetcher(feeds, youtubeAPI, cfg.Fetch.Timeout, logger),
		domain.SourceTypeRSSArticle: article.NewFetcher(feeds, scraper, writer, logger),
	}

	// Track metadata, most specific strategy first
	strategies := []metadata.Strategy{
		metadata.NewYouTubeStrategy(videoLookup, "", cfg.Fetch.Timeout),
	}
	if cfg.Spotify.Enabled() {
		credentials := &clientcredentials.Config{
			ClientID:     cfg.Spotify.ClientID,
			ClientSecret: cfg.Spotify.ClientSecret,
			TokenURL:     cfg.Spotify.TokenURL,
		}
		tokens := metadata.NewTokenCache(credentials.Token, time.Minute)
		spotify := metadata.NewSpotifyClient(cfg.Spotify.BaseURL, tokens, cfg.Fetch.Timeout)
		strategies = append(strategies, metadata.NewSpotifyStrategy(spotify))
	}
	strategies = append(strategies, metadata.NewOGPStrategy(cfg.Fetch.Timeout, cfg.Fetch.UserAgent))
	resolver := metadata.NewResolver(logger, strategies...)

	var researcher service.ArtistResearcher
	if cfg.Brave.APIKey != "" {
		researcher = research.NewBraveClient(cfg.Brave.BaseURL, cfg.Brave.APIKey, cfg.Fetch.Timeout)
	}

	poster := x.NewClient(cfg.X.BaseURL, x.Credentials{
		ConsumerKey:    cfg.X.ConsumerKey,
		ConsumerSecret: cfg.X.ConsumerSecret,
		AccessToken:    cfg.X.AccessToken,
		AccessSecret:   cfg.X.AccessSecret,
	}, cfg.Fetch.Timeout)

	// Services
	artistService := service.NewArtistService(artistStore, researcher, logger)
	ingestService := service.NewIngestService(sourceStore, fetchLogStore, articleStore, txManager, fetchers, logger)
	lifecycleService := service.NewLifecycleService(articleStore, postStore, tagStore, txManager, writer, artistService, events, logger)
	postingService := service.NewPostingService(postStore, articleStore, txManager, poster, events, logger)
	catalogService := service.NewCatalogService(articleStore, postStore, txManager, writer, resolver, scraper, artistService, logger)
	tagService := service.NewTagService(tagStore, articleStore, txManager, logger)
	batchService := service.NewBatchService(
		ingestService,
		lifecycleService,
		postingService,
		articleStore,
		postStore,
		service.BatchLimits{
			Translate: cfg.Batch.TranslateLimit,
			Generate:  cfg.Batch.GenerateLimit,
			Post:      cfg.Batch.PostLimit,
		},
		logger,
	)

	feedConfig := api.FeedConfig{
		Title:       cfg.Site.Title,
		Link:        cfg.Site.Link,
		Description: cfg.Site.Description,
		Author:      cfg.Site.Author,
		Size:        cfg.Site.FeedSize,
	}
	handler := api.NewHandler(api.Services{
		Articles: lifecycleService,
		Catalog:  catalogService,
		Tags:     tagService,
		Posts:    postingService,
		Sources:  ingestService,
		Batch:    batchService,
	}, feedConfig, logger)

	server := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: api.NewRouter(handler, api.Config{
			CronSecret:     cfg.Cron.Secret,
			AdminToken:     cfg.Server.AdminToken,
			RequestTimeout: cfg.Server.RequestTimeout,
			RateLimit:      cfg.Server.RateLimit,
			Feed:           feedConfig,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler([]scheduler.Job{
			{Name: "fetch", Run: func(ctx context.Context) error {
				_, err := batchService.FetchAll(ctx)
				return err
			}},
			{Name: "translate", Run: reportJob(batchService.TranslatePending)},
			{Name: "generate", Run: reportJob(batchService.GeneratePending)},
			{Name: "post", Run: reportJob(batchService.PostReady)},
		}, cfg.Scheduler.Interval, cfg.Scheduler.RunTimeout, logger)

		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", cfg.Server.Addr, "scheduler", cfg.Scheduler.Enabled)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("stopped")
}

func reportJob(run func(ctx context.Context) (*domain.BatchReport, error)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := run(ctx)
		return err
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
