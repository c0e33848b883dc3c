package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/jira-relay/config"
	"github.com/marcelsud/jira-relay/delivery"
	"github.com/marcelsud/jira-relay/delivery/redis"
	"github.com/marcelsud/jira-relay/internal/http/chi"
	"github.com/marcelsud/jira-relay/internal/logger"
	"github.com/marcelsud/jira-relay/metrics"
	"github.com/marcelsud/jira-relay/ticket"
	"github.com/marcelsud/jira-relay/ticket/github"
	"github.com/marcelsud/jira-relay/ticket/jira"
	"github.com/marcelsud/jira-relay/trigger"
	"github.com/marcelsud/jira-relay/webhook"
)

const TIMEOUT = 30 * time.Second

/* Entry point: every client is built here, once, and injected downwards.
 * Imports only go one way: cmd -> webhook -> ticket/delivery -> adapters
 */

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, logCloser, err := logger.New(logger.Options{
		Service: "jira-relay",
		File:    cfg.LogFile,
		Debug:   cfg.Debug,
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	// The cache is optional: an unreachable Redis only disables dedup
	store := redis.NewStore(cfg.RedisAddr(), cfg.RedisPassword, cfg.RedisDB)
	defer store.Close(ctx)
	if err := store.Ping(ctx); err != nil {
		log.Error().Err(err).Str("redis_addr", cfg.RedisAddr()).Msg("Redis unavailable, deduplication disabled until it recovers")
	} else {
		log.Info().Str("redis_addr", cfg.RedisAddr()).Msg("connected to Redis")
	}

	collector := metrics.NewStoreCollector(store, store)
	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		return fmt.Errorf("creating metrics exporter: %w", err)
	}
	defer exporter.Shutdown(context.Background())

	tracker, err := jira.NewClient(cfg.JiraServer, cfg.JiraUser, cfg.JiraAPIToken)
	if err != nil {
		return err
	}

	tickets := ticket.NewService(tracker, github.NewCommenter(cfg.GitHubToken), ticket.Options{
		ProjectKey: cfg.JiraProjectKey,
		IssueType:  cfg.JiraIssueType,
		ServerURL:  cfg.JiraServer,
		DueIn:      cfg.DueIn(),
		Recorder:   exporter,
	}, log)

	service := webhook.NewService(
		[]byte(cfg.GitHubWebhookSecret),
		delivery.NewDeduplicator(store, cfg.DedupTTL(), log, exporter),
		trigger.NewDetector(cfg.TriggerKeyword),
		tickets,
		log,
		exporter,
	)

	r := chi.WebhookHandlers(service, collector, exporter.ServeHTTP(), log)
	srv := &http.Server{
		ReadTimeout: 30 * time.Second,
		// one Jira call and one GitHub call, 30s each, must fit
		WriteTimeout: 75 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)

	log.Info().Str("port", cfg.Port).Str("trigger", cfg.TriggerKeyword).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	if err := <-errShutdown; err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("forcing closing the server: %w", err)
	}
}
