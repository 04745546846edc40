// Command server runs the givegate dashboard gateway: the HTTP front for the
// remote case-management service, plus the session, activity, and aggregate
// plumbing around it. Wiring lives here; behavior lives in internal packages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"givegate/internal/activity"
	"givegate/internal/aggregate"
	"givegate/internal/auditlog"
	"givegate/internal/chain"
	dashboardHandler "givegate/internal/dashboard/handler"
	"givegate/internal/lifecycle"
	lifecycleHandler "givegate/internal/lifecycle/handler"
	"givegate/internal/notify"
	"givegate/internal/platform/config"
	"givegate/internal/platform/httpserver"
	"givegate/internal/platform/kafka"
	"givegate/internal/platform/logger"
	"givegate/internal/platform/metrics"
	"givegate/internal/platform/redis"
	"givegate/internal/session"
	sessionHandler "givegate/internal/session/handler"
	httptransport "givegate/internal/transport/http"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error("gateway exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)
	checks := map[string]func(ctx context.Context) error{}

	upstream := chain.New(cfg.UpstreamURL,
		&http.Client{Timeout: cfg.UpstreamTimeout},
		chain.WithObserver(m.ObserveUpstream),
	)

	// Activity trail: memory by default, postgres and kafka when configured.
	var activityStore activity.Store = activity.NewInMemoryStore()
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		pg := activity.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("activity schema: %w", err)
		}
		activityStore = pg
		checks["postgres"] = db.PingContext
		log.Info("activity store: postgres")
	}

	var activitySink activity.Sink
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer producer.Close()
		activitySink = producer
		log.Info("activity sink: kafka", "topic", cfg.KafkaTopic)
	}

	recorder := activity.NewRecorder(log)
	worker := activity.NewWorker(activityStore, activitySink, recorder.Inbox(), log)

	// Sessions: redis when configured, in-memory for development.
	var sessionStore session.Store = session.NewInMemoryStore()
	if rdb, err := redis.New(ctx, cfg.RedisURL); err != nil {
		return fmt.Errorf("redis: %w", err)
	} else if rdb != nil {
		defer rdb.Close()
		sessionStore = session.NewRedisStore(rdb.Client)
		checks["redis"] = rdb.Health
		log.Info("session store: redis")
	}

	sessions := session.NewService(
		sessionStore,
		session.NewTokenService(cfg.JWTSigningKey, "givegate"),
		recorder,
		m,
		log,
		cfg.SessionTTL,
	)

	cases := lifecycle.NewService(upstream, recorder, m, log)
	audit := auditlog.NewReader(upstream, log)
	notifications := notify.NewReader(upstream, log)
	aggregates := aggregate.NewReader(upstream, log)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:    log,
		Metrics:   m,
		Validator: sessions,
		Sessions:  sessionHandler.New(sessions, log),
		Cases:     lifecycleHandler.New(cases, log),
		Dashboard: dashboardHandler.New(audit, notifications, aggregates, activityStore, log),
		Checks:    checks,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(ctx)
	})
	g.Go(func() error {
		log.Info("gateway listening", "addr", cfg.Addr, "upstream", cfg.UpstreamURL)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("gateway stopped")
	return nil
}
