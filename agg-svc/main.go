package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dotku/ai-restaurant/agg-svc/internal/service"
	"github.com/dotku/ai-restaurant/agg-svc/internal/storage"
	"github.com/dotku/ai-restaurant/config"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

const (
	ordersTopic   = "orders"
	consumerGroup = "agg-svc-consumer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load("8084")
	if cfg.KafkaBroker == "" || cfg.RedisAddr() == "" {
		log.Fatal("[agg-svc] KAFKA_BROKER and REDIS_HOST are required")
	}

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.RedisAddr())
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.KafkaBroker, ordersTopic, consumerGroup)
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb, cfg.Location()))

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy", "service": "agg-svc"})
	}).Methods("GET")
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.Start(gctx)
	})
	g.Go(func() error {
		log.Printf("Aggregation Service health endpoint on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("[agg-svc] stopped: %v", err)
	}
}
