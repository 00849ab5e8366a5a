package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/dotku/ai-restaurant/analytics-svc/internal/api/http"
	"github.com/dotku/ai-restaurant/analytics-svc/internal/service"
	"github.com/dotku/ai-restaurant/config"

	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load("8083")

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	var rdb *redis.Client
	if addr := cfg.RedisAddr(); addr != "" {
		rdb = config.MustInitRedis(addr)
		defer rdb.Close()
	} else {
		log.Println("[analytics-svc] REDIS_HOST not set, answering from Postgres only")
	}

	svc := service.NewAnalyticsService(db, rdb, cfg.Location())
	srv := httpapi.NewServer(":"+cfg.Port, httpapi.NewRouter(httpapi.NewHandler(svc)))

	go func() {
		log.Printf("Analytics Service starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[analytics-svc] shutdown: %v", err)
	}
}
