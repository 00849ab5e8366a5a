package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dotku/ai-restaurant/config"
	httpapi "github.com/dotku/ai-restaurant/pickup-svc/internal/api/http"
	"github.com/dotku/ai-restaurant/pickup-svc/internal/integrations"
	"github.com/dotku/ai-restaurant/pickup-svc/internal/service"
	"github.com/dotku/ai-restaurant/pickup-svc/internal/storage"

	"golang.org/x/sync/errgroup"
)

const ordersTopic = "orders"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load("3001")
	location := cfg.Location()

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}

	var cache service.MenuCache
	if addr := cfg.RedisAddr(); addr != "" {
		rdb := config.MustInitRedis(addr)
		defer rdb.Close()
		cache = storage.NewRedisMenuCache(rdb, cfg.MenuCacheTTL)
	} else {
		log.Println("[pickup-svc] REDIS_HOST not set, menu cache disabled")
	}

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, ordersTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("[pickup-svc] KAFKA_BROKER not set, order events disabled")
	}

	if !cfg.Twilio.Configured() {
		log.Println("[pickup-svc] Twilio credentials missing, SMS confirmations disabled")
	}
	sender := integrations.NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)
	generator := integrations.NewOpenAIGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)

	menuSvc := service.NewMenuService(repo, cache)
	notificationSvc := service.NewNotificationService(sender, location)
	orderSvc := service.NewOrderService(repo, repo, notificationSvc, publisher,
		service.PickupQRGenerator{BaseURL: cfg.PublicBaseURL}, location)

	handler := httpapi.NewHandler(
		menuSvc,
		service.NewSuggestionService(generator, menuSvc),
		orderSvc,
		notificationSvc,
		service.NewAuthService(repo, cfg.JWTSecret, cfg.JWTTTL),
		service.NewDeliveryService(repo),
	)

	srv := httpapi.NewServer(":"+cfg.Port, httpapi.NewRouter(handler))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Pickup Service starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("[pickup-svc] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
