package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Idowu-David/Nithub-Booking-System/internal/booking"
	"github.com/Idowu-David/Nithub-Booking-System/internal/cache"
	"github.com/Idowu-David/Nithub-Booking-System/internal/db"
	"github.com/Idowu-David/Nithub-Booking-System/internal/kafka"
	"github.com/Idowu-David/Nithub-Booking-System/internal/logger"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository/postgresql"
	"github.com/Idowu-David/Nithub-Booking-System/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zapLogger := logger.New()
	defer func() {
		_ = zapLogger.Sync()
	}()

	database, err := db.NewDb(ctx)
	if err != nil {
		zapLogger.Fatal("database init error", zap.Error(err))
	}
	defer database.GetPool().Close()

	deskRepo := postgresql.NewDeskRepo(database)
	bookingRepo := postgresql.NewBookingRepo(database)
	historyRepo := postgresql.NewHistoryRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	deskCache := cache.NewDeskCache(deskRepo, zapLogger)
	if err := deskCache.LoadInitialData(ctx); err != nil {
		zapLogger.Warn("failed to warm desk cache, availability will read the store directly", zap.Error(err))
	}

	engine := booking.NewService(database, deskCache, deskRepo, userRepo, bookingRepo, historyRepo, outboxRepo, booking.RealClock{}, zapLogger)

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewKafkaProducer(strings.Split(brokers, ","))
	} else {
		producer = kafka.NewConsoleProducer()
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    20,
		MaxAttempts:  5,
	}, zapLogger)

	srv := server.New(engine, userRepo, zapLogger)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "9000"
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx, port)
	})

	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
		publisher.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		zapLogger.Fatal("service exited with error", zap.Error(err))
	}

	zapLogger.Info("service gracefully stopped")
}
