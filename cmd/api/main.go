package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"bobcathub/internal/config"
	"bobcathub/internal/handler"
	"bobcathub/internal/middleware"
	"bobcathub/internal/pkg"
	"bobcathub/internal/repository/mysql"
	"bobcathub/internal/repository/redis"
	"bobcathub/internal/router"
	"bobcathub/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := mysql.Open(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := mysql.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	// Repositories.
	users := &mysql.UserRepository{DB: db}
	clubs := &mysql.ClubRepository{DB: db}
	posts := &mysql.PostRepository{DB: db}
	rsvps := &mysql.RSVPRepository{DB: db}
	followers := &mysql.FollowerRepository{DB: db}
	outbox := &mysql.OutboxRepository{DB: db}

	sessions := &redis.SessionRepository{Client: rdb}
	feedCache := redis.NewFeedCache(rdb, cfg.FeedCacheTTL)
	rsvpCounts := redis.NewRSVPCountCache(rdb, cfg.FeedCacheTTL)

	tokens := pkg.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret)

	// Services.
	authSvc := service.NewAuthService(users, sessions, tokens, cfg.EmailDomain, cfg.AdminCodes)
	feedSvc := service.NewFeedService(posts, clubs, rsvps, followers, feedCache, rsvpCounts)
	interactionSvc := service.NewInteractionService(posts, clubs, rsvps, followers, rsvpCounts)
	clubSvc := service.NewClubService(clubs, posts)
	adminSvc := service.NewAdminService(users, clubs, outbox, cfg.SMTP)

	// Outbox relayer: Kafka when brokers are configured, log sink otherwise.
	sender := service.Sender(service.LogSender)
	if len(cfg.KafkaBrokers) > 0 {
		producer := pkg.NewActivityProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	relayer := service.NewOutboxRelayer(outbox, sender)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go relayer.Run(ctx)

	r := router.New(
		handler.NewAuthHandler(authSvc),
		handler.NewStudentHandler(feedSvc, interactionSvc),
		handler.NewClubHandler(clubSvc),
		handler.NewAdminHandler(adminSvc),
		middleware.Auth(tokens, sessions),
	)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
