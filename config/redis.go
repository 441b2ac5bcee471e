package config

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"glowbook-backend/utils"
)

var Redis *redis.Client

func ConnectRedis() {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		utils.GetLogger().Fatal("Failed to connect to Redis", zap.Error(err))
	}
	utils.GetLogger().Info("Redis connected", zap.String("addr", client.Options().Addr))

	Redis = client
}
