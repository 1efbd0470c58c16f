package initializers

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func ConnectRedis(config *Config) {
	RedisClient = redis.NewClient(&redis.Options{
		Addr: config.RedisUri,
	})

	if _, err := RedisClient.Ping(context.TODO()).Result(); err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}
}
