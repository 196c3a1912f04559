// Package docdb initializes the Redis connection backing the document store
package docdb

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// New connects to the document store and verifies it is reachable.
func New() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     viper.GetString("docstore.addr"),
		Password: viper.GetString("docstore.password"),
		DB:       viper.GetInt("docstore.db"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to reach document store, %w", err)
	}

	return client, nil
}
