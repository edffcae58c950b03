package redisc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const activityTTL = 30 * time.Minute

// MarkActive records that userID made an authenticated request. The marker
// expires on its own; MarkInactive clears it early on logout.
func MarkActive(client *redis.Client, userID string) error {
	ctx := context.Background()
	pipe := client.Pipeline()
	pipe.SAdd(ctx, "active_users", userID)
	pipe.Set(ctx, "activity:"+userID, "active", activityTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func MarkInactive(client *redis.Client, userID string) error {
	ctx := context.Background()
	pipe := client.Pipeline()
	pipe.SRem(ctx, "active_users", userID)
	pipe.Del(ctx, "activity:"+userID)
	_, err := pipe.Exec(ctx)
	return err
}

func ActiveUsers(client *redis.Client) ([]string, error) {
	return client.SMembers(context.Background(), "active_users").Result()
}
