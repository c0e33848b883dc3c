package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

/* Redis implementation of delivery.Store
 * One string key per delivery id, expiring on its own
 */

const (
	keyPrefix   = "delivery"  // Key naming: delivery:{delivery_id}
	markerValue = "processed" // Value stored under each key
	scanCount   = 1000        // Keys fetched per SCAN round trip

	dialTimeout = 5 * time.Second
	maxRetries  = 1 // A single retry on timeout
)

type Store struct {
	client *redis.Client
}

// NewStore creates a Redis delivery store.
// The connection is established lazily so an unreachable Redis
// does not prevent the service from starting.
func NewStore(addr, password string, db int) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: dialTimeout,
		MaxRetries:  maxRetries,
	})

	return NewStoreFromClient(client)
}

// NewStoreFromClient wraps an existing client
func NewStoreFromClient(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// MarkIfAbsent atomically stores the delivery id with a TTL (SET NX EX)
func (s *Store) MarkIfAbsent(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	marked, err := s.client.SetNX(ctx, Key(id), markerValue, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("marking delivery %s: %w", id, err)
	}
	return marked, nil
}

// Count returns the number of delivery ids currently tracked
func (s *Store) Count(ctx context.Context) (int64, error) {
	pattern := fmt.Sprintf("%s:*", keyPrefix)
	var total int64

	var cursor uint64
	for {
		keys, nextCursor, err := s.client.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return 0, fmt.Errorf("scanning delivery keys: %w", err)
		}

		total += int64(len(keys))

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return total, nil
}

// Ping checks the connection to Redis
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging Redis: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (s *Store) Close(ctx context.Context) error {
	return s.client.Close()
}

// Key returns the Redis key holding a delivery id
func Key(id string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, id)
}
