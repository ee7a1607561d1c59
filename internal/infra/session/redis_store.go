package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/salonworks/salon-scheduler/internal/botflow"
)

const sessionTTL = 30 * time.Minute

// Store keeps webhook conversation state in redis, keyed by phone number.
// The state itself lives in botflow; this is just durable per-phone storage
// so any instance can pick up the next message.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(salonID uint, phone string) string {
	return fmt.Sprintf("wa:session:%d:%s", salonID, phone)
}

// Get returns the conversation state for a phone, or the zero state when
// none exists or the previous one expired.
func (s *Store) Get(ctx context.Context, salonID uint, phone string) (botflow.State, error) {
	raw, err := s.client.Get(ctx, key(salonID, phone)).Result()
	if err == redis.Nil {
		return botflow.State{}, nil
	}
	if err != nil {
		return botflow.State{}, err
	}

	var st botflow.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		// Corrupt state restarts the conversation.
		return botflow.State{}, nil
	}
	return st, nil
}

func (s *Store) Save(ctx context.Context, salonID uint, phone string, st botflow.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(salonID, phone), raw, sessionTTL).Err()
}

func (s *Store) Clear(ctx context.Context, salonID uint, phone string) error {
	return s.client.Del(ctx, key(salonID, phone)).Err()
}
