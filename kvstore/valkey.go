package kvstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"
)

// ValkeySlots stores slots as plain string keys in Valkey (or Redis).
type ValkeySlots struct {
	client valkey.Client
	prefix string
}

// NewValkeySlots connects to the Valkey server at addr.
func NewValkeySlots(addr, password string, db int, prefix string) (*ValkeySlots, error) {
	if addr == "" {
		return nil, fmt.Errorf("valkey address is required")
	}
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
		Password:    password,
		SelectDB:    db,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to valkey: %w", err)
	}
	return &ValkeySlots{client: client, prefix: prefix}, nil
}

func (s *ValkeySlots) key(k string) string {
	return s.prefix + k
}

// Get returns the value at key.
func (s *ValkeySlots) Get(ctx context.Context, key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	v, err := s.client.Do(ctx, s.client.B().Get().Key(s.key(key)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", ErrSlotNotFound
		}
		return "", err
	}
	return v, nil
}

// Set stores value at key.
func (s *ValkeySlots) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return s.client.Do(ctx, s.client.B().Set().Key(s.key(key)).Value(value).Build()).Error()
}

// Delete removes key.
func (s *ValkeySlots) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return s.client.Do(ctx, s.client.B().Del().Key(s.key(key)).Build()).Error()
}

// Close releases the client connection.
func (s *ValkeySlots) Close() error {
	s.client.Close()
	return nil
}
