package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"AOSocial/internal/domain"
	"AOSocial/internal/ports"
)

// ValkeyProfileStore keeps profile blobs under prefix+owner keys.
type ValkeyProfileStore struct {
	client valkey.Client
	prefix string
}

var _ ports.ProfileStore = (*ValkeyProfileStore)(nil)

// DialValkey connects to addr and checks the connection with a PING.
func DialValkey(ctx context.Context, addr, password string) (valkey.Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:      []string{addr},
		Password:         password,
		ConnWriteTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("create valkey client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping valkey: %w", err)
	}
	return client, nil
}

// NewValkeyProfileStore wires an existing client.
func NewValkeyProfileStore(client valkey.Client, prefix string) *ValkeyProfileStore {
	return &ValkeyProfileStore{client: client, prefix: prefix}
}

// Close shuts the underlying client down.
func (s *ValkeyProfileStore) Close() error {
	s.client.Close()
	return nil
}

func (s *ValkeyProfileStore) key(owner string) string {
	return s.prefix + owner
}

// Get returns the stored profile of owner; ok is false when the key is absent.
func (s *ValkeyProfileStore) Get(ctx context.Context, owner string) (domain.Profile, bool, error) {
	blob, err := s.client.Do(ctx, s.client.B().Get().Key(s.key(owner)).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("get profile: %w", err)
	}

	p, err := decodeProfile(blob)
	if err != nil {
		return domain.Profile{}, false, err
	}
	return p, true, nil
}

// Set overwrites the profile of owner.
func (s *ValkeyProfileStore) Set(ctx context.Context, owner string, profile domain.Profile) error {
	blob, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	cmd := s.client.B().Set().Key(s.key(owner)).Value(blob).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}
