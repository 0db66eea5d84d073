package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"AOSocial/internal/domain"
	"AOSocial/internal/ports"
)

func exerciseStore(t *testing.T, store ports.ProfileStore, owner string) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, owner); err != nil || ok {
		t.Fatalf("expected no profile yet, got ok=%v err=%v", ok, err)
	}

	first := domain.Profile{Nickname: "neo", Bio: "hi", Avatar: "data:image/png;base64,AA==", Time: 1700000000}
	if err := store.Set(ctx, owner, first); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	got, ok, err := store.Get(ctx, owner)
	if err != nil || !ok {
		t.Fatalf("expected stored profile, got ok=%v err=%v", ok, err)
	}
	if got != first {
		t.Fatalf("unexpected profile: %+v", got)
	}

	second := first
	second.Nickname = "trinity"
	second.Time = 1700000500
	if err := store.Set(ctx, owner, second); err != nil {
		t.Fatalf("overwrite error: %v", err)
	}

	got, _, err = store.Get(ctx, owner)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Nickname != "trinity" || got.Time != 1700000500 {
		t.Fatalf("overwrite not visible: %+v", got)
	}

	if _, ok, _ := store.Get(ctx, owner+"-other"); ok {
		t.Fatalf("profiles leaked between owners")
	}
}

func TestSQLiteProfileStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "profiles.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite error: %v", err)
	}
	defer store.Close()

	exerciseStore(t, store, "wallet-1")

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file missing: %v", err)
	}
}

func TestSQLiteProfileStoreReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profiles.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite error: %v", err)
	}
	if err := store.Set(context.Background(), "w", domain.Profile{Nickname: "kept"}); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_ = store.Close()

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(context.Background(), "w")
	if err != nil || !ok || got.Nickname != "kept" {
		t.Fatalf("profile not persisted: %+v ok=%v err=%v", got, ok, err)
	}
}

func TestValkeyProfileStore(t *testing.T) {
	addr := os.Getenv("AOSOCIAL_TEST_VALKEY_ADDR")
	if addr == "" {
		t.Skip("AOSOCIAL_TEST_VALKEY_ADDR not set")
	}

	client, err := DialValkey(context.Background(), addr, os.Getenv("AOSOCIAL_TEST_VALKEY_PASSWORD"))
	if err != nil {
		t.Fatalf("DialValkey error: %v", err)
	}
	store := NewValkeyProfileStore(client, "aosocial:test:"+t.Name()+":")
	defer store.Close()

	ctx := context.Background()
	for _, owner := range []string{"wallet-1", "wallet-1-other"} {
		_ = client.Do(ctx, client.B().Del().Key(store.key(owner)).Build()).Error()
	}

	exerciseStore(t, store, "wallet-1")
}

func TestDecodeProfileRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := decodeProfile("{not json"); err == nil {
		t.Fatalf("expected decode error")
	}
}
