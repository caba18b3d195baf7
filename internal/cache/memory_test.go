package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("expected value, got %q", got)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer func() { _ = c.Close() }()

	_, err := c.Get(context.Background(), "missing")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	if err := c.Set(ctx, "fleeting", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := c.Get(ctx, "fleeting"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss for expired key, got %v", err)
	}

	has, err := c.Has(ctx, "fleeting")
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if has {
		t.Error("expired key must not report present")
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrCacheMiss) {
		t.Error("deleted key must miss")
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := c.Get(ctx, "b"); !errors.Is(err, ErrCacheMiss) {
		t.Error("cleared cache must miss")
	}
}

func TestMemoryCache_ValueIsolation(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	original := []byte("immutable")
	_ = c.Set(ctx, "key", original, 0)
	original[0] = 'X'

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "immutable" {
		t.Errorf("stored value must not alias the caller's slice, got %q", got)
	}

	got[0] = 'Y'
	again, _ := c.Get(ctx, "key")
	if string(again) != "immutable" {
		t.Errorf("returned value must not alias the stored slice, got %q", again)
	}
}

func TestMemoryCache_Closed(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	_ = c.Close()

	if err := c.Set(context.Background(), "k", []byte("v"), 0); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("expected ErrCacheClosed, got %v", err)
	}
	if _, err := c.Get(context.Background(), "k"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("expected ErrCacheClosed, got %v", err)
	}

	// Double close is safe.
	if err := c.Close(); err != nil {
		t.Errorf("second Close must not fail: %v", err)
	}
}

func TestFactory_MemoryDefault(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer func() { _ = c.Close() }()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("expected memory cache, got %T", c)
	}
}

func TestFactory_RedisFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = "redis"
	cfg.RedisURL = "redis://127.0.0.1:1/0" // unreachable
	cfg.FallbackToMemory = true

	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New with fallback failed: %v", err)
	}
	defer func() { _ = c.Close() }()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("expected memory fallback, got %T", c)
	}
}
