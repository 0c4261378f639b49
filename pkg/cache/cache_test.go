package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "doc:abc")
	if err != nil || hit {
		t.Fatalf("Get before Set = hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "doc:abc", []byte("<html>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "doc:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit || string(data) != "<html>" {
		t.Errorf("Get = %q hit=%v, want stored value", data, hit)
	}

	if err := c.Delete(ctx, "doc:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "doc:abc"); hit {
		t.Error("entry should be gone after Delete")
	}

	// Deleting an absent key is not an error
	if err := c.Delete(ctx, "doc:missing"); err != nil {
		t.Errorf("Delete absent key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("graph-a"))
	h2 := Hash([]byte("graph-a"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("graph-b"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	dk1 := k.DocumentKey("hash123", DocumentKeyOpts{Height: "600px", Width: "100%"})
	dk2 := k.DocumentKey("hash123", DocumentKeyOpts{Height: "800px", Width: "100%"})
	if dk1 == dk2 {
		t.Error("Different display options should produce different keys")
	}
	if !strings.HasPrefix(dk1, "doc:") {
		t.Errorf("DocumentKey missing type prefix: %s", dk1)
	}

	pk1 := k.PreviewKey("hash123", PreviewKeyOpts{Format: "svg"})
	pk2 := k.PreviewKey("hash123", PreviewKeyOpts{Format: "png"})
	if pk1 == pk2 {
		t.Error("Different formats should produce different keys")
	}
	if !strings.HasPrefix(pk1, "preview:") {
		t.Errorf("PreviewKey missing type prefix: %s", pk1)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "team-a:")

	key := scoped.DocumentKey("hash123", DocumentKeyOpts{})
	if !strings.HasPrefix(key, "team-a:doc:") {
		t.Errorf("ScopedKeyer key should be prefixed: %s", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Falls back to DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "p:")
	key := scoped.PreviewKey("h", PreviewKeyOpts{Format: "svg"})
	if !strings.HasPrefix(key, "p:preview:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	base := errors.New("connection refused")
	err := Retryable(base)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != base.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	if IsRetryable(ErrCacheMiss) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrCacheMiss
	})
	if err != ErrCacheMiss {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(errors.New("transient"))
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(errors.New("transient"))
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
