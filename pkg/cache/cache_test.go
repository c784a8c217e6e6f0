package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always miss")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Errorf("Get(missing) = %v, %v", hit, err)
	}

	if err := c.Set(ctx, "layout:abc", []byte(`{"nodes":[]}`), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "layout:abc")
	if err != nil || !hit || string(data) != `{"nodes":[]}` {
		t.Errorf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "layout:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:abc"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "layout:abc"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("fresh entry should hit")
	}
	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !errors.Is(err, os.ErrNotExist) {
		t.Error("expired entry should be removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	path := c.path("k")
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	_ = os.WriteFile(path, []byte("not json"), 0644)

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}
	n, err := c.Clear(ctx)
	if err != nil || n != 3 {
		t.Errorf("Clear = %d, %v; want 3", n, err)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("%d entries left after Clear", len(entries))
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	dk1 := k.DatasetKey("src", DatasetKeyOpts{})
	dk2 := k.DatasetKey("src", DatasetKeyOpts{Columns: []string{"Region"}})
	if dk1 == dk2 {
		t.Error("Different DatasetKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(dk1, KeyTypeDataset+":") {
		t.Errorf("DatasetKey prefix: %s", dk1)
	}

	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{PadAngle: 0.005})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{PadAngle: 0.005, SortByValue: true})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}

	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Focus: []string{"Food"}})
	if ak1 == ak2 {
		t.Error("Different focus should produce different artifact keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "survey:")
	key := scoped.LayoutKey("h", LayoutKeyOpts{})
	if !strings.HasPrefix(key, "survey:layout:") {
		t.Errorf("ScopedKeyer LayoutKey should be prefixed: %s", key)
	}

	if key := NewScopedKeyer(nil, "p:").ArtifactKey("h", ArtifactKeyOpts{}); !strings.HasPrefix(key, "p:artifact:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestKeyType(t *testing.T) {
	k := NewScopedKeyer(nil, "user:1:")
	tests := []struct {
		key  string
		want string
	}{
		{k.DatasetKey("h", DatasetKeyOpts{}), KeyTypeDataset},
		{k.LayoutKey("h", LayoutKeyOpts{}), KeyTypeLayout},
		{NewDefaultKeyer().ArtifactKey("h", ArtifactKeyOpts{}), KeyTypeArtifact},
		{"plain", ""},
	}
	for _, tt := range tests {
		if got := KeyType(tt.key); got != tt.want {
			t.Errorf("KeyType(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open(file): %v", err)
	}
	if _, ok := c.(Clearer); !ok {
		t.Error("opened cache should support Clear")
	}

	if _, err := Open(ctx, Config{Backend: "none"}); err != nil {
		t.Errorf("Open(none): %v", err)
	}
	if _, err := Open(ctx, Config{Backend: "file"}); err == nil {
		t.Error("file backend without a directory should fail")
	}
	if _, err := Open(ctx, Config{Backend: "memcached"}); err == nil {
		t.Error("unknown backend should fail")
	}
	if _, err := Open(ctx, Config{Backend: "redis", RedisURL: "http://not-redis"}); err == nil {
		t.Error("invalid redis url should fail")
	}
}

func TestInstrumentReportsHooks(t *testing.T) {
	h := &countingHooks{}
	observability.SetCacheHooks(h)
	defer observability.Reset()

	ctx := context.Background()
	fc, _ := NewFileCache(t.TempDir())
	c := Instrument(fc)
	if Instrument(c) != c {
		t.Error("Instrument should not wrap twice")
	}

	key := NewDefaultKeyer().LayoutKey("h", LayoutKeyOpts{})
	_, _, _ = c.Get(ctx, key)
	_ = c.Set(ctx, key, []byte("1234"), 0)
	_, _, _ = c.Get(ctx, key)

	if h.miss[KeyTypeLayout] != 1 || h.hit[KeyTypeLayout] != 1 || h.set != 4 {
		t.Errorf("hooks: hit=%v miss=%v set=%d", h.hit, h.miss, h.set)
	}
}

type countingHooks struct {
	observability.NoopCacheHooks
	hit, miss map[string]int
	set       int
}

func (h *countingHooks) OnCacheHit(_ context.Context, kt string) {
	if h.hit == nil {
		h.hit = map[string]int{}
	}
	h.hit[kt]++
}

func (h *countingHooks) OnCacheMiss(_ context.Context, kt string) {
	if h.miss == nil {
		h.miss = map[string]int{}
	}
	h.miss[kt]++
}

func (h *countingHooks) OnCacheSet(_ context.Context, _ string, size int) { h.set += size }

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if !errors.Is(err, ErrNetwork) {
		t.Error("wrapped error should unwrap to ErrNetwork")
	}
	if IsRetryable(ErrNetwork) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	defer func(d time.Duration) { retryDelay = d }(retryDelay)
	retryDelay = time.Millisecond
	ctx := context.Background()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("first-try success: err=%v calls=%d", err, calls)
	}

	errPermanent := errors.New("permanent")
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return errPermanent
	})
	if err != errPermanent || calls != 1 {
		t.Errorf("non-retryable: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry once: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(ErrNetwork)
	})
	if !errors.Is(err, ErrNetwork) || calls != 3 {
		t.Errorf("exhausted: err=%v calls=%d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestConfigKeyer(t *testing.T) {
	if key := (Config{}).Keyer().DatasetKey("h", DatasetKeyOpts{}); !strings.HasPrefix(key, "dataset:") {
		t.Errorf("unscoped key = %q", key)
	}
	if key := (Config{Scope: "survey"}).Keyer().DatasetKey("h", DatasetKeyOpts{}); !strings.HasPrefix(key, "survey:dataset:") {
		t.Errorf("scoped key = %q", key)
	}
}
