package cache

import (
	"context"
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
	if _, hit, _ = c.Get(ctx, "key"); hit {
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

	// Miss before set
	if _, hit, _ := c.Get(ctx, "wheel:abc"); hit {
		t.Error("unexpected hit before Set")
	}

	// Round trip
	if err := c.Set(ctx, "wheel:abc", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "wheel:abc")
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("data = %q", data)
	}

	// Expired entries are misses
	if err := c.Set(ctx, "wheel:old", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set expired: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "wheel:old"); hit {
		t.Error("expired entry should miss")
	}

	// Delete is idempotent
	if err := c.Delete(ctx, "wheel:abc"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Delete(ctx, "wheel:abc"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "wheel:abc"); hit {
		t.Error("hit after Delete")
	}
}

func TestFileCache_Clear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	if err := c.(*FileCache).Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("hit after Clear")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
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

	if got := k.TableKey("default"); got != "table:default" {
		t.Errorf("TableKey = %q", got)
	}

	// Geometry changes must change the ring key.
	rk1 := k.RingKey("h1", "gates", RingKeyOpts{Inner: 400, Outer: 500})
	rk2 := k.RingKey("h1", "gates", RingKeyOpts{Inner: 400, Outer: 520})
	if rk1 == rk2 {
		t.Error("different geometry should produce different ring keys")
	}
	if !strings.HasPrefix(rk1, "ring:") {
		t.Errorf("RingKey = %q, want ring: prefix", rk1)
	}

	wk1 := k.WheelKey("h1", WheelKeyOpts{Format: "svg"})
	wk2 := k.WheelKey("h1", WheelKeyOpts{Format: "png"})
	if wk1 == wk2 {
		t.Error("different formats should produce different wheel keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "user:123:")

	if got := scoped.TableKey("default"); got != "user:123:table:default" {
		t.Errorf("TableKey = %q", got)
	}
	if !strings.HasPrefix(scoped.WheelKey("h", WheelKeyOpts{}), "user:123:wheel:") {
		t.Error("WheelKey missing scope prefix")
	}
}
