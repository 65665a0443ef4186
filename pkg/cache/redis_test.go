package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestNewRedisCacheRequiresAddr(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), RedisConfig{}); err == nil {
		t.Error("NewRedisCache without address should fail")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	defer func(d time.Duration) { retryDelay = d }(retryDelay)
	retryDelay = time.Millisecond

	// Port 1 is reserved and refuses connections.
	_, err := NewRedisCache(context.Background(), RedisConfig{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("NewRedisCache to closed port should fail")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error should wrap ErrNetwork: %v", err)
	}
}

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}
	plain := errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	if IsRetryable(classify(plain)) {
		t.Error("server replies should not be retryable")
	}
}

// TestRedisCache runs against a live server when VECNET_TEST_REDIS is set,
// e.g. VECNET_TEST_REDIS=localhost:6379.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("VECNET_TEST_REDIS")
	if addr == "" {
		t.Skip("VECNET_TEST_REDIS not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisConfig{Addr: addr, Prefix: "vecnet-test:"})
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	defer c.Close()

	key := Hash([]byte(t.Name()))
	defer c.Delete(ctx, key)

	if err := c.Set(ctx, key, []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "value" {
		t.Fatalf("Get = %q, hit %v, err %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("Get after Delete should miss")
	}

	if err := c.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
	if _, _, err := c.Get(ctx, key); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close = %v, want ErrClosed", err)
	}
}
