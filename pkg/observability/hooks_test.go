package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Codec hooks
	c := NoopCodecHooks{}
	c.OnEncodeStart(ctx, 3, 3)
	c.OnEncodeComplete(ctx, 64, time.Millisecond, nil)
	c.OnDecodeStart(ctx, 64)
	c.OnDecodeComplete(ctx, 3, 3, time.Millisecond, nil)
	c.OnHandleConflict(ctx, "vertex 0: out handle set twice")

	// Cache hooks
	ch := NoopCacheHooks{}
	ch.OnCacheHit(ctx, "encode")
	ch.OnCacheMiss(ctx, "decode")
	ch.OnCacheSet(ctx, "encode", 1024)

	// Tool hooks
	th := NoopToolHooks{}
	th.OnToolCall(ctx, "id-1", "encode_vector_network")
	th.OnToolResult(ctx, "id-1", "encode_vector_network", false, "OUT_OF_RANGE", time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Codec().(NoopCodecHooks); !ok {
		t.Error("Codec() should return NoopCodecHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Tool().(NoopToolHooks); !ok {
		t.Error("Tool() should return NoopToolHooks by default")
	}

	// Set custom hooks
	customCodec := &testCodecHooks{}
	SetCodecHooks(customCodec)
	if Codec() != customCodec {
		t.Error("SetCodecHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customTool := &testToolHooks{}
	SetToolHooks(customTool)
	if Tool() != customTool {
		t.Error("SetToolHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Codec().(NoopCodecHooks); !ok {
		t.Error("Reset() should restore NoopCodecHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testCodecHooks{}
	SetCodecHooks(custom)

	// Setting nil should be ignored
	SetCodecHooks(nil)

	if Codec() != custom {
		t.Error("SetCodecHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testCodecHooks struct{ NoopCodecHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testToolHooks struct{ NoopToolHooks }
