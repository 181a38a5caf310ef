package observability

import (
	"context"
	"testing"
	"time"
)

// testConvertHooks records received events for assertions.
type testConvertHooks struct {
	batchStarts int
	itemStarts  int
	completes   int
}

func (h *testConvertHooks) OnBatchStart(context.Context, string, int)                   { h.batchStarts++ }
func (h *testConvertHooks) OnBatchComplete(context.Context, string, int, time.Duration) {}
func (h *testConvertHooks) OnItemStart(context.Context, string, string)                 { h.itemStarts++ }
func (h *testConvertHooks) OnItemComplete(context.Context, string, string, string, time.Duration, error) {
	h.completes++
}

type testHTTPHooks struct{}

func (testHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (testHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopConvertHooks{}
	c.OnBatchStart(ctx, "batch-1", 2)
	c.OnItemStart(ctx, "batch-1", "a.svg")
	c.OnItemComplete(ctx, "batch-1", "a.svg", "a.pdf", time.Second, nil)
	c.OnBatchComplete(ctx, "batch-1", 0, time.Second)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/convert")
	h.OnResponse(ctx, "POST", "/convert", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	// Verify defaults are noop
	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Convert() should return NoopConvertHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customConvert := &testConvertHooks{}
	SetConvertHooks(customConvert)
	if Convert() != customConvert {
		t.Error("SetConvertHooks should set custom hooks")
	}

	customHTTP := testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset restores noop defaults
	Reset()
	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Reset() should restore NoopConvertHooks")
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	Reset()

	SetConvertHooks(nil)
	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("SetConvertHooks(nil) should keep the current hooks")
	}

	SetHTTPHooks(nil)
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("SetHTTPHooks(nil) should keep the current hooks")
	}
}
