package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Render hooks
	r := NoopRenderHooks{}
	r.OnLayoutStart(ctx, "CAL-BLOCK-001", 3)
	r.OnLayoutComplete(ctx, "CAL-BLOCK-001", 5, time.Second, nil)
	r.OnDrawStart(ctx, "CAL-BLOCK-001")
	r.OnDrawComplete(ctx, "CAL-BLOCK-001", time.Second, nil)
	r.OnExportStart(ctx, []string{"svg"})
	r.OnExportComplete(ctx, []string{"svg"}, time.Second, nil)

	// Quality hooks
	q := NoopQualityHooks{}
	q.OnLabelFallback(ctx, "FBH-1", 7)
	q.OnScaleClamped(ctx, "top", 5.2, 2.0)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Quality().(NoopQualityHooks); !ok {
		t.Error("Quality() should return NoopQualityHooks by default")
	}

	// Set custom hooks
	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customQuality := &testQualityHooks{}
	SetQualityHooks(customQuality)
	if Quality() != customQuality {
		t.Error("SetQualityHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)

	// Setting nil should be ignored
	SetRenderHooks(nil)

	if Render() != custom {
		t.Error("SetRenderHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testRenderHooks struct{ NoopRenderHooks }
type testQualityHooks struct{ NoopQualityHooks }
