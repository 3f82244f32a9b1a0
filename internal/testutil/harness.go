package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/tircore/internal/ctxlog"
	"github.com/specialistvlad/tircore/internal/nativetags"
	"github.com/specialistvlad/tircore/internal/tag"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Count returns how many times substr occurs in the captured output.
func (b *SafeBuffer) Count(substr string) int {
	return strings.Count(b.String(), substr)
}

// NewContext returns a context carrying a debug-level text logger that
// writes into the returned buffer. Set TIRCORE_TEST_LOGS=true to dump the
// captured output when the test finishes.
func NewContext(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		if os.Getenv("TIRCORE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return ctxlog.WithLogger(context.Background(), logger), logBuffer
}

// Logger returns a logger built the same way as the one NewContext carries.
func Logger(t *testing.T) *slog.Logger {
	t.Helper()
	ctx, _ := NewContext(t)
	return ctxlog.FromContext(ctx)
}

// NativeTags holds an initialized native tag registry and its authority.
type NativeTags struct {
	Manager  *tag.Manager
	Registry *nativetags.Registry
	Tags     *nativetags.Tags
}

// NewNativeTags builds and initializes a native tag registry backed by a
// fresh tag.Manager.
func NewNativeTags(t *testing.T) *NativeTags {
	t.Helper()

	ctx, _ := NewContext(t)
	manager := tag.NewManager(ctxlog.FromContext(ctx))
	reg := nativetags.New(manager)
	require.NoError(t, reg.InitializeNativeTags(ctx))

	return &NativeTags{
		Manager:  manager,
		Registry: reg,
		Tags:     reg.Get(),
	}
}
