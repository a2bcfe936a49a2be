package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, b *syncBuffer, substr string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(b.String(), substr) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no %q record within deadline, got %q", substr, b.String())
}

func TestStartMemLogger_ReportsPlatformRSSKey(t *testing.T) {
	var out syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartMemLogger(ctx, 10*time.Millisecond, slog.New(slog.NewTextHandler(&out, nil)))
	waitFor(t, &out, "msg=memstats")
	if !strings.Contains(out.String(), " "+rssKey+"=") {
		t.Fatalf("expected %s attribute, got %q", rssKey, out.String())
	}
}

func TestProcessRSS_NonZero(t *testing.T) {
	rss, err := processRSS()
	if err != nil {
		t.Fatalf("rss: %v", err)
	}
	if rss == 0 {
		t.Fatalf("expected a resident size")
	}
}

func TestStartGoroutineLogger_Logs(t *testing.T) {
	var out syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartGoroutineLogger(ctx, 10*time.Millisecond, slog.New(slog.NewTextHandler(&out, nil)))
	waitFor(t, &out, "msg=goroutine-stacks")
}
