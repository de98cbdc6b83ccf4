package livereload

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elisdimitrova/psysite/internal/logging"
	"github.com/elisdimitrova/psysite/internal/ui"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsReload(t *testing.T) {
	hub := NewHub(logging.Discard())
	srv := httptest.NewServer(hub)
	defer srv.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.Reload()

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		typ, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.TextMessage, typ)
		assert.Equal(t, ReloadMessage, string(msg))
	}
}

func TestHubForgetsClosedClients(t *testing.T) {
	hub := NewHub(logging.Discard())
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubClose(t *testing.T) {
	hub := NewHub(logging.Discard())
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Equal(t, 0, hub.Clients())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestHubKeepAlive(t *testing.T) {
	hub := NewHub(logging.Discard())
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	var pings atomic.Int32
	conn.SetPingHandler(func(string) error {
		pings.Add(1)
		return nil
	})
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub.KeepAlive(ctx, ui.SystemClock(), 20*time.Millisecond)

	// Ping frames are only handled while reading.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	assert.Eventually(t, func() bool { return pings.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	w := NewWatcher(logging.Discard(), 100*time.Millisecond, func() { calls.Add(1) }, dir)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	for i := range 5 {
		name := filepath.Join(dir, "post"+string(rune('a'+i))+".md")
		require.NoError(t, os.WriteFile(name, []byte("# post"), 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "a burst of writes should trigger one reload")
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	w := NewWatcher(logging.Discard(), 50*time.Millisecond, func() { calls.Add(1) }, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)
	time.Sleep(100 * time.Millisecond)

	sub := filepath.Join(dir, "2024")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)

	before := calls.Load()
	time.Sleep(150 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "new.md"), []byte("# new"), 0o644))
	assert.Eventually(t, func() bool { return calls.Load() > before }, 3*time.Second, 20*time.Millisecond)
}

func TestWatcherMissingRoot(t *testing.T) {
	w := NewWatcher(logging.Discard(), 0, func() {}, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, w.Run(context.Background()))
}

func TestIgnored(t *testing.T) {
	assert.True(t, ignored("/content/.git"))
	assert.True(t, ignored("post.md~"))
	assert.True(t, ignored(".post.md.swp"))
	assert.False(t, ignored("/content/blog/post.md"))
}
