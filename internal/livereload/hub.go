// Package livereload tells open browser tabs to reload when the site's
// content changes on disk.
package livereload

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/elisdimitrova/psysite/internal/ui"
)

// ReloadMessage is the text frame that makes a page reload itself.
const ReloadMessage = "reload"

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(messageType, data)
}

// Hub keeps the websocket connections of open pages.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	logger  *log.Logger
	pinger  *ui.Toggler
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// ServeHTTP upgrades the request and keeps the connection until the page
// goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	c := &client{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Debug("live reload client connected", "remote", r.RemoteAddr)

	defer h.remove(c)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("live reload read", "err", err)
			}
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.conn.Close()
	}
}

func (h *Hub) snapshot() []*client {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	return out
}

// Broadcast sends a text message to every connected page. Connections that
// fail to take it are dropped.
func (h *Hub) Broadcast(msg string) {
	for _, c := range h.snapshot() {
		if err := c.write(websocket.TextMessage, []byte(msg)); err != nil {
			h.logger.Debug("dropping live reload client", "err", err)
			h.remove(c)
		}
	}
}

// Reload tells every page to reload.
func (h *Hub) Reload() {
	n := h.Clients()
	h.Broadcast(ReloadMessage)
	h.logger.Info("reload sent", "clients", n)
}

// Clients returns the number of connected pages.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// KeepAlive pings every page each interval until ctx is done, so idle
// connections survive proxies.
func (h *Hub) KeepAlive(ctx context.Context, clock ui.Clock, interval time.Duration) {
	h.mu.Lock()
	if h.pinger != nil {
		h.mu.Unlock()
		return
	}
	h.pinger = ui.NewToggler(clock, interval, func(bool) { h.ping() })
	p := h.pinger
	h.mu.Unlock()
	p.Start(ctx)
}

func (h *Hub) ping() {
	for _, c := range h.snapshot() {
		c.mu.Lock()
		err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
		c.mu.Unlock()
		if err != nil {
			h.remove(c)
		}
	}
}

// Close disconnects every page.
func (h *Hub) Close() {
	h.mu.Lock()
	p := h.pinger
	h.mu.Unlock()
	if p != nil {
		p.Stop()
	}
	for _, c := range h.snapshot() {
		c.mu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
		c.mu.Unlock()
		h.remove(c)
	}
}
