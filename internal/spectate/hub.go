// Package spectate streams a running game to websocket viewers as plain
// text frames.
package spectate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/loop-arcade/internal/loop"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second

	// sendBuffer is how many frames a viewer may fall behind before it is
	// dropped.
	sendBuffer = 8
)

type viewer struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (v *viewer) close() {
	v.once.Do(func() { close(v.done) })
}

// Hub is a frame observer that fans frames out to every connected viewer.
// The driver never waits on the network: a viewer whose buffer is full is
// disconnected.
type Hub struct {
	every    uint64
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	viewers map[*viewer]struct{}
	closed  bool
}

// NewHub creates a hub that broadcasts every nth frame.
func NewHub(every int, logger *log.Logger) *Hub {
	if every < 1 {
		every = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		every:  uint64(every),
		logger: logger.WithPrefix("spectate"),
		upgrader: websocket.Upgrader{
			// Viewers are read-only, any origin may watch.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		viewers: make(map[*viewer]struct{}),
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

func (h *Hub) Observe(f loop.Frame) {
	if f.Screen == nil || f.Tick%h.every != 0 {
		return
	}

	h.mu.Lock()
	n := len(h.viewers)
	h.mu.Unlock()
	if n == 0 {
		return
	}

	status := fmt.Sprintf("%s  score %d", f.GameID, f.Result.State.Score)
	if f.Result.State.GameOver {
		status += "  GAME OVER"
	}
	h.broadcast([]byte(status + "\n" + f.Screen.String()))
}

func (h *Hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for v := range h.viewers {
		select {
		case v.send <- msg:
		default:
			h.logger.Debug("dropping slow viewer")
			delete(h.viewers, v)
			v.close()
		}
	}
}

func (h *Hub) add(v *viewer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.viewers[v] = struct{}{}
	return true
}

func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	delete(h.viewers, v)
	h.mu.Unlock()
	v.close()
}

// ServeHTTP upgrades the request and streams frames until the viewer leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "err", err)
		return
	}

	v := &viewer{conn: conn, send: make(chan []byte, sendBuffer), done: make(chan struct{})}
	if !h.add(v) {
		conn.Close()
		return
	}
	h.logger.Info("viewer joined", "remote", r.RemoteAddr)

	go h.writePump(v)
	h.readPump(v)
	h.logger.Info("viewer left", "remote", r.RemoteAddr)
}

// readPump only exists to process control frames and notice disconnects.
func (h *Hub) readPump(v *viewer) {
	defer h.remove(v)

	v.conn.SetReadLimit(512)
	_ = v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error {
		return v.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(v *viewer) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		v.conn.Close()
	}()

	for {
		select {
		case msg := <-v.send:
			_ = v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.remove(v)
				return
			}
		case <-ticker.C:
			_ = v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(v)
				return
			}
		case <-v.done:
			_ = v.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// Close disconnects every viewer and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for v := range h.viewers {
		delete(h.viewers, v)
		v.close()
	}
}

// Handler serves the hub at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return mux
}

// ListenAndServe serves the hub on addr until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler(), ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	h.logger.Info("spectators welcome", "addr", addr, "path", "/ws")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
