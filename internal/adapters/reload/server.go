// Package reload implements the dev server: it serves the output directory
// over HTTP and pushes reload payloads to browsers over a websocket.
package reload

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Reloader = (*Server)(nil)

// wsPath is the websocket endpoint browsers connect to.
const wsPath = "/__kiln/reload"

const writeTimeout = 5 * time.Second

// message is the wire envelope pushed to clients.
type message struct {
	Type    string                `json:"type"`
	Payload *domain.ReloadPayload `json:"payload,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// Server is the websocket live-reload server.
type Server struct {
	logger   ports.Logger
	upgrader websocket.Upgrader

	mu        sync.Mutex
	outputDir string
	clients   map[*websocket.Conn]struct{}
	closed    bool
	httpSrv   *http.Server
}

// NewServer creates a reload server.
func NewServer(logger ports.Logger) *Server {
	return &Server{
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// The dev server is local-only; cross-origin pages may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// SetOutputDir tells the server which directory it serves.
func (s *Server) SetOutputDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputDir = domain.StripLeadingDotSlash(domain.NormalizePath(dir))
}

// WatchPassthroughCopy announces passthrough copy targets. The file server
// already serves anything under the output directory, so this only logs the
// patterns for visibility.
func (s *Server) WatchPassthroughCopy(globs []string) {
	for _, glob := range globs {
		s.logger.Info("serving passthrough pattern " + glob)
	}
}

// Reload publishes a payload to connected clients.
func (s *Server) Reload(ctx context.Context, payload domain.ReloadPayload) error {
	return s.broadcast(ctx, message{Type: "reload", Payload: &payload})
}

// SendError forwards a build error to connected clients.
func (s *Server) SendError(ctx context.Context, buildErr error) error {
	return s.broadcast(ctx, message{Type: "error", Error: buildErr.Error()})
}

func (s *Server) broadcast(ctx context.Context, msg message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrReloadClosed
	}

	for conn := range s.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(msg); err != nil {
			// A dead client drops out of the set; the rest still get the
			// payload.
			_ = conn.Close()
			delete(s.clients, conn)
		}
	}
	return nil
}

// Serve starts the dev server on the given port and blocks until the context
// is cancelled or the server fails.
func (s *Server) Serve(ctx context.Context, port int) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrReloadClosed
	}
	dir := s.outputDir
	if dir == "" {
		dir = domain.DefaultOutputDir
	}

	mux := http.NewServeMux()
	mux.HandleFunc(wsPath, s.handleWS)
	mux.Handle("/", http.FileServer(http.Dir(dir)))

	srv := &http.Server{
		Addr:              net.JoinHostPort("", fmt.Sprintf("%d", port)),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.httpSrv = srv
	s.mu.Unlock()

	s.logger.Info(fmt.Sprintf("serving %s on http://localhost:%d", dir, port))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.Wrap(err, "dev server failed")
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "websocket upgrade failed"))
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = conn.Close()
		return
	}
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Drain reads so client close frames are processed; the server never
	// expects inbound messages.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.mu.Lock()
				delete(s.clients, conn)
				s.mu.Unlock()
				_ = conn.Close()
				return
			}
		}
	}()
}

// Close shuts the server down and disconnects clients.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	for conn := range s.clients {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(time.Second),
		)
		_ = conn.Close()
	}
	s.clients = make(map[*websocket.Conn]struct{})

	if s.httpSrv != nil {
		return s.httpSrv.Close()
	}
	return nil
}
