package drawsrv

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tutils/lcgrand/counter"
	"github.com/tutils/lcgrand/lcg"
	"github.com/tutils/lcgrand/seed"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

// ErrConflictingSeeds is returned when a query names more than one of
// seed, label and session.
var ErrConflictingSeeds = errors.New("drawsrv: only one of seed, label, session may be set")

// Server hands out one generator per websocket connection.
type Server struct {
	opts     Options
	srv      *http.Server
	sessions int64

	mu     sync.Mutex
	active map[*websocket.Conn]struct{}
	closed bool
	wg     sync.WaitGroup
}

// New creates a Server listening on a ws:// address.
func New(opts ...Option) (*Server, error) {
	opt := newOptions(opts...)

	u, err := url.Parse(opt.addr)
	if err != nil {
		return nil, fmt.Errorf("drawsrv: listen address: %w", err)
	}

	s := &Server{
		opts:   *opt,
		active: make(map[*websocket.Conn]struct{}),
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	mux := http.NewServeMux()
	mux.Handle(path, s)
	s.srv = &http.Server{
		Addr:    u.Host,
		Handler: mux,
	}

	return s, nil
}

// Counter returns the draw counter.
func (s *Server) Counter() counter.Counter {
	return s.opts.counter
}

// NewGenerator builds a session generator from the request query. At most
// one of seed (integer, UUID or label), label and session (UUID) may be
// set; stream selects a derived sub-stream. Without any the server clock
// seeds the session.
func (s *Server) NewGenerator(q url.Values) (*lcg.Generator, error) {
	var (
		v   int64
		set int
	)
	if raw := q.Get("seed"); raw != "" {
		n, err := seed.Parse(raw)
		if err != nil {
			return nil, err
		}
		v = n
		set++
	}
	if label := q.Get("label"); label != "" {
		v = seed.FromLabel(label)
		set++
	}
	if raw := q.Get("session"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		v = seed.FromUUID(id)
		set++
	}

	switch set {
	case 0:
		return lcg.New(lcg.WithClock(s.opts.clock)), nil
	case 1:
	default:
		return nil, ErrConflictingSeeds
	}

	if st := q.Get("stream"); st != "" {
		n, err := strconv.Atoi(st)
		if err != nil {
			return nil, fmt.Errorf("stream: %w", err)
		}
		v = seed.Derive(v, n)
	}
	return lcg.New(lcg.WithSeed(v)), nil
}

// track registers conn, or reports false once the server is shutting down.
func (s *Server) track(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.active[conn] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.active, conn)
	s.mu.Unlock()
	s.wg.Done()
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g, err := s.NewGenerator(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	if !s.track(conn) {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeTimeout))
		return
	}
	defer s.untrack(conn)

	id := atomic.AddInt64(&s.sessions, 1)
	sess := NewSession(g)
	log.Printf("[INFO] session %d opened from %s, seed %d", id, r.RemoteAddr, sess.Seed())

	done := make(chan struct{})
	keepAlive(conn)
	go startPing(conn, done)
	defer close(done)

	if err := s.serve(conn, sess); err != nil {
		log.Printf("[WARN] session %d: %v", id, err)
	}
	log.Printf("[INFO] session %d closed after %d draws, server rate %d/s",
		id, sess.Draws(), s.opts.counter.RatePerSec())
}

func (s *Server) serve(conn *websocket.Conn, sess *Session) error {
	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			if s.shuttingDown() {
				return nil
			}
			return err
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		if typ != websocket.TextMessage {
			continue
		}

		before := sess.Draws()
		resp := sess.HandleMessage(data)
		if n := sess.Draws() - before; n > 0 {
			s.opts.counter.Add(n)
		}

		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			return err
		}
	}
}

func (s *Server) shuttingDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// ListenAndServe blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	log.Printf("[INFO] draw server listening on %s", s.opts.addr)
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting sessions, closes the open ones and waits for
// their handlers to return or ctx to end.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)

	s.mu.Lock()
	s.closed = true
	for conn := range s.active {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeTimeout))
		conn.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	return err
}

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

func keepAlive(conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
}

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
