package relay

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"spdhec/internal/curve"
	"spdhec/internal/domain"
	"spdhec/internal/log"
	"spdhec/internal/protocol/ecdh"
)

type session struct {
	params domain.SessionParams
	curve  *curve.Curve
	keys   map[domain.Party]domain.PublishedKey
}

// Server is an in-memory relay. Published values are write-once.
type Server struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*session
	router   *chi.Mux
}

// NewServer returns a relay with its routes registered.
func NewServer() *Server {
	s := &Server{sessions: make(map[domain.SessionID]*session)}
	s.initRouter()
	return s
}

// Handler returns the relay router.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) initRouter() {
	s.router = chi.NewRouter()
	s.router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler)
	s.router.Use(accessLog)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))

	log.Debugw("register handler", "endpoint", PingEndpoint, "method", "GET")
	s.router.Get(PingEndpoint, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	log.Debugw("register handler", "endpoint", ParamsEndpoint, "method", "POST")
	s.router.Post(ParamsEndpoint, s.publishParams)
	log.Debugw("register handler", "endpoint", ParamsEndpoint, "method", "GET")
	s.router.Get(ParamsEndpoint, s.fetchParams)
	log.Debugw("register handler", "endpoint", KeyEndpoint, "method", "POST")
	s.router.Post(KeyEndpoint, s.publishKey)
	log.Debugw("register handler", "endpoint", KeyEndpoint, "method", "GET")
	s.router.Get(KeyEndpoint, s.fetchKey)
}

// accessLog records method, path, remote, status, bytes and duration.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debugw("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
		)
	})
}

func (s *Server) publishParams(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(chi.URLParam(r, SessionURLParam))

	var p domain.SessionParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		ErrMalformedBody.WithErr(err).Write(w)
		return
	}
	c, err := curve.FromParams(p.Curve)
	if err != nil {
		ErrInvalidCurve.WithErr(err).Write(w)
		return
	}
	if err := ecdh.ValidateGenerator(c, p.Generator); err != nil {
		ErrInvalidGenerator.WithErr(err).Write(w)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; ok {
		ErrAlreadyPublished.Write(w)
		return
	}
	s.sessions[id] = &session{params: p, curve: c, keys: make(map[domain.Party]domain.PublishedKey)}
	log.Infow("session opened", "session", id, "curve", p.Curve.String(), "generator", p.Generator.String())
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) fetchParams(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(chi.URLParam(r, SessionURLParam))

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		ErrResourceNotFound.Write(w)
		return
	}
	httpWriteJSON(w, sess.params)
}

func (s *Server) publishKey(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(chi.URLParam(r, SessionURLParam))
	party, err := domain.ParseParty(chi.URLParam(r, PartyURLParam))
	if err != nil {
		ErrInvalidParty.WithErr(err).Write(w)
		return
	}

	var k domain.PublishedKey
	if err := json.NewDecoder(r.Body).Decode(&k); err != nil {
		ErrMalformedBody.WithErr(err).Write(w)
		return
	}
	if k.Party != party {
		ErrInvalidParty.Write(w)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		ErrResourceNotFound.Write(w)
		return
	}
	if _, dup := sess.keys[party]; dup {
		ErrAlreadyPublished.Write(w)
		return
	}
	raw, err := hex.DecodeString(k.Point)
	if err != nil {
		ErrInvalidPoint.WithErr(err).Write(w)
		return
	}
	pt, err := sess.curve.Decompress(raw)
	if err != nil {
		ErrInvalidPoint.WithErr(err).Write(w)
		return
	}
	if err := ecdh.ValidatePublicKey(sess.curve, pt); err != nil {
		ErrInvalidPoint.WithErr(err).Write(w)
		return
	}
	sess.keys[party] = k
	log.Infow("key published", "session", id, "party", party, "point", pt.String())
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) fetchKey(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(chi.URLParam(r, SessionURLParam))
	party := domain.Party(chi.URLParam(r, PartyURLParam))

	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		ErrResourceNotFound.Write(w)
		return
	}
	k, ok := sess.keys[party]
	if !ok {
		ErrResourceNotFound.Write(w)
		return
	}
	httpWriteJSON(w, k)
}

// httpWriteJSON writes data as a 200 JSON response.
func httpWriteJSON(w http.ResponseWriter, data any) {
	jdata, err := json.Marshal(data)
	if err != nil {
		ErrGenericServerError.WithErr(err).Write(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(append(jdata, '\n')); err != nil {
		log.Warnw("failed to write http response", "error", err.Error())
	}
}
