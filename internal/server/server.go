// Package server serves the status page and the WebSocket key stream.
package server

import (
	"bytes"
	"context"
	"io/fs"
	"net/http"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"go.uber.org/zap"

	"github.com/soar/padkeys/internal/hub"
)

const indexFile = "index.html"

type Server struct {
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
	frontendFS  fs.FS
	index       []byte
	addr        string
	httpServer  *http.Server
	logger      *zap.SugaredLogger
}

// New creates a server and minifies the frontend's index page once up front.
func New(h *hub.Hub, b *hub.Broadcaster, frontendFS fs.FS, addr string, logger *zap.SugaredLogger) (*Server, error) {
	index, err := minifyIndex(frontendFS)
	if err != nil {
		return nil, err
	}
	return &Server{
		hub:         h,
		broadcaster: b,
		frontendFS:  frontendFS,
		index:       index,
		addr:        addr,
		logger:      logger,
	}, nil
}

func minifyIndex(frontendFS fs.FS) ([]byte, error) {
	raw, err := fs.ReadFile(frontendFS, indexFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading frontend index")
	}

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)

	out, err := m.Bytes("text/html", raw)
	if err != nil {
		return nil, errors.Wrap(err, "minifying frontend index")
	}
	return out, nil
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", handleWebSocket(s.hub, s.broadcaster, s.logger))

	// Static files (frontend)
	fileServer := http.FileServer(http.FS(s.frontendFS))
	mux.Handle("/", s.serveIndex(fileServer))

	return mux
}

func (s *Server) serveIndex(next http.Handler) http.Handler {
	modTime := time.Now()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/"+indexFile {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeContent(w, r, indexFile, modTime, bytes.NewReader(s.index))
	})
}

func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Infof("HTTP server listening on %s", s.addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		s.logger.Info("Shutting down HTTP server...")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
