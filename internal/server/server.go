// Package server exposes the classification pipeline over HTTP. The routes
// and response envelopes follow the original emotion-detection REST API:
// prediction, batch prediction, conversation analysis, history, and service
// metadata.
package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jlafferty/emotion"
	"github.com/jlafferty/emotion/internal/history"
)

const (
	serviceName    = "Emotion Detection API"
	serviceVersion = "1.0.0"

	defaultMaxTextLength = 1000
	defaultMaxBatchSize  = 50
	defaultHistoryLimit  = 20
	maxHistoryLimit      = 100
)

// Options bound the request surface.
type Options struct {
	MaxTextLength int
	MaxBatchSize  int
}

// A Server routes HTTP requests to the predictor and the history store.
type Server struct {
	log       *zap.Logger
	predictor *emotion.Predictor
	history   history.Store
	opts      Options
	mux       *http.ServeMux
}

// New builds a Server. Zero option fields fall back to the API's documented
// limits (1000 characters, 50 texts per batch).
func New(log *zap.Logger, predictor *emotion.Predictor, store history.Store, opts Options) *Server {
	if opts.MaxTextLength <= 0 {
		opts.MaxTextLength = defaultMaxTextLength
	}
	if opts.MaxBatchSize <= 0 {
		opts.MaxBatchSize = defaultMaxBatchSize
	}

	s := &Server{
		log:       log,
		predictor: predictor,
		history:   store,
		opts:      opts,
		mux:       http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.method(http.MethodGet, s.handleHealth))
	s.mux.HandleFunc("/emotions", s.method(http.MethodGet, s.handleEmotions))
	s.mux.HandleFunc("/predict", s.method(http.MethodPost, s.handlePredict))
	s.mux.HandleFunc("/predict/batch", s.method(http.MethodPost, s.handlePredictBatch))
	s.mux.HandleFunc("/history", s.method(http.MethodGet, s.handleHistory))
	s.mux.HandleFunc("/history/clear", s.method(http.MethodPost, s.handleHistoryClear))
	s.mux.HandleFunc("/analyze", s.method(http.MethodPost, s.handleAnalyze))
	s.mux.HandleFunc("/", s.handleNotFound)
}

// Handler returns the full middleware chain.
func (s *Server) Handler() http.Handler {
	return s.withCORS(s.withLogging(s.mux))
}

func (s *Server) method(want string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != want {
			s.fail(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		next(w, r)
	}
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
