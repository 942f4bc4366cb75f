// Package idempotency provides a replay middleware for creation endpoints.
//
// When a request carries an X-Idempotency-Key header, the first response is
// captured and cached; any retry with the same key receives the stored
// response instead of re-executing the handler. Requests without the header
// pass through untouched.
package idempotency

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/microshop/services/internal/pkg/cache"
)

// HeaderKey is the request header carrying the client-chosen key.
const HeaderKey = "X-Idempotency-Key"

// ReplayHeader marks responses served from the cache.
const ReplayHeader = "X-Idempotent-Replay"

const defaultTTL = 24 * time.Hour

type storedResponse struct {
	Status      int             `json:"status"`
	ContentType string          `json:"content_type"`
	Body        json.RawMessage `json:"body"`
}

// Middleware caches responses keyed by X-Idempotency-Key.
type Middleware struct {
	cache cache.Cache
	ttl   time.Duration
}

// New returns a Middleware storing responses in c for 24 hours.
func New(c cache.Cache) *Middleware {
	return &Middleware{cache: c, ttl: defaultTTL}
}

// Handler is the chi middleware function.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(HeaderKey)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}

		cacheKey := m.cache.GenerateKey("create", key)
		if stored, ok := m.lookup(r.Context(), cacheKey); ok {
			w.Header().Set("Content-Type", stored.ContentType)
			w.Header().Set(ReplayHeader, "true")
			w.WriteHeader(stored.Status)
			_, _ = w.Write(stored.Body)
			return
		}

		var body bytes.Buffer
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Tee(&body)

		next.ServeHTTP(ww, r)

		// Server-side failures are not cached so the client can retry them.
		statusCode := ww.Status()
		if statusCode == 0 {
			statusCode = http.StatusOK
		}
		if statusCode >= http.StatusInternalServerError {
			return
		}
		m.store(r.Context(), cacheKey, storedResponse{
			Status:      statusCode,
			ContentType: ww.Header().Get("Content-Type"),
			Body:        append(json.RawMessage(nil), body.Bytes()...),
		})
	})
}

func (m *Middleware) lookup(ctx context.Context, cacheKey string) (storedResponse, bool) {
	raw, err := m.cache.Get(ctx, cacheKey)
	if err != nil {
		slog.WarnContext(ctx, "idempotency cache read failed", "error", err)
		return storedResponse{}, false
	}
	if raw == "" {
		return storedResponse{}, false
	}
	var stored storedResponse
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		slog.WarnContext(ctx, "idempotency cache entry corrupt", "error", err)
		return storedResponse{}, false
	}
	return stored, true
}

func (m *Middleware) store(ctx context.Context, cacheKey string, stored storedResponse) {
	raw, err := json.Marshal(stored)
	if err != nil {
		slog.WarnContext(ctx, "idempotency response marshal failed", "error", err)
		return
	}
	if err := m.cache.Set(ctx, cacheKey, string(raw), m.ttl); err != nil {
		slog.WarnContext(ctx, "idempotency cache write failed", "error", err)
	}
}
