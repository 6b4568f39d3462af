// Package middleware ...
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/orgablast/sembconnect/internal/middleware/memory"
)

// Storage ...
type Storage interface {
	Get(key string) []byte
	Set(key string, content []byte, duration time.Duration)
}

// Cached caches successful GET responses by request uri for ttl. Errors and
// non-GET requests are passed through uncached.
func Cached(ttl time.Duration, handler func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
	storage := memory.NewStorage()

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			handler(w, r)
			return
		}

		if content := storage.Get(r.RequestURI); content != nil {
			_, _ = w.Write(content)
			return
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content := c.Body.Bytes()

		if c.Code == http.StatusOK {
			storage.Set(r.RequestURI, content, ttl)
		}

		_, _ = w.Write(content)
	}
}
