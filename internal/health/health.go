// Package health contains code for health checks.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// VersionResponse ...
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// Pinger pings external service.
type Pinger interface {
	// Ping returns object with meta information and error
	Ping(ctx context.Context) (interface{}, error)
	// Name returns name of pinger
	Name() string
}

type subjectPinger struct {
	f func(ctx context.Context) error
	s string
}

// Ping ...
func (p subjectPinger) Ping(ctx context.Context) (interface{}, error) {
	return nil, p.f(ctx)
}

func (p subjectPinger) Name() string {
	return p.s
}

// SubjectPinger returns wrapper over Ping function which adds subject to error message.
// It is helpful for external Ping function, e.g. (sql.DB).Ping.
func SubjectPinger(s string, f func(ctx context.Context) error) Pinger {
	return subjectPinger{
		f: f,
		s: s,
	}
}

// Handler runs all pingers concurrently and reports their results along with
// build information. Errors are marshalled as strings.
func Handler(timeout time.Duration, p ...Pinger) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		gr, ctx := errgroup.WithContext(ctx)

		var mu sync.Mutex
		resp := struct {
			VersionResponse
			Meta   map[string]interface{} `json:"meta"`
			Errors map[string]string      `json:"errors"`
		}{
			VersionResponse: VersionResponse{Version: version, Commit: commit},
			Meta:            map[string]interface{}{},
			Errors:          map[string]string{},
		}

		failed := false

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				m, err := v.Ping(ctx)
				if err != nil {
					logrus.WithError(err).Error("health check failed")
				}

				mu.Lock()
				resp.Meta[v.Name()] = m
				if err != nil {
					resp.Errors[v.Name()] = err.Error()
					failed = true
				}
				mu.Unlock()

				return nil
			})
		}

		_ = gr.Wait()

		if failed {
			w.WriteHeader(http.StatusInternalServerError)
		}
		data, _ := json.Marshal(resp)
		w.Write(data) // nolint:errcheck
	}
}
