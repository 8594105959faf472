package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheckReflectsServerState(t *testing.T) {
	cases := []struct {
		name   string
		state  ServerState
		status int
	}{
		{"ready", ServerStateReady, http.StatusOK},
		{"grace period", ServerStateInGracePeriod, http.StatusServiceUnavailable},
		{"cleanup period", ServerStateInCleanupPeriod, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &HTTP{}
			h.setState(tc.state)

			rec := httptest.NewRecorder()
			h.healthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestServerStateConcurrentAccess(t *testing.T) {
	h := &HTTP{}
	h.setState(ServerStateReady)

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			h.setState(ServerStateInGracePeriod)
		}()

		go func() {
			defer wg.Done()

			rec := httptest.NewRecorder()
			h.healthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		}()
	}

	wg.Wait()

	assert.Equal(t, ServerStateInGracePeriod, h.State())
}
