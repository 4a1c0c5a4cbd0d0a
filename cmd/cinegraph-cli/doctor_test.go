package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// newHealthServer serves the liveness payload the server emits, so the doctor
// checks stay in lockstep with the real health contract.
func newHealthServer(t *testing.T, store string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/health" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"0.3.0","store":"` + store + `","uptime_seconds":1.5}`)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setDoctorURL(t *testing.T, url string) {
	t.Helper()
	old := flagURL
	flagURL = url
	t.Cleanup(func() { flagURL = old })
}

func TestRunDoctorHealthyServer(t *testing.T) {
	srv := newHealthServer(t, "connected")
	setDoctorURL(t, srv.URL)

	// A reachable server with a connected store passes even when no config
	// file exists.
	if err := runDoctor(); err != nil {
		t.Fatalf("runDoctor() = %v, want nil", err)
	}
}

func TestRunDoctorStoreDisconnected(t *testing.T) {
	srv := newHealthServer(t, "disconnected")
	setDoctorURL(t, srv.URL)

	if err := runDoctor(); err == nil {
		t.Fatal("runDoctor() = nil, want failed-check error for a disconnected store")
	}
}

func TestRunDoctorServerUnreachable(t *testing.T) {
	srv := newHealthServer(t, "connected")
	srv.Close()
	setDoctorURL(t, srv.URL)

	if err := runDoctor(); err == nil {
		t.Fatal("runDoctor() = nil, want failed-check error for an unreachable server")
	}
}
