package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"
)

func newTestServer(h http.Handler) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(h, Options{
		Port:            0,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}, logger)
}

func TestServer_RunServesAndShutsDown(t *testing.T) {
	srv := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	var order []string
	srv.OnShutdown("store", func(ctx context.Context) error {
		order = append(order, "store")
		return nil
	})
	srv.OnShutdown("cache", func(ctx context.Context) error {
		order = append(order, "cache")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case <-srv.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get("http://" + srv.Addr() + "/")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("status = %d, want 418", resp.StatusCode)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	if len(order) != 2 || order[0] != "cache" || order[1] != "store" {
		t.Errorf("shutdown order = %v, want [cache store]", order)
	}
}

func TestServer_ShutdownErrorsAreJoined(t *testing.T) {
	srv := newTestServer(http.NotFoundHandler())

	errStore := errors.New("store close failed")
	srv.OnShutdown("store", func(ctx context.Context) error { return errStore })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	<-srv.Ready()
	cancel()

	err := <-done
	if !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestServer_AddrBeforeRun(t *testing.T) {
	srv := newTestServer(http.NotFoundHandler())
	if srv.Addr() != ":0" {
		t.Errorf("Addr() = %q, want :0", srv.Addr())
	}
}
