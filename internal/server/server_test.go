package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	s := New(Options{WriteTimeout: 5 * time.Second})
	if s.opts.WriteTimeout != 5*time.Second {
		t.Fatalf("explicit timeout overridden: %v", s.opts.WriteTimeout)
	}
	if s.opts.ReadHeaderTimeout != defaultOptions.ReadHeaderTimeout || s.opts.IdleTimeout != defaultOptions.IdleTimeout {
		t.Fatalf("defaults not applied: %+v", s.opts)
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := New(Options{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	errc := make(chan error, 1)
	go func() { errc <- s.Serve(ln, handler) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + ln.Addr().String())
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("unexpected body %q", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
}

func TestShutdown_NotStarted(t *testing.T) {
	if err := New(Options{}).Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
