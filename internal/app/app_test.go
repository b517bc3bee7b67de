package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cartella/internal/config"
	"github.com/cartella/internal/models"
	"github.com/cartella/internal/provider"

	"go.uber.org/zap"
)

type stubService struct {
	name    string
	startFn func(ctx context.Context) error
	stopped atomic.Bool
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Start(ctx context.Context) error { return s.startFn(ctx) }

func (s *stubService) Stop(ctx context.Context) error {
	s.stopped.Store(true)
	return nil
}

type countingSyncer struct {
	calls atomic.Int32
	err   error
}

func (s *countingSyncer) SyncCatalog(ctx context.Context) (int, error) {
	s.calls.Add(1)
	return 3, s.err
}

func TestRunnerStopsAllServicesOnFailure(t *testing.T) {
	blocking := &stubService{name: "blocking", startFn: func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}}
	failing := &stubService{name: "failing", startFn: func(ctx context.Context) error {
		return errors.New("boom")
	}}

	runner := NewRunner(blocking, failing)
	if names := runner.Names(); len(names) != 2 || names[1] != "failing" {
		t.Fatalf("unexpected names: %v", names)
	}
	err := runner.Run(context.Background(), time.Second, zap.NewNop().Sugar())
	if err == nil || err.Error() != "failing: boom" {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if !blocking.stopped.Load() || !failing.stopped.Load() {
		t.Fatalf("all services should be stopped")
	}
}

func TestRunnerCancelledContextIsClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	svc := &stubService{name: "blocking", startFn: func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}}
	done := make(chan error, 1)
	go func() { done <- NewRunner(svc).Run(ctx, time.Second, nil) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("cancellation should not be an error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("runner did not exit")
	}
}

func TestCatalogSyncServiceSyncsOnceAndWaits(t *testing.T) {
	syncer := &countingSyncer{err: errors.New("offline")}
	svc := NewCatalogSyncService(syncer)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- svc.Start(ctx) }()
	deadline := time.Now().Add(time.Second)
	for syncer.calls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("sync not attempted")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("sync failure must not stop the service: %v", err)
	}
	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if syncer.calls.Load() != 1 {
		t.Fatalf("expected one sync, got %d", syncer.calls.Load())
	}
}

func newTestContainer(t *testing.T, cfg *config.Config) *provider.Container {
	t.Helper()
	dsn := fmt.Sprintf("file:app_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, nil)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	c := provider.NewContainerWithDB(cfg, db)
	t.Cleanup(c.Close)
	return c
}

func TestBuildRunnerModes(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: "0"}}
	c := newTestContainer(t, cfg)

	runner, err := BuildRunner(cfg, c, ModeAPI)
	if err != nil {
		t.Fatalf("api mode failed: %v", err)
	}
	if names := runner.Names(); len(names) != 1 || names[0] != "http" {
		t.Fatalf("api mode should only run http")
	}

	if _, err := BuildRunner(cfg, c, ModeBackground); err == nil {
		t.Fatalf("background mode without redis or sync should fail")
	}

	cfg.Catalog.SyncOnStart = true
	runner, err = BuildRunner(cfg, c, ModeAll)
	if err != nil {
		t.Fatalf("all mode failed: %v", err)
	}
	if names := runner.Names(); len(names) != 2 || names[1] != "catalog_sync" {
		t.Fatalf("unexpected services for all mode")
	}

	cfg.Catalog.SyncOnStart = false
	cfg.Queue.Enabled = true
	if _, err := BuildRunner(cfg, c, ModeBackground); err == nil {
		t.Fatalf("queue without redis should fail")
	}
	cfg.Redis.Enabled = true
	runner, err = BuildRunner(cfg, c, ModeBackground)
	if err != nil {
		t.Fatalf("background mode with queue failed: %v", err)
	}
	if names := runner.Names(); len(names) != 1 || names[0] != "worker" {
		t.Fatalf("unexpected services for background mode: %v", names)
	}

	if _, err := BuildRunner(nil, c, ModeAll); err == nil {
		t.Fatalf("nil config should fail")
	}
}

func TestHTTPServiceLifecycle(t *testing.T) {
	svc := NewHTTPService("127.0.0.1:0", http.NotFoundHandler())
	done := make(chan error, 1)
	go func() { done <- svc.Start(context.Background()) }()
	deadline := time.Now().Add(time.Second)
	for svc.Addr() == "127.0.0.1:0" {
		if time.Now().After(deadline) {
			t.Fatalf("server did not start listening")
		}
		time.Sleep(time.Millisecond)
	}
	resp, err := http.Get("http://" + svc.Addr() + "/missing")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status want 404 got %d", resp.StatusCode)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := svc.Stop(stopCtx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("start should return cleanly after shutdown, got %v", err)
	}
}
