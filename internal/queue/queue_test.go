package queue

import (
	"testing"
	"time"

	"github.com/cartella/internal/config"
	"github.com/cartella/internal/constants"

	"github.com/hibiken/asynq"
)

func TestNewClientDisabled(t *testing.T) {
	cases := []struct {
		name  string
		queue *config.QueueConfig
		redis *config.RedisConfig
	}{
		{"nil", nil, nil},
		{"queue off", &config.QueueConfig{}, &config.RedisConfig{Enabled: true}},
		{"redis off", &config.QueueConfig{Enabled: true}, &config.RedisConfig{}},
	}
	for _, tc := range cases {
		client := NewClient(tc.queue, tc.redis)
		if client.Enabled() {
			t.Fatalf("%s: client should be disabled", tc.name)
		}
		id, err := client.EnqueueCatalogSync(CatalogSyncPayload{Reason: constants.SyncReasonManual})
		if err != nil || id != "" {
			t.Fatalf("%s: disabled enqueue should be a no-op, got id=%q err=%v", tc.name, id, err)
		}
		if err := client.Close(); err != nil {
			t.Fatalf("%s: close failed: %v", tc.name, err)
		}
	}
}

func TestCatalogSyncTaskRoundTrip(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	task, err := NewCatalogSyncTask(CatalogSyncPayload{Reason: constants.SyncReasonSchedule, RequestedAt: at})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != TaskCatalogSync {
		t.Fatalf("unexpected task type: %s", task.Type())
	}
	payload, err := ParseCatalogSyncPayload(task)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if payload.Reason != constants.SyncReasonSchedule || !payload.RequestedAt.Equal(at) {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestParseCatalogSyncPayloadDefaults(t *testing.T) {
	payload, err := ParseCatalogSyncPayload(asynq.NewTask(TaskCatalogSync, nil))
	if err != nil {
		t.Fatalf("empty payload should parse: %v", err)
	}
	if payload.Reason != constants.SyncReasonManual {
		t.Fatalf("empty payload reason want manual got %q", payload.Reason)
	}
	if _, err := ParseCatalogSyncPayload(asynq.NewTask(TaskCatalogSync, []byte("{"))); err == nil {
		t.Fatalf("malformed payload should fail")
	}
}

func TestBuildServerConfig(t *testing.T) {
	opt, cfg := BuildServerConfig(nil, &config.RedisConfig{Host: " redis ", Port: 6380, DB: 2})
	if opt.Addr != "redis:6380" || opt.DB != 2 {
		t.Fatalf("unexpected redis opt: %+v", opt)
	}
	if cfg.Concurrency != 2 || cfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}

	_, cfg = BuildServerConfig(&config.QueueConfig{Concurrency: 5, Queues: map[string]int{"sync": 3}}, nil)
	if cfg.Concurrency != 5 || cfg.Queues["sync"] != 3 {
		t.Fatalf("queue config not applied: %+v", cfg)
	}
	if len(CatalogSyncOptions("")) != 3 {
		t.Fatalf("catalog sync options should carry queue, retry and uniqueness")
	}
}
