package queue

import (
	"encoding/json"
	"time"

	"github.com/cartella/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCatalogSync 目录同步任务
	TaskCatalogSync = constants.TaskCatalogSync
)

// CatalogSyncPayload 目录同步任务载荷
type CatalogSyncPayload struct {
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewCatalogSyncTask 创建目录同步任务
func NewCatalogSyncTask(payload CatalogSyncPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCatalogSync, body), nil
}

// ParseCatalogSyncPayload 解析目录同步任务载荷，空载荷视为手动触发
func ParseCatalogSyncPayload(task *asynq.Task) (CatalogSyncPayload, error) {
	var payload CatalogSyncPayload
	if task == nil || len(task.Payload()) == 0 {
		payload.Reason = constants.SyncReasonManual
		return payload, nil
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, err
	}
	if payload.Reason == "" {
		payload.Reason = constants.SyncReasonManual
	}
	return payload, nil
}
