package constants

// 队列名称
const (
	QueueDefault = "default"
)

// 异步任务类型
const (
	TaskCatalogSync = "catalog:sync"
)

// 目录同步触发来源
const (
	SyncReasonManual   = "manual"
	SyncReasonSchedule = "schedule"
)
