package http

import "taskflow/internal/task"

type pushResp struct {
	Synced bool `json:"synced"`
}

type loadResp struct {
	TaskCount      int    `json:"task_count"`
	ProfileUpdated bool   `json:"profile_updated"`
	LastSync       string `json:"last_sync,omitempty"`
}

func (h *handler) newLoadResp(out task.ImportOutput, lastSync string) loadResp {
	return loadResp{
		TaskCount:      out.TaskCount,
		ProfileUpdated: out.ProfileUpdated,
		LastSync:       lastSync,
	}
}
