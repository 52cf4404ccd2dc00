package http

import (
	"time"

	"taskflow/internal/model"
	"taskflow/internal/task"
)

const exportFilePrefix = "taskflow-backup-"

// --- Request DTOs ---

type createReq struct {
	Title      string   `json:"title"       binding:"required,max=255"`
	Due        string   `json:"due"         binding:"max=32"`
	StartTime  string   `json:"start_time"  binding:"omitempty,len=5"`
	EndTime    string   `json:"end_time"    binding:"omitempty,len=5"`
	Priority   string   `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Project    string   `json:"project"     binding:"max=100"`
	Recurrence string   `json:"recurrence"`
	Weekdays   []string `json:"weekdays"    binding:"max=7"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:      r.Title,
		Due:        r.Due,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Priority:   r.Priority,
		Project:    r.Project,
		Recurrence: r.Recurrence,
		Weekdays:   r.Weekdays,
	}
}

type listReq struct {
	Filter string `form:"filter"`
	Query  string `form:"q"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Filter: r.Filter, Query: r.Query}
}

type agendaReq struct {
	Date string `form:"date"`
}

type updateProfileReq struct {
	Name           string `json:"name"            binding:"max=100"`
	ProfilePicture string `json:"profile_picture"`
}

func (r updateProfileReq) toInput() task.UpdateProfileInput {
	return task.UpdateProfileInput{Name: r.Name, ProfilePicture: r.ProfilePicture}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Due       string   `json:"due"`
	StartTime string   `json:"start_time,omitempty"`
	EndTime   string   `json:"end_time,omitempty"`
	Priority  string   `json:"priority"`
	Project   string   `json:"project"`
	Done      bool     `json:"done"`
	Recurring string   `json:"recurring,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	var weekdays []string
	for _, d := range t.Weekdays {
		weekdays = append(weekdays, string(d))
	}
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Due:       t.Due,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Priority:  string(t.Priority),
		Project:   t.Project,
		Done:      t.Done,
		Recurring: string(t.Recurring),
		Weekdays:  weekdays,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type createResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Tasks: newTaskResps(out.Tasks), Count: len(out.Tasks)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{Tasks: newTaskResps(out.Tasks), Total: out.Total}
}

type agendaItemResp struct {
	taskResp
	Time        string `json:"time"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
}

type agendaResp struct {
	Date  string           `json:"date"`
	Items []agendaItemResp `json:"items"`
}

func (h *handler) newAgendaResp(out task.AgendaOutput) agendaResp {
	items := make([]agendaItemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = agendaItemResp{
			taskResp:    newTaskResp(it.Task),
			Time:        it.TimeDisplay,
			Description: it.Description,
			Duration:    it.Duration,
		}
	}
	return agendaResp{Date: out.Date, Items: items}
}

type statsResp struct {
	TotalToday int `json:"total_today"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{TotalToday: out.TotalToday, Completed: out.Completed, Pending: out.Pending}
}

type weeklyPointResp struct {
	Day       string `json:"day"`
	Date      string `json:"date"`
	Value     int    `json:"value"`
	Highlight bool   `json:"highlight"`
}

type weeklyResp struct {
	Points []weeklyPointResp `json:"points"`
}

func (h *handler) newWeeklyResp(out task.WeeklyOutput) weeklyResp {
	points := make([]weeklyPointResp, len(out.Points))
	for i, p := range out.Points {
		points[i] = weeklyPointResp{Day: p.Day, Date: p.Date, Value: p.Value, Highlight: p.Highlight}
	}
	return weeklyResp{Points: points}
}

type profileResp struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

func (h *handler) newProfileResp(p model.Profile) profileResp {
	return profileResp{Name: p.Name, ProfilePicture: p.ProfilePicture}
}

type importResp struct {
	TaskCount      int  `json:"task_count"`
	ProfileUpdated bool `json:"profile_updated"`
}

func (h *handler) newImportResp(out task.ImportOutput) importResp {
	return importResp{TaskCount: out.TaskCount, ProfileUpdated: out.ProfileUpdated}
}

func exportFilename(now time.Time) string {
	return exportFilePrefix + now.Format("2006-01-02") + ".json"
}
