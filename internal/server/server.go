// Package server exposes the task collection over a local HTTP API. The
// API mirrors the CLI: tasks, toggles, progress, and AI breakdown.
package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"zendo/internal/task"
	"zendo/llm"
	"zendo/models"
)

// Config for the HTTP API handler.
type Config struct {
	Service *task.Service
	// Breakdown may be nil, in which case the breakdown endpoint reports
	// the AI feature as unavailable.
	Breakdown *llm.Client
	Version   string
}

// New returns an HTTP handler exposing the task API under /v1.
func New(cfg Config) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	hcfg := huma.DefaultConfig("Zendo API", cfg.Version)
	api := humachi.New(router, hcfg)
	group := huma.NewGroup(api, "/v1")

	registerHealth(group)
	registerTasks(group, cfg.Service)
	registerProgress(group, cfg.Service)
	registerBreakdown(group, cfg.Breakdown)

	return router
}

func registerHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body map[string]string `json:"body"`
	}, error) {
		return &struct {
			Body map[string]string `json:"body"`
		}{Body: map[string]string{"status": "ok"}}, nil
	})
}

func registerTasks(api huma.API, svc *task.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-tasks",
		Method:      http.MethodGet,
		Path:        "/tasks",
		Summary:     "List tasks",
	}, func(ctx context.Context, input *struct {
		Filter string `query:"filter" enum:"all,active,completed" default:"all" doc:"Projection over the collection"`
	}) (*struct {
		Body []TaskResponse `json:"body"`
	}, error) {
		tasks := svc.List(task.ParseFilter(input.Filter))
		return &struct {
			Body []TaskResponse `json:"body"`
		}{Body: mapTasks(tasks)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-task",
		Method:        http.MethodPost,
		Path:          "/tasks",
		Summary:       "Create task",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, func(ctx context.Context, input *struct {
		Body CreateTaskRequest `json:"body"`
	}) (*struct {
		Body TaskResponse `json:"body"`
	}, error) {
		created, err := svc.Create(input.Body.Text, models.ParsePriority(input.Body.Priority), input.Body.Subtasks)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return &struct {
			Body TaskResponse `json:"body"`
		}{Body: taskResponse(created)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-task",
		Method:      http.MethodGet,
		Path:        "/tasks/{id}",
		Summary:     "Get task",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct {
		Body TaskResponse `json:"body"`
	}, error) {
		t, ok := svc.Get(input.ID)
		if !ok {
			return nil, huma.Error404NotFound("task not found")
		}
		return &struct {
			Body TaskResponse `json:"body"`
		}{Body: taskResponse(t)}, nil
	})

	// Toggle and delete succeed on unknown IDs too. A second client may
	// have already removed the task; the end state is the same.
	huma.Register(api, huma.Operation{
		OperationID:   "toggle-task",
		Method:        http.MethodPost,
		Path:          "/tasks/{id}/toggle",
		Summary:       "Toggle task completion",
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusInternalServerError},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct{}, error) {
		if err := svc.ToggleComplete(input.ID); err != nil {
			return nil, huma.Error500InternalServerError(err.Error())
		}
		return &struct{}{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-task",
		Method:        http.MethodDelete,
		Path:          "/tasks/{id}",
		Summary:       "Delete task",
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusInternalServerError},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct{}, error) {
		if err := svc.Delete(input.ID); err != nil {
			return nil, huma.Error500InternalServerError(err.Error())
		}
		return &struct{}{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "toggle-subtask",
		Method:        http.MethodPost,
		Path:          "/tasks/{taskId}/subtasks/{subtaskId}/toggle",
		Summary:       "Toggle subtask completion",
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusInternalServerError},
	}, func(ctx context.Context, input *struct {
		TaskID    string `path:"taskId"`
		SubtaskID string `path:"subtaskId"`
	}) (*struct{}, error) {
		if err := svc.ToggleSubtask(input.TaskID, input.SubtaskID); err != nil {
			return nil, huma.Error500InternalServerError(err.Error())
		}
		return &struct{}{}, nil
	})
}

func registerProgress(api huma.API, svc *task.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "progress",
		Method:      http.MethodGet,
		Path:        "/progress",
		Summary:     "Collection progress",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body ProgressResponse `json:"body"`
	}, error) {
		tasks := svc.List(task.FilterAll)
		completed := 0
		for _, t := range tasks {
			if t.Completed {
				completed++
			}
		}
		return &struct {
			Body ProgressResponse `json:"body"`
		}{Body: ProgressResponse{
			Percent:   task.CollectionPercent(tasks),
			Total:     len(tasks),
			Completed: completed,
		}}, nil
	})
}

func registerBreakdown(api huma.API, client *llm.Client) {
	huma.Register(api, huma.Operation{
		OperationID: "breakdown",
		Method:      http.MethodPost,
		Path:        "/breakdown",
		Summary:     "AI task breakdown",
		Errors:      []int{http.StatusBadRequest, http.StatusServiceUnavailable},
	}, func(ctx context.Context, input *struct {
		Body BreakdownRequest `json:"body"`
	}) (*struct {
		Body BreakdownResponse `json:"body"`
	}, error) {
		if client == nil {
			return nil, huma.Error503ServiceUnavailable("AI breakdown is not configured")
		}
		out, err := client.Breakdown(ctx, input.Body.Input)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return &struct {
			Body BreakdownResponse `json:"body"`
		}{Body: BreakdownResponse(out)}, nil
	})
}
