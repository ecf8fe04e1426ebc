package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/application/serviceimpl"
	"taskhub/infrastructure/memstore"
	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
	"taskhub/interfaces/api/routes"
)

type seqIssuer struct {
	count int
}

func (s *seqIssuer) IssueEventID() string {
	s.count++
	return fmt.Sprintf("evt_seq_%d", s.count)
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	repo := memstore.NewTaskRepository()
	issuer := &seqIssuer{}
	h := handlers.NewHandlers(&handlers.Services{
		TaskService:    serviceimpl.NewTaskService(repo, issuer),
		SubTaskService: serviceimpl.NewSubTaskService(repo, issuer),
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(app, h)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	if len(data) == 0 {
		return resp, nil
	}
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded), "body: %s", data)
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, target string) (*http.Response, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded), "body: %s", data)
	return resp, decoded
}

func createTask(t *testing.T, app *fiber.App, body map[string]any) map[string]any {
	t.Helper()
	resp, task := doJSON(t, app, http.MethodPost, "/api/v1/tasks", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return task
}

func TestCreateTaskEndpoint(t *testing.T) {
	app := newTestApp(t)

	task := createTask(t, app, map[string]any{
		"title":        "write report",
		"note":         "quarterly numbers",
		"due_datetime": "2024-06-01T10:00:00Z",
	})

	assert.NotEmpty(t, task["id"])
	assert.Equal(t, "write report", task["title"])
	assert.Equal(t, "quarterly numbers", task["note"])
	assert.Equal(t, false, task["completed"])
	// Subtasks marshal as an empty array, never null.
	assert.Equal(t, []any{}, task["subtasks"])
	assert.Nil(t, task["calendar_event"])
}

func TestCreateTaskWithCalendarEvent(t *testing.T) {
	app := newTestApp(t)

	task := createTask(t, app, map[string]any{
		"title": "board meeting",
		"calendar_event": map[string]any{
			"provider":       "google",
			"calendar_id":    "work",
			"summary":        "standup",
			"start_datetime": "2024-05-10T09:00:00Z",
			"end_datetime":   "2024-05-10T09:30:00Z",
			"timezone":       "Asia/Colombo",
		},
	})

	event, ok := task["calendar_event"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "evt_seq_1", event["event_id"])
	assert.Equal(t, "google", event["provider"])
}

func TestCreateTaskValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"note": "no title"}},
		{"blank title", map[string]any{"title": "   "}},
		{"unknown field", map[string]any{"title": "ok", "priority": 5}},
		{"bad provider", map[string]any{
			"title": "ok",
			"calendar_event": map[string]any{
				"provider":       "outlook",
				"calendar_id":    "work",
				"summary":        "standup",
				"start_datetime": "2024-05-10T09:00:00Z",
				"end_datetime":   "2024-05-10T09:30:00Z",
				"timezone":       "UTC",
			},
		}},
		{"event_id on create", map[string]any{
			"title": "ok",
			"calendar_event": map[string]any{
				"provider":       "google",
				"calendar_id":    "work",
				"summary":        "standup",
				"start_datetime": "2024-05-10T09:00:00Z",
				"end_datetime":   "2024-05-10T09:30:00Z",
				"timezone":       "UTC",
				"event_id":       "evt_smuggled",
			},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodPost, "/api/v1/tasks", tc.body)
			assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
			errInfo, ok := body["error"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_ERROR", errInfo["code"])
		})
	}
}

func TestGetTaskNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/tasks/6a1f9f0e-0f54-4e5e-9f3a-bb1df8f9c001", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errInfo["code"])
}

func TestGetTaskMalformedID(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/tasks/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestPatchTaskCalendarEventNull(t *testing.T) {
	app := newTestApp(t)

	task := createTask(t, app, map[string]any{
		"title": "board meeting",
		"calendar_event": map[string]any{
			"provider":       "google",
			"calendar_id":    "work",
			"summary":        "standup",
			"start_datetime": "2024-05-10T09:00:00Z",
			"end_datetime":   "2024-05-10T09:30:00Z",
			"timezone":       "UTC",
		},
	})
	id := task["id"].(string)

	resp, updated := doJSON(t, app, http.MethodPatch, "/api/v1/tasks/"+id, map[string]any{
		"calendar_event": nil,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, updated["calendar_event"])

	// A patch that omits calendar_event leaves whatever is stored untouched.
	resp, updated = doJSON(t, app, http.MethodPatch, "/api/v1/tasks/"+id, map[string]any{
		"title": "renamed",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "renamed", updated["title"])
	assert.Nil(t, updated["calendar_event"])
}

func TestPatchTaskMaterializedEvent(t *testing.T) {
	app := newTestApp(t)

	task := createTask(t, app, map[string]any{"title": "imported"})
	id := task["id"].(string)

	resp, updated := doJSON(t, app, http.MethodPatch, "/api/v1/tasks/"+id, map[string]any{
		"calendar_event": map[string]any{
			"provider":       "google",
			"calendar_id":    "work",
			"summary":        "standup",
			"start_datetime": "2024-05-10T09:00:00Z",
			"end_datetime":   "2024-05-10T09:30:00Z",
			"timezone":       "UTC",
			"event_id":       "evt_from_provider",
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	event := updated["calendar_event"].(map[string]any)
	assert.Equal(t, "evt_from_provider", event["event_id"])
}

func TestPatchTaskUnknownField(t *testing.T) {
	app := newTestApp(t)

	task := createTask(t, app, map[string]any{"title": "strict"})
	id := task["id"].(string)

	resp, _ := doJSON(t, app, http.MethodPatch, "/api/v1/tasks/"+id, map[string]any{
		"priority": "high",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDeleteTaskEndpoint(t *testing.T) {
	app := newTestApp(t)

	task := createTask(t, app, map[string]any{"title": "temp"})
	id := task["id"].(string)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/v1/tasks/"+id, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/tasks/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/tasks/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteTaskCascadesSubTasks(t *testing.T) {
	app := newTestApp(t)

	task := createTask(t, app, map[string]any{"title": "parent"})
	taskID := task["id"].(string)
	st := createSubTask(t, app, taskID, map[string]any{"title": "child"})
	stID := st["id"].(string)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/v1/tasks/"+taskID, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Subtasks go down with the parent: the old ids must be gone too.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/tasks/"+taskID+"/subtasks", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/v1/tasks/"+taskID+"/subtasks/"+stID, map[string]any{"title": "ghost"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCompleteAndUndoEndpoints(t *testing.T) {
	app := newTestApp(t)

	task := createTask(t, app, map[string]any{"title": "ship it"})
	id := task["id"].(string)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/tasks/"+id+"/complete", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["completed"])

	// Completing twice is a no-op, not an error.
	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/tasks/"+id+"/complete", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["completed"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/tasks/"+id+"/undo", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["completed"])
}

func TestListTasksEndpoint(t *testing.T) {
	app := newTestApp(t)

	createTask(t, app, map[string]any{"title": "march", "due_datetime": "2024-03-01T00:00:00Z"})
	createTask(t, app, map[string]any{"title": "undated"})
	createTask(t, app, map[string]any{"title": "january", "due_datetime": "2024-01-01T00:00:00Z"})

	resp, tasks := doJSONList(t, app, "/api/v1/tasks")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, tasks, 3)
	assert.Equal(t, "january", tasks[0]["title"])
	assert.Equal(t, "march", tasks[1]["title"])
	assert.Equal(t, "undated", tasks[2]["title"])

	resp, tasks = doJSONList(t, app, "/api/v1/tasks?q=jan")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, tasks, 1)
	assert.Equal(t, "january", tasks[0]["title"])

	resp, tasks = doJSONList(t, app, "/api/v1/tasks?due_from=2024-02-01T00:00:00Z&due_to=2024-04-01T00:00:00Z")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, tasks, 2)
	assert.Equal(t, "march", tasks[0]["title"])
	assert.Equal(t, "undated", tasks[1]["title"])
}

func TestListTasksQueryValidation(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/tasks?list=overdue", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/tasks?due_from=2024-06-01T00:00:00Z&due_to=2024-01-01T00:00:00Z", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/tasks?due_from=yesterday", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}
