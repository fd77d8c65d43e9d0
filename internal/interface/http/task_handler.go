package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/airlabs/air-tasks/internal/application"
	"github.com/airlabs/air-tasks/pkg/apperr"
	"github.com/airlabs/air-tasks/pkg/helpers"
	"github.com/airlabs/air-tasks/pkg/response"
	"github.com/airlabs/air-tasks/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority" binding:"omitempty,priority"`
	Completed   bool   `json:"completed"`
}

type updateTaskRequest struct {
	Title       helpers.Optional[string] `json:"title"`
	Description helpers.Optional[string] `json:"description"`
	Priority    helpers.Optional[string] `json:"priority"`
	DueDate     helpers.Optional[string] `json:"due_date"`
	Completed   helpers.Optional[bool]   `json:"completed"`
}

func (h *TaskHandler) fail(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	response.Error[any](c, apperr.HTTPStatus(err), apperr.Message(err), nil)
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid task id", nil)
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) List(c *gin.Context) {
	ownerID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)

	tasks, err := h.Svc.ListTasks(c.Request.Context(), application.ListTasksInput{
		OwnerID:   ownerID,
		Completed: c.Query("completed"),
		Priority:  c.Query("priority"),
		Search:    c.Query("search"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": tasks}, "tasks", gin.H{"count": len(tasks)})
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.CreateTask(c.Request.Context(), application.CreateTaskInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"task": t}, "task created successfully", nil)
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	t, err := h.Svc.GetTask(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"task": t}, "task", nil)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.UpdateTask(c.Request.Context(), id, application.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"task": t}, "task updated successfully", nil)
}

func (h *TaskHandler) Toggle(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	completed, err := h.Svc.ToggleTask(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"completed": completed}, "task updated successfully", nil)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteTask(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "task deleted successfully", nil)
}
