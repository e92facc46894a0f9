package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"usertaskapi/internal/application"
	"usertaskapi/internal/domain/entity"
	"usertaskapi/pkg/helpers"
	"usertaskapi/pkg/response"
	"usertaskapi/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	UserID      int64  `json:"user_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required"`
	DueDate     string `json:"due_date" binding:"required"`
}

// updateTaskRequest distinguishes omitted fields from empty ones: a nil
// pointer leaves the task field unchanged.
type updateTaskRequest struct {
	Title   *string `json:"title"`
	Status  *string `json:"status"`
	DueDate *string `json:"due_date"`
}

type taskResponse struct {
	TaskID      int64  `json:"task_id"`
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

func newTaskResponse(t entity.Task) taskResponse {
	return taskResponse{
		TaskID:      t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     helpers.FormatDueDate(t.DueDate),
		Status:      t.Status.String(),
	}
}

func isValidationErr(err error) bool {
	return errors.Is(err, entity.ErrInvalidStatus) || errors.Is(err, helpers.ErrInvalidDueDate)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), application.CreateTaskInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUnknownOwner):
			response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		case isValidationErr(err):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("create task failed")
			response.Error(c, http.StatusInternalServerError, "failed to create task", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, newTaskResponse(*t), "task created successfully")
}

// ListByUser GET /api/tasks/user/:userId
func (h *TaskHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	tasks, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "no tasks found for the user", nil)
			return
		}
		h.Logger.WithError(err).Error("list tasks failed")
		response.Error(c, http.StatusInternalServerError, "failed to list tasks", nil)
		return
	}
	views := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskResponse(t))
	}
	response.Success(c, http.StatusOK, views, "tasks")
}

// Update PUT /api/tasks/:taskId
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("taskId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), taskID, application.UpdateTaskInput{
		Title:   req.Title,
		Status:  req.Status,
		DueDate: req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrTaskNotFound):
			response.Error(c, http.StatusNotFound, "task not found", nil)
		case isValidationErr(err):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("update task failed")
			response.Error(c, http.StatusInternalServerError, "failed to update task", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, newTaskResponse(*t), "task updated successfully")
}

// Delete DELETE /api/tasks/:taskId
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("taskId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete task failed")
		response.Error(c, http.StatusInternalServerError, "failed to delete task", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "task deleted successfully")
}
