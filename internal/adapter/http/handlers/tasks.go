package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/app/form"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const maxIDLength = 36

type TaskHandler struct {
	taskService ports.TaskService
	refresh     ports.RefreshSignal
}

// NewTaskHandler builds the JSON task endpoints. refresh may be nil; when
// set, every successful write asks the board to reload.
func NewTaskHandler(taskService ports.TaskService, refresh ports.RefreshSignal) *TaskHandler {
	return &TaskHandler{taskService: taskService, refresh: refresh}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		var validationErr *form.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateFieldError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang, validationErr.Fields),
			)
			return
		}
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		status, msgKey := taskErrorResponse(err, apierrors.MsgFailCreateTask)
		if status == http.StatusInternalServerError {
			zap.L().Error("failed to create task", zap.Error(err))
		}
		c.JSON(status, apierrors.CreateError(status, msgKey, lang))
		return
	}

	h.signalRefresh(c, task.ID)
	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := pathID(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		status, msgKey := taskErrorResponse(err, apierrors.MsgInvalidTaskPayload)
		c.JSON(status, apierrors.CreateError(status, msgKey, lang))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		status, msgKey := taskErrorResponse(err, apierrors.MsgFailUpdateTask)
		if status == http.StatusInternalServerError {
			zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
		}
		c.JSON(status, apierrors.CreateError(status, msgKey, lang))
		return
	}

	h.signalRefresh(c, task.ID)
	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := pathID(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		status, msgKey := taskErrorResponse(err, apierrors.MsgFailDeleteTask)
		if status == http.StatusInternalServerError {
			zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		}
		c.JSON(status, apierrors.CreateError(status, msgKey, lang))
		return
	}

	h.signalRefresh(c, taskID)
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) signalRefresh(c *gin.Context, taskID string) {
	if h.refresh == nil {
		return
	}
	if err := h.refresh.Signal(c.Request.Context()); err != nil {
		zap.L().Warn("failed to signal task list refresh", zap.String("task_id", taskID), zap.Error(err))
	}
}

// taskErrorResponse maps a service error to an HTTP status and message key.
func taskErrorResponse(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, apierrors.MsgTaskNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnprocessableEntity, apierrors.MsgUnknownTaskUser
	case errors.Is(err, domain.ErrInvalidTaskStatus):
		return http.StatusBadRequest, apierrors.MsgInvalidTaskStatus
	case errors.Is(err, domain.ErrInvalidTaskInput), errors.Is(err, validation.ErrInvalidTaskPayload):
		return http.StatusBadRequest, apierrors.MsgInvalidTaskPayload
	default:
		return http.StatusInternalServerError, fallback
	}
}

func pathID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" || len(id) > maxIDLength {
		return "", false
	}
	return id, true
}
