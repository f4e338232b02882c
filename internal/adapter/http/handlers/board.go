package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"taskboard/internal/adapter/export"
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/view"
	"taskboard/internal/app/board"
	"taskboard/internal/app/form"
	"taskboard/internal/app/notice"
	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	themeCookie    = "theme"
	themeCookieAge = 365 * 24 * 60 * 60
	pageTemplate   = "page"
	tasksPath      = "/tasks"
)

// BoardHandler serves the task page and the drag-and-drop endpoints.
type BoardHandler struct {
	controller *board.Controller
	form       *form.Form
	notices    *notice.Center
	now        func() time.Time
}

func NewBoardHandler(controller *board.Controller, taskForm *form.Form, notices *notice.Center) *BoardHandler {
	return &BoardHandler{
		controller: controller,
		form:       taskForm,
		notices:    notices,
		now:        time.Now,
	}
}

func (h *BoardHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, tasksPath)
}

func (h *BoardHandler) Page(c *gin.Context) {
	h.render(c, http.StatusOK)
}

func (h *BoardHandler) Refresh(c *gin.Context) {
	if err := h.controller.Refresh(c.Request.Context()); err != nil {
		zap.L().Error("failed to refresh tasks", zap.Error(err))
		h.notices.Error(apierrors.GetTransErrorMsg(apierrors.MsgFailRefreshTasks, middleware.GetLang(c)))
	}
	c.Redirect(http.StatusSeeOther, tasksPath)
}

func (h *BoardHandler) DragStart(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.DragStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDragPayload, lang),
		)
		return
	}

	h.controller.OnDragStart(req.TaskID)
	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) DragEnd(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.DragEndRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDragPayload, lang),
		)
		return
	}

	outcome, err := h.controller.OnDragEnd(c.Request.Context(), req.TaskID, domain.TaskStatus(req.Status))
	if outcome == board.OutcomeNoop && errors.Is(err, domain.ErrInvalidTaskStatus) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskStatus, lang),
		)
		return
	}

	resp := dto.DragEndResponse{Outcome: string(outcome), TaskID: req.TaskID}
	if task, ok := h.controller.Board().Find(req.TaskID); ok {
		resp.Status = string(task.Status)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BoardHandler) OpenForm(c *gin.Context) {
	if err := h.form.Open(c.Request.Context()); err != nil {
		zap.L().Warn("task form opened without users", zap.Error(err))
	}
	h.render(c, http.StatusOK)
}

func (h *BoardHandler) SubmitForm(c *gin.Context) {
	values := form.Values{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		AssigneeID:  c.PostForm("assignee_id"),
		ReviewerID:  c.PostForm("reviewer_id"),
	}

	task, err := h.form.Submit(c.Request.Context(), values)
	if err != nil {
		var validationErr *form.ValidationError
		switch {
		case errors.Is(err, form.ErrFormNotReady):
			c.Redirect(http.StatusSeeOther, tasksPath+"/new")
		case errors.As(err, &validationErr):
			h.render(c, http.StatusUnprocessableEntity)
		case errors.Is(err, form.ErrSubmitInProgress):
			h.render(c, http.StatusConflict)
		default:
			h.render(c, http.StatusInternalServerError)
		}
		return
	}

	zap.L().Info("task created", zap.String("task_id", task.ID))
	// The refresh signal may be delivered elsewhere or lost, so this
	// process reloads its own board before redirecting.
	if err := h.controller.Refresh(c.Request.Context()); err != nil {
		zap.L().Warn("failed to reload tasks after create", zap.String("task_id", task.ID), zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, tasksPath)
}

func (h *BoardHandler) CancelForm(c *gin.Context) {
	h.form.Close()
	c.Redirect(http.StatusSeeOther, tasksPath)
}

func (h *BoardHandler) ToggleTheme(c *gin.Context) {
	current, _ := c.Cookie(themeCookie)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, view.ToggleTheme(current), themeCookieAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, tasksPath)
}

func (h *BoardHandler) ExportPDF(c *gin.Context) {
	lang := middleware.GetLang(c)
	ctx := c.Request.Context()

	if err := h.controller.Mount(ctx); err != nil {
		zap.L().Error("failed to load tasks for export", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailExportTasks, lang),
		)
		return
	}

	generatedAt := h.now()
	presentation := h.controller.Present(board.ViewKanban, board.Filter{Search: c.Query("search")})
	data, err := export.BoardPDF(presentation.Columns, generatedAt)
	if err != nil {
		zap.L().Error("failed to export tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailExportTasks, lang),
		)
		return
	}

	filename := fmt.Sprintf("tasks-%s.pdf", generatedAt.Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// render mounts the board if needed and writes the full page.
func (h *BoardHandler) render(c *gin.Context, status int) {
	ctx := c.Request.Context()

	var loadError string
	if err := h.controller.Mount(ctx); err != nil {
		zap.L().Error("failed to load tasks", zap.Error(err))
		loadError = apierrors.GetTransErrorMsg(apierrors.MsgGenericLoadFailure, middleware.GetLang(c))
	}

	filter := board.Filter{
		Search: c.Query("search"),
		Status: board.NormalizeStatusFilter(c.Query("status")),
	}
	presentation := h.controller.Present(board.ParseViewMode(c.Query("view")), filter)

	theme, _ := c.Cookie(themeCookie)
	c.HTML(status, pageTemplate, view.NewPage(presentation, theme, h.notices.Drain(), h.form.View(), loadError))
}
