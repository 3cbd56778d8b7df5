package in

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studytrack/internal/modules/record/dto"
	recordin "studytrack/internal/modules/record/port/in"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/logger"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// HTTPHandler serves the record store as a local JSON API.
type HTTPHandler struct {
	usecase recordin.Usecase
	log     *logger.Logger
}

func NewHTTPHandler(usecase recordin.Usecase, log *logger.Logger) *HTTPHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &HTTPHandler{usecase: usecase, log: log.With("handler", "record")}
}

func (h *HTTPHandler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/dashboard", h.Dashboard)
	api.GET("/analytics", h.Analytics)
	api.GET("/suggestions", h.Suggestions)
	api.GET("/encouragement", h.Encouragement)

	api.GET("/assignments", h.ListAssignments)
	api.POST("/assignments", h.AddAssignment)
	api.POST("/assignments/:id/complete", h.CompleteAssignment)
	api.GET("/works", h.ListWorks)
	api.POST("/works", h.AddWork)
	api.GET("/projects", h.ListProjects)
	api.POST("/projects", h.AddProject)
	api.GET("/sessions", h.ListSessions)
	api.POST("/sessions", h.LogSession)
	api.GET("/timetable", h.Timetable)
	api.POST("/timetable", h.AddTimetableEntry)
}

func (h *HTTPHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{Message: err.Error(), Code: "invalid_input"}})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorEnvelope{Error: APIError{Message: err.Error(), Code: "not_found"}})
	default:
		h.log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{Error: APIError{Message: err.Error(), Code: "internal"}})
	}
}

func badBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{Message: "invalid request body", Code: "invalid_body"}})
}

// GET /api/dashboard
func (h *HTTPHandler) Dashboard(c *gin.Context) {
	out, err := h.usecase.GetDashboard(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/analytics
func (h *HTTPHandler) Analytics(c *gin.Context) {
	out, err := h.usecase.GetStudyAnalytics(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/suggestions
func (h *HTTPHandler) Suggestions(c *gin.Context) {
	out, err := h.usecase.GetSuggestions(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": out})
}

// GET /api/encouragement
func (h *HTTPHandler) Encouragement(c *gin.Context) {
	text, err := h.usecase.GetEncouragement(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"encouragement": text})
}

func (h *HTTPHandler) ListAssignments(c *gin.Context) {
	out, err := h.usecase.ListAssignments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": out})
}

func (h *HTTPHandler) AddAssignment(c *gin.Context) {
	var req struct {
		Title        string `json:"title"`
		Subject      string `json:"subject"`
		DeadlineDays int    `json:"deadline_days"`
		Difficulty   string `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	out, err := h.usecase.AddAssignment(c.Request.Context(), dto.AddAssignmentInput{
		Title:        req.Title,
		Subject:      req.Subject,
		DeadlineDays: req.DeadlineDays,
		Difficulty:   req.Difficulty,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// POST /api/assignments/:id/complete
// An unknown id answers 404 with the typed result as body.
func (h *HTTPHandler) CompleteAssignment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{Message: "assignment id must be an integer", Code: "invalid_input"}})
		return
	}
	var req struct {
		Score int `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	out, err := h.usecase.CompleteAssignment(c.Request.Context(), dto.CompleteAssignmentInput{ID: id, Score: req.Score})
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !out.OK {
		c.JSON(http.StatusNotFound, out)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *HTTPHandler) ListWorks(c *gin.Context) {
	out, err := h.usecase.ListWorks(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"works": out})
}

func (h *HTTPHandler) AddWork(c *gin.Context) {
	var req struct {
		Title         string  `json:"title"`
		Subject       string  `json:"subject"`
		DurationHours float64 `json:"duration_hours"`
		Completed     bool    `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	out, err := h.usecase.AddWork(c.Request.Context(), dto.AddWorkInput{
		Title:         req.Title,
		Subject:       req.Subject,
		DurationHours: req.DurationHours,
		Completed:     req.Completed,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *HTTPHandler) ListProjects(c *gin.Context) {
	out, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": out})
}

func (h *HTTPHandler) AddProject(c *gin.Context) {
	var req struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		DeadlineDays int    `json:"deadline_days"`
		Status       string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	out, err := h.usecase.AddProject(c.Request.Context(), dto.AddProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		DeadlineDays: req.DeadlineDays,
		Status:       req.Status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *HTTPHandler) ListSessions(c *gin.Context) {
	out, err := h.usecase.ListSessions(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": out})
}

func (h *HTTPHandler) LogSession(c *gin.Context) {
	var req struct {
		Subject       string  `json:"subject"`
		DurationHours float64 `json:"duration_hours"`
		Topics        string  `json:"topics"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	out, err := h.usecase.LogStudySession(c.Request.Context(), dto.LogSessionInput{
		Subject:       req.Subject,
		DurationHours: req.DurationHours,
		Topics:        req.Topics,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// GET /api/timetable
// Optional filter: day
func (h *HTTPHandler) Timetable(c *gin.Context) {
	out, err := h.usecase.GetTimetable(c.Request.Context(), c.Query("day"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timetable": out})
}

func (h *HTTPHandler) AddTimetableEntry(c *gin.Context) {
	var req struct {
		Day           string  `json:"day"`
		Time          string  `json:"time"`
		Subject       string  `json:"subject"`
		DurationHours float64 `json:"duration_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	out, err := h.usecase.AddTimetableEntry(c.Request.Context(), dto.AddTimetableEntryInput{
		Day:           req.Day,
		Time:          req.Time,
		Subject:       req.Subject,
		DurationHours: req.DurationHours,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}
