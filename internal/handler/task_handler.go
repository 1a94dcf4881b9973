package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/query"
	"tasktracker/internal/repository"
	"tasktracker/internal/service"
)

// defaultTaskLimit caps unqualified task listings; user listings have no
// default cap.
const defaultTaskLimit = 100

type TaskHandler struct {
	svc  *service.TaskService
	repo repository.TaskRepositoryInterface
}

func NewTaskHandler(svc *service.TaskService, repo repository.TaskRepositoryInterface) *TaskHandler {
	return &TaskHandler{svc: svc, repo: repo}
}

type TaskRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Deadline         *string `json:"deadline"`
	Completed        *bool   `json:"completed"`
	AssignedUser     *string `json:"assignedUser"`
	AssignedUserName *string `json:"assignedUserName"`
}

// deadlineLayouts are the accepted deadline formats, most specific first.
var deadlineLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDeadline(raw string) (time.Time, bool) {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// List handles GET /api/tasks with where/sort/select/skip/limit/count
// parameters; count=true returns an integer instead of a list.
func (h *TaskHandler) List(c *gin.Context) {
	q := query.Parse(c.Request.URL.Query(), defaultTaskLimit)
	if q.Count {
		n, err := h.repo.Count(c.Request.Context(), q.Filter)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, n)
		return
	}
	tasks, err := h.repo.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tasks)
}

// GetByID handles GET /api/tasks/:id with an optional select projection.
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.repo.GetByID(c.Request.Context(), c.Param("id"), query.ParseProjection(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err)
		return
	}
	if task == nil {
		respondNotFound(c)
		return
	}
	respondOK(c, task)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	in := service.CreateTaskInput{}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Deadline != nil {
		deadline, ok := parseDeadline(*req.Deadline)
		if !ok {
			respondBadRequest(c, "Name and deadline are required")
			return
		}
		in.Deadline = &deadline
	}
	if req.Completed != nil {
		in.Completed = *req.Completed
	}
	if req.AssignedUser != nil {
		in.AssignedUser = *req.AssignedUser
	}
	if req.AssignedUserName != nil {
		in.AssignedUserName = *req.AssignedUserName
	}

	task, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, task)
}

// Update handles PUT /api/tasks/:id with partial-update semantics: only the
// fields present in the body are touched.
func (h *TaskHandler) Update(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	in := service.UpdateTaskInput{
		Name:         req.Name,
		Description:  req.Description,
		Completed:    req.Completed,
		AssignedUser: req.AssignedUser,
	}
	if req.Deadline != nil {
		deadline, ok := parseDeadline(*req.Deadline)
		if !ok {
			respondBadRequest(c, "Name and deadline are required")
			return
		}
		in.Deadline = &deadline
	}

	task, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, task)
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
