package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rocgym/jobboard/internal/authz"
	"github.com/rocgym/jobboard/internal/config"
	"github.com/rocgym/jobboard/internal/model"
	"github.com/rocgym/jobboard/internal/repository"
)

// JobHandler bundles dependencies for the job posting endpoints.
type JobHandler struct {
	Cfg  config.Config
	Jobs JobStore
}

func NewJobHandler(cfg config.Config, jobs JobStore) *JobHandler {
	return &JobHandler{Cfg: cfg, Jobs: jobs}
}

type jobReq struct {
	CompanyName  *string `json:"company_name"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Location     *string `json:"location"`
	WorkType     *string `json:"work_type"`
	SalaryRange  *string `json:"salary_range"`
	Requirements *string `json:"requirements"`
}

// List handles GET /jobs.  Open to everyone, including guests.  Title and
// location filter as case-insensitive substrings, work_type exactly.
func (h *JobHandler) List(c echo.Context) error {
	f := repository.JobFilter{
		Title:    c.QueryParam("title"),
		Location: c.QueryParam("location"),
		WorkType: c.QueryParam("work_type"),
	}
	jobs, err := h.Jobs.List(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /jobs/:id.  Every successful read, by any caller,
// increments the posting's view counter by exactly one.
func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid job id"})
	}
	job, err := h.Jobs.GetAndCountView(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, job)
}

// Create handles POST /jobs for admins and recruiters.  The posting is
// owned by its creator; company_name falls back to the configured default
// when omitted.
func (h *JobHandler) Create(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if !authz.Can(role, actorID, authz.ActionCreateJob, authz.Resource{}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req jobReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strVal(req.Title) == "" || strVal(req.Description) == "" ||
		strVal(req.Location) == "" || strVal(req.WorkType) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required job fields"})
	}

	company := strVal(req.CompanyName)
	if company == "" {
		company = h.Cfg.CompanyName
	}
	job := model.Job{
		CompanyName:  company,
		Title:        strVal(req.Title),
		Description:  strVal(req.Description),
		Location:     strVal(req.Location),
		WorkType:     strVal(req.WorkType),
		SalaryRange:  strVal(req.SalaryRange),
		Requirements: strVal(req.Requirements),
		PostedBy:     actorID,
	}
	if err := h.Jobs.Create(c.Request().Context(), &job); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create job failed"})
	}
	return c.JSON(http.StatusCreated, job)
}

// Update handles PUT /jobs/:id.  Admins may edit any posting; recruiters
// only their own.  The policy decision is made against the posting's
// current owner, never against anything the client sent.
func (h *JobHandler) Update(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid job id"})
	}

	job, err := h.Jobs.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !authz.Can(role, actorID, authz.ActionUpdateJob, authz.Resource{OwnerID: job.PostedBy}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "you can only update jobs you have posted"})
	}

	var req jobReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	patch := repository.JobPatch{
		CompanyName:  trimmed(req.CompanyName),
		Title:        trimmed(req.Title),
		Description:  trimmed(req.Description),
		Location:     trimmed(req.Location),
		WorkType:     trimmed(req.WorkType),
		SalaryRange:  trimmed(req.SalaryRange),
		Requirements: trimmed(req.Requirements),
	}

	updated, err := h.Jobs.Update(c.Request().Context(), id, actorID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /jobs/:id under the same ownership rule as
// Update.
func (h *JobHandler) Delete(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid job id"})
	}

	job, err := h.Jobs.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !authz.Can(role, actorID, authz.ActionDeleteJob, authz.Resource{OwnerID: job.PostedBy}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "you can only delete jobs you have posted"})
	}

	if err := h.Jobs.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "job deleted successfully"})
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// trimmed returns a pointer to the trimmed value, or nil when the field
// was absent from the request body.
func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
