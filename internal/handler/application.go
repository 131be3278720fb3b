package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rocgym/jobboard/internal/authz"
	"github.com/rocgym/jobboard/internal/model"
	"github.com/rocgym/jobboard/internal/repository"
)

// Publisher emits domain events after state changes.  The RabbitMQ
// implementation lives in the service package; a nil Publisher disables
// events.
type Publisher interface {
	ApplicationSubmitted(job model.Job, app model.Application)
}

// ApplicationHandler bundles dependencies for the application endpoints.
type ApplicationHandler struct {
	Jobs         JobStore
	Applications ApplicationStore
	Events       Publisher
}

func NewApplicationHandler(jobs JobStore, apps ApplicationStore, events Publisher) *ApplicationHandler {
	return &ApplicationHandler{Jobs: jobs, Applications: apps, Events: events}
}

type applyReq struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	ResumeURL      string `json:"resume_url"`
	CoverLetter    string `json:"cover_letter"`
	AdditionalInfo string `json:"additional_info"`
}

// Apply handles POST /jobs/:id/apply.  Only the "user" role may apply;
// admins and recruiters are refused.  A second application to the same
// posting is rejected with 409.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if !authz.Can(role, actorID, authz.ActionApplyToJob, authz.Resource{}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "only regular users can apply for jobs"})
	}
	jobID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid job id"})
	}

	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.ResumeURL = strings.TrimSpace(req.ResumeURL)
	if req.FullName == "" || req.Email == "" || req.ResumeURL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields: full_name, email, resume_url"})
	}

	job, err := h.Jobs.GetByID(c.Request().Context(), jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	app := model.Application{
		JobID:          jobID,
		ApplicantID:    actorID,
		FullName:       req.FullName,
		Email:          req.Email,
		ResumeURL:      req.ResumeURL,
		CoverLetter:    req.CoverLetter,
		AdditionalInfo: req.AdditionalInfo,
	}
	if err := h.Applications.Create(c.Request().Context(), &app); err != nil {
		if errors.Is(err, repository.ErrAlreadyApplied) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "you have already applied for this job"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create application failed"})
	}

	if h.Events != nil {
		// Event delivery is best effort; a broker outage must not fail
		// the submission.
		h.Events.ApplicationSubmitted(job, app)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "application submitted successfully",
		"application": app,
	})
}

// ListMine handles GET /applications.  The listing is scoped by role:
// users see their own submissions, recruiters see applications to jobs
// they posted, admins see everything.
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx := c.Request().Context()
	var apps []model.Application
	switch authz.ApplicationScope(role) {
	case authz.ScopeOwn:
		apps, err = h.Applications.ListByApplicant(ctx, actorID)
	case authz.ScopeOwnedJobs:
		apps, err = h.Applications.ListByRecruiter(ctx, actorID)
	case authz.ScopeAll:
		apps, err = h.Applications.ListAll(ctx)
	default:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if err != nil {
		log.Printf("list applications failed for user %d: %v", actorID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"applications": apps, "count": len(apps)})
}

// ListForJob handles GET /jobs/:id/applications for admins and the
// recruiter who owns the posting.
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	jobID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid job id"})
	}

	job, err := h.Jobs.GetByID(c.Request().Context(), jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	// Same ownership rule as posting mutations: admins read any posting's
	// applications, recruiters only their own.
	if !authz.Can(role, actorID, authz.ActionUpdateJob, authz.Resource{OwnerID: job.PostedBy}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "you can only view applications for jobs you have posted"})
	}

	apps, err := h.Applications.ListByJob(c.Request().Context(), jobID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"job_id": jobID, "applications": apps, "count": len(apps)})
}
