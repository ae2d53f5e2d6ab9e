package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "aga_techserv/internal/adapter/http/dto/request"
	response "aga_techserv/internal/adapter/http/dto/response"
	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/domain/workflow"
	"aga_techserv/internal/usecase"
	"aga_techserv/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
)

// ProjectHandler handles HTTP requests for the project lifecycle.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// CreateProject opens a new project in draft and assigns its number.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.CreateProject(c.Request.Context(), payload.ActorID, usecase.CreateProjectInput{
		Name:        payload.Name,
		Description: payload.Description,
		ClientID:    payload.ClientID,
		Location:    payload.Location,
		Building:    payload.Building,
		Apartment:   payload.Apartment,
	})
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

// GetProject returns one project by id.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// UpdateStatus moves the project along the workflow graph.
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	next := entities.ProjectStatus(strings.TrimSpace(payload.Status))
	if !next.IsValid() {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.UpdateStatus(c.Request.Context(), payload.ActorID, c.Param("id"), next, payload.Note)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// AssignTeam assigns the engineer, workers and driver to the project.
func (h *ProjectHandler) AssignTeam(c *gin.Context) {
	var payload request.AssignTeamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.AssignTeamAndDriver(c.Request.Context(), payload.ActorID, c.Param("id"), payload.EngineerID, payload.WorkerIDs, payload.DriverID)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// UpdateProgress records site progress; crossing 1% or 100% moves status.
func (h *ProjectHandler) UpdateProgress(c *gin.Context) {
	var payload request.UpdateProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Progress == nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.UpdateProgress(c.Request.Context(), payload.ActorID, c.Param("id"), *payload.Progress, payload.Note)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// SetWorkDates patches milestone dates and the GRN number.
func (h *ProjectHandler) SetWorkDates(c *gin.Context) {
	var payload request.WorkDatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.SetWorkDates(c.Request.Context(), payload.ActorID, c.Param("id"), usecase.WorkDatesInput{
		WorkStartDate:      payload.WorkStartDate,
		WorkEndDate:        payload.WorkEndDate,
		WorkCompletionDate: payload.WorkCompletionDate,
		HandoverDate:       payload.HandoverDate,
		AcceptanceDate:     payload.AcceptanceDate,
		GRNNumber:          payload.GRNNumber,
	})
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// DeleteProject removes a draft project. Anything past draft is refused.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.DeleteProject(c.Request.Context(), c.Query("actor_id"), c.Param("id")); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListActivity returns the project's append-only activity log, newest first.
func (h *ProjectHandler) ListActivity(c *gin.Context) {
	comments, err := h.usecase.ListActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComments(comments))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectInput), errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrMissingActor), errors.Is(err, usecase.ErrInvalidProgress):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Assigned user not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWrongUserRole):
		return pkg.NewDomainErrorSimple("WRONG_USER_ROLE", "User does not have the required role", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProjectNotDeletable):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_DELETABLE", "Only draft projects can be deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongProjectStatus), errors.Is(err, workflow.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in current project status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
