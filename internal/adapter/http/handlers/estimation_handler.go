package handlers

import (
	"context"
	"errors"
	"net/http"

	request "aga_techserv/internal/adapter/http/dto/request"
	response "aga_techserv/internal/adapter/http/dto/response"
	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/domain/workflow"
	"aga_techserv/internal/usecase"
	"aga_techserv/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimationPayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATION_INPUT", "Invalid estimation payload", http.StatusBadRequest)
)

// EstimationHandler handles HTTP requests for internal cost estimations,
// including the two-stage review gate (check then approve).

type EstimationHandler struct {
	usecase usecase.IEstimationUseCase
}

func NewEstimationHandler(uc usecase.IEstimationUseCase) *EstimationHandler {
	return &EstimationHandler{usecase: uc}
}

// CreateEstimation records the costed draft for a project.
func (h *EstimationHandler) CreateEstimation(c *gin.Context) {
	var payload request.EstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimationPayload.HTTPStatus, errInvalidEstimationPayload.ToHTTPError())
		return
	}

	estimation, err := h.usecase.Create(c.Request.Context(), payload.ActorID, usecase.EstimationInput{
		ProjectID:        payload.ProjectID,
		Materials:        payload.ResolveMaterials(),
		Labour:           payload.ResolveLabour(),
		Terms:            payload.ResolveTerms(),
		CommissionAmount: payload.CommissionAmount,
	})
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimation(estimation))
}

// UpdateEstimation rewrites the line items of an unapproved estimation.
func (h *EstimationHandler) UpdateEstimation(c *gin.Context) {
	var payload request.EstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimationPayload.HTTPStatus, errInvalidEstimationPayload.ToHTTPError())
		return
	}

	estimation, err := h.usecase.Update(c.Request.Context(), payload.ActorID, c.Param("id"), usecase.EstimationInput{
		ProjectID:        payload.ProjectID,
		Materials:        payload.ResolveMaterials(),
		Labour:           payload.ResolveLabour(),
		Terms:            payload.ResolveTerms(),
		CommissionAmount: payload.CommissionAmount,
	})
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimation(estimation))
}

func (h *EstimationHandler) CheckEstimation(c *gin.Context) {
	h.reviewEstimation(c, h.usecase.Check)
}

func (h *EstimationHandler) ApproveEstimation(c *gin.Context) {
	h.reviewEstimation(c, h.usecase.Approve)
}

func (h *EstimationHandler) RejectEstimation(c *gin.Context) {
	h.reviewEstimation(c, h.usecase.Reject)
}

func (h *EstimationHandler) reviewEstimation(
	c *gin.Context,
	reviewer func(ctx context.Context, actorID, estimationID, comment string) (entities.Estimation, error),
) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimationPayload.HTTPStatus, errInvalidEstimationPayload.ToHTTPError())
		return
	}

	estimation, err := reviewer(c.Request.Context(), payload.ActorID, c.Param("id"), payload.Comment)
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimation(estimation))
}

// DeleteEstimation removes an unapproved estimation.
func (h *EstimationHandler) DeleteEstimation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Query("actor_id"), c.Param("id")); err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetEstimation returns one estimation by id.
func (h *EstimationHandler) GetEstimation(c *gin.Context) {
	estimation, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimation(estimation))
}

// GetEstimationByProject returns the project's estimation.
func (h *EstimationHandler) GetEstimationByProject(c *gin.Context) {
	estimation, err := h.usecase.GetByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimation(estimation))
}

func mapEstimationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimationID), errors.Is(err, usecase.ErrInvalidEstimationInput),
		errors.Is(err, usecase.ErrMissingActor), errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimationNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_FOUND", "Estimation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimationAlreadyExists):
		return pkg.NewDomainErrorSimple("ESTIMATION_ALREADY_EXISTS", "Estimation already exists for this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimationAlreadyChecked):
		return pkg.NewDomainErrorSimple("ESTIMATION_ALREADY_CHECKED", "Estimation already checked", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimationNotChecked):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_CHECKED", "Estimation must be checked before approval", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEstimationApproved), errors.Is(err, usecase.ErrEstimationLocked):
		return pkg.NewDomainErrorSimple("ESTIMATION_LOCKED", "Approved estimation cannot be modified", http.StatusConflict)
	case errors.Is(err, workflow.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in current project status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
