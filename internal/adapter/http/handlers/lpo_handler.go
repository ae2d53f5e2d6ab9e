package handlers

import (
	"errors"
	"io"
	"net/http"

	request "aga_techserv/internal/adapter/http/dto/request"
	response "aga_techserv/internal/adapter/http/dto/response"
	"aga_techserv/internal/usecase"
	"aga_techserv/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLPOPayload = pkg.NewDomainErrorSimple("INVALID_LPO_INPUT", "Invalid LPO payload", http.StatusBadRequest)
)

// LPOHandler handles HTTP requests for local purchase orders, including
// the scanned-document attachments kept in object storage.

type LPOHandler struct {
	usecase usecase.ILPOUseCase
}

func NewLPOHandler(uc usecase.ILPOUseCase) *LPOHandler {
	return &LPOHandler{usecase: uc}
}

// CreateLPO records the client's purchase order. Only legal while the
// project status is exactly quotation_sent.
func (h *LPOHandler) CreateLPO(c *gin.Context) {
	var payload request.LPORequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLPOPayload.HTTPStatus, errInvalidLPOPayload.ToHTTPError())
		return
	}

	lpo, err := h.usecase.Create(c.Request.Context(), payload.ActorID, usecase.LPOInput{
		ProjectID: payload.ProjectID,
		Supplier:  payload.Supplier,
		Items:     payload.ResolveItems(),
	})
	if err != nil {
		appErr := mapLPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLPO(lpo))
}

// UploadDocument attaches a scanned document to the LPO. Multipart form
// with a "file" part and an "actor_id" field.
func (h *LPOHandler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidLPOPayload.HTTPStatus, errInvalidLPOPayload.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidLPOPayload.HTTPStatus, errInvalidLPOPayload.ToHTTPError())
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		c.JSON(errInvalidLPOPayload.HTTPStatus, errInvalidLPOPayload.ToHTTPError())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	lpo, err := h.usecase.UploadDocument(c.Request.Context(), c.PostForm("actor_id"), c.Param("id"), fileHeader.Filename, body, contentType)
	if err != nil {
		appErr := mapLPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLPO(lpo))
}

// DeleteDocument detaches one stored document by key.
func (h *LPOHandler) DeleteDocument(c *gin.Context) {
	lpo, err := h.usecase.DeleteDocument(c.Request.Context(), c.Query("actor_id"), c.Param("id"), c.Query("key"))
	if err != nil {
		appErr := mapLPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLPO(lpo))
}

// GetLPO returns one LPO by id.
func (h *LPOHandler) GetLPO(c *gin.Context) {
	lpo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLPO(lpo))
}

// GetLPOByProject returns the project's LPO.
func (h *LPOHandler) GetLPOByProject(c *gin.Context) {
	lpo, err := h.usecase.GetByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLPO(lpo))
}

func mapLPOError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLPOID), errors.Is(err, usecase.ErrInvalidLPOInput),
		errors.Is(err, usecase.ErrMissingActor), errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLPONotFound):
		return pkg.NewDomainErrorSimple("LPO_NOT_FOUND", "LPO not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLPOAlreadyExists):
		return pkg.NewDomainErrorSimple("LPO_ALREADY_EXISTS", "LPO already exists for this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongProjectStatus):
		return pkg.NewDomainErrorSimple("WRONG_PROJECT_STATUS", "LPO can only be recorded after the quotation is sent", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
