package handlers

import (
	"errors"
	"net/http"

	request "aga_techserv/internal/adapter/http/dto/request"
	response "aga_techserv/internal/adapter/http/dto/response"
	"aga_techserv/internal/usecase"
	"aga_techserv/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)
)

// ExpenseHandler handles HTTP requests for the project expense report.

type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

// RecordExpense creates or rewrites the project's expense report. Labor
// days are pulled from attendance, never from the request.
func (h *ExpenseHandler) RecordExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	expense, err := h.usecase.Record(c.Request.Context(), payload.ActorID, payload.ResolveInput())
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpense(expense))
}

// GetExpenseByProject returns the project's expense report.
func (h *ExpenseHandler) GetExpenseByProject(c *gin.Context) {
	expense, err := h.usecase.GetByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpense(expense))
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExpenseInput), errors.Is(err, usecase.ErrMissingActor),
		errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
