package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aga_techserv/internal/adapter/http/handlers/mocks"
	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExpenseHandler_RecordExpense(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid input maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.PUT("/v1/expenses", h.RecordExpense)

		uc.EXPECT().Record(gomock.Any(), "u-1", gomock.Any()).Return(entities.Expense{}, usecase.ErrInvalidExpenseInput)

		body := `{"actor_id":"u-1","project_id":"p-1","labor_rates":[{"user_id":"w-1","daily_rate":-5}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/expenses", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns the derived totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.PUT("/v1/expenses", h.RecordExpense)

		uc.EXPECT().
			Record(gomock.Any(), "u-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, in usecase.ExpenseInput) (entities.Expense, error) {
				if in.ProjectID != "p-1" {
					t.Fatalf("expected project p-1, got %s", in.ProjectID)
				}
				if len(in.LaborRates) != 1 || in.LaborRates[0].DailyRate != 120 {
					t.Fatalf("labor rates not converted: %+v", in.LaborRates)
				}
				return entities.Expense{ID: "exp-1", ProjectID: "p-1", TotalLaborCost: 600, TotalMaterialCost: 40}, nil
			})

		body := `{"actor_id":"u-1","project_id":"p-1",` +
			`"materials":[{"description":"Sealant","quantity":4,"unit_price":10}],` +
			`"labor_rates":[{"user_id":"w-1","daily_rate":120}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/expenses", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["total_labor_cost"] != 600.0 {
			t.Fatalf("expected total_labor_cost 600, got %v", resp["total_labor_cost"])
		}
	})
}

func TestExpenseHandler_GetExpenseByProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id/expense", h.GetExpenseByProject)

		uc.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(entities.Expense{}, usecase.ErrExpenseNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1/expense", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
