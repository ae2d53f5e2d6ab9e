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

func TestEstimationHandler_CreateEstimation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewEstimationHandler(uc)

		r := gin.New()
		r.POST("/v1/estimations", h.CreateEstimation)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewEstimationHandler(uc)

		r := gin.New()
		r.POST("/v1/estimations", h.CreateEstimation)

		uc.EXPECT().Create(gomock.Any(), "u-1", gomock.Any()).Return(entities.Estimation{}, usecase.ErrEstimationAlreadyExists)

		body := `{"actor_id":"u-1","project_id":"p-1","materials":[{"description":"Copper pipe","quantity":10,"unit_price":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success carries converted line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewEstimationHandler(uc)

		r := gin.New()
		r.POST("/v1/estimations", h.CreateEstimation)

		uc.EXPECT().
			Create(gomock.Any(), "u-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, in usecase.EstimationInput) (entities.Estimation, error) {
				if in.ProjectID != "p-1" {
					t.Fatalf("expected project p-1, got %s", in.ProjectID)
				}
				if len(in.Materials) != 1 || in.Materials[0].Description != "Copper pipe" {
					t.Fatalf("materials not converted: %+v", in.Materials)
				}
				if len(in.Labour) != 1 || in.Labour[0].Days != 3 {
					t.Fatalf("labour not converted: %+v", in.Labour)
				}
				return entities.Estimation{ID: "est-1", ProjectID: "p-1", EstimationNumber: "ESTAGA250012", EstimatedAmount: 350}, nil
			})

		body := `{"actor_id":"u-1","project_id":"p-1",` +
			`"materials":[{"description":"Copper pipe","quantity":10,"unit_price":5}],` +
			`"labour":[{"description":"Technician","days":3,"price":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["estimation_number"] != "ESTAGA250012" {
			t.Fatalf("expected estimation_number ESTAGA250012, got %v", resp["estimation_number"])
		}
	})
}

func TestEstimationHandler_ReviewGate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve before check maps to unprocessable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewEstimationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimations/:id/approve", h.ApproveEstimation)

		uc.EXPECT().Approve(gomock.Any(), "u-2", "est-1", "").Return(entities.Estimation{}, usecase.ErrEstimationNotChecked)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimations/est-1/approve", bytes.NewBufferString(`{"actor_id":"u-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("double check maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewEstimationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimations/:id/check", h.CheckEstimation)

		uc.EXPECT().Check(gomock.Any(), "u-2", "est-1", "rates verified").Return(entities.Estimation{}, usecase.ErrEstimationAlreadyChecked)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimations/est-1/check", bytes.NewBufferString(`{"actor_id":"u-2","comment":"rates verified"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("check success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewEstimationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimations/:id/check", h.CheckEstimation)

		uc.EXPECT().
			Check(gomock.Any(), "u-2", "est-1", "rates verified").
			Return(entities.Estimation{ID: "est-1", IsChecked: true, CheckedByID: "u-2"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimations/est-1/check", bytes.NewBufferString(`{"actor_id":"u-2","comment":"rates verified"}`))
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
		if resp["is_checked"] != true {
			t.Fatalf("expected is_checked true, got %v", resp["is_checked"])
		}
	})
}

func TestEstimationHandler_DeleteEstimation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved estimation is locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewEstimationHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimations/:id", h.DeleteEstimation)

		uc.EXPECT().Delete(gomock.Any(), "u-1", "est-1").Return(usecase.ErrEstimationLocked)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimations/est-1?actor_id=u-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
