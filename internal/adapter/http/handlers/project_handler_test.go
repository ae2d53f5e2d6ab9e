package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aga_techserv/internal/adapter/http/handlers/mocks"
	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"actor_id":"u-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		now := time.Now().UTC()
		uc.EXPECT().
			CreateProject(gomock.Any(), "u-1", usecase.CreateProjectInput{Name: "Villa 12 AC retrofit", Location: "Marina"}).
			Return(entities.Project{ID: "p-1", ProjectNumber: "PRJAGA250012", Name: "Villa 12 AC retrofit", Status: entities.ProjectStatusDraft, CreatedAt: now, UpdatedAt: now}, nil)

		body := `{"actor_id":"u-1","name":"Villa 12 AC retrofit","location":"Marina"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(body))
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
		if resp["project_number"] != "PRJAGA250012" {
			t.Fatalf("expected project_number PRJAGA250012, got %v", resp["project_number"])
		}
		if resp["status"] != string(entities.ProjectStatusDraft) {
			t.Fatalf("expected status draft, got %v", resp["status"])
		}
	})
}

func TestProjectHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/status", h.UpdateStatus)

		body := `{"actor_id":"u-1","status":"launched"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/status", h.UpdateStatus)

		uc.EXPECT().
			UpdateStatus(gomock.Any(), "u-1", "p-1", entities.ProjectStatusWorkStarted, "").
			Return(entities.Project{}, usecase.ErrWrongProjectStatus)

		body := `{"actor_id":"u-1","status":"work_started"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/status", h.UpdateStatus)

		uc.EXPECT().
			UpdateStatus(gomock.Any(), "u-1", "p-1", entities.ProjectStatusQualityCheck, "snag list cleared").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusQualityCheck}, nil)

		body := `{"actor_id":"u-1","status":"quality_check","note":"snag list cleared"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_UpdateProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/progress", h.UpdateProgress)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/progress", bytes.NewBufferString(`{"actor_id":"u-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero progress is a valid value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/progress", h.UpdateProgress)

		uc.EXPECT().
			UpdateProgress(gomock.Any(), "u-1", "p-1", 0, "").
			Return(entities.Project{ID: "p-1", Progress: 0}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/progress", bytes.NewBufferString(`{"actor_id":"u-1","progress":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("out of range maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/progress", h.UpdateProgress)

		uc.EXPECT().
			UpdateProgress(gomock.Any(), "u-1", "p-1", 130, "").
			Return(entities.Project{}, usecase.ErrInvalidProgress)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/progress", bytes.NewBufferString(`{"actor_id":"u-1","progress":130}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not deletable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.DELETE("/v1/projects/:id", h.DeleteProject)

		uc.EXPECT().DeleteProject(gomock.Any(), "u-1", "p-1").Return(usecase.ErrProjectNotDeletable)

		req := httptest.NewRequest(http.MethodDelete, "/v1/projects/p-1?actor_id=u-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.DELETE("/v1/projects/:id", h.DeleteProject)

		uc.EXPECT().DeleteProject(gomock.Any(), "u-1", "p-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/projects/p-1?actor_id=u-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().GetByID(gomock.Any(), "p-missing").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
