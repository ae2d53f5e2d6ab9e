package usecase

import (
	"context"
	"errors"
	"testing"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/domain/workflow"
	mock_interfaces "aga_techserv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimationUseCase_Create(t *testing.T) {
	validInput := EstimationInput{
		ProjectID: "p-1",
		Materials: []entities.MaterialItem{{Description: "Copper pipe", Quantity: 2, UnitPrice: 50}},
	}

	t.Run("missing actor", func(t *testing.T) {
		uc := NewEstimationUseCase(nil, nil, nil, workflow.NewGraph(), nil, nil)
		_, err := uc.Create(context.Background(), "", validInput)
		if !errors.Is(err, ErrMissingActor) {
			t.Fatalf("expected ErrMissingActor, got %v", err)
		}
	})

	t.Run("no line items", func(t *testing.T) {
		uc := NewEstimationUseCase(nil, nil, nil, workflow.NewGraph(), nil, nil)
		_, err := uc.Create(context.Background(), "eng-1", EstimationInput{ProjectID: "p-1"})
		if !errors.Is(err, ErrInvalidEstimationInput) {
			t.Fatalf("expected ErrInvalidEstimationInput, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		uc := NewEstimationUseCase(nil, nil, nil, workflow.NewGraph(), nil, nil)
		_, err := uc.Create(context.Background(), "eng-1", EstimationInput{
			ProjectID: "p-1",
			Materials: []entities.MaterialItem{{Description: "Copper pipe", Quantity: -1, UnitPrice: 50}},
		})
		if !errors.Is(err, ErrInvalidEstimationInput) {
			t.Fatalf("expected ErrInvalidEstimationInput, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewEstimationUseCase(repo, projects, nil, workflow.NewGraph(), nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", ProjectNumber: "PRJAGA250012"}, nil)
		repo.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(entities.Estimation{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), "eng-1", validInput)
		if !errors.Is(err, ErrEstimationAlreadyExists) {
			t.Fatalf("expected ErrEstimationAlreadyExists, got %v", err)
		}
	})

	t.Run("create success derives number and totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		uc := NewEstimationUseCase(repo, projects, comments, workflow.NewGraph(), nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", ProjectNumber: "PRJAGA250012"}, nil)
		repo.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(entities.Estimation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimation{})).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if e.EstimationNumber != "ESTAGA250012" {
					t.Fatalf("unexpected estimation number: %s", e.EstimationNumber)
				}
				if e.EstimatedAmount != 100 {
					t.Fatalf("expected estimated amount 100, got %v", e.EstimatedAmount)
				}
				if e.Materials[0].Total != 100 {
					t.Fatalf("expected line total 100, got %v", e.Materials[0].Total)
				}
				if e.IsChecked || e.IsApproved || e.Profit != nil {
					t.Fatalf("expected fresh review state: %+v", e)
				}
				return e, nil
			},
		)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Comment{}, nil)

		if _, err := uc.Create(context.Background(), "eng-1", validInput); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimationUseCase_ReviewGates(t *testing.T) {
	t.Run("approve before check is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo, nil, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimation{ID: "est-1", ProjectID: "p-1", IsChecked: false}, nil)

		_, err := uc.Approve(context.Background(), "admin-1", "est-1", "")
		if !errors.Is(err, ErrEstimationNotChecked) {
			t.Fatalf("expected ErrEstimationNotChecked, got %v", err)
		}
	})

	t.Run("double check is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo, nil, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimation{ID: "est-1", IsChecked: true}, nil)

		_, err := uc.Check(context.Background(), "admin-1", "est-1", "")
		if !errors.Is(err, ErrEstimationAlreadyChecked) {
			t.Fatalf("expected ErrEstimationAlreadyChecked, got %v", err)
		}
	})

	t.Run("check records the reviewer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		uc := NewEstimationUseCase(repo, projects, comments, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimation{ID: "est-1", ProjectID: "p-1", EstimationNumber: "ESTAGA250012"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimation{})).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if !e.IsChecked || e.CheckedByID != "reviewer-1" || e.CheckComment != "looks right" {
					t.Fatalf("unexpected check state: %+v", e)
				}
				return e, nil
			},
		)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Comment) (entities.Comment, error) {
				if c.ActionType != entities.CommentActionCheck {
					t.Fatalf("expected check comment, got %s", c.ActionType)
				}
				return c, nil
			},
		)

		if _, err := uc.Check(context.Background(), "reviewer-1", "est-1", " looks right "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approve moves the project to estimation_prepared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		uc := NewEstimationUseCase(repo, projects, comments, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{
			ID: "est-1", ProjectID: "p-1", EstimationNumber: "ESTAGA250012", IsChecked: true,
		}, nil)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusDraft}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimation{})).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if !e.IsApproved || e.ApprovedByID != "admin-1" {
					t.Fatalf("unexpected approval state: %+v", e)
				}
				return e, nil
			},
		)
		projects.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusEstimationPrepared {
					t.Fatalf("expected estimation_prepared, got %s", p.Status)
				}
				return p, nil
			},
		)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Comment{}, nil)

		if _, err := uc.Approve(context.Background(), "admin-1", "est-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approve refused when project already advanced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewEstimationUseCase(repo, projects, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimation{ID: "est-1", ProjectID: "p-1", IsChecked: true}, nil)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusQuotationSent}, nil)

		_, err := uc.Approve(context.Background(), "admin-1", "est-1", "")
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("reject clears the check flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		uc := NewEstimationUseCase(repo, projects, comments, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{
			ID: "est-1", ProjectID: "p-1", EstimationNumber: "ESTAGA250012",
			IsChecked: true, CheckedByID: "reviewer-1", CheckComment: "ok",
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimation{})).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if e.IsChecked || e.CheckedByID != "" || e.CheckComment != "" {
					t.Fatalf("expected cleared check state: %+v", e)
				}
				return e, nil
			},
		)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Comment) (entities.Comment, error) {
				if c.ActionType != entities.CommentActionRejection {
					t.Fatalf("expected rejection comment, got %s", c.ActionType)
				}
				return c, nil
			},
		)

		if _, err := uc.Reject(context.Background(), "admin-1", "est-1", "prices too low"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimationUseCase_UpdateAndDelete(t *testing.T) {
	t.Run("approved estimation is locked for update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo, nil, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimation{ID: "est-1", IsApproved: true}, nil)

		_, err := uc.Update(context.Background(), "eng-1", "est-1", EstimationInput{
			Materials: []entities.MaterialItem{{Description: "x", Quantity: 1, UnitPrice: 1}},
		})
		if !errors.Is(err, ErrEstimationLocked) {
			t.Fatalf("expected ErrEstimationLocked, got %v", err)
		}
	})

	t.Run("approved estimation is locked for delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo, nil, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimation{ID: "est-1", IsApproved: true}, nil)

		if err := uc.Delete(context.Background(), "eng-1", "est-1"); !errors.Is(err, ErrEstimationLocked) {
			t.Fatalf("expected ErrEstimationLocked, got %v", err)
		}
	})

	t.Run("update recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo, nil, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimation{ID: "est-1", ProjectID: "p-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimation{})).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if e.EstimatedAmount != 450 {
					t.Fatalf("expected estimated amount 450, got %v", e.EstimatedAmount)
				}
				return e, nil
			},
		)

		_, err := uc.Update(context.Background(), "eng-1", "est-1", EstimationInput{
			Materials: []entities.MaterialItem{{Description: "Copper pipe", Quantity: 3, UnitPrice: 50}},
			Labour:    []entities.LabourItem{{Description: "Install", Days: 2, Price: 150}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
