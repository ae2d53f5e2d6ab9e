package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/domain/workflow"
	mock_interfaces "aga_techserv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_CreateProject(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil, nil, workflow.NewGraph(), nil, nil)
		_, err := uc.CreateProject(context.Background(), "  ", CreateProjectInput{Name: "Villa AC retrofit"})
		if !errors.Is(err, ErrMissingActor) {
			t.Fatalf("expected ErrMissingActor, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil, nil, workflow.NewGraph(), nil, nil)
		_, err := uc.CreateProject(context.Background(), "admin-1", CreateProjectInput{Name: "   "})
		if !errors.Is(err, ErrInvalidProjectInput) {
			t.Fatalf("expected ErrInvalidProjectInput, got %v", err)
		}
	})

	t.Run("sequence reservation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seqRepo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewProjectUseCase(nil, seqRepo, nil, nil, workflow.NewGraph(), nil, nil)

		seqRepo.EXPECT().NextProjectSequence(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db"))

		_, err := uc.CreateProject(context.Background(), "admin-1", CreateProjectInput{Name: "Villa AC retrofit"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success numbers the project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		seqRepo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewProjectUseCase(repo, seqRepo, nil, nil, workflow.NewGraph(), nil, nil)

		seqRepo.EXPECT().NextProjectSequence(gomock.Any(), gomock.Any()).Return(int64(12), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" || p.Status != entities.ProjectStatusDraft || p.Progress != 0 {
					t.Fatalf("unexpected project: %+v", p)
				}
				if !strings.HasPrefix(p.ProjectNumber, "PRJAGA") || !strings.HasSuffix(p.ProjectNumber, "0012") {
					t.Fatalf("unexpected project number: %s", p.ProjectNumber)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		res, err := uc.CreateProject(context.Background(), "admin-1", CreateProjectInput{
			Name: " Villa AC retrofit ", ClientID: "client-1", Location: "Doha",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Villa AC retrofit" {
			t.Fatalf("expected trimmed name, got %q", res.Name)
		}
	})
}

func TestProjectUseCase_UpdateStatus(t *testing.T) {
	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "admin-1", "p-1", entities.ProjectStatusLPOReceived, "")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("illegal transition rejected before write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusDraft}, nil)

		_, err := uc.UpdateStatus(context.Background(), "admin-1", "p-1", entities.ProjectStatusWorkStarted, "")
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("work completed sets completion number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, comments, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID: "p-1", ProjectNumber: "PRJAGA250012", Status: entities.ProjectStatusInProgress,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusWorkCompleted {
					t.Fatalf("expected work_completed, got %s", p.Status)
				}
				if p.WorkCompletionNumber != "WCPAGA250012" {
					t.Fatalf("unexpected completion number: %s", p.WorkCompletionNumber)
				}
				if p.WorkCompletionDate == nil {
					t.Fatalf("expected completion date")
				}
				return p, nil
			},
		)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Comment{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "admin-1", "p-1", entities.ProjectStatusWorkCompleted, "done")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("audit write failure does not fail the operation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, comments, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID: "p-1", ProjectNumber: "PRJAGA250012", Status: entities.ProjectStatusQuotationApproved,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Comment{}, errors.New("dynamo down"))

		res, err := uc.UpdateStatus(context.Background(), "admin-1", "p-1", entities.ProjectStatusLPOReceived, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProjectStatusLPOReceived {
			t.Fatalf("expected lpo_received, got %s", res.Status)
		}
	})
}

func TestProjectUseCase_AssignTeamAndDriver(t *testing.T) {
	baseProject := entities.Project{ID: "p-1", ProjectNumber: "PRJAGA250012", Status: entities.ProjectStatusLPOReceived}

	t.Run("wrong status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusDraft}, nil)

		_, err := uc.AssignTeamAndDriver(context.Background(), "admin-1", "p-1", "eng-1", []string{"w-1"}, "d-1")
		if !errors.Is(err, ErrWrongProjectStatus) {
			t.Fatalf("expected ErrWrongProjectStatus, got %v", err)
		}
	})

	t.Run("worker with wrong role rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, users, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(baseProject, nil)
		users.EXPECT().GetByID(gomock.Any(), "eng-1").
			Return(entities.User{ID: "eng-1", Role: entities.UserRoleEngineer}, nil)
		users.EXPECT().GetByID(gomock.Any(), "w-1").
			Return(entities.User{ID: "w-1", Role: entities.UserRoleDriver}, nil)

		_, err := uc.AssignTeamAndDriver(context.Background(), "admin-1", "p-1", "eng-1", []string{"w-1"}, "d-1")
		if !errors.Is(err, ErrWrongUserRole) {
			t.Fatalf("expected ErrWrongUserRole, got %v", err)
		}
	})

	t.Run("unknown driver rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, users, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(baseProject, nil)
		users.EXPECT().GetByID(gomock.Any(), "eng-1").
			Return(entities.User{ID: "eng-1", Role: entities.UserRoleEngineer}, nil)
		users.EXPECT().GetByID(gomock.Any(), "w-1").
			Return(entities.User{ID: "w-1", Role: entities.UserRoleWorker}, nil)
		users.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.User{}, nil)

		_, err := uc.AssignTeamAndDriver(context.Background(), "admin-1", "p-1", "eng-1", []string{"w-1"}, "d-1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("assignment success transitions to team_assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, users, comments, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(baseProject, nil)
		users.EXPECT().GetByID(gomock.Any(), "eng-1").
			Return(entities.User{ID: "eng-1", Role: entities.UserRoleEngineer}, nil)
		users.EXPECT().GetByID(gomock.Any(), "w-1").
			Return(entities.User{ID: "w-1", Role: entities.UserRoleWorker}, nil)
		users.EXPECT().GetByID(gomock.Any(), "w-2").
			Return(entities.User{ID: "w-2", Role: entities.UserRoleWorker}, nil)
		users.EXPECT().GetByID(gomock.Any(), "d-1").
			Return(entities.User{ID: "d-1", Role: entities.UserRoleDriver}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusTeamAssigned {
					t.Fatalf("expected team_assigned, got %s", p.Status)
				}
				if p.EngineerID != "eng-1" || len(p.WorkerIDs) != 2 || p.DriverID != "d-1" {
					t.Fatalf("unexpected assignment: %+v", p)
				}
				return p, nil
			},
		)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Comment{}, nil)

		_, err := uc.AssignTeamAndDriver(context.Background(), "admin-1", "p-1", "eng-1", []string{"w-1", "w-2"}, "d-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_UpdateProgress(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil, nil, workflow.NewGraph(), nil, nil)
		if _, err := uc.UpdateProgress(context.Background(), "admin-1", "p-1", 101, ""); !errors.Is(err, ErrInvalidProgress) {
			t.Fatalf("expected ErrInvalidProgress, got %v", err)
		}
		if _, err := uc.UpdateProgress(context.Background(), "admin-1", "p-1", -1, ""); !errors.Is(err, ErrInvalidProgress) {
			t.Fatalf("expected ErrInvalidProgress, got %v", err)
		}
	})

	t.Run("first report starts the work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, comments, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID: "p-1", ProjectNumber: "PRJAGA250012", Status: entities.ProjectStatusTeamAssigned,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusWorkStarted || p.Progress != 10 {
					t.Fatalf("unexpected project: status=%s progress=%d", p.Status, p.Progress)
				}
				if p.WorkStartDate == nil {
					t.Fatalf("expected work start date")
				}
				return p, nil
			},
		)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Comment) (entities.Comment, error) {
				if c.ActionType != entities.CommentActionProgressUpdate || c.Progress == nil || *c.Progress != 10 {
					t.Fatalf("unexpected comment: %+v", c)
				}
				return c, nil
			},
		)

		_, err := uc.UpdateProgress(context.Background(), "admin-1", "p-1", 10, "mobilized")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("100 percent completes the work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, comments, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID: "p-1", ProjectNumber: "PRJAGA250012", Status: entities.ProjectStatusInProgress,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusWorkCompleted || p.Progress != 100 {
					t.Fatalf("unexpected project: status=%s progress=%d", p.Status, p.Progress)
				}
				return p, nil
			},
		)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Comment{}, nil)

		_, err := uc.UpdateProgress(context.Background(), "admin-1", "p-1", 100, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_DeleteProject(t *testing.T) {
	t.Run("only draft is deletable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusQuotationSent}, nil)

		if err := uc.DeleteProject(context.Background(), "admin-1", "p-1"); !errors.Is(err, ErrProjectNotDeletable) {
			t.Fatalf("expected ErrProjectNotDeletable, got %v", err)
		}
	})

	t.Run("draft delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, nil, workflow.NewGraph(), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusDraft}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		if err := uc.DeleteProject(context.Background(), "admin-1", "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
