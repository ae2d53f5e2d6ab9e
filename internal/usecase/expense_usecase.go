package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/domain/finance"
	"aga_techserv/internal/usecase/interfaces"
)

var (
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrInvalidExpenseInput = errors.New("invalid expense input")
)

// ExpenseInput carries material/miscellaneous lines and the daily rates for
// the labor block. Days present are NOT accepted from callers; they come
// from the attendance collaborator.
type ExpenseInput struct {
	ProjectID     string
	Materials     []entities.ExpenseItem
	Miscellaneous []entities.ExpenseItem
	LaborRates    []LaborRateInput
}

// LaborRateInput is one team member's daily rate.
type LaborRateInput struct {
	UserID    string
	DailyRate float64
}

// IExpenseUseCase exposes the project expense report. One active record per
// project; Record creates it on first call and rewrites it afterwards.
type IExpenseUseCase interface {
	Record(ctx context.Context, actorID string, in ExpenseInput) (entities.Expense, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Expense, error)
}

type ExpenseUseCase struct {
	expenses   interfaces.IExpenseRepository
	projects   interfaces.IProjectRepository
	attendance interfaces.IAttendanceProvider
	log        *zap.Logger
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(
	expenses interfaces.IExpenseRepository,
	projects interfaces.IProjectRepository,
	attendance interfaces.IAttendanceProvider,
	log *zap.Logger,
) *ExpenseUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExpenseUseCase{expenses: expenses, projects: projects, attendance: attendance, log: log}
}

func (u *ExpenseUseCase) Record(ctx context.Context, actorID string, in ExpenseInput) (entities.Expense, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Expense{}, ErrMissingActor
	}
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return entities.Expense{}, ErrInvalidProjectID
	}
	for _, it := range in.Materials {
		if it.Quantity <= 0 || it.UnitPrice < 0 {
			return entities.Expense{}, ErrInvalidExpenseInput
		}
	}
	for _, it := range in.Miscellaneous {
		if it.Quantity <= 0 || it.UnitPrice < 0 {
			return entities.Expense{}, ErrInvalidExpenseInput
		}
	}
	for _, rate := range in.LaborRates {
		if strings.TrimSpace(rate.UserID) == "" || rate.DailyRate < 0 {
			return entities.Expense{}, ErrInvalidExpenseInput
		}
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Expense{}, err
	}
	if project.ID == "" {
		return entities.Expense{}, ErrProjectNotFound
	}

	labor := make([]entities.LaborDetail, 0, len(in.LaborRates))
	for _, rate := range in.LaborRates {
		days, err := u.attendance.DaysPresent(ctx, project.ID, rate.UserID)
		if err != nil {
			return entities.Expense{}, err
		}
		labor = append(labor, entities.LaborDetail{
			UserID:      strings.TrimSpace(rate.UserID),
			DailyRate:   rate.DailyRate,
			DaysPresent: days,
		})
	}

	existing, err := u.expenses.GetByProjectID(ctx, project.ID)
	if err != nil {
		return entities.Expense{}, err
	}

	now := time.Now().UTC()
	e := entities.Expense{
		ID:            existing.ID,
		ProjectID:     project.ID,
		Materials:     in.Materials,
		Miscellaneous: in.Miscellaneous,
		LaborDetails:  labor,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     now,
	}
	e = finance.RecomputeExpense(e)

	if existing.ID == "" {
		e.ID = uuid.NewString()
		e.CreatedAt = now
		created, err := u.expenses.Create(ctx, e)
		if err != nil {
			return entities.Expense{}, err
		}
		u.log.Info("expense recorded",
			zap.String("expense_id", created.ID), zap.String("project_id", project.ID),
			zap.Float64("labor_cost", created.TotalLaborCost))
		return created, nil
	}

	updated, err := u.expenses.Update(ctx, e)
	if err != nil {
		return entities.Expense{}, err
	}
	u.log.Info("expense updated",
		zap.String("expense_id", updated.ID), zap.String("project_id", project.ID),
		zap.Float64("labor_cost", updated.TotalLaborCost))
	return updated, nil
}

func (u *ExpenseUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.Expense, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Expense{}, ErrInvalidProjectID
	}
	e, err := u.expenses.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return e, nil
}
