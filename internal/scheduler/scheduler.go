package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/usecase"
	"aga_techserv/internal/usecase/interfaces"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the recurring background jobs of the workflow engine.
// Currently a single daily job: remind the team about invoices that were
// sent but have not been settled.
//
// Env vars:
//   - REMINDER_CRON (default: "0 9 * * *")
type Scheduler struct {
	cron     *cron.Cron
	projects interfaces.IProjectRepository
	invoices interfaces.IInvoiceRepository
	notifier *usecase.Notifier
	log      *zap.Logger
}

func New(
	projects interfaces.IProjectRepository,
	invoices interfaces.IInvoiceRepository,
	notifier *usecase.Notifier,
	log *zap.Logger,
) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		projects: projects,
		invoices: invoices,
		notifier: notifier,
		log:      log,
	}
}

// Start registers the jobs and launches the cron runner in its own
// goroutine.
func (s *Scheduler) Start() error {
	spec := os.Getenv("REMINDER_CRON")
	if spec == "" {
		spec = "0 9 * * *"
	}

	if _, err := s.cron.AddFunc(spec, s.remindUnpaidInvoices); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("scheduler started", zap.String("reminder_cron", spec))
	return nil
}

// Stop halts the runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) remindUnpaidInvoices() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	projects, err := s.projects.ListByStatus(ctx, entities.ProjectStatusFinalInvoiceSent)
	if err != nil {
		s.log.Error("reminder scan failed", zap.Error(err))
		return
	}

	for _, project := range projects {
		invoice, err := s.invoices.GetByProjectID(ctx, project.ID)
		if err != nil {
			s.log.Warn("reminder invoice lookup failed",
				zap.String("project_id", project.ID), zap.Error(err))
			continue
		}
		if invoice.ID == "" || invoice.PaymentStatus != entities.InvoicePaymentPending {
			continue
		}

		days := int(time.Since(invoice.IssuedAt).Hours() / 24)
		s.notifier.NotifyProject(ctx, project,
			fmt.Sprintf("Payment reminder: invoice %s", invoice.InvoiceNumber),
			fmt.Sprintf("Invoice %s for %.2f has been outstanding for %d day(s).", invoice.InvoiceNumber, invoice.Amount, days))
	}

	s.log.Info("reminder scan finished", zap.Int("projects_checked", len(projects)))
}
