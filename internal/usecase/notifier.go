package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/usecase/interfaces"
)

// Notifier fans a workflow event out to the project's assigned engineer and
// every admin user, de-duplicated by email address.
//
// Delivery is fire-and-forget: failures are logged and swallowed so the
// primary operation that triggered the notification is never affected.
type Notifier struct {
	users  interfaces.IUserRepository
	mailer interfaces.IMailer
	log    *zap.Logger
}

func NewNotifier(users interfaces.IUserRepository, mailer interfaces.IMailer, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{users: users, mailer: mailer, log: log}
}

// NotifyProject resolves recipients and sends one mail per unique address.
// It never returns an error.
func (n *Notifier) NotifyProject(ctx context.Context, project entities.Project, subject, body string) {
	if n == nil || n.mailer == nil || n.users == nil {
		return
	}

	recipients := map[string]bool{}

	if project.EngineerID != "" {
		engineer, err := n.users.GetByID(ctx, project.EngineerID)
		if err != nil {
			n.log.Warn("failed loading engineer for notification",
				zap.String("project_id", project.ID), zap.String("engineer_id", project.EngineerID), zap.Error(err))
		} else if engineer.Email != "" {
			recipients[strings.ToLower(engineer.Email)] = true
		}
	}

	admins, err := n.users.ListByRole(ctx, entities.UserRoleAdmin)
	if err != nil {
		n.log.Warn("failed loading admins for notification",
			zap.String("project_id", project.ID), zap.Error(err))
	}
	for _, admin := range admins {
		if admin.Email != "" {
			recipients[strings.ToLower(admin.Email)] = true
		}
	}

	if len(recipients) == 0 {
		n.log.Debug("no notification recipients", zap.String("project_id", project.ID))
		return
	}

	text := fmt.Sprintf("%s\n\nProject: %s (%s)", body, project.Name, project.ProjectNumber)
	for to := range recipients {
		if err := n.mailer.Send(ctx, interfaces.Mail{To: to, Subject: subject, Text: text}); err != nil {
			n.log.Warn("notification send failed",
				zap.String("project_id", project.ID), zap.String("to", to), zap.Error(err))
		}
	}
}
