// Package auth implements the authorization policy: two roles, no
// transitions, but every mutation is gated. The authenticated identity is
// resolved once by the middleware and passed explicitly to every check.
package auth

import (
	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
)

// Policy evaluates role and ownership rules against an explicit identity
type Policy struct{}

// NewPolicy creates a new Policy
func NewPolicy() *Policy {
	return &Policy{}
}

// RequireAuthenticated fails with Unauthorized when no identity is present.
// This check always runs before any role or ownership check.
func (p *Policy) RequireAuthenticated(actor *models.User) error {
	if actor == nil || actor.ID == "" {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// RequireCoordinator gates Student and Adaptation mutations
func (p *Policy) RequireCoordinator(actor *models.User) error {
	if err := p.RequireAuthenticated(actor); err != nil {
		return err
	}
	if actor.Role != models.RoleCoordinator {
		return apperrors.NewForbiddenError("Apenas coordenadores podem executar esta operação")
	}
	return nil
}

// RequireReportAuthor gates Report update and delete: only the author may
// touch a report, coordinators included.
func (p *Policy) RequireReportAuthor(actor *models.User, report *models.Report) error {
	if err := p.RequireAuthenticated(actor); err != nil {
		return err
	}
	if report.TeacherID != actor.ID {
		return apperrors.NewForbiddenError("Você só pode editar seus próprios relatos")
	}
	return nil
}
