package services

import (
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
)

// Repositories bundles the persistence facades needed to build the service
// container.
type Repositories struct {
	CashSession   portsrepo.CashSessionRepositoryWithTx
	PaymentMethod portsrepo.PaymentMethodRepositoryFacade
	Member        portsrepo.MemberRepositoryFacade
	Payment       portsrepo.PaymentRepositoryFacade
	Expense       portsrepo.ExpenseRepositoryFacade
	Operator      portsrepo.OperatorRepositoryFacade
	AuditLog      portsrepo.AuditLogRepositoryFacade
}

// NewServiceContainer wires all application services with their dependencies.
func NewServiceContainer(repos Repositories) *portssvc.ServiceContainer {
	auditSvc := NewAuditService(repos.AuditLog)

	return &portssvc.ServiceContainer{
		CashSession:   NewCashSessionService(repos.CashSession, repos.PaymentMethod, auditSvc),
		PaymentMethod: NewPaymentMethodService(repos.PaymentMethod, auditSvc),
		Member:        NewMemberService(repos.Member, auditSvc),
		Payment:       NewPaymentService(repos.Payment, repos.Member, repos.PaymentMethod, auditSvc),
		Expense:       NewExpenseService(repos.Expense, repos.PaymentMethod, auditSvc),
		Operator:      NewOperatorService(repos.Operator),
		Audit:         auditSvc,
	}
}
