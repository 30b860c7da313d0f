package services

import (
	portsrepo "github.com/SscSPs/statement_review_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_review_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Review = NewReviewService(repos.TransactionRepo)
	container.Analytics = NewAnalyticsService(repos.TransactionRepo)
	container.Statement = NewStatementService(repos.StatementRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ReviewSvcFacade    = (*reviewService)(nil)
	_ portssvc.AnalyticsService   = (*analyticsService)(nil)
	_ portssvc.StatementSvcFacade = (*statementService)(nil)
)
