package pgsql

import (
	portsrepo "github.com/SscSPs/statement_review_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		StatementRepo:   newPgxStatementRepository(dbPool),
	}
}
