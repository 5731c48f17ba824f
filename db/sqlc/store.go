// db/store.go

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

////////////////////////////////////////////////////////////////////////
// Store Definition
////////////////////////////////////////////////////////////////////////

// Store provides all functions to execute db queries and transactions.
// Handlers depend on this interface so tests can swap in a fake.
type Store interface {
	Querier
	GetKanbanBoardTx(ctx context.Context, jobID int64) (KanbanBoardTxResult, error)
}

// SQLStore is the Postgres implementation of Store.
type SQLStore struct {
	*Queries
	dbpool *pgxpool.Pool
}

// NewStore creates a new Store backed by a connection pool.
func NewStore(dbpool *pgxpool.Pool) Store {
	return &SQLStore{
		dbpool:  dbpool,
		Queries: New(dbpool),
	}
}

// readOnlySnapshot gives every query in the transaction the same view of the data.
var readOnlySnapshot = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// execTx executes a function within a database transaction.
func (s *SQLStore) execTx(ctx context.Context, opts pgx.TxOptions, fn func(*Queries) error) error {
	tx, err := s.dbpool.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // Rollback is a no-op if the transaction has been committed.

	q := New(tx)
	err = fn(q)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

////////////////////////////////////////////////////////////////////////
// Transaction: GetKanbanBoard
////////////////////////////////////////////////////////////////////////

// KanbanBoardTxResult contains everything the employer board needs for one job.
type KanbanBoardTxResult struct {
	Job        Job
	Company    Company
	Applicants []ListJobApplicantsRow
}

// GetKanbanBoardTx loads a job, the company that owns it, and all of its
// applicants from a single snapshot, so an applicant list never refers to a
// job state the caller did not see.
func (s *SQLStore) GetKanbanBoardTx(ctx context.Context, jobID int64) (KanbanBoardTxResult, error) {
	var result KanbanBoardTxResult

	err := s.execTx(ctx, readOnlySnapshot, func(q *Queries) error {
		var err error

		// Step 1: Load the job. pgx.ErrNoRows is passed through untouched.
		result.Job, err = q.GetJob(ctx, jobID)
		if err != nil {
			return err
		}

		// Step 2: Load the owning company for the authorization check.
		result.Company, err = q.GetCompany(ctx, result.Job.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to load company %d: %w", result.Job.CompanyID, err)
		}

		// Step 3: Load the applicants together with their profile skills.
		result.Applicants, err = q.ListJobApplicants(ctx, jobID)
		if err != nil {
			return fmt.Errorf("failed to list applicants for job %d: %w", jobID, err)
		}

		return nil
	})

	return result, err
}
