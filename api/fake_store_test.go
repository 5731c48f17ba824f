package api

import (
	"context"
	"errors"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/pranav244872/jobboard/db/sqlc"
)

var errNotSupported = errors.New("not supported by fake store")

// fakeStore is an in-memory db.Store. Instead of talking to Postgres it
// answers from maps, so handler tests control exactly what the store returns.
type fakeStore struct {
	jobs       map[int64]db.Job
	companies  map[int64]db.Company
	profiles   map[int64]db.UserProfile // keyed by user ID
	applicants map[int64][]db.ListJobApplicantsRow
	alerts     map[int64][]db.JobAlert // keyed by user ID

	// err, when set, is returned by every read.
	err error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs:       make(map[int64]db.Job),
		companies:  make(map[int64]db.Company),
		profiles:   make(map[int64]db.UserProfile),
		applicants: make(map[int64][]db.ListJobApplicantsRow),
		alerts:     make(map[int64][]db.JobAlert),
	}
}

var _ db.Store = (*fakeStore)(nil)

func (s *fakeStore) GetJob(_ context.Context, id int64) (db.Job, error) {
	if s.err != nil {
		return db.Job{}, s.err
	}
	job, ok := s.jobs[id]
	if !ok {
		return db.Job{}, pgx.ErrNoRows
	}
	return job, nil
}

func (s *fakeStore) GetCompany(_ context.Context, id int64) (db.Company, error) {
	if s.err != nil {
		return db.Company{}, s.err
	}
	company, ok := s.companies[id]
	if !ok {
		return db.Company{}, pgx.ErrNoRows
	}
	return company, nil
}

func (s *fakeStore) GetCandidateProfile(_ context.Context, userID int64) (db.UserProfile, error) {
	if s.err != nil {
		return db.UserProfile{}, s.err
	}
	profile, ok := s.profiles[userID]
	if !ok {
		return db.UserProfile{}, pgx.ErrNoRows
	}
	return profile, nil
}

func (s *fakeStore) ListJobApplicants(_ context.Context, jobID int64) ([]db.ListJobApplicantsRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]db.ListJobApplicantsRow{}, s.applicants[jobID]...), nil
}

func (s *fakeStore) ListJobAlertsByUser(_ context.Context, userID int64) ([]db.JobAlert, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]db.JobAlert{}, s.alerts[userID]...), nil
}

func (s *fakeStore) ListJobsCreatedSince(_ context.Context, createdAt pgtype.Timestamptz) ([]db.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	jobs := []db.Job{}
	for _, job := range s.jobs {
		if !job.CreatedAt.Time.Before(createdAt.Time) {
			jobs = append(jobs, job)
		}
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.Time.After(jobs[j].CreatedAt.Time)
	})
	return jobs, nil
}

func (s *fakeStore) GetKanbanBoardTx(ctx context.Context, jobID int64) (db.KanbanBoardTxResult, error) {
	var result db.KanbanBoardTxResult
	var err error

	if result.Job, err = s.GetJob(ctx, jobID); err != nil {
		return result, err
	}
	if result.Company, err = s.GetCompany(ctx, result.Job.CompanyID); err != nil {
		return result, err
	}
	result.Applicants, err = s.ListJobApplicants(ctx, jobID)
	return result, err
}

// The handlers never write; these exist to satisfy db.Store.

func (s *fakeStore) CreateApplication(context.Context, db.CreateApplicationParams) (db.Application, error) {
	return db.Application{}, errNotSupported
}

func (s *fakeStore) CreateCompany(context.Context, db.CreateCompanyParams) (db.Company, error) {
	return db.Company{}, errNotSupported
}

func (s *fakeStore) CreateJob(context.Context, db.CreateJobParams) (db.Job, error) {
	return db.Job{}, errNotSupported
}

func (s *fakeStore) CreateJobAlert(context.Context, db.CreateJobAlertParams) (db.JobAlert, error) {
	return db.JobAlert{}, errNotSupported
}

func (s *fakeStore) CreateUser(context.Context, db.CreateUserParams) (db.User, error) {
	return db.User{}, errNotSupported
}

func (s *fakeStore) GetUser(context.Context, int64) (db.User, error) {
	return db.User{}, errNotSupported
}

func (s *fakeStore) UpsertCandidateProfile(context.Context, db.UpsertCandidateProfileParams) (db.UserProfile, error) {
	return db.UserProfile{}, errNotSupported
}
