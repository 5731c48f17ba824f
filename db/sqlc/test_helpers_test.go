package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pranav244872/jobboard/util"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////

// createRandomUser creates a user with the given role.
func createRandomUser(t *testing.T, role UserRole) User {
	arg := CreateUserParams{
		Username: util.RandomName() + util.RandomString(4),
		Email:    util.RandomEmail(),
		Role:     role,
	}

	user, err := testQueries.CreateUser(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	require.Equal(t, arg.Username, user.Username)
	require.Equal(t, arg.Email, user.Email)
	require.Equal(t, role, user.Role)
	require.NotZero(t, user.ID)
	require.True(t, user.CreatedAt.Valid)

	return user
}

////////////////////////////////////////////////////////////////////////

// createRandomCompany creates a company owned by a new employer.
func createRandomCompany(t *testing.T) (Company, User) {
	owner := createRandomUser(t, UserRoleEmployer)

	arg := CreateCompanyParams{
		OwnerID:     owner.ID,
		CompanyName: util.RandomName(),
		Location:    util.RandomLocation(),
	}

	company, err := testQueries.CreateCompany(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, owner.ID, company.OwnerID)
	require.Equal(t, arg.CompanyName, company.CompanyName)

	return company, owner
}

////////////////////////////////////////////////////////////////////////

// createJobAt creates a job for company with the given skills text and creation time.
func createJobAt(t *testing.T, company Company, skills string, createdAt time.Time) Job {
	arg := CreateJobParams{
		CompanyID:   company.ID,
		Title:       util.RandomJobTitle(),
		CompanyName: company.CompanyName,
		Location:    util.RandomLocation(),
		Description: util.RandomDescription(),
		Skills:      pgtype.Text{String: skills, Valid: skills != ""},
		CreatedAt:   pgtype.Timestamptz{Time: createdAt, Valid: true},
	}

	job, err := testQueries.CreateJob(context.Background(), arg)
	require.NoError(t, err)
	require.NotZero(t, job.ID)
	require.Equal(t, arg.Title, job.Title)
	require.Equal(t, arg.Skills, job.Skills)
	require.WithinDuration(t, createdAt, job.CreatedAt.Time, time.Millisecond)

	return job
}

// createRandomJob creates a job posted just now with random skills.
func createRandomJob(t *testing.T, company Company) Job {
	return createJobAt(t, company, util.RandomSkills(4), time.Now())
}

////////////////////////////////////////////////////////////////////////

// createRandomCandidate creates a candidate with a profile listing skills.
func createRandomCandidate(t *testing.T, skills string) (User, UserProfile) {
	user := createRandomUser(t, UserRoleCandidate)

	profile, err := testQueries.UpsertCandidateProfile(context.Background(), UpsertCandidateProfileParams{
		UserID:   user.ID,
		Headline: pgtype.Text{String: util.RandomJobTitle(), Valid: true},
		Skills:   pgtype.Text{String: skills, Valid: true},
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, profile.UserID)
	require.Equal(t, skills, profile.Skills.String)

	return user, profile
}

////////////////////////////////////////////////////////////////////////

// createTestApplication links a candidate to a job in the given column.
func createTestApplication(t *testing.T, user User, job Job, status ApplicationStatus) Application {
	application, err := testQueries.CreateApplication(context.Background(), CreateApplicationParams{
		UserID: user.ID,
		JobID:  job.ID,
		Status: status,
	})
	require.NoError(t, err)
	require.Equal(t, status, application.Status)
	require.True(t, application.AppliedAt.Valid)

	return application
}
