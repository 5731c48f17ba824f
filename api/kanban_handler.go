// api/kanban_handler.go
package api

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	db "github.com/pranav244872/jobboard/db/sqlc"
	"github.com/pranav244872/jobboard/skillz"
	"go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////
// Employer kanban board: GET /jobs/:id/kanban
////////////////////////////////////////////////////////////////////////

type kanbanJob struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Skills      string `json:"skills"`
}

type kanbanApplicant struct {
	ApplicationID int64     `json:"application_id"`
	UserID        int64     `json:"user_id"`
	Username      string    `json:"username"`
	AppliedAt     time.Time `json:"applied_at"`
	skillz.Match
}

type kanbanBoardResponse struct {
	Job     kanbanJob                                  `json:"job"`
	Columns map[db.ApplicationStatus][]kanbanApplicant `json:"columns"`
}

// getKanbanBoard lists a job's applicants per pipeline stage, each with its
// match score. Only the employer owning the job (or an admin) may see it.
func (server *Server) getKanbanBoard(ctx *gin.Context) {
	var uri jobURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 1: Only employers and admins manage hiring pipelines.
	authPayload, err := getAuthorizationPayload(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}
	if authPayload.Role != db.UserRoleEmployer && authPayload.Role != db.UserRoleAdmin {
		err := errors.New("forbidden: only employers can view the kanban board")
		ctx.JSON(http.StatusForbidden, errorResponse(err))
		return
	}

	// Step 2: Load job, company and applicants from one snapshot.
	board, err := server.store.GetKanbanBoardTx(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("job not found")))
			return
		}
		server.logger.Error("failed to load kanban board", zap.Int64("job_id", uri.ID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Step 3: Employers only see their own company's jobs.
	if authPayload.Role == db.UserRoleEmployer && board.Company.OwnerID != authPayload.UserID {
		err := errors.New("forbidden: this job does not belong to your company")
		ctx.JSON(http.StatusForbidden, errorResponse(err))
		return
	}

	// Step 4: Score every applicant and place them in their column.
	required := board.Job.Skills.String
	columns := make(map[db.ApplicationStatus][]kanbanApplicant, len(db.AllApplicationStatusValues()))
	for _, status := range db.AllApplicationStatusValues() {
		columns[status] = []kanbanApplicant{}
	}

	for _, row := range board.Applicants {
		columns[row.Status] = append(columns[row.Status], kanbanApplicant{
			ApplicationID: row.ID,
			UserID:        row.UserID,
			Username:      row.Username,
			AppliedAt:     row.AppliedAt.Time,
			Match:         skillz.Compare(required, row.ProfileSkills.String),
		})
	}

	// Step 5: Best matches first. Rows arrive in application order, so a
	// stable sort keeps earlier applicants first among equal scores.
	for status := range columns {
		applicants := columns[status]
		sort.SliceStable(applicants, func(i, j int) bool {
			return applicants[i].Score > applicants[j].Score
		})
	}

	ctx.JSON(http.StatusOK, kanbanBoardResponse{
		Job: kanbanJob{
			ID:          board.Job.ID,
			Title:       board.Job.Title,
			CompanyName: board.Job.CompanyName,
			Skills:      required,
		},
		Columns: columns,
	})
}
