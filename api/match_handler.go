// api/match_handler.go
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/pranav244872/jobboard/skillz"
	"go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////
// Stateless scoring: POST /match
////////////////////////////////////////////////////////////////////////

// scoreSkillsRequest carries the two raw skills fields.
// Example:
//
//	{
//	  "required_skills": "Python, Django\nReact",
//	  "candidate_skills": "python, react."
//	}
type scoreSkillsRequest struct {
	RequiredSkills  string `json:"required_skills"`
	CandidateSkills string `json:"candidate_skills"`
}

// scoreSkills scores two free-text skill lists without touching the database.
func (server *Server) scoreSkills(ctx *gin.Context) {
	var req scoreSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, skillz.Compare(req.RequiredSkills, req.CandidateSkills))
}

////////////////////////////////////////////////////////////////////////
// Job detail: GET /jobs/:id/match
////////////////////////////////////////////////////////////////////////

type jobURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// jobMatchResponse is what the job detail page shows next to the posting.
type jobMatchResponse struct {
	JobID int64 `json:"job_id"`
	skillz.Match
}

// getJobMatch scores the job's required skills against the caller's profile.
func (server *Server) getJobMatch(ctx *gin.Context) {
	var uri jobURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 1: Identify the caller.
	authPayload, err := getAuthorizationPayload(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	// Step 2: Load the job.
	job, err := server.store.GetJob(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("job not found")))
			return
		}
		server.logger.Error("failed to load job", zap.Int64("job_id", uri.ID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Step 3: Load the caller's skills. No profile means no skills.
	var candidateSkills string
	profile, err := server.store.GetCandidateProfile(ctx, authPayload.UserID)
	switch {
	case err == nil:
		candidateSkills = profile.Skills.String
	case errors.Is(err, pgx.ErrNoRows):
		server.logger.Debug("user has no profile", zap.Int64("user_id", authPayload.UserID))
	default:
		server.logger.Error("failed to load profile", zap.Int64("user_id", authPayload.UserID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Step 4: Score. A NULL skills column reads as "".
	ctx.JSON(http.StatusOK, jobMatchResponse{
		JobID: job.ID,
		Match: skillz.Compare(job.Skills.String, candidateSkills),
	})
}
