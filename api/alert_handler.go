// api/alert_handler.go
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pranav244872/jobboard/alerts"
	"go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////
// Job alerts: GET /alerts/matches
////////////////////////////////////////////////////////////////////////

type alertJob struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company_name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

type alertMatches struct {
	AlertID  int64      `json:"alert_id"`
	Keyword  string     `json:"keyword"`
	Location string     `json:"location,omitempty"`
	Jobs     []alertJob `json:"jobs"`
}

// listAlertMatches returns, for each of the caller's saved alerts, the jobs
// posted within the alert window that match it.
func (server *Server) listAlertMatches(ctx *gin.Context) {
	authPayload, err := getAuthorizationPayload(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	// Step 1: Load the caller's alerts.
	savedAlerts, err := server.store.ListJobAlertsByUser(ctx, authPayload.UserID)
	if err != nil {
		server.logger.Error("failed to list job alerts", zap.Int64("user_id", authPayload.UserID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	response := gin.H{"alerts": []alertMatches{}}
	if len(savedAlerts) == 0 {
		ctx.JSON(http.StatusOK, response)
		return
	}

	// Step 2: Load the recent jobs once and match every alert against them.
	now := server.now()
	window := server.config.AlertWindow
	since := pgtype.Timestamptz{Time: now.Add(-window), Valid: true}

	jobs, err := server.store.ListJobsCreatedSince(ctx, since)
	if err != nil {
		server.logger.Error("failed to list recent jobs", zap.Time("since", since.Time), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	postings := make([]alerts.Posting, len(jobs))
	companies := make(map[int64]string, len(jobs))
	for i, job := range jobs {
		postings[i] = alerts.Posting{
			ID:          job.ID,
			Title:       job.Title,
			Description: job.Description,
			Skills:      job.Skills.String,
			Location:    job.Location,
			CreatedAt:   job.CreatedAt.Time,
		}
		companies[job.ID] = job.CompanyName
	}

	// Step 3: Build one entry per alert, keeping the alerts' order.
	result := make([]alertMatches, 0, len(savedAlerts))
	for _, saved := range savedAlerts {
		alert := alerts.Alert{Keyword: saved.Keyword, Location: saved.Location.String}

		entry := alertMatches{
			AlertID:  saved.ID,
			Keyword:  saved.Keyword,
			Location: saved.Location.String,
			Jobs:     []alertJob{},
		}
		for _, posting := range alerts.Filter(alert, postings, now, window) {
			entry.Jobs = append(entry.Jobs, alertJob{
				ID:        posting.ID,
				Title:     posting.Title,
				Company:   companies[posting.ID],
				Location:  posting.Location,
				CreatedAt: posting.CreatedAt,
			})
		}
		result = append(result, entry)
	}

	response["alerts"] = result
	ctx.JSON(http.StatusOK, response)
}
