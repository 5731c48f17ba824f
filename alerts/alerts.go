// alerts/alerts.go
package alerts

import (
	"strings"
	"time"
)

// DefaultWindow is how far back a job may have been posted and still be
// reported by an alert. Older jobs were already reported by earlier runs.
const DefaultWindow = 24 * time.Hour

// Alert is a saved search: a keyword and an optional location.
type Alert struct {
	Keyword  string
	Location string // Empty means any location
}

// Posting holds the job fields an alert is matched against.
type Posting struct {
	ID          int64
	Title       string
	Description string
	Skills      string
	Location    string
	CreatedAt   time.Time
}

// Matches reports whether job should be reported for alert at time now.
// The keyword may appear in the title, the description or the skills; the
// location, when set, must appear in the job's location. Both checks are
// case-insensitive substring checks.
func Matches(alert Alert, job Posting, now time.Time, window time.Duration) bool {
	if window <= 0 {
		window = DefaultWindow
	}

	// Step 1: Only recent jobs.
	if job.CreatedAt.Before(now.Add(-window)) {
		return false
	}

	// Step 2: Keyword in any of the searchable fields.
	keyword := strings.ToLower(alert.Keyword)
	if !containsFold(job.Title, keyword) &&
		!containsFold(job.Description, keyword) &&
		!containsFold(job.Skills, keyword) {
		return false
	}

	// Step 3: Location filter.
	if alert.Location != "" && !containsFold(job.Location, strings.ToLower(alert.Location)) {
		return false
	}

	return true
}

// Filter returns the jobs that match alert, preserving their order.
func Filter(alert Alert, jobs []Posting, now time.Time, window time.Duration) []Posting {
	matched := make([]Posting, 0, len(jobs))
	for _, job := range jobs {
		if Matches(alert, job, now, window) {
			matched = append(matched, job)
		}
	}
	return matched
}

// containsFold reports whether the lower-cased needle occurs in s, ignoring case.
func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
