package tracker

import (
	"fmt"
	"strings"

	"github.com/celestiaorg/jobtracker/internal/db/models"
)

// Filter returns the jobs whose title, company or location contains
// searchTerm (case-insensitive) and whose status equals status. An empty
// searchTerm or JobStatusUnknown disables that half of the match. Input order
// is kept and the input slice is never modified.
func Filter(jobs []models.Job, searchTerm string, status models.JobStatus) []models.Job {
	term := strings.ToLower(searchTerm)

	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if !matchesTerm(job, term) {
			continue
		}
		if status != models.JobStatusUnknown && job.Status != status {
			continue
		}
		filtered = append(filtered, job)
	}
	return filtered
}

// FilterByName is Filter for callers holding the status as text. An empty
// statusName means any status.
func FilterByName(jobs []models.Job, searchTerm, statusName string) ([]models.Job, error) {
	status := models.JobStatusUnknown
	if statusName != "" {
		var err error
		if status, err = models.ParseJobStatus(statusName); err != nil {
			return nil, fmt.Errorf("status filter: %w", err)
		}
	}
	return Filter(jobs, searchTerm, status), nil
}

func matchesTerm(job models.Job, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(job.Title), term) ||
		strings.Contains(strings.ToLower(job.Company), term) ||
		strings.Contains(strings.ToLower(job.Location), term)
}
