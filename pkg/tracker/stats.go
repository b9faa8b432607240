package tracker

import (
	"math"

	"github.com/celestiaorg/jobtracker/internal/db/models"
)

// Stats summarizes a job collection
type Stats struct {
	Total int `json:"total"`
	// ByStatus has an entry for every storable status, zero counts included
	ByStatus map[models.JobStatus]int `json:"byStatus"`
	// SuccessRate is the share of jobs in the interview stage, as a rounded percentage
	SuccessRate int `json:"successRate"`
}

// Aggregate counts jobs per status. Jobs with a status outside the storable
// set still count toward Total.
func Aggregate(jobs []models.Job) Stats {
	stats := Stats{
		Total:    len(jobs),
		ByStatus: make(map[models.JobStatus]int, len(models.JobStatuses())),
	}
	for _, status := range models.JobStatuses() {
		stats.ByStatus[status] = 0
	}
	for _, job := range jobs {
		if job.Status.IsValid() {
			stats.ByStatus[job.Status]++
		}
	}

	if stats.Total > 0 {
		rate := float64(stats.ByStatus[models.JobStatusInterview]) / float64(stats.Total) * 100
		stats.SuccessRate = int(math.Round(rate))
	}
	return stats
}

// Count returns the number of jobs with the given status
func (s Stats) Count(status models.JobStatus) int {
	return s.ByStatus[status]
}
