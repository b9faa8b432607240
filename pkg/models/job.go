// Package models exposes the job entity to clients outside this module through aliases of the internal definitions.
package models

import (
	internalmodels "github.com/celestiaorg/jobtracker/internal/db/models"
)

// JobStatus represents the stage a job application has reached
type JobStatus = internalmodels.JobStatus

// Job status constants
const (
	// JobStatusUnknown is the zero value and matches any status when filtering
	JobStatusUnknown JobStatus = internalmodels.JobStatusUnknown
	// JobStatusApplied indicates the application has been sent
	JobStatusApplied JobStatus = internalmodels.JobStatusApplied
	// JobStatusInterview indicates the application reached the interview stage
	JobStatusInterview JobStatus = internalmodels.JobStatusInterview
	// JobStatusOffer indicates an offer was received
	JobStatusOffer JobStatus = internalmodels.JobStatusOffer
	// JobStatusRejected indicates the application was turned down
	JobStatusRejected JobStatus = internalmodels.JobStatusRejected
	// JobStatusSaved indicates the posting was bookmarked
	JobStatusSaved JobStatus = internalmodels.JobStatusSaved
)

// Job is a single job application
type Job = internalmodels.Job

// ParseJobStatus converts a status name to a JobStatus.
var ParseJobStatus = internalmodels.ParseJobStatus

// JobStatuses returns the storable statuses in their canonical order.
var JobStatuses = internalmodels.JobStatuses
