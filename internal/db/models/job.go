// Package models contains the job entity persisted by the jobs store and its status enum.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// JobIDField is the database field name for the job primary key
	JobIDField = "id"
	// JobCreatedAtField is the database field name for the job creation timestamp
	JobCreatedAtField = "created_at"
)

// JobStatus represents the stage a job application has reached
type JobStatus int

// Job status constants
const (
	// JobStatusUnknown is the zero value. It is never stored and means "any status" when filtering
	JobStatusUnknown JobStatus = iota
	// JobStatusApplied indicates the application has been sent
	JobStatusApplied
	// JobStatusInterview indicates the application reached the interview stage
	JobStatusInterview
	// JobStatusOffer indicates an offer was received
	JobStatusOffer
	// JobStatusRejected indicates the application was turned down
	JobStatusRejected
	// JobStatusSaved indicates the posting was bookmarked but not applied to yet
	JobStatusSaved
)

var jobStatusNames = []string{
	"unknown",
	"applied",
	"interview",
	"offer",
	"rejected",
	"saved",
}

// JobStatuses returns the storable statuses in their canonical order
func JobStatuses() []JobStatus {
	return []JobStatus{
		JobStatusApplied,
		JobStatusInterview,
		JobStatusOffer,
		JobStatusRejected,
		JobStatusSaved,
	}
}

// Job is a single job application
type Job struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Company   string    `json:"company" gorm:"not null;index"`
	Status    JobStatus `json:"status" gorm:"not null;index"`
	Location  string    `json:"location" gorm:"not null"`
	Salary    float64   `json:"salary" gorm:"not null;default:0"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// ErrInvalidJobStatus is returned when a status name is not one of the five storable statuses
var ErrInvalidJobStatus = errors.New("invalid job status")

// ParseJobStatus converts a status name to JobStatus.
// Only the five storable statuses are accepted.
func ParseJobStatus(str string) (JobStatus, error) {
	for _, status := range JobStatuses() {
		if jobStatusNames[status] == str {
			return status, nil
		}
	}

	return JobStatusUnknown, fmt.Errorf("%w: %s", ErrInvalidJobStatus, str)
}

// IsValid reports whether the status is one of the storable statuses
func (s JobStatus) IsValid() bool {
	return s >= JobStatusApplied && s <= JobStatusSaved
}

// MarshalJSON implements the json.Marshaler interface for JobStatus
func (s JobStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for JobStatus
func (s *JobStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	status, err := ParseJobStatus(str)
	if err != nil {
		return err
	}

	*s = status
	return nil
}

// MarshalText lets JobStatus key JSON maps by name
func (s JobStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface for JobStatus
func (s *JobStatus) UnmarshalText(text []byte) error {
	status, err := ParseJobStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

func (s JobStatus) String() string {
	if s < 0 || int(s) >= len(jobStatusNames) {
		return jobStatusNames[JobStatusUnknown]
	}
	return jobStatusNames[s]
}
