package tracker

import (
	"strings"

	"github.com/celestiaorg/jobtracker/internal/db/models"
)

// StatusStyle is how a status is shown to the user
type StatusStyle struct {
	Label string
	Icon  string
	Color string
}

// StatusStyles maps every storable status to its presentation
var StatusStyles = map[models.JobStatus]StatusStyle{
	models.JobStatusApplied:   {Label: "Applied", Icon: "work", Color: "blue"},
	models.JobStatusInterview: {Label: "Interview", Icon: "schedule", Color: "yellow"},
	models.JobStatusOffer:     {Label: "Offer", Icon: "check-circle", Color: "green"},
	models.JobStatusRejected:  {Label: "Rejected", Icon: "cancel", Color: "red"},
	models.JobStatusSaved:     {Label: "Saved", Icon: "bookmark", Color: "gray"},
}

// StyleFor returns the style for status. Statuses outside the table get a
// gray work badge labelled with the status name.
func StyleFor(status models.JobStatus) StatusStyle {
	if style, ok := StatusStyles[status]; ok {
		return style
	}
	name := status.String()
	return StatusStyle{
		Label: strings.ToUpper(name[:1]) + name[1:],
		Icon:  "work",
		Color: "gray",
	}
}
