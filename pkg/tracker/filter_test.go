package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/jobtracker/internal/db/models"
)

func filterFixture() []models.Job {
	return []models.Job{
		{ID: 1, Title: "Engineer", Company: "Acme Corp", Location: "Remote", Status: models.JobStatusApplied},
		{ID: 2, Title: "Engineer", Company: "Acme", Location: "Berlin", Status: models.JobStatusOffer},
		{ID: 3, Title: "Product Designer", Company: "Globex", Location: "New York", Status: models.JobStatusInterview},
		{ID: 4, Title: "Data Analyst", Company: "Initech", Location: "Berlin", Status: models.JobStatusRejected},
		{ID: 5, Title: "Support Lead", Company: "Umbrella", Location: "London", Status: models.JobStatusSaved},
	}
}

func ids(jobs []models.Job) []uint {
	out := make([]uint, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	jobs := filterFixture()

	tests := []struct {
		name   string
		term   string
		status models.JobStatus
		want   []uint
	}{
		{name: "no filter keeps everything in order", want: []uint{1, 2, 3, 4, 5}},
		{name: "case-insensitive company", term: "ACME", want: []uint{1, 2}},
		{name: "matches title", term: "designer", want: []uint{3}},
		{name: "matches location", term: "berlin", want: []uint{2, 4}},
		{name: "substring inside a word", term: "lobe", want: []uint{3}},
		{name: "status only", status: models.JobStatusSaved, want: []uint{5}},
		{name: "term and status are combined", term: "Engineer", status: models.JobStatusOffer, want: []uint{2}},
		{name: "term matches but status does not", term: "Globex", status: models.JobStatusOffer, want: []uint{}},
		{name: "no match", term: "nothing like this", want: []uint{}},
		{name: "term is not trimmed", term: " acme", want: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(jobs, tt.term, tt.status)))
		})
	}
}

func TestFilter_EmptyFiltersReturnInput(t *testing.T) {
	jobs := filterFixture()
	assert.Equal(t, jobs, Filter(jobs, "", models.JobStatusUnknown))
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, "acme", models.JobStatusApplied)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	jobs := filterFixture()
	before := append([]models.Job(nil), jobs...)

	out := Filter(jobs, "engineer", models.JobStatusUnknown)
	out[0].Title = "changed"

	assert.Equal(t, before, jobs)
}

func TestFilterByName(t *testing.T) {
	jobs := filterFixture()

	got, err := FilterByName(jobs, "engineer", "offer")
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, ids(got))

	got, err = FilterByName(jobs, "", "")
	require.NoError(t, err)
	assert.Len(t, got, len(jobs))

	_, err = FilterByName(jobs, "", "ghosted")
	assert.Error(t, err)
}
