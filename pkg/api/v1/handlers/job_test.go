package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/db/repos"
	"github.com/celestiaorg/jobtracker/internal/services"
	"github.com/celestiaorg/jobtracker/internal/types"
)

func setupJobApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Job{}))
	t.Cleanup(func() { _ = sqlDB.Close() })

	h := NewJobHandler(services.NewJobService(repos.NewJobRepository(db)))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/jobs", h.ListJobs)
	app.Get("/jobs/:id", h.GetJob)
	app.Post("/jobs", h.CreateJob)
	app.Put("/jobs/:id", h.UpdateJob)
	app.Delete("/jobs/:id", h.DeleteJob)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

const validJobBody = `{"title":"Engineer","company":"Acme","status":"applied","location":"Remote","salary":90000,"notes":"referral"}`

func TestJobHandler_CreateAndGet(t *testing.T) {
	app := setupJobApp(t)

	code, body := doRequest(t, app, http.MethodPost, "/jobs", validJobBody)
	require.Equal(t, http.StatusCreated, code, string(body))

	var created models.Job
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, models.JobStatusApplied, created.Status)

	code, body = doRequest(t, app, http.MethodGet, "/jobs/1", "")
	require.Equal(t, http.StatusOK, code)

	var fetched models.Job
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Acme", fetched.Company)
}

func TestJobHandler_ListJobs(t *testing.T) {
	app := setupJobApp(t)

	code, body := doRequest(t, app, http.MethodGet, "/jobs", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))

	doRequest(t, app, http.MethodPost, "/jobs", validJobBody)
	doRequest(t, app, http.MethodPost, "/jobs", strings.Replace(validJobBody, "Acme", "Globex", 1))

	code, body = doRequest(t, app, http.MethodGet, "/jobs", "")
	require.Equal(t, http.StatusOK, code)

	var jobs []models.Job
	require.NoError(t, json.Unmarshal(body, &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "Globex", jobs[1].Company)
}

func TestJobHandler_CreateJob_Invalid(t *testing.T) {
	app := setupJobApp(t)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing title",
			body:      `{"company":"Acme","status":"applied","location":"Remote","salary":1}`,
			wantField: "title",
		},
		{
			name:      "negative salary",
			body:      `{"title":"Engineer","company":"Acme","status":"applied","location":"Remote","salary":-5}`,
			wantField: "salary",
		},
		{
			name:      "blank location",
			body:      `{"title":"Engineer","company":"Acme","status":"saved","location":"   ","salary":0}`,
			wantField: "location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := doRequest(t, app, http.MethodPost, "/jobs", tt.body)
			require.Equal(t, http.StatusBadRequest, code)

			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.NotEmpty(t, resp.Error)

			fields := make([]string, 0, len(resp.Fields))
			for _, f := range resp.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		code, body := doRequest(t, app, http.MethodPost, "/jobs", strings.Replace(validJobBody, `"applied"`, `"ghosted"`, 1))
		require.Equal(t, http.StatusBadRequest, code)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Len(t, resp.Fields, 1)
		assert.Equal(t, "status", resp.Fields[0].Field)
		assert.Equal(t, types.ErrMsgStatusInvalid, resp.Fields[0].Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		code, _ := doRequest(t, app, http.MethodPost, "/jobs", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	code, body := doRequest(t, app, http.MethodGet, "/jobs", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))
}

func TestJobHandler_UpdateJob(t *testing.T) {
	app := setupJobApp(t)
	doRequest(t, app, http.MethodPost, "/jobs", validJobBody)

	code, body := doRequest(t, app, http.MethodPut, "/jobs/1", `{"status":"interview","notes":""}`)
	require.Equal(t, http.StatusOK, code, string(body))

	var updated models.Job
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, uint(1), updated.ID)
	assert.Equal(t, models.JobStatusInterview, updated.Status)
	assert.Empty(t, updated.Notes)
	assert.Equal(t, "Engineer", updated.Title)
	assert.Equal(t, 90000.0, updated.Salary)

	code, _ = doRequest(t, app, http.MethodPut, "/jobs/99", `{"status":"offer"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doRequest(t, app, http.MethodPut, "/jobs/1", `{"salary":-1}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = doRequest(t, app, http.MethodPut, "/jobs/1", `{"status":"foo"}`)
	require.Equal(t, http.StatusBadRequest, code)
	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "status", resp.Fields[0].Field)
}

func TestJobHandler_DeleteJob(t *testing.T) {
	app := setupJobApp(t)
	doRequest(t, app, http.MethodPost, "/jobs", validJobBody)

	code, _ := doRequest(t, app, http.MethodDelete, "/jobs/1", "")
	assert.Equal(t, http.StatusNoContent, code)

	code, body := doRequest(t, app, http.MethodDelete, "/jobs/1", "")
	assert.Equal(t, http.StatusNotFound, code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, ErrMsgJobNotFound, resp.Error)
}

func TestJobHandler_InvalidID(t *testing.T) {
	app := setupJobApp(t)

	for _, target := range []string{"/jobs/abc", "/jobs/0", "/jobs/-3"} {
		code, body := doRequest(t, app, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, code, target)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, ErrMsgInvalidJobID, resp.Error)
	}
}
