// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/jobtracker/pkg/api/v1/handlers"
)

/*

To keep this file organized, routes should be organized in the following way:

1. Smallest scope first
2. Order routes in GET, POST, PUT, DELETE order.
	a. Within this ordering, param urls (ie /:id) should go last, otherwise fiber will interpret the route slug as that param.
3. For clarity, naming should match the action (i.e. GetJob, DeleteJob)

*/

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// JobsPrefix is the collection path of the jobs resource
	JobsPrefix = "/jobs"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// Job routes
	GetJobs   = "GetJobs"
	GetJob    = "GetJob"
	CreateJob = "CreateJob"
	UpdateJob = "UpdateJob"
	DeleteJob = "DeleteJob"
)

// routeCache stores extracted routes for use prior to compilation
var (
	routeCache     map[string]string
	routeCacheMu   sync.RWMutex
	routeCacheInit sync.Once
)

// RegisterRoutes configures the health check and jobs routes
func RegisterRoutes(app *fiber.App, jobHandler *handlers.JobHandler) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	// Jobs endpoints
	jobs := app.Group(JobsPrefix)
	jobs.Get("/", jobHandler.ListJobs).Name(GetJobs)
	jobs.Get("/:id", jobHandler.GetJob).Name(GetJob)
	jobs.Post("/", jobHandler.CreateJob).Name(CreateJob)
	jobs.Put("/:id", jobHandler.UpdateJob).Name(UpdateJob)
	jobs.Delete("/:id", jobHandler.DeleteJob).Name(DeleteJob)
}

// initRouteCache initializes the route cache by creating a mock app and extracting routes
func initRouteCache() {
	routeCacheInit.Do(func() {
		cache := make(map[string]string)

		app := fiber.New()
		RegisterRoutes(app, &handlers.JobHandler{})

		for _, route := range app.GetRoutes() {
			if route.Name != "" {
				cache[route.Name] = route.Path
			}
		}

		routeCacheMu.Lock()
		routeCache = cache
		routeCacheMu.Unlock()
	})
}

// GetRoute returns the route pattern for the given route name
func GetRoute(name string) string {
	initRouteCache()

	routeCacheMu.RLock()
	defer routeCacheMu.RUnlock()
	return routeCache[name]
}

// BuildURL builds a URL for the given route name and parameters
func BuildURL(routeName string, params map[string]string, queryParams url.Values) string {
	route := GetRoute(routeName)
	if route == "" {
		return ""
	}

	for param, value := range params {
		route = strings.ReplaceAll(route, ":"+param, url.PathEscape(value))
	}

	// Remove trailing slash if it's a base endpoint with no parameters
	if len(route) > 1 && strings.HasSuffix(route, "/") && !strings.Contains(route, ":") {
		route = strings.TrimSuffix(route, "/")
	}

	if len(queryParams) > 0 {
		route = fmt.Sprintf("%s?%s", route, queryParams.Encode())
	}

	return route
}

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return BuildURL(HealthCheck, nil, nil)
}

// Job route helpers

// GetJobsURL returns the URL for listing jobs
func GetJobsURL() string {
	return BuildURL(GetJobs, nil, nil)
}

// GetJobURL returns the URL for getting a job by ID
func GetJobURL(id uint) string {
	return BuildURL(GetJob, idParam(id), nil)
}

// CreateJobURL returns the URL for creating a job
func CreateJobURL() string {
	return BuildURL(CreateJob, nil, nil)
}

// UpdateJobURL returns the URL for updating a job
func UpdateJobURL(id uint) string {
	return BuildURL(UpdateJob, idParam(id), nil)
}

// DeleteJobURL returns the URL for deleting a job
func DeleteJobURL(id uint) string {
	return BuildURL(DeleteJob, idParam(id), nil)
}

func idParam(id uint) map[string]string {
	return map[string]string{"id": strconv.FormatUint(uint64(id), 10)}
}
