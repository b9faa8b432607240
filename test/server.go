package test

import (
	"net/http/httptest"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/celestiaorg/jobtracker/internal/app"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/client"
	"github.com/celestiaorg/jobtracker/pkg/tracker"
)

// testClientTimeout is the timeout for test API client requests
const testClientTimeout = 5 * time.Second

// SetupServer starts the jobs API on the suite database and connects a real
// client and cache to it
func SetupServer(suite *Suite) {
	suite.App = app.NewApp(suite.DB)

	// Create test server using adaptor to convert Fiber app to http.Handler
	suite.Server = httptest.NewServer(adaptor.FiberApp(suite.App))
	suite.addCleanup(suite.Server.Close)

	apiClient, err := client.NewClient(&client.Options{
		BaseURL: suite.Server.URL,
		Timeout: testClientTimeout,
	})
	suite.Require().NoError(err, "Failed to create API client")

	suite.APIClient = apiClient
	suite.Cache = tracker.NewCache(apiClient)
}
