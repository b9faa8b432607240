// Package test provides infrastructure for integration testing the job tracker.
//
// A Suite runs the real jobs API on a temporary SQLite database behind an
// httptest server, and points a real API client and tracker cache at it.
//
// Example Usage:
//
//	func TestExample(t *testing.T) {
//	    suite := test.NewSuite(t)
//	    defer suite.Cleanup()
//
//	    // Use suite.APIClient for raw requests
//	    // Use suite.Cache for the re-fetching snapshot
//	}
package test
