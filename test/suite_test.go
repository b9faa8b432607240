package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuite(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()

	assert.Same(t, t, suite.T())
	assert.NotNil(t, suite.App, "app should be initialized")
	assert.NotNil(t, suite.Server, "server should be initialized")
	assert.NotNil(t, suite.APIClient, "API client should be initialized")
	assert.NotNil(t, suite.Cache, "cache should be initialized")
	assert.NotNil(t, suite.DB, "database should be initialized")
	assert.NotNil(t, suite.JobRepo, "job repository should be initialized")
	assert.NotNil(t, suite.Context())
}

func TestSuite_Cleanup(t *testing.T) {
	suite := NewSuite(t)
	ctx := suite.Context()

	suite.Cleanup()
	assert.Error(t, ctx.Err(), "context should be cancelled")

	sqlDB, err := suite.DB.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "database should be closed")

	// A second call is a no-op
	suite.Cleanup()
}

func TestSuite_HealthCheck(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()

	health, err := suite.APIClient.HealthCheck(suite.Context())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health["status"])
}
