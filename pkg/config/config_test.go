package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDefaultAdminPasswordHashVerifies(t *testing.T) {
	// The shipped development credential is admin@storefront.local / changeme.
	err := bcrypt.CompareHashAndPassword([]byte(defaultAdminPasswordHash), []byte("changeme"))
	require.NoError(t, err)

	err = bcrypt.CompareHashAndPassword([]byte(defaultAdminPasswordHash), []byte("wrong"))
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, "America/New_York", cfg.Schedule.Timezone)
	assert.Equal(t, "admin@storefront.local", cfg.Admin.Email)
	assert.Equal(t, defaultAdminPasswordHash, cfg.Admin.PasswordHash)
}
