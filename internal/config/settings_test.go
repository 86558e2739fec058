package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings_MissingRequired(t *testing.T) {
	t.Parallel()

	t.Run("all set", func(t *testing.T) {
		s := Settings{
			GroupID:       "group",
			AccessToken:   "token",
			AdminID:       "1234",
			VerifyToken:   "verify",
			CommandSecret: "secret",
		}
		assert.Empty(t, s.MissingRequired())
	})

	t.Run("reports every empty field", func(t *testing.T) {
		s := Settings{GroupID: "group", AdminID: "1234"}
		assert.Equal(t, []string{"FB_ACCESS_TOKEN", "FB_VERIFY_TOKEN", "ADMIN_COMMAND_SECRET"}, s.MissingRequired())
	})
}

func TestSettings_DefaultLogLevel(t *testing.T) {
	t.Parallel()

	prod := Settings{Environment: "production"}
	assert.True(t, prod.IsProduction())
	assert.Equal(t, "info", prod.DefaultLogLevel())

	dev := Settings{Environment: "development"}
	assert.False(t, dev.IsProduction())
	assert.Equal(t, "debug", dev.DefaultLogLevel())
}
