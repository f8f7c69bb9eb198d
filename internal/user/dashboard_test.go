package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenakita/arenakita-backend/internal/auth"
)

func TestDashboardFor(t *testing.T) {
	for _, role := range auth.Roles {
		d, err := DashboardFor(role)
		require.NoError(t, err, role)
		assert.Equal(t, role, d.Role)
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Sections)
	}

	_, err := DashboardFor(auth.Role("guest"))
	assert.ErrorIs(t, err, auth.ErrUnknownRole)
}
