package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-be/internal/database"
)

func TestCountByCredentials(t *testing.T) {
	exec := &fakeExecutor{rows: []database.Row{{"success": int64(1)}}}
	repo := NewUserRepository(exec)

	count, err := repo.CountByCredentials("me@example.com", "digest")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Both values are bound, never interpolated.
	assert.Equal(t, []any{"me@example.com", "digest"}, exec.params[0])
	assert.Contains(t, exec.statements[0], "$1")
	assert.Contains(t, exec.statements[0], "$2")
}

func TestRoleByEmail_Found(t *testing.T) {
	exec := &fakeExecutor{rows: []database.Row{{"role": "admin"}}}
	repo := NewUserRepository(exec)

	role, found, err := repo.RoleByEmail("me@example.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "admin", role)
}

func TestRoleByEmail_Absent(t *testing.T) {
	repo := NewUserRepository(&fakeExecutor{})

	role, found, err := repo.RoleByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, role)
}
