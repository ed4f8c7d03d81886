package repository

import (
	"testing"

	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListOwnersQuery(t *testing.T) {
	query, args, err := buildListOwnersQuery()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM users WHERE")
	assert.Contains(t, query, "role_id = ")
	assert.Contains(t, query, "ORDER BY id ASC")
	assert.Contains(t, args, domain.RoleOwner)
	assert.Len(t, args, 3)
}
