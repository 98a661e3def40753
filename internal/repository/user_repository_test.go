package repository

import (
	"center_backend/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_SetAndClearAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedUser(t, db, "u1", "张三")
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SetAdmin(ctx, "u1", "班长", "hash"))
	u, err := repo.FindByUID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, u.Admin())
	assert.Equal(t, "班长", u.TagValue())
	assert.Equal(t, "hash", u.PasswordHash())

	require.NoError(t, repo.ClearAdmin(ctx, "u1"))
	u, err = repo.FindByUID(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, u.Admin())
	assert.Nil(t, u.IsAdmin)
	assert.Nil(t, u.Tag)
	assert.Nil(t, u.Password)
}

func TestRoleRepository_DistinctRolesAndMembers(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedUser(t, db, "u1", "甲", "一组", "班委")
	testutil.SeedUser(t, db, "u2", "乙", "一组")
	testutil.SeedUser(t, db, "u3", "丙", "二组")
	repo := NewRoleRepository(db)
	ctx := context.Background()

	roles, err := repo.DistinctRoles(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"一组", "二组", "班委"}, roles)

	members, err := repo.MembersOf(ctx, "一组")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "u1", members[0].UID)
	assert.Equal(t, "u2", members[1].UID)

	none, err := repo.MembersOf(ctx, "不存在")
	require.NoError(t, err)
	assert.Empty(t, none)
}
