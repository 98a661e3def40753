package service

import (
	"center_backend/internal/repository"
	"center_backend/internal/testutil"
	"center_backend/internal/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_AdminManagement(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedAdmin(t, db, "root", "超管", "管理员", mustHash(t, "x"))
	testutil.SeedAdmin(t, db, "mon", "班长", "班长", mustHash(t, "x"))
	testutil.SeedUser(t, db, "s1", "学生")
	svc := NewUserService(repository.NewUserRepository(db), "管理员")
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"non super tag", func() error { return svc.AddAdmin(ctx, "mon", "s1", "p", "学委") }, util.ErrPermissionDenied},
		{"missing fields", func() error { return svc.AddAdmin(ctx, "root", "s1", "", "学委") }, util.ErrIncompleteData},
		{"unknown target", func() error { return svc.AddAdmin(ctx, "root", "ghost", "p", "学委") }, util.ErrUserNotFound},
		{"delete unknown", func() error { return svc.DeleteAdmin(ctx, "root", "ghost") }, util.ErrUserNotFound},
		{"delete by non super", func() error { return svc.DeleteAdmin(ctx, "mon", "s1") }, util.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.want)
		})
	}

	require.NoError(t, svc.AddAdmin(ctx, "root", "s1", "newpass", "学委"))
	user, err := svc.UserRepo.FindByUID(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, user.Admin())
	assert.Equal(t, "学委", user.TagValue())
	ok, _ := VerifyPassword(user.PasswordHash(), "newpass")
	assert.True(t, ok)

	require.NoError(t, svc.DeleteAdmin(ctx, "root", "s1"))
	user, err = svc.UserRepo.FindByUID(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, user.Admin())
	assert.Nil(t, user.Password)
	assert.Nil(t, user.Tag)
}

func TestUserService_ChangePasswordAndName(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedAdmin(t, db, "mon", "班长", "班长", mustHash(t, "old"))
	svc := NewUserService(repository.NewUserRepository(db), "管理员")
	ctx := context.Background()

	assert.ErrorIs(t, svc.ChangePassword(ctx, "mon", ""), util.ErrIncompleteData)
	require.NoError(t, svc.ChangePassword(ctx, "mon", "new"))

	user, err := svc.UserRepo.FindByUID(ctx, "mon")
	require.NoError(t, err)
	ok, _ := VerifyPassword(user.PasswordHash(), "new")
	assert.True(t, ok)

	name, err := svc.GetName(ctx, "mon")
	require.NoError(t, err)
	assert.Equal(t, "班长", name)

	_, err = svc.GetName(ctx, "ghost")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
