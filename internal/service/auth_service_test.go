package service

import (
	"center_backend/internal/repository"
	"center_backend/internal/testutil"
	"center_backend/internal/util"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAuthority struct {
	ok    bool
	err   error
	calls int
}

func (a *stubAuthority) Authenticate(ctx context.Context, username, password string) (bool, error) {
	a.calls++
	return a.ok, a.err
}

func newAuthService(t *testing.T, authority *stubAuthority) (*AuthService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	_, rdb := testutil.NewRedis(t)
	sessions := NewSessionService(rdb, testSecret, time.Hour)
	svc := NewAuthService(repository.NewUserRepository(db), sessions, nil)
	if authority != nil {
		svc.SetAuthority(authority)
	}
	return svc, db
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := HashPassword(password)
	require.NoError(t, err)
	return hashed
}

func TestAuthService_LocalLogin(t *testing.T) {
	svc, db := newAuthService(t, nil)
	testutil.SeedAdmin(t, db, "a1", "王老师", "班长", mustHash(t, "pass"))
	ctx := context.Background()

	token, user, err := svc.Login(ctx, "a1", "pass")
	require.NoError(t, err)
	assert.Equal(t, "王老师", user.Name)

	claims, err := svc.Sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.UID)

	_, _, err = svc.Login(ctx, "a1", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "pass")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestAuthService_UpgradesLegacyDigest(t *testing.T) {
	svc, db := newAuthService(t, nil)
	sum := sha1.Sum([]byte("pass"))
	testutil.SeedAdmin(t, db, "a1", "王老师", "班长", hex.EncodeToString(sum[:]))
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "a1", "pass")
	require.NoError(t, err)

	user, err := svc.UserRepo.FindByUID(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, isLegacyDigest(user.PasswordHash()))
	ok, upgrade := VerifyPassword(user.PasswordHash(), "pass")
	assert.True(t, ok)
	assert.False(t, upgrade)
}

func TestAuthService_SSOFallbackForAdmins(t *testing.T) {
	authority := &stubAuthority{ok: true}
	svc, db := newAuthService(t, authority)
	testutil.SeedAdmin(t, db, "a1", "王老师", "班长", "")
	testutil.SeedUser(t, db, "s1", "学生")
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "a1", "portal-pass")
	require.NoError(t, err)
	assert.Equal(t, 1, authority.calls)

	// 统一认证成功后密码已保存在本地
	user, err := svc.UserRepo.FindByUID(ctx, "a1")
	require.NoError(t, err)
	ok, _ := VerifyPassword(user.PasswordHash(), "portal-pass")
	assert.True(t, ok)

	_, _, err = svc.Login(ctx, "s1", "portal-pass")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	assert.Equal(t, 1, authority.calls, "non-admins never reach the SSO portal")
}

func TestAuthService_SSOFailuresAreWrongCredentials(t *testing.T) {
	for name, authority := range map[string]*stubAuthority{
		"rejected":    {ok: false},
		"unreachable": {err: errors.New("dial tcp: connection refused")},
	} {
		t.Run(name, func(t *testing.T) {
			svc, db := newAuthService(t, authority)
			testutil.SeedAdmin(t, db, "a1", "王老师", "班长", mustHash(t, "local"))

			_, _, err := svc.Login(context.Background(), "a1", "other")
			assert.ErrorIs(t, err, util.ErrInvalidCredentials)
			assert.Equal(t, 1, authority.calls)
		})
	}
}

func TestAuthService_LogoutAndCurrentUser(t *testing.T) {
	svc, db := newAuthService(t, nil)
	testutil.SeedAdmin(t, db, "a1", "王老师", "班长", mustHash(t, "pass"))
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "a1", "pass")
	require.NoError(t, err)

	user, err := svc.GetCurrentUser(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "王老师", user.Name)

	require.NoError(t, svc.Logout(ctx, token))
	_, err = svc.Sessions.Resolve(ctx, token)
	assert.ErrorIs(t, err, util.ErrUnauthenticated)

	_, err = svc.GetCurrentUser(ctx, "ghost")
	assert.ErrorIs(t, err, util.ErrUnauthenticated)
}
