package service

import (
	"center_backend/internal/model"
	"center_backend/internal/repository"
	"center_backend/internal/sso"
	"center_backend/internal/util"
	"center_backend/pkg/logger"
	"center_backend/pkg/monitoring"
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Sessions *SessionService

	mu        sync.RWMutex
	authority sso.Authority
}

// NewAuthService authority 为 nil 时只做本地密码校验
func NewAuthService(userRepo *repository.UserRepository, sessions *SessionService, authority sso.Authority) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		Sessions:  sessions,
		authority: authority,
	}
}

// SetAuthority 配置热更新时替换统一认证源
func (s *AuthService) SetAuthority(authority sso.Authority) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authority = authority
}

func (s *AuthService) currentAuthority() sso.Authority {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authority
}

// Login 先校验本地密码，管理员失败后再尝试统一身份认证
func (s *AuthService) Login(ctx context.Context, uid, password string) (string, *model.User, error) {
	if uid == "" || password == "" {
		monitoring.LoginCounter.WithLabelValues(monitoring.LoginFailed).Inc()
		return "", nil, util.ErrInvalidCredentials
	}

	user, err := s.UserRepo.FindByUID(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		monitoring.LoginCounter.WithLabelValues(monitoring.LoginFailed).Inc()
		return "", nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	outcome := monitoring.LoginFailed
	ok, needsUpgrade := VerifyPassword(user.PasswordHash(), password)
	switch {
	case ok:
		outcome = monitoring.LoginLocal
		if needsUpgrade {
			s.storePassword(ctx, uid, password)
		}
	case user.Admin():
		if s.delegate(ctx, uid, password) {
			outcome = monitoring.LoginSSO
			s.storePassword(ctx, uid, password)
		}
	}

	monitoring.LoginCounter.WithLabelValues(outcome).Inc()
	if outcome == monitoring.LoginFailed {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := s.Sessions.Issue(ctx, uid)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// delegate 统一认证的任何失败都按密码错误处理
func (s *AuthService) delegate(ctx context.Context, uid, password string) bool {
	authority := s.currentAuthority()
	if authority == nil {
		return false
	}

	ok, err := authority.Authenticate(ctx, uid, password)
	if err != nil {
		logger.Log.Warn("SSO authentication failed",
			zap.String("uid", uid),
			zap.Error(err),
		)
		return false
	}
	return ok
}

func (s *AuthService) storePassword(ctx context.Context, uid, password string) {
	hashed, err := HashPassword(password)
	if err == nil {
		err = s.UserRepo.UpdatePassword(ctx, uid, hashed)
	}
	if err != nil {
		logger.Log.Error("Failed to store password hash",
			zap.String("uid", uid),
			zap.Error(err),
		)
	}
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.Revoke(ctx, token)
}

// GetCurrentUser 会话对应的用户，用户已被删除时返回未登录
func (s *AuthService) GetCurrentUser(ctx context.Context, uid string) (*model.User, error) {
	if uid == "" {
		return nil, util.ErrUnauthenticated
	}
	user, err := s.UserRepo.FindByUID(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUnauthenticated
	}
	return user, err
}
