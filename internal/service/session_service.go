package service

import (
	"center_backend/internal/util"
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

// 令牌本身的最长有效期为空闲超时的倍数，Redis 中的会话按请求续期
const sessionLifetimeFactor = 7

// SessionService 会话记录保存在 Redis，客户端只持有签名令牌
type SessionService struct {
	Redis  *redis.Client
	Secret string
	TTL    time.Duration
}

func NewSessionService(rdb *redis.Client, secret string, ttl time.Duration) *SessionService {
	return &SessionService{
		Redis:  rdb,
		Secret: secret,
		TTL:    ttl,
	}
}

func sessionKey(sid string) string {
	return sessionKeyPrefix + sid
}

// Issue 为 uid 创建新会话并返回令牌
func (s *SessionService) Issue(ctx context.Context, uid string) (string, error) {
	sid := uuid.NewString()
	if err := s.Redis.Set(ctx, sessionKey(sid), uid, s.TTL).Err(); err != nil {
		return "", err
	}

	token, err := util.GenerateJWT(uid, sid, s.Secret, s.TTL*sessionLifetimeFactor)
	if err != nil {
		s.Redis.Del(ctx, sessionKey(sid))
		return "", err
	}
	return token, nil
}

// Resolve 校验令牌及其会话记录，并刷新会话过期时间
func (s *SessionService) Resolve(ctx context.Context, token string) (*util.Claims, error) {
	if token == "" {
		return nil, util.ErrUnauthenticated
	}

	claims, err := util.ParseJWT(token, s.Secret)
	if err != nil {
		return nil, util.ErrUnauthenticated
	}

	uid, err := s.Redis.Get(ctx, sessionKey(claims.SessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, util.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	if uid != claims.UID {
		return nil, util.ErrUnauthenticated
	}

	if err := s.Redis.Expire(ctx, sessionKey(claims.SessionID), s.TTL).Err(); err != nil {
		return nil, err
	}
	return claims, nil
}

// Revoke 删除会话记录，之后同一令牌无法再使用
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	claims, err := util.ParseJWT(token, s.Secret)
	if err != nil {
		return nil
	}
	return s.Redis.Del(ctx, sessionKey(claims.SessionID)).Err()
}
