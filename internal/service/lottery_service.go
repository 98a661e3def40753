package service

import (
	"center_backend/internal/model"
	"center_backend/internal/repository"
	"center_backend/internal/util"
	"context"
	"math/rand/v2"
	"strings"
	"sync"
)

// Option amis 下拉选项
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type LotteryService struct {
	UserRepo *repository.UserRepository
	RoleRepo *repository.RoleRepository

	mu            sync.RWMutex
	everyoneLabel string
}

func NewLotteryService(userRepo *repository.UserRepository, roleRepo *repository.RoleRepository, everyoneLabel string) *LotteryService {
	return &LotteryService{
		UserRepo:      userRepo,
		RoleRepo:      roleRepo,
		everyoneLabel: everyoneLabel,
	}
}

// SetEveryoneLabel 配置热更新
func (s *LotteryService) SetEveryoneLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.everyoneLabel = label
}

func (s *LotteryService) EveryoneLabel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.everyoneLabel
}

// ListRoles 全体选项在前，其后为各用户组
func (s *LotteryService) ListRoles(ctx context.Context) ([]Option, error) {
	roles, err := s.RoleRepo.DistinctRoles(ctx)
	if err != nil {
		return nil, err
	}

	everyone := s.EveryoneLabel()
	options := make([]Option, 0, len(roles)+1)
	options = append(options, Option{Label: everyone, Value: everyone})
	for _, role := range roles {
		if role == everyone {
			continue
		}
		options = append(options, Option{Label: role, Value: role})
	}
	return options, nil
}

// Draw 从用户组中不重复地随机抽取 count 人，人数不足时返回整组
func (s *LotteryService) Draw(ctx context.Context, role string, count int) ([]model.Member, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, util.ErrIncompleteData
	}
	if count < 1 {
		count = 1
	}

	var (
		candidates []model.Member
		err        error
	)
	everyone := role == s.EveryoneLabel()
	if everyone {
		candidates, err = s.UserRepo.ListMembers(ctx)
	} else {
		candidates, err = s.RoleRepo.MembersOf(ctx, role)
	}
	if err != nil {
		return nil, err
	}
	// 花名册为空时全体抽签返回空列表，未知用户组才算错误
	if len(candidates) == 0 {
		if everyone {
			return []model.Member{}, nil
		}
		return nil, util.ErrRoleNotFound
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if count > len(candidates) {
		count = len(candidates)
	}
	return candidates[:count], nil
}
