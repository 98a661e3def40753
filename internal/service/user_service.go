package service

import (
	"center_backend/internal/model"
	"center_backend/internal/repository"
	"center_backend/internal/util"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// UserService 管理员账号维护
type UserService struct {
	UserRepo *repository.UserRepository
	SuperTag string
}

// NewUserService 创建一个新的用户服务实例
func NewUserService(userRepo *repository.UserRepository, superTag string) *UserService {
	return &UserService{
		UserRepo: userRepo,
		SuperTag: superTag,
	}
}

func (s *UserService) findUser(ctx context.Context, uid string) (*model.User, error) {
	user, err := s.UserRepo.FindByUID(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// requireSuper 只有标签为超级管理员的账号可以增删管理员
func (s *UserService) requireSuper(ctx context.Context, actorUID string) error {
	actor, err := s.UserRepo.FindByUID(ctx, actorUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUnauthenticated
	}
	if err != nil {
		return err
	}
	if !actor.Admin() || actor.TagValue() != s.SuperTag {
		return util.ErrPermissionDenied
	}
	return nil
}

// AddAdmin 将已有用户设为管理员并设置登录密码
func (s *UserService) AddAdmin(ctx context.Context, actorUID, uid, password, tag string) error {
	if err := s.requireSuper(ctx, actorUID); err != nil {
		return err
	}

	uid, tag = strings.TrimSpace(uid), strings.TrimSpace(tag)
	if uid == "" || password == "" || tag == "" {
		return util.ErrIncompleteData
	}
	if _, err := s.findUser(ctx, uid); err != nil {
		return err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	return s.UserRepo.SetAdmin(ctx, uid, tag, hashed)
}

// DeleteAdmin 撤销管理员身份，用户本身保留
func (s *UserService) DeleteAdmin(ctx context.Context, actorUID, uid string) error {
	if err := s.requireSuper(ctx, actorUID); err != nil {
		return err
	}

	uid = strings.TrimSpace(uid)
	if uid == "" {
		return util.ErrIncompleteData
	}
	if _, err := s.findUser(ctx, uid); err != nil {
		return err
	}
	return s.UserRepo.ClearAdmin(ctx, uid)
}

// ChangePassword 修改当前登录用户自己的密码
func (s *UserService) ChangePassword(ctx context.Context, uid, password string) error {
	if password == "" {
		return util.ErrIncompleteData
	}
	if _, err := s.findUser(ctx, uid); err != nil {
		return err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(ctx, uid, hashed)
}

func (s *UserService) GetName(ctx context.Context, uid string) (string, error) {
	user, err := s.findUser(ctx, uid)
	if err != nil {
		return "", err
	}
	return user.Name, nil
}
