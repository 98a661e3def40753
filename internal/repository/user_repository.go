package repository

import (
	"center_backend/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicate 同一任务同一用户的记录已存在
var ErrDuplicate = errors.New("record already exists")

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("uid = ?", uid).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Exists(ctx context.Context, uid string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("uid = ?", uid).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, uid, passwordHash string) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("uid = ?", uid).
		Update("password", passwordHash).
		Error
}

// SetAdmin 授予管理员身份并设置密码
func (r *UserRepository) SetAdmin(ctx context.Context, uid, tag, passwordHash string) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("uid = ?", uid).
		Updates(map[string]interface{}{
			"isAdmin":  true,
			"tag":      tag,
			"password": passwordHash,
		}).Error
}

// ClearAdmin 撤销管理员：密码、标签、管理员标记全部置空
func (r *UserRepository) ClearAdmin(ctx context.Context, uid string) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("uid = ?", uid).
		Updates(map[string]interface{}{
			"password": nil,
			"tag":      nil,
			"isAdmin":  nil,
		}).Error
}

func (r *UserRepository) ListMembers(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Select("uid, name").
		Order("uid").
		Scan(&members).Error
	return members, err
}
