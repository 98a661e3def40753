package repository

import (
	"center_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type RoleRepository struct {
	DB *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{DB: db}
}

// DistinctRoles 所有出现过的用户组名
func (r *RoleRepository) DistinctRoles(ctx context.Context) ([]string, error) {
	var roles []string
	err := r.DB.WithContext(ctx).Model(&model.UserRole{}).
		Distinct("role").
		Order("role").
		Pluck("role", &roles).Error
	return roles, err
}

// MembersOf 属于指定用户组的用户
func (r *RoleRepository) MembersOf(ctx context.Context, role string) ([]model.Member, error) {
	var members []model.Member
	err := r.DB.WithContext(ctx).Table("user_role AS r").
		Select("u.uid, u.name").
		Joins("JOIN user u ON r.uid = u.uid").
		Where("r.role = ?", role).
		Order("u.uid").
		Scan(&members).Error
	return members, err
}
