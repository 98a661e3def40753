package model

// User 班级成员，uid 为学号/工号
// swagger:model User
type User struct {
	UID      string  `gorm:"column:uid;primaryKey;size:32" json:"uid"`
	Name     string  `gorm:"column:name;size:64;not null" json:"name"`
	Password *string `gorm:"column:password;size:100" json:"-"`
	IsAdmin  *bool   `gorm:"column:isAdmin" json:"isAdmin,omitempty"`
	Tag      *string `gorm:"column:tag;size:32" json:"tag,omitempty"`
}

func (User) TableName() string {
	return "user"
}

// Admin 管理员标记可能为 NULL，NULL 视为非管理员
func (u *User) Admin() bool {
	return u.IsAdmin != nil && *u.IsAdmin
}

func (u *User) PasswordHash() string {
	if u.Password == nil {
		return ""
	}
	return *u.Password
}

func (u *User) TagValue() string {
	if u.Tag == nil {
		return ""
	}
	return *u.Tag
}

// UserRole 用户与用户组的多对多关联
// swagger:model UserRole
type UserRole struct {
	UID  string `gorm:"column:uid;primaryKey;size:32" json:"uid"`
	Role string `gorm:"column:role;primaryKey;size:64" json:"role"`
}

func (UserRole) TableName() string {
	return "user_role"
}

// Member 列表查询返回的精简用户
type Member struct {
	UID  string `gorm:"column:uid" json:"uid"`
	Name string `gorm:"column:name" json:"name"`
}
