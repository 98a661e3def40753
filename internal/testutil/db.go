// Package testutil 测试用的内存数据库与 Redis
package testutil

import (
	"center_backend/internal/model"
	"fmt"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每个测试独立的内存 SQLite，已完成迁移
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(model.Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// 共享缓存模式下多连接并发写会触发 SQLITE_LOCKED
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// NewRedis miniredis 支撑的客户端
func NewRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

// SeedUser 插入普通用户，可附带用户组
func SeedUser(t *testing.T, db *gorm.DB, uid, name string, roles ...string) *model.User {
	t.Helper()
	u := &model.User{UID: uid, Name: name}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", uid, err)
	}
	for _, role := range roles {
		if err := db.Create(&model.UserRole{UID: uid, Role: role}).Error; err != nil {
			t.Fatalf("failed to seed role %s for %s: %v", role, uid, err)
		}
	}
	return u
}

// SeedAdmin 插入管理员，passwordHash 可为空表示本地无密码
func SeedAdmin(t *testing.T, db *gorm.DB, uid, name, tag, passwordHash string) *model.User {
	t.Helper()
	admin := true
	u := &model.User{UID: uid, Name: name, IsAdmin: &admin, Tag: &tag}
	if passwordHash != "" {
		u.Password = &passwordHash
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed admin %s: %v", uid, err)
	}
	return u
}
