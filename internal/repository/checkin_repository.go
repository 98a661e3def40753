package repository

import (
	"center_backend/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CheckinRepository struct {
	DB *gorm.DB
}

// NewCheckinRepository 创建新的签到仓库实例
func NewCheckinRepository(db *gorm.DB) *CheckinRepository {
	return &CheckinRepository{DB: db}
}

// CreateTask 创建签到任务
func (r *CheckinRepository) CreateTask(ctx context.Context, task *model.CheckinTask) error {
	return r.DB.WithContext(ctx).Create(task).Error
}

func (r *CheckinRepository) FindTask(ctx context.Context, taskID uint) (*model.CheckinTask, error) {
	var task model.CheckinTask
	err := r.DB.WithContext(ctx).Where("taskId = ?", taskID).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks 全部签到任务及创建者姓名，新任务在前
func (r *CheckinRepository) ListTasks(ctx context.Context) ([]model.TaskView, error) {
	var tasks []model.TaskView
	err := r.DB.WithContext(ctx).Table("checkin_task AS t").
		Select("t.taskId, t.taskName, t.expireTime, COALESCE(u.name, '') AS name").
		Joins("LEFT JOIN user u ON t.uid = u.uid").
		Order("t.taskId DESC").
		Scan(&tasks).Error
	return tasks, err
}

// CreateRecord 写入签到记录，同一任务同一用户只能有一条
func (r *CheckinRepository) CreateRecord(ctx context.Context, record *model.CheckinRecord) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.CheckinRecord{}).
			Where("uid = ? AND taskId = ?", record.UID, record.TaskID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		return tx.Create(record).Error
	})
	// 并发提交时由唯一索引兜底
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// Unchecked 尚未签到的用户
func (r *CheckinRepository) Unchecked(ctx context.Context, taskID uint) ([]model.Member, error) {
	db := r.DB.WithContext(ctx)
	var members []model.Member
	err := db.Model(&model.User{}).
		Select("uid, name").
		Where("uid NOT IN (?)", db.Model(&model.CheckinRecord{}).Select("uid").Where("taskId = ?", taskID)).
		Order("uid").
		Scan(&members).Error
	return members, err
}

// ListRecords 某任务的签到记录及签到人姓名
func (r *CheckinRepository) ListRecords(ctx context.Context, taskID uint) ([]model.CheckinRecordView, error) {
	var records []model.CheckinRecordView
	err := r.DB.WithContext(ctx).Table("checkin_record AS r").
		Select("r.uid, r.longitude, r.latitude, r.time, r.note, COALESCE(u.name, '') AS name").
		Joins("LEFT JOIN user u ON r.uid = u.uid").
		Where("r.taskId = ?", taskID).
		Order("r.time").
		Scan(&records).Error
	return records, err
}
