package repository

import (
	"center_backend/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CollectRepository struct {
	DB *gorm.DB
}

func NewCollectRepository(db *gorm.DB) *CollectRepository {
	return &CollectRepository{DB: db}
}

func (r *CollectRepository) CreateTask(ctx context.Context, task *model.CollectTask) error {
	return r.DB.WithContext(ctx).Create(task).Error
}

func (r *CollectRepository) FindTask(ctx context.Context, taskID uint) (*model.CollectTask, error) {
	var task model.CollectTask
	err := r.DB.WithContext(ctx).Where("taskId = ?", taskID).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *CollectRepository) ListTasks(ctx context.Context, taskType model.CollectType) ([]model.TaskView, error) {
	var tasks []model.TaskView
	err := r.DB.WithContext(ctx).Table("collect_task AS t").
		Select("t.taskId, t.taskName, t.expireTime, t.taskType, COALESCE(u.name, '') AS name").
		Joins("LEFT JOIN user u ON t.uid = u.uid").
		Where("t.taskType = ?", taskType).
		Order("t.taskId DESC").
		Scan(&tasks).Error
	return tasks, err
}

func (r *CollectRepository) CreateRecord(ctx context.Context, record *model.CollectRecord) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.CollectRecord{}).
			Where("uid = ? AND taskId = ?", record.UID, record.TaskID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		return tx.Create(record).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// Unsubmitted 尚未提交的用户
func (r *CollectRepository) Unsubmitted(ctx context.Context, taskID uint) ([]model.Member, error) {
	db := r.DB.WithContext(ctx)
	var members []model.Member
	err := db.Model(&model.User{}).
		Select("uid, name").
		Where("uid NOT IN (?)", db.Model(&model.CollectRecord{}).Select("uid").Where("taskId = ?", taskID)).
		Order("uid").
		Scan(&members).Error
	return members, err
}

func (r *CollectRepository) ListRecords(ctx context.Context, taskID uint) ([]model.CollectRecordView, error) {
	var records []model.CollectRecordView
	err := r.DB.WithContext(ctx).Table("collect_record AS r").
		Select("r.uid, r.taskId, r.content, r.time, COALESCE(u.name, '') AS name").
		Joins("LEFT JOIN user u ON r.uid = u.uid").
		Where("r.taskId = ?", taskID).
		Order("r.time").
		Scan(&records).Error
	return records, err
}
