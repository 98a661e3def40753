package model

import "time"

type CollectType string

const (
	CollectImage CollectType = "image"
	CollectText  CollectType = "text"
)

func (t CollectType) Valid() bool {
	return t == CollectImage || t == CollectText
}

// CollectTask 收集任务
// swagger:model CollectTask
type CollectTask struct {
	TaskID     uint        `gorm:"column:taskId;primaryKey;autoIncrement" json:"taskId"`
	TaskName   string      `gorm:"column:taskName;size:255;not null" json:"taskName"`
	TaskType   CollectType `gorm:"column:taskType;size:16;not null;index" json:"taskType"`
	ExpireTime time.Time   `gorm:"column:expireTime;not null;index" json:"expireTime"`
	UID        string      `gorm:"column:uid;size:32;not null;index" json:"uid"`
}

func (CollectTask) TableName() string {
	return "collect_task"
}

// CollectRecord 收集提交；content 为文本或已上传文件的路径
// swagger:model CollectRecord
type CollectRecord struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	TaskID  uint      `gorm:"column:taskId;not null;uniqueIndex:uk_collect_record_task_uid" json:"taskId"`
	UID     string    `gorm:"column:uid;size:32;not null;uniqueIndex:uk_collect_record_task_uid" json:"uid"`
	Content string    `gorm:"column:content;type:text;not null" json:"content"`
	Time    time.Time `gorm:"column:time;not null" json:"time"`
}

func (CollectRecord) TableName() string {
	return "collect_record"
}

type CollectRecordView struct {
	UID     string    `gorm:"column:uid" json:"uid"`
	TaskID  uint      `gorm:"column:taskId" json:"taskId"`
	Content string    `gorm:"column:content" json:"content"`
	Time    time.Time `gorm:"column:time" json:"time"`
	Name    string    `gorm:"column:name" json:"name"`
}
