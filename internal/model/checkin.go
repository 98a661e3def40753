package model

import (
	"time"
)

// CheckinTask 签到任务
// swagger:model CheckinTask
type CheckinTask struct {
	TaskID     uint      `gorm:"column:taskId;primaryKey;autoIncrement" json:"taskId"`
	TaskName   string    `gorm:"column:taskName;size:255;not null" json:"taskName"`
	ExpireTime time.Time `gorm:"column:expireTime;not null;index" json:"expireTime"`
	UID        string    `gorm:"column:uid;size:32;not null;index" json:"uid"`
}

func (CheckinTask) TableName() string {
	return "checkin_task"
}

// CheckinRecord 签到记录；请假记录只有 note 没有坐标
// swagger:model CheckinRecord
type CheckinRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	TaskID    uint      `gorm:"column:taskId;not null;uniqueIndex:uk_checkin_record_task_uid" json:"taskId"`
	UID       string    `gorm:"column:uid;size:32;not null;uniqueIndex:uk_checkin_record_task_uid" json:"uid"`
	Longitude *float64  `gorm:"column:longitude" json:"longitude"`
	Latitude  *float64  `gorm:"column:latitude" json:"latitude"`
	Time      time.Time `gorm:"column:time;not null" json:"time"`
	Note      string    `gorm:"column:note;size:255" json:"note"`
}

func (CheckinRecord) TableName() string {
	return "checkin_record"
}

// TaskView 任务列表项，name 为创建者姓名
type TaskView struct {
	TaskID     uint      `gorm:"column:taskId" json:"taskId"`
	TaskName   string    `gorm:"column:taskName" json:"taskName"`
	ExpireTime time.Time `gorm:"column:expireTime" json:"expireTime"`
	TaskType   string    `gorm:"column:taskType" json:"taskType,omitempty"`
	Name       string    `gorm:"column:name" json:"name"`
}

// Valid 过期时间不早于 now 的任务视为有效
func (t TaskView) Valid(now time.Time) bool {
	return !t.ExpireTime.Before(now)
}

// CheckinRecordView 签到记录及签到人姓名
type CheckinRecordView struct {
	UID       string    `gorm:"column:uid" json:"uid"`
	Longitude *float64  `gorm:"column:longitude" json:"longitude"`
	Latitude  *float64  `gorm:"column:latitude" json:"latitude"`
	Time      time.Time `gorm:"column:time" json:"time"`
	Note      string    `gorm:"column:note" json:"note"`
	Name      string    `gorm:"column:name" json:"name"`
}
