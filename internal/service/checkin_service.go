package service

import (
	"center_backend/internal/model"
	"center_backend/internal/repository"
	"center_backend/internal/util"
	"center_backend/pkg/monitoring"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Location 签到时前端上报的定位
type Location struct {
	Lng     *float64 `json:"lng"`
	Lat     *float64 `json:"lat"`
	Address string   `json:"address"`
}

type CheckinService struct {
	Repo          *repository.CheckinRepository
	UserRepo      *repository.UserRepository
	EnforceExpiry bool
	Now           func() time.Time
}

func NewCheckinService(repo *repository.CheckinRepository, userRepo *repository.UserRepository, enforceExpiry bool) *CheckinService {
	return &CheckinService{
		Repo:          repo,
		UserRepo:      userRepo,
		EnforceExpiry: enforceExpiry,
		Now:           time.Now,
	}
}

// CreateTask 新建签到任务，minutes 分钟后截止
func (s *CheckinService) CreateTask(ctx context.Context, name string, minutes int, creator string) (*model.CheckinTask, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrIncompleteData
	}
	if minutes <= 0 {
		return nil, util.ErrInvalidExpire
	}

	task := &model.CheckinTask{
		TaskName:   name,
		ExpireTime: s.Now().Add(time.Duration(minutes) * time.Minute),
		UID:        creator,
	}
	if err := s.Repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks validOnly 时只保留未截止的任务
func (s *CheckinService) ListTasks(ctx context.Context, validOnly bool) ([]model.TaskView, error) {
	tasks, err := s.Repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return filterValid(tasks, validOnly, s.Now()), nil
}

func (s *CheckinService) GetTask(ctx context.Context, taskID uint) (*model.CheckinTask, error) {
	if taskID == 0 {
		return nil, util.ErrIncompleteData
	}
	task, err := s.Repo.FindTask(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	return task, err
}

// Submit 学生签到
func (s *CheckinService) Submit(ctx context.Context, taskID uint, uid string, loc Location) error {
	if loc.Lng == nil || loc.Lat == nil {
		return util.ErrMissingLocation
	}
	if taskID == 0 || uid == "" {
		return util.ErrIncompleteData
	}

	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	now := s.Now()
	if s.EnforceExpiry && task.ExpireTime.Before(now) {
		return util.ErrTaskExpired
	}
	if err := requireUser(ctx, s.UserRepo, uid); err != nil {
		return err
	}

	lng, lat := *loc.Lng, *loc.Lat
	return s.record(ctx, &model.CheckinRecord{
		TaskID:    taskID,
		UID:       uid,
		Longitude: &lng,
		Latitude:  &lat,
		Time:      now,
		Note:      "位置：" + loc.Address,
	})
}

// Leave 管理员为学生登记请假，不受截止时间限制
func (s *CheckinService) Leave(ctx context.Context, taskID uint, uid, actorUID string) error {
	if taskID == 0 || uid == "" {
		return util.ErrIncompleteData
	}

	actor, err := s.UserRepo.FindByUID(ctx, actorUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUnauthenticated
	}
	if err != nil {
		return err
	}
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return err
	}
	if err := requireUser(ctx, s.UserRepo, uid); err != nil {
		return err
	}

	return s.record(ctx, &model.CheckinRecord{
		TaskID: taskID,
		UID:    uid,
		Time:   s.Now(),
		Note:   "由" + actor.Name + "请假",
	})
}

func (s *CheckinService) record(ctx context.Context, record *model.CheckinRecord) error {
	err := s.Repo.CreateRecord(ctx, record)
	if errors.Is(err, repository.ErrDuplicate) {
		return util.ErrAlreadyCheckedIn
	}
	if err == nil {
		monitoring.SubmissionCounter.WithLabelValues("checkin").Inc()
	}
	return err
}

// Unchecked 未签到名单
func (s *CheckinService) Unchecked(ctx context.Context, taskID uint) ([]model.Member, error) {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}
	members, err := s.Repo.Unchecked(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return nonNil(members), nil
}

func (s *CheckinService) Records(ctx context.Context, taskID uint) ([]model.CheckinRecordView, error) {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}
	records, err := s.Repo.ListRecords(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return nonNil(records), nil
}

// filterValid now 在一次调用内只取一次
func filterValid(tasks []model.TaskView, validOnly bool, now time.Time) []model.TaskView {
	if !validOnly {
		return nonNil(tasks)
	}
	valid := make([]model.TaskView, 0, len(tasks))
	for _, t := range tasks {
		if t.Valid(now) {
			valid = append(valid, t)
		}
	}
	return valid
}

func requireUser(ctx context.Context, repo *repository.UserRepository, uid string) error {
	exists, err := repo.Exists(ctx, uid)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrUserNotFound
	}
	return nil
}

// nonNil 空列表序列化为 [] 而不是 null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
