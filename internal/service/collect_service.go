package service

import (
	"archive/zip"
	"center_backend/internal/model"
	"center_backend/internal/repository"
	"center_backend/internal/util"
	"center_backend/pkg/logger"
	"center_backend/pkg/monitoring"
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CollectService struct {
	Repo          *repository.CollectRepository
	UserRepo      *repository.UserRepository
	Storage       *StorageService
	EnforceExpiry bool
	Now           func() time.Time
}

func NewCollectService(repo *repository.CollectRepository, userRepo *repository.UserRepository, storage *StorageService, enforceExpiry bool) *CollectService {
	return &CollectService{
		Repo:          repo,
		UserRepo:      userRepo,
		Storage:       storage,
		EnforceExpiry: enforceExpiry,
		Now:           time.Now,
	}
}

// CreateTask 新建收集任务，expire 为绝对截止时间
func (s *CollectService) CreateTask(ctx context.Context, name string, taskType model.CollectType, expire time.Time, creator string) (*model.CollectTask, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrIncompleteData
	}
	if !taskType.Valid() {
		return nil, util.ErrInvalidTaskType
	}
	if expire.IsZero() {
		return nil, util.ErrInvalidExpire
	}

	task := &model.CollectTask{
		TaskName:   name,
		TaskType:   taskType,
		ExpireTime: expire,
		UID:        creator,
	}
	if err := s.Repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks 未指定类型时返回空列表
func (s *CollectService) ListTasks(ctx context.Context, taskType model.CollectType, validOnly bool) ([]model.TaskView, error) {
	if taskType == "" {
		return []model.TaskView{}, nil
	}
	tasks, err := s.Repo.ListTasks(ctx, taskType)
	if err != nil {
		return nil, err
	}
	return filterValid(tasks, validOnly, s.Now()), nil
}

func (s *CollectService) GetTask(ctx context.Context, taskID uint) (*model.CollectTask, error) {
	if taskID == 0 {
		return nil, util.ErrIncompleteData
	}
	task, err := s.Repo.FindTask(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	return task, err
}

// Submit 提交收集内容；图片任务的 payload 为上传接口返回的路径
func (s *CollectService) Submit(ctx context.Context, taskID uint, uid string, taskType model.CollectType, payload string) error {
	if taskID == 0 || !taskType.Valid() {
		return util.ErrUnknownSubmit
	}
	payload = strings.TrimSpace(payload)
	if uid == "" || payload == "" {
		return util.ErrIllegalSubmit
	}

	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if task.TaskType != taskType {
		return util.ErrIllegalSubmit
	}
	if taskType == model.CollectImage {
		if _, ok := s.Storage.KeyOf(payload); !ok {
			return util.ErrIllegalSubmit
		}
	}
	now := s.Now()
	if s.EnforceExpiry && task.ExpireTime.Before(now) {
		return util.ErrTaskExpired
	}
	if err := requireUser(ctx, s.UserRepo, uid); err != nil {
		return err
	}

	err = s.Repo.CreateRecord(ctx, &model.CollectRecord{
		TaskID:  taskID,
		UID:     uid,
		Content: payload,
		Time:    now,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return util.ErrAlreadySubmitted
	}
	if err == nil {
		monitoring.SubmissionCounter.WithLabelValues("collect").Inc()
	}
	return err
}

// Unsubmitted 未提交名单
func (s *CollectService) Unsubmitted(ctx context.Context, taskID uint) ([]model.Member, error) {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}
	members, err := s.Repo.Unsubmitted(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return nonNil(members), nil
}

func (s *CollectService) Records(ctx context.Context, taskID uint) ([]model.CollectRecordView, error) {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}
	records, err := s.Repo.ListRecords(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return nonNil(records), nil
}

// Archive 将任务的全部提交打包为 zip 写入 w，返回建议的下载文件名。
// 图片按 <uid>_<姓名><扩展名> 命名，文本按 <uid>_<姓名>.txt；存储中缺失的图片跳过。
func (s *CollectService) Archive(ctx context.Context, taskID uint, w io.Writer) (string, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return "", err
	}
	records, err := s.Repo.ListRecords(ctx, taskID)
	if err != nil {
		return "", err
	}

	zw := zip.NewWriter(w)
	for _, r := range records {
		base := r.UID + "_" + r.Name
		switch task.TaskType {
		case model.CollectImage:
			if err := s.archiveObject(ctx, zw, base, r.Content); err != nil {
				return "", err
			}
		default:
			entry, err := zw.Create(base + ".txt")
			if err != nil {
				return "", err
			}
			if _, err := io.WriteString(entry, r.Content); err != nil {
				return "", err
			}
		}
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return task.TaskName + ".zip", nil
}

func (s *CollectService) archiveObject(ctx context.Context, zw *zip.Writer, base, url string) error {
	key, ok := s.Storage.KeyOf(url)
	if !ok {
		logger.Log.Warn("Skipping record with foreign file path", zap.String("path", url))
		return nil
	}

	body, err := s.Storage.Open(ctx, key)
	if errors.Is(err, ErrObjectNotFound) {
		logger.Log.Warn("Skipping missing upload", zap.String("key", key))
		return nil
	}
	if err != nil {
		return err
	}
	defer body.Close()

	entry, err := zw.Create(base + path.Ext(key))
	if err != nil {
		return err
	}
	_, err = io.Copy(entry, body)
	return err
}
