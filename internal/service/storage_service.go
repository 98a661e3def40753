package service

import (
	"center_backend/internal/config"
	"center_backend/internal/util"
	"center_backend/pkg/logger"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ErrObjectNotFound 存储中不存在该对象
var ErrObjectNotFound = errors.New("storage: object not found")

// StorageProvider 定义通用存储接口
type StorageProvider interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// LocalStorageProvider 本地存储实现
type LocalStorageProvider struct {
	Root string
}

// resolve 对象键只能落在根目录内
func (p *LocalStorageProvider) resolve(key string) string {
	return filepath.Join(p.Root, filepath.FromSlash(path.Clean("/"+key)))
}

func (p *LocalStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	dst := p.resolve(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	return err
}

func (p *LocalStorageProvider) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(p.resolve(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrObjectNotFound
	}
	return f, err
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Bucket string
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Bucket: cfg.MinioBucket, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := p.Client.PutObject(ctx, p.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (p *MinioStorageProvider) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := p.Client.GetObject(ctx, p.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject 是惰性的，Stat 才会暴露对象不存在
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return obj, nil
}

// OSSStorageProvider 阿里云OSS存储实现
type OSSStorageProvider struct {
	BucketName string
	Client     *oss.Client
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{BucketName: cfg.OSSBucket, Client: client}, nil
}

func (p *OSSStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	bucket, err := p.Client.Bucket(p.BucketName)
	if err != nil {
		return err
	}
	return bucket.PutObject(key, reader, oss.ContentType(contentType), oss.WithContext(ctx))
}

func (p *OSSStorageProvider) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	bucket, err := p.Client.Bucket(p.BucketName)
	if err != nil {
		return nil, err
	}
	body, err := bucket.GetObject(key, oss.WithContext(ctx))
	if err != nil {
		var serr oss.ServiceError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return body, nil
}

// StorageService 存储服务；对外的访问路径统一为 URLPrefix + 对象键
type StorageService struct {
	Provider    StorageProvider
	URLPrefix   string
	MaxUploadMB int64
}

func NewStorageService(cfg *config.StorageConfig) *StorageService {
	var provider StorageProvider
	switch cfg.Type {
	case util.StorageMinio:
		p, err := NewMinioStorageProvider(cfg)
		if err == nil {
			provider = p
		} else {
			logger.Log.Warn("MinIO storage unavailable, falling back to local", zap.Error(err))
		}
	case util.StorageOSS:
		p, err := NewOSSStorageProvider(cfg)
		if err == nil {
			provider = p
		} else {
			logger.Log.Warn("OSS storage unavailable, falling back to local", zap.Error(err))
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Root: cfg.LocalPath}
	}

	return &StorageService{
		Provider:    provider,
		URLPrefix:   cfg.URLPrefix,
		MaxUploadMB: cfg.MaxUploadMB,
	}
}

func (s *StorageService) GetURL(key string) string {
	return s.URLPrefix + key
}

// KeyOf 由访问路径还原对象键，不是本服务生成的路径返回 false
func (s *StorageService) KeyOf(url string) (string, bool) {
	if !strings.HasPrefix(url, s.URLPrefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, s.URLPrefix)
	if key == "" || strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		return "", false
	}
	return key, true
}

// UploadImage 校验图片类型与大小后以随机文件名保存，返回访问路径
func (s *StorageService) UploadImage(ctx context.Context, reader io.ReadSeeker, size int64) (string, error) {
	if s.MaxUploadMB > 0 && size > s.MaxUploadMB<<20 {
		return "", util.ErrFileTooLarge
	}

	mimeType, err := util.ValidateMimeType(reader, []string{util.MimeImage})
	if err != nil {
		return "", util.ErrInvalidFile
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	key := strings.ReplaceAll(uuid.NewString(), "-", "") + util.ImageExtension(mimeType)
	if err := s.Provider.Upload(ctx, key, reader, size, mimeType); err != nil {
		return "", err
	}
	return s.GetURL(key), nil
}

func (s *StorageService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.Provider.Open(ctx, key)
}
