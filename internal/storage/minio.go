package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioAPI 定義了 MinioStore 內部使用的必要用戶端方法，便於測試時替換。
type minioAPI interface {
	PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucket, key string, opts minio.RemoveObjectOptions) error
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
}

// minioNew 用來建立 minio client，測試可覆寫此變數。
var minioNew = func(endpoint string, opts *minio.Options) (minioAPI, error) {
	return minio.New(endpoint, opts)
}

// MinioStore 以 MinIO (S3 相容) 為後端的 Store 實作
type MinioStore struct {
	client   minioAPI
	endpoint string
	bucket   string
	useSSL   bool
}

// NewMinioStore 建立 MinIO 用戶端並確保儲存桶存在
func NewMinioStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStore, error) {
	client, err := minioNew(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("NewMinioStore: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("NewMinioStore: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("NewMinioStore: %w", err)
		}
	}

	return &MinioStore{client: client, endpoint: endpoint, bucket: bucket, useSSL: useSSL}, nil
}

// Put 上傳物件並回傳可公開存取的 URL
func (s *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", fmt.Errorf("Put: %w", err)
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key), nil
}

// Remove 刪除指定物件
func (s *MinioStore) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	return nil
}

// ObjectKey 從完整 URL 取出儲存桶內的物件鍵；非本儲存桶的 URL 回傳空字串
func (s *MinioStore) ObjectKey(url string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	prefix := fmt.Sprintf("%s://%s/%s/", scheme, s.endpoint, s.bucket)
	if len(url) <= len(prefix) || url[:len(prefix)] != prefix {
		return ""
	}
	return url[len(prefix):]
}
