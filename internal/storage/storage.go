package storage

import (
	"context"
	"io"
)

// Store 定義物件儲存操作介面
// 提供基礎的 Put、Remove 方法
// 用於封裝 MinIO 或其他 S3 相容實作
// 方便測試時替換 FakeStore 實作

type Store interface {
	// Put 上傳物件並回傳可公開存取的 URL
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Remove 刪除指定物件
	Remove(ctx context.Context, key string) error
	// ObjectKey 從完整 URL 取出物件鍵；無法對應時回傳空字串
	ObjectKey(url string) string
}

type FakeStore struct {
	PutFn       func(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	RemoveFn    func(ctx context.Context, key string) error
	ObjectKeyFn func(url string) string
}

// Put 執行 Fake 設定或 panic
func (f *FakeStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if f.PutFn != nil {
		return f.PutFn(ctx, key, r, size, contentType)
	}
	panic("unexpected Put")
}

// Remove 執行 Fake 設定或 panic
func (f *FakeStore) Remove(ctx context.Context, key string) error {
	if f.RemoveFn != nil {
		return f.RemoveFn(ctx, key)
	}
	panic("unexpected Remove")
}

// ObjectKey 執行 Fake 設定或回傳空字串
func (f *FakeStore) ObjectKey(url string) string {
	if f.ObjectKeyFn != nil {
		return f.ObjectKeyFn(url)
	}
	return ""
}

