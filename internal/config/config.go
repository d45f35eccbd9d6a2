// File: internal/config/config.go
package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config 服務啟動所需的全部環境設定
type Config struct {
	AppAddr string `envconfig:"APP_ADDR" default:":8080"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// JWTSecret 簽署存取令牌的密鑰，必須由部署環境提供，程式內不得寫死
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	MinioEndpoint  string `envconfig:"MINIO_ENDPOINT" default:"127.0.0.1:9000"`
	MinioAccessKey string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	MinioSecretKey string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	MinioBucket    string `envconfig:"MINIO_BUCKET" default:"avatars"`
	MinioUseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`

	WorkerCount int `envconfig:"WORKER_COUNT" default:"1"`
}

// Load 讀取環境變數並做最基本的檢查
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.WorkerCount <= 0 {
		return nil, errors.New("WORKER_COUNT must be positive")
	}
	return &cfg, nil
}
