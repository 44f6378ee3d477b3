package storage

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

type Bucket struct {
	ID            uint64 `gorm:"primaryKey"`
	CreatedAt     int64
	UpdatedAt     int64
	Name          string `gorm:"type:varchar(200)"` // Display name, also the S3 bucket name
	StorageType   StorageType
	Path          string // Path on a drive or a prefix in a S3 bucket
	S3Key         string `gorm:"type:varchar(200)"`
	S3Secret      string `gorm:"type:varchar(200)"`
	Endpoint      string `gorm:"type:varchar(300)"` // Custom S3-compatible endpoint, empty for AWS
	Region        string `gorm:"type:varchar(50)"`
	SSEEncryption string `gorm:"type:varchar(50)"` // e.g. "AES256", empty to disable
}

func (b *Bucket) IsS3() bool {
	return b.StorageType == StorageTypeS3
}

// CreateSVC creates a new S3 client for this bucket's credentials
func (b *Bucket) CreateSVC() *s3.S3 {
	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentials(b.S3Key, b.S3Secret, ""),
		Region:      aws.String(b.Region),
	}
	if b.Endpoint != "" {
		cfg.Endpoint = aws.String(b.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	return s3.New(session.Must(session.NewSession()), &cfg)
}

// GetRemotePath prepends the bucket's configured prefix (if any)
func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return path
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + path
}
