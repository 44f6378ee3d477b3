package storage

import (
	"errors"
	"fmt"
	"io"
	"log"

	"gorm.io/gorm"
)

type StorageAPI interface {
	GetFullPath(path string) string
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Delete(path string) error
	GetBucket() *Bucket
}

// Provider holds one StorageAPI per configured Bucket. It is constructed
// once at startup and handed to the stores that need blob access.
type Provider struct {
	storage   []StorageAPI
	defaultID uint64
}

// NewProvider migrates and loads the buckets table. If no bucket exists and
// defaultBucketDir is set, an initial disk bucket is created there.
func NewProvider(dbc *gorm.DB, defaultBucketDir string) (*Provider, error) {
	if err := dbc.AutoMigrate(&Bucket{}); err != nil {
		return nil, err
	}
	var buckets []Bucket
	if err := dbc.Find(&buckets).Error; err != nil {
		return nil, err
	}
	if len(buckets) == 0 && defaultBucketDir != "" {
		bucket := Bucket{
			Name:        "local",
			StorageType: StorageTypeFile,
			Path:        defaultBucketDir,
		}
		if err := dbc.Create(&bucket).Error; err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}
	if len(buckets) == 0 {
		return nil, errors.New("no storage buckets configured (set DEFAULT_BUCKET_DIR to create one)")
	}
	log.Printf("Storage Buckets found: %d\n", len(buckets))
	provider := &Provider{}
	for _, bucket := range buckets {
		storage, err := NewStorage(&bucket)
		if err != nil {
			return nil, err
		}
		provider.storage = append(provider.storage, storage)
	}
	// Prefer a disk bucket as default
	provider.defaultID = provider.storage[0].GetBucket().ID
	for _, s := range provider.storage {
		if s.GetBucket().StorageType == StorageTypeFile {
			provider.defaultID = s.GetBucket().ID
			break
		}
	}
	return provider, nil
}

func NewStorage(bucket *Bucket) (StorageAPI, error) {
	switch bucket.StorageType {
	case StorageTypeFile:
		return NewDiskStorage(bucket), nil
	case StorageTypeS3:
		return NewS3Storage(bucket), nil
	}
	return nil, fmt.Errorf("storage type unavailable for Bucket %d", bucket.ID)
}

func (p *Provider) Default() StorageAPI {
	return p.From(p.defaultID)
}

// From returns the storage for the given bucket id, or nil if unknown
func (p *Provider) From(bucketID uint64) StorageAPI {
	for _, s := range p.storage {
		if s.GetBucket().ID == bucketID {
			return s
		}
	}
	return nil
}
