package models

import (
	"path/filepath"
	"strings"

	"gamemedia/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaFile holds the fields shared by all uploaded media records.
// Sprite and AudioClip embed it and live in separate tables, so their
// ids are independent of each other.
type MediaFile struct {
	ID         uint64 `gorm:"primaryKey"`
	CreatedAt  int64
	UpdatedAt  int64
	Name       string `gorm:"type:varchar(300)"`
	MimeType   string `gorm:"type:varchar(50)"`
	Size       int64
	StorageKey string `gorm:"type:varchar(36);not null"`
	BucketID   uint64
	Bucket     storage.Bucket `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

// MediaRecord is implemented by all media entities.
type MediaRecord interface {
	File() *MediaFile
	GetPath() string
}

// BeforeSave assigns the storage key on first save. Name is stored as
// uploaded; only the object path restricts what ends up on disk.
func (f *MediaFile) BeforeSave(tx *gorm.DB) (err error) {
	if f.StorageKey == "" {
		f.StorageKey = uuid.NewString()
	}
	return
}

// pathIn returns the object path within the bucket. For example:
//   - sprite/9cbb2bb6-0e70-4f44-b7a2-33e5d0725c4b.png
//   - audio/4f1de922-595e-40a3-b35c-1c0f85ecbbc6.mp3
func (f *MediaFile) pathIn(subDir string) string {
	return subDir + "/" + f.StorageKey + safeExt(f.Name)
}

// safeExt returns the lowercased extension of name, dropped entirely if it
// contains anything but letters and digits
func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 {
		return ""
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return ext
}
