package handlers

import (
	"bytes"
	"encoding/base64"
	"errors"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"gamemedia/models"
	"gamemedia/storage"
	"gamemedia/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MediaStore persists and serves one category of uploaded files.
// Sprites and audio clips get separate instances over separate tables.
type MediaStore struct {
	db        *gorm.DB
	storage   *storage.Provider
	idParam   string
	notFound  Response
	newRecord func() models.MediaRecord
}

func NewSpriteStore(db *gorm.DB, provider *storage.Provider) *MediaStore {
	return &MediaStore{
		db:       db,
		storage:  provider,
		idParam:  "sprite_id",
		notFound: SpriteNotFoundResponse,
		newRecord: func() models.MediaRecord {
			return &models.Sprite{}
		},
	}
}

func NewAudioStore(db *gorm.DB, provider *storage.Provider) *MediaStore {
	return &MediaStore{
		db:       db,
		storage:  provider,
		idParam:  "audio_id",
		notFound: AudioNotFoundResponse,
		newRecord: func() models.MediaRecord {
			return &models.AudioClip{}
		},
	}
}

type MediaResponse struct {
	FileName      string `json:"file_name"`
	ContentBase64 string `json:"content_base64"`
}

func (m *MediaStore) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"file is required"})
		return
	}
	record := m.newRecord()
	f := record.File()
	f.Name = file.Filename
	f.Size = file.Size
	f.MimeType = file.Header.Get("Content-Type")
	if f.MimeType == "" {
		// Guess the mime type from the extension
		f.MimeType = mime.TypeByExtension(filepath.Ext(file.Filename))
	}
	store := m.storage.Default()
	f.BucketID = store.GetBucket().ID

	if err := m.db.Create(record).Error; err != nil {
		log.Printf("DB error: %v", err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	reader, err := file.Open()
	if err != nil {
		m.discard(record)
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	defer reader.Close()
	size, err := store.Save(record.GetPath(), reader)
	if err != nil {
		log.Printf("Cannot save to bucket %d: %v", f.BucketID, err)
		m.discard(record)
		c.JSON(http.StatusInternalServerError, StorageErrorResponse)
		return
	}
	if size != f.Size {
		f.Size = size
		if err := m.db.Updates(record).Error; err != nil {
			log.Printf("DB error: %v", err)
		}
	}
	c.JSON(http.StatusOK, IDResponse{f.ID})
}

// discard removes the record of a failed upload so it can't be fetched later
func (m *MediaStore) discard(record models.MediaRecord) {
	if err := m.db.Delete(record).Error; err != nil {
		log.Printf("Cannot delete record %d: %v", record.File().ID, err)
	}
}

func (m *MediaStore) Fetch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query(m.idParam), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{m.idParam + " is required and must be numeric"})
		return
	}
	record := m.newRecord()
	result := m.db.First(record, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, m.notFound)
		return
	}
	if result.Error != nil {
		log.Printf("DB error: %v", result.Error)
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	store := m.storage.From(record.File().BucketID)
	if store == nil {
		log.Printf("No storage for bucket %d", record.File().BucketID)
		c.JSON(http.StatusInternalServerError, StorageErrorResponse)
		return
	}
	var buf bytes.Buffer
	if _, err := store.Load(record.GetPath(), &buf); err != nil {
		log.Printf("Cannot load %s: %v", record.GetPath(), err)
		c.JSON(http.StatusInternalServerError, StorageErrorResponse)
		return
	}
	// Media records never change once uploaded
	c.Header("cache-control", "private, max-age="+strconv.Itoa(utils.MediaCacheTime))
	c.JSON(http.StatusOK, MediaResponse{
		FileName:      record.File().Name,
		ContentBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}
