package handlers

import (
	"errors"
	"log"
	"net/http"

	"gamemedia/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ScoreStore persists and serves player scores.
type ScoreStore struct {
	db *gorm.DB
}

func NewScoreStore(db *gorm.DB) *ScoreStore {
	return &ScoreStore{db: db}
}

type ScoreSaveRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
	// Pointer so that a zero score still passes the "required" check
	Score *int64 `json:"score" binding:"required"`
}

type ScoreFetchRequest struct {
	PlayerID uint64 `form:"player_id" binding:"required"`
}

type ScoreResponse struct {
	PlayerName string `json:"player_name"`
	Score      int64  `json:"score"`
}

func (s *ScoreStore) Save(c *gin.Context) {
	var r ScoreSaveRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	score := models.PlayerScore{
		PlayerName: r.PlayerName,
		Score:      *r.Score,
	}
	if err := s.db.Create(&score).Error; err != nil {
		log.Printf("DB error: %v", err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, IDResponse{score.ID})
}

func (s *ScoreStore) Fetch(c *gin.Context) {
	var r ScoreFetchRequest
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	score := models.PlayerScore{}
	result := s.db.First(&score, r.PlayerID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, ScoreNotFoundResponse)
		return
	}
	if result.Error != nil {
		log.Printf("DB error: %v", result.Error)
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, ScoreResponse{
		PlayerName: score.PlayerName,
		Score:      score.Score,
	})
}
