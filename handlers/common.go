package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

type IDResponse struct {
	ID uint64 `json:"id"`
}

var (
	// Predefined errors
	OKResponse             = Response{}
	ScoreNotFoundResponse  = Response{"score not found"}
	SpriteNotFoundResponse = Response{"sprite not found"}
	AudioNotFoundResponse  = Response{"audio not found"}
	DBError1Response       = Response{"DB Error 1"}
	DBError2Response       = Response{"DB Error 2"}
	StorageErrorResponse   = Response{"storage error"}
)

func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}
