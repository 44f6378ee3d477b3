package utils

import (
	"github.com/gin-gonic/gin"
)

// MediaCacheTime is how long clients may cache fetched media. Records are
// immutable once uploaded, so a long time is safe.
const MediaCacheTime = 7 * 24 * 3600

// NoCacheMiddleware marks every response as non-cacheable. End-points
// serving immutable content set their own cache-control instead.
func NoCacheMiddleware(c *gin.Context) {
	c.Header("cache-control", "no-cache")
	c.Next()
}
