package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/config"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/services"
)

var (
	cricketOnce sync.Once
	cricket     *services.Cricket
)

func cricketSvc() *services.Cricket {
	cricketOnce.Do(func() {
		cricket = services.NewCricket(config.AppConfig)
	})
	return cricket
}

func cricketStatus(err error) (int, string) {
	if errors.Is(err, services.ErrCricketDisabled) {
		return http.StatusServiceUnavailable, "Cricket scores are not available"
	}
	return http.StatusBadGateway, "Cricket score provider is unavailable"
}

// CricketLiveScores proxies the live scores feed.
func CricketLiveScores(c *gin.Context) {
	body, err := cricketSvc().LiveScores(c.Request.Context())
	if err != nil {
		status, msg := cricketStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// CricketMatches proxies the matches feed.
func CricketMatches(c *gin.Context) {
	body, err := cricketSvc().Matches(c.Request.Context())
	if err != nil {
		status, msg := cricketStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
