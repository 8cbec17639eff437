package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"ScoreSync/internal/adapter"
	"ScoreSync/internal/metrics"
	"ScoreSync/internal/model"
	"ScoreSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SyncHandler struct {
	scheduler       *service.Scheduler
	syncService     *service.SyncService
	unified         *service.UnifiedService
	failures        *metrics.FailureCounter
	defaultInterval int
	logger          *logrus.Logger
}

func NewSyncHandler(scheduler *service.Scheduler, syncService *service.SyncService, unified *service.UnifiedService, failures *metrics.FailureCounter, defaultInterval int, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		scheduler:       scheduler,
		syncService:     syncService,
		unified:         unified,
		failures:        failures,
		defaultInterval: defaultInterval,
		logger:          logger,
	}
}

// Register mounts the sync and sports routes
func (h *SyncHandler) Register(r gin.IRouter) {
	sync := r.Group("/sync")
	sync.POST("/start", h.StartAutoSync)
	sync.POST("/stop", h.StopAutoSync)
	sync.POST("/run", h.PerformSync)
	sync.POST("/upcoming", h.SyncUpcoming)
	sync.POST("/cleanup", h.Cleanup)
	sync.GET("/status", h.Status)
	sync.GET("/connectivity", h.Connectivity)
	sync.GET("/failures", h.Failures)

	r.GET("/sports", h.ListSports)
	r.GET("/sports/:sport/games", h.GamesForSport)
	r.GET("/games/live", h.LiveGames)
}

type startRequest struct {
	IntervalMinutes int `json:"interval_minutes"`
}

// StartAutoSync body is optional, the configured interval applies when absent
func (h *SyncHandler) StartAutoSync(c *gin.Context) {
	req := startRequest{IntervalMinutes: h.defaultInterval}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.IntervalMinutes <= 0 {
		req.IntervalMinutes = h.defaultInterval
	}

	// the first cycle outlives the request, like the timer-driven ones
	ctx := context.WithoutCancel(c.Request.Context())
	started := h.scheduler.StartAutoSync(ctx, req.IntervalMinutes)
	c.JSON(http.StatusOK, gin.H{
		"started": started,
		"status":  h.scheduler.GetSyncStatus(),
	})
}

func (h *SyncHandler) StopAutoSync(c *gin.Context) {
	stopped := h.scheduler.StopAutoSync()
	c.JSON(http.StatusOK, gin.H{
		"stopped": stopped,
		"status":  h.scheduler.GetSyncStatus(),
	})
}

func (h *SyncHandler) PerformSync(c *gin.Context) {
	res, err := h.syncService.PerformSync(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("manual sync failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SyncHandler) SyncUpcoming(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.SyncUpcomingGames(c.Request.Context()))
}

func (h *SyncHandler) Cleanup(c *gin.Context) {
	res, err := h.syncService.CleanupOldBanners(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("manual cleanup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SyncHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduler.GetSyncStatus())
}

func (h *SyncHandler) Connectivity(c *gin.Context) {
	c.JSON(http.StatusOK, h.unified.TestConnectivity(c.Request.Context()))
}

func (h *SyncHandler) Failures(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total":    h.failures.Total(),
		"counters": h.failures.Snapshot(),
	})
}

func (h *SyncHandler) ListSports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sports": adapter.GetAllAvailableSports(),
		"espn":   adapter.GetESPNSports(),
		"ncaa":   adapter.GetNCAASports(),
	})
}

// GamesForSport 400 on an unknown sport, 502 when the provider call fails
func (h *SyncHandler) GamesForSport(c *gin.Context) {
	sport, err := model.ParseSport(c.Param("sport"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	games, err := h.unified.GetGamesForSport(c.Request.Context(), sport)
	if errors.Is(err, model.ErrUnknownSport) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("sport", sport).Warn("games for sport failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sport": sport, "games": games})
}

func (h *SyncHandler) LiveGames(c *gin.Context) {
	games, err := h.syncService.LiveGames(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Warn("reading live games snapshot failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}
