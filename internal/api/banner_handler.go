package api

import (
	"errors"
	"net/http"

	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"
	"ScoreSync/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BannerHandler operator surface over the banner store
type BannerHandler struct {
	repo   interfaces.BannerRepository
	logger *logrus.Logger
}

func NewBannerHandler(repo interfaces.BannerRepository, logger *logrus.Logger) *BannerHandler {
	return &BannerHandler{repo: repo, logger: logger}
}

func (h *BannerHandler) Register(r gin.IRouter) {
	banners := r.Group("/banners")
	banners.GET("", h.List)
	banners.GET("/:id", h.Get)
	banners.PATCH("/:id/enabled", h.SetEnabled)
	banners.PATCH("/:id/status", h.SetStatus)
}

func (h *BannerHandler) List(c *gin.Context) {
	banners, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("list banners failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(banners), "list": banners})
}

func (h *BannerHandler) Get(c *gin.Context) {
	banner, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, banner)
}

type enabledRequest struct {
	IsEnabled *bool `json:"is_enabled" binding:"required"`
}

func (h *BannerHandler) SetEnabled(c *gin.Context) {
	var req enabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if err := h.repo.SetEnabled(c.Request.Context(), id, *req.IsEnabled); err != nil {
		h.writeError(c, err)
		return
	}
	h.logger.WithFields(logrus.Fields{"banner_id": id, "is_enabled": *req.IsEnabled}).Info("banner toggled by operator")
	c.JSON(http.StatusOK, gin.H{"id": id, "is_enabled": *req.IsEnabled})
}

type statusRequest struct {
	GameStatus model.GameStatus `json:"game_status" binding:"required"`
}

// SetStatus manual status override; the only way a banner becomes postponed
func (h *BannerHandler) SetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.GameStatus.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game_status: " + string(req.GameStatus)})
		return
	}
	id := c.Param("id")
	if err := h.repo.SetStatus(c.Request.Context(), id, req.GameStatus); err != nil {
		h.writeError(c, err)
		return
	}
	h.logger.WithFields(logrus.Fields{"banner_id": id, "game_status": req.GameStatus}).Info("banner status set by operator")
	c.JSON(http.StatusOK, gin.H{"id": id, "game_status": req.GameStatus})
}

func (h *BannerHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrBannerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.logger.WithError(err).Error("banner operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
