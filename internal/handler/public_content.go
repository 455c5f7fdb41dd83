package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/investor-portal/internal/model"
	"github.com/iliyamo/investor-portal/internal/pricefeed"
	"github.com/iliyamo/investor-portal/internal/repository"
	"github.com/iliyamo/investor-portal/internal/storage"
)

// PublicHandler serves unauthenticated marketing data: legal texts,
// promotional videos and screenshots, the USDT rate and the latest app
// usage snapshot. These endpoints sit behind the Redis response cache.
type PublicHandler struct {
	Settings *repository.SettingsRepo
	Content  *repository.ContentRepo
	Metrics  *repository.MetricsRepo
	Feed     *pricefeed.Feed
	Store    *storage.Store // nil when object storage is not configured
}

func NewPublicHandler(s *repository.SettingsRepo, cnt *repository.ContentRepo, m *repository.MetricsRepo, feed *pricefeed.Feed, store *storage.Store) *PublicHandler {
	if s == nil || cnt == nil || m == nil || feed == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{Settings: s, Content: cnt, Metrics: m, Feed: feed, Store: store}
}

// GetSetting handles GET /v1/settings/:key for the known legal texts.
func (h *PublicHandler) GetSetting(c echo.Context) error {
	key := c.Param("key")
	if !model.ValidSettingKey(key) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown setting"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Settings.Get(ctx, key)
	if err != nil {
		if err == repository.ErrNotFound {
			// Known key that has never been filled in yet.
			return c.JSON(http.StatusOK, echo.Map{"key": key, "value": ""})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, s)
}

type videoItem struct {
	model.InvestorVideo
	URL string `json:"url,omitempty"`
}

type screenshotItem struct {
	model.AppScreenshot
	URL string `json:"url,omitempty"`
}

// ListVideos handles GET /v1/content/videos. Only active videos are
// shown publicly; a presigned download URL is attached when object
// storage is configured.
func (h *PublicHandler) ListVideos(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	vids, err := h.Content.ListVideos(ctx, true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]videoItem, 0, len(vids))
	for _, v := range vids {
		item := videoItem{InvestorVideo: v}
		if h.Store != nil {
			if url, err := h.Store.SignedURL(ctx, v.FileKey, time.Hour); err == nil {
				item.URL = url
			}
		}
		out = append(out, item)
	}
	return c.JSON(http.StatusOK, echo.Map{"videos": out})
}

// ListScreenshots handles GET /v1/content/screenshots, ordered by the
// admin-assigned sort order.
func (h *PublicHandler) ListScreenshots(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shots, err := h.Content.ListScreenshots(ctx, true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]screenshotItem, 0, len(shots))
	for _, s := range shots {
		item := screenshotItem{AppScreenshot: s}
		if h.Store != nil {
			if url, err := h.Store.SignedURL(ctx, s.FileKey, time.Hour); err == nil {
				item.URL = url
			}
		}
		out = append(out, item)
	}
	return c.JSON(http.StatusOK, echo.Map{"screenshots": out})
}

// USDTRate handles GET /v1/rates/usdt.
func (h *PublicHandler) USDTRate(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Feed.Rate(c.Request().Context()))
}

// LatestMetrics handles GET /v1/metrics/latest: the most recent stored
// app usage snapshot.
func (h *PublicHandler) LatestMetrics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Metrics.Latest(ctx)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no metrics yet"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, m)
}
