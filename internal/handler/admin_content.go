package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/investor-portal/internal/model"
	"github.com/iliyamo/investor-portal/internal/repository"
	"github.com/iliyamo/investor-portal/internal/storage"
)

// UpdateSetting handles PUT /v1/admin/settings/:key for the legal
// texts shown on the marketing site.
func (h *AdminHandler) UpdateSetting(c echo.Context) error {
	key := c.Param("key")
	if !model.ValidSettingKey(key) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown setting"})
	}
	var req struct {
		Value string `json:"value"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Settings.Upsert(ctx, key, req.Value); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	s, err := h.Settings.Get(ctx, key)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// ---- Videos ----

// ListVideos handles GET /v1/admin/videos, inactive rows included.
func (h *AdminHandler) ListVideos(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	vids, err := h.Content.ListVideos(ctx, false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"videos": vids})
}

// UploadVideo handles POST /v1/admin/videos: a multipart upload with a
// title field and the video file.
func (h *AdminHandler) UploadVideo(c echo.Context) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "video file required"})
	}
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "file storage unavailable"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	key := storage.NewKey(storage.PrefixVideos, fh.Filename)
	if err := h.Store.Upload(ctx, key, src); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}
	id, err := h.Content.CreateVideo(ctx, title, key)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	v, err := h.Content.GetVideo(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusCreated, v)
}

// ToggleVideo handles PUT /v1/admin/videos/:id with {"is_active": bool}.
func (h *AdminHandler) ToggleVideo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid video id"})
	}
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Content.SetVideoActive(ctx, id, req.IsActive); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "video not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteVideo handles DELETE /v1/admin/videos/:id. The database row is
// removed first; blob deletion is best effort, an orphaned object is
// harmless.
func (h *AdminHandler) DeleteVideo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid video id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	v, err := h.Content.GetVideo(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "video not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if err := h.Content.DeleteVideo(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if h.Store != nil {
		if err := h.Store.Delete(ctx, v.FileKey); err != nil {
			log.Printf("delete video blob %s: %v", v.FileKey, err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// ---- Screenshots ----

// ListScreenshots handles GET /v1/admin/screenshots, inactive included.
func (h *AdminHandler) ListScreenshots(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shots, err := h.Content.ListScreenshots(ctx, false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"screenshots": shots})
}

// UploadScreenshot handles POST /v1/admin/screenshots: multipart with
// title, optional sort_order and the image file.
func (h *AdminHandler) UploadScreenshot(c echo.Context) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	sortOrder := 0
	if raw := c.FormValue("sort_order"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sort_order"})
		}
		sortOrder = n
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file required"})
	}
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "file storage unavailable"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	key := storage.NewKey(storage.PrefixScreenshots, fh.Filename)
	if err := h.Store.Upload(ctx, key, src); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}
	id, err := h.Content.CreateScreenshot(ctx, title, key, sortOrder)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	s, err := h.Content.GetScreenshot(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusCreated, s)
}

// ToggleScreenshot handles PUT /v1/admin/screenshots/:id.
func (h *AdminHandler) ToggleScreenshot(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid screenshot id"})
	}
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Content.SetScreenshotActive(ctx, id, req.IsActive); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "screenshot not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteScreenshot handles DELETE /v1/admin/screenshots/:id.
func (h *AdminHandler) DeleteScreenshot(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid screenshot id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	s, err := h.Content.GetScreenshot(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "screenshot not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if err := h.Content.DeleteScreenshot(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if h.Store != nil {
		if err := h.Store.Delete(ctx, s.FileKey); err != nil {
			log.Printf("delete screenshot blob %s: %v", s.FileKey, err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}
