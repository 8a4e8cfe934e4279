package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *AdminHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": h.Settings.GetAll()})
}

// SettingsUpdateReq carries a partial patch; nil fields mean "no change".
type SettingsUpdateReq struct {
	WelcomeBanner   *string `json:"welcome_banner"`
	SecondaryBanner *string `json:"secondary_banner"`
	TextColor       *string `json:"text_color"`
	ForegroundColor *string `json:"foreground_color"`
	BackgroundColor *string `json:"background_color"`
	BackgroundImage *string `json:"background_image"`
	CheckinSound    *string `json:"checkin_sound"`
	ErrorSound      *string `json:"error_sound"`
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req SettingsUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body", "detail": err.Error()})
		return
	}

	patch := map[string]string{}
	put := func(key string, val *string) {
		if val != nil {
			patch[key] = *val
		}
	}
	put("welcome_banner", req.WelcomeBanner)
	put("secondary_banner", req.SecondaryBanner)
	put("text_color", req.TextColor)
	put("foreground_color", req.ForegroundColor)
	put("background_color", req.BackgroundColor)
	put("background_image", req.BackgroundImage)
	put("checkin_sound", req.CheckinSound)
	put("error_sound", req.ErrorSound)

	if len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No settings provided"})
		return
	}

	if !h.Settings.UpdatePartial(patch) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings updated", "settings": h.Settings.GetAll()})
}

// UploadBackground replaces the kiosk background image. Only image uploads
// are accepted; the previous file is removed best-effort.
func (h *AdminHandler) UploadBackground(c *gin.Context) {
	h.uploadAsset(c, "background_image", "image/")
}

// UploadSound replaces one of the kiosk sounds. The form field "key" selects
// checkin_sound (default) or error_sound.
func (h *AdminHandler) UploadSound(c *gin.Context) {
	key := strings.TrimSpace(c.PostForm("key"))
	if key == "" {
		key = "checkin_sound"
	}
	if key != "checkin_sound" && key != "error_sound" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "key must be checkin_sound or error_sound"})
		return
	}
	h.uploadAsset(c, key, "audio/")
}

func (h *AdminHandler) RemoveBackground(c *gin.Context) {
	h.removeAsset(c, "background_image")
}

func (h *AdminHandler) RemoveSound(c *gin.Context) {
	key := strings.TrimSpace(c.Query("key"))
	if key == "" {
		key = "checkin_sound"
	}
	if key != "checkin_sound" && key != "error_sound" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "key must be checkin_sound or error_sound"})
		return
	}
	h.removeAsset(c, key)
}

func (h *AdminHandler) uploadAsset(c *gin.Context, key, mimePrefix string) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please upload a file"})
		return
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), mimePrefix) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unsupported file type"})
		return
	}

	// Random filename avoids collisions between uploads.
	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(h.Cfg.UploadDir, name)
	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "save failed"})
		return
	}
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "save failed"})
		return
	}

	old := h.Settings.Get(key)
	publicPath := "/static/uploads/" + name
	if !h.Settings.UpdatePartial(map[string]string{key: publicPath}) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "update failed"})
		return
	}
	h.removeAssetFile(old)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Upload complete", "path": publicPath})
}

func (h *AdminHandler) removeAsset(c *gin.Context, key string) {
	old := h.Settings.Get(key)
	if !h.Settings.UpdatePartial(map[string]string{key: ""}) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "update failed"})
		return
	}
	h.removeAssetFile(old)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Removed"})
}

// removeAssetFile deletes a previously uploaded file. Best-effort: a missing
// file never fails the surrounding operation.
func (h *AdminHandler) removeAssetFile(publicPath string) {
	if publicPath == "" {
		return
	}
	_ = os.Remove(filepath.Join(h.Cfg.UploadDir, filepath.Base(publicPath)))
}
