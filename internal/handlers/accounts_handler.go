package handlers

import (
	"net/http"
	"strings"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"

	"github.com/gin-gonic/gin"
)

// ListAccounts returns every operator account. Password hashes are excluded
// at the model level.
func (h *AdminHandler) ListAccounts(c *gin.Context) {
	accts := h.Accounts.ListAccounts()
	if accts == nil {
		accts = []models.Account{}
	}
	c.JSON(http.StatusOK, accts)
}

type CreateAccountReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

func (h *AdminHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body", "detail": err.Error()})
		return
	}

	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 6 characters"})
		return
	}

	if !h.Accounts.CreateAccount(req.Username, req.Password, req.IsAdmin) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Username already exists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account created"})
}

func (h *AdminHandler) DeleteAccount(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "username required"})
		return
	}

	if !h.Accounts.DeleteAccount(username) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Account not found or is the last admin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account deleted"})
}
