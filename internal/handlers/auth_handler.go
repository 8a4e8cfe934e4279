package handlers

import (
	"net/http"
	"strings"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/config"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/middleware"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Accounts *store.AccountStore
	Cfg      *config.Config
}

func NewAuthHandler(accounts *store.AccountStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Accounts: accounts, Cfg: cfg}
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	// A production deployment without HTTPS cannot protect the cookie, so
	// refuse to issue one at all.
	if h.Cfg.Production && !h.Cfg.HTTPS {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "production mode requires HTTPS for session cookies"})
		return
	}

	acct := h.Accounts.Authenticate(strings.TrimSpace(req.Username), req.Password)
	if acct == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.Accounts.CreateSession(acct.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create session failed"})
		return
	}

	secure := h.Cfg.Production && h.Cfg.HTTPS
	c.SetCookie(middleware.SessionCookie, token, int(store.SessionTTL.Seconds()), "/", "", secure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"account": gin.H{"username": acct.Username, "is_admin": acct.IsAdmin},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		h.Accounts.RevokeSession(token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session returns the authenticated operator. Password hashes never leave
// the store.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username": c.GetString("username"),
		"is_admin": c.GetBool("is_admin"),
	})
}
