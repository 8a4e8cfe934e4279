package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/store"

	"github.com/gin-gonic/gin"
)

type CheckinHandler struct {
	Roster *store.RosterStore
	Ledger *store.CheckinLedger
}

func NewCheckinHandler(roster *store.RosterStore, ledger *store.CheckinLedger) *CheckinHandler {
	return &CheckinHandler{Roster: roster, Ledger: ledger}
}

// Checkin handles a badge scan from the kiosk. Intentionally
// unauthenticated: the station runs unattended.
func (h *CheckinHandler) Checkin(c *gin.Context) {
	badgeID := strings.TrimSpace(c.PostForm("badge_id"))
	if badgeID == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please scan a badge"})
		return
	}

	user := h.Roster.Lookup(badgeID)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Badge not found. Please see check-in attendant.",
		})
		return
	}

	if !h.Ledger.Record(badgeID) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Checkin failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"name":         user.FirstName + " " + user.LastName,
		"table_number": user.TableNumber,
		"time":         time.Now().Format(models.TimeFormat),
	})
}
