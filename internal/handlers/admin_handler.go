package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/config"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/export"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/importer"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/store"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	Roster   *store.RosterStore
	Ledger   *store.CheckinLedger
	Accounts *store.AccountStore
	Settings *store.SettingsStore
	Importer *importer.Importer
	Cfg      *config.Config
}

func NewAdminHandler(roster *store.RosterStore, ledger *store.CheckinLedger, accounts *store.AccountStore, settings *store.SettingsStore, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		Roster:   roster,
		Ledger:   ledger,
		Accounts: accounts,
		Settings: settings,
		Importer: importer.New(roster),
		Cfg:      cfg,
	}
}

// ListUsers returns the roster with derived check-in state, optionally
// filtered by ?search=.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users := h.Roster.Search(c.Query("search"))
	h.Ledger.Annotate(users)
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

type CreateUserReq struct {
	EmployeeID  string `json:"employee_id" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	TableNumber int    `json:"table_number" binding:"required"`
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body", "detail": err.Error()})
		return
	}

	user := models.User{
		EmployeeID:  strings.TrimSpace(req.EmployeeID),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		TableNumber: req.TableNumber,
	}
	if user.EmployeeID == "" || user.FirstName == "" || user.LastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "employee_id, first_name and last_name are required"})
		return
	}
	if user.TableNumber <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "table_number must be greater than 0"})
		return
	}

	if err := h.Roster.CreateOne(&user); err != nil {
		if err == store.ErrDuplicateEmployeeID {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": fmt.Sprintf("Employee ID %s already exists", user.EmployeeID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "create failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User created", "user": user})
}

// DeleteAllUsers wipes the roster. There is no single-user delete; removal
// is all or nothing.
func (h *AdminHandler) DeleteAllUsers(c *gin.Context) {
	deleted := h.Roster.DeleteAll()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": deleted,
		"message": fmt.Sprintf("Successfully deleted %d users", deleted),
	})
}

func (h *AdminHandler) ListTables(c *gin.Context) {
	groups := h.Roster.GroupedByTable(c.Query("search"))
	if groups == nil {
		groups = []store.TableGroup{}
	}
	c.JSON(http.StatusOK, groups)
}

func (h *AdminHandler) History(c *gin.Context) {
	records := h.Ledger.History(c.Query("search"))
	if records == nil {
		records = []models.CheckinRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (h *AdminHandler) ClearHistory(c *gin.Context) {
	deleted := h.Ledger.ClearAll()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": deleted,
		"message": fmt.Sprintf("Cleared %d check-ins", deleted),
	})
}

type EmployeeIDReq struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}

// ManualCheckin records a check-in on an attendee's behalf.
func (h *AdminHandler) ManualCheckin(c *gin.Context) {
	var req EmployeeIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "employee_id required"})
		return
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	user := h.Roster.Lookup(employeeID)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": fmt.Sprintf("Employee ID %s not found", employeeID)})
		return
	}

	if !h.Ledger.Record(employeeID) {
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

// ManualCheckout removes an attendee's most recent check-in.
func (h *AdminHandler) ManualCheckout(c *gin.Context) {
	var req EmployeeIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "employee_id required"})
		return
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	user := h.Roster.Lookup(employeeID)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": fmt.Sprintf("Employee ID %s not found", employeeID)})
		return
	}

	if !h.Ledger.Checkout(employeeID) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": fmt.Sprintf("No check-in found for %s", employeeID)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"name":    user.FirstName + " " + user.LastName,
		"message": "Check-in removed",
	})
}

// Import accepts a roster spreadsheet and runs the reconciler. A batch with
// some bad rows and some good rows is still a success.
func (h *AdminHandler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusOK, importer.Result{Success: false, Errors: []string{}, Message: "Please upload a file"})
		return
	}
	if !importer.AllowedExtension(fh.Filename) {
		c.JSON(http.StatusOK, importer.Result{Success: false, Errors: []string{}, Message: "Please upload a spreadsheet (.xlsx or .csv) file"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusOK, importer.Result{Success: false, Errors: []string{}, Message: "Could not read uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusOK, importer.Result{Success: false, Errors: []string{}, Message: "Could not read uploaded file"})
		return
	}

	rows, err := importer.DecodeFile(fh.Filename, data)
	if err != nil {
		c.JSON(http.StatusOK, importer.Result{Success: false, Errors: []string{}, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Importer.Import(rows))
}

// Export streams the two-section history workbook.
func (h *AdminHandler) Export(c *gin.Context) {
	checkedIn := h.Ledger.History("")

	users := h.Roster.Search("")
	h.Ledger.Annotate(users)
	var notCheckedIn []models.User
	for _, u := range users {
		if !u.IsCheckedIn {
			notCheckedIn = append(notCheckedIn, u)
		}
	}

	wb, err := export.HistoryWorkbook(checkedIn, notCheckedIn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "export failed"})
		return
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "export failed"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=checkin_history.xlsx")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
