package routes

import (
	"github.com/ilyonsnfi/LCHC-Checkin/internal/config"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/handlers"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/middleware"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	roster := store.NewRosterStore(db)
	ledger := store.NewCheckinLedger(db)
	accounts := store.NewAccountStore(db)
	settings := store.NewSettingsStore(db)

	checkinH := handlers.NewCheckinHandler(roster, ledger)
	authH := handlers.NewAuthHandler(accounts, cfg)
	adminH := handlers.NewAdminHandler(roster, ledger, accounts, settings, cfg)

	r.Static("/static", "./static")

	// Public: the kiosk scans badges without logging in.
	r.GET("/healthz", handlers.Health)
	r.POST("/checkin", checkinH.Checkin)
	r.POST("/login", authH.Login)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(accounts))
	{
		authed.GET("/session", authH.Session)
		authed.POST("/logout", authH.Logout)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(accounts), middleware.RequireAdmin())
	{
		admin.GET("/users", adminH.ListUsers)
		admin.POST("/users", adminH.CreateUser)
		admin.DELETE("/users", adminH.DeleteAllUsers)
		admin.GET("/tables", adminH.ListTables)

		admin.GET("/history", adminH.History)
		admin.DELETE("/history", adminH.ClearHistory)
		admin.POST("/checkin", adminH.ManualCheckin)
		admin.POST("/checkout", adminH.ManualCheckout)

		admin.POST("/import", adminH.Import)
		admin.GET("/export", adminH.Export)

		admin.GET("/settings", adminH.GetSettings)
		admin.PUT("/settings", adminH.UpdateSettings)
		admin.POST("/settings/background", adminH.UploadBackground)
		admin.DELETE("/settings/background", adminH.RemoveBackground)
		admin.POST("/settings/sound", adminH.UploadSound)
		admin.DELETE("/settings/sound", adminH.RemoveSound)

		admin.GET("/accounts", adminH.ListAccounts)
		admin.POST("/accounts", adminH.CreateAccount)
		admin.DELETE("/accounts/:username", adminH.DeleteAccount)
	}

	return r
}
