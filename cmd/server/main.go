package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/config"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/routes"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/storage"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := storage.OpenDB(cfg.DBPath)

	store.NewSettingsStore(db).Seed()

	accounts := store.NewAccountStore(db)
	accounts.BootstrapAdmin(cfg.AdminUsername, cfg.AdminPassword)
	if purged := accounts.PurgeExpiredSessions(); purged > 0 {
		log.Printf("purged %d expired sessions", purged)
	}

	r := routes.NewRouter(db, cfg)

	addr := ":" + cfg.Port
	log.Printf("Server running on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
