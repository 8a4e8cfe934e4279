package models

type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

// DefaultSettings are seeded at first run; existing values are never
// overwritten across restarts.
var DefaultSettings = map[string]string{
	"welcome_banner":   "Welcome",
	"secondary_banner": "Please scan your badge",
	"text_color":       "#000000",
	"foreground_color": "#ffffff",
	"background_color": "#f5f5f5",
	"background_image": "",
	"checkin_sound":    "",
	"error_sound":      "",
}
