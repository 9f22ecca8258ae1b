package constants

const (
	AppName           = "habitlab"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/habitlab/habitlab.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MaxStreakDays bounds the backward walk of the streak computation.
	// A streak longer than a year is reported as 365.
	MaxStreakDays = 365

	// DefaultRateWindowDays is the trailing window for completion rates.
	DefaultRateWindowDays = 30

	DefaultColor = "blue"
	DefaultIcon  = "star"

	// Keyring
	KeyringTokenUser = "bootstrap-token"

	// Preference keys
	PrefTheme      = "theme"
	PrefUserName   = "user_name"
	PrefUserAvatar = "user_avatar"
	PrefServerLink = "server_link"

	// Bootstrap
	DefaultBootstrapURL     = "https://config.habitlab.app/bootstrap"
	BootstrapTimeoutSeconds = 30

	// Notify
	NotifyLockfileName     = "habitlab-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.habitlab.tray"
)

// Colors is the closed palette of habit colors. Unknown keys fall back to
// DefaultColor at creation time.
var Colors = []string{"blue", "green", "red", "orange", "purple", "pink", "yellow"}

// Icons is the closed palette of habit icons. Unknown keys fall back to
// DefaultIcon at creation time.
var Icons = []string{"star", "book", "heart", "flame", "drop", "moon", "leaf", "bolt"}
