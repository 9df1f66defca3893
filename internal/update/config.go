package update

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phasecurve/gcal-imp/internal/model"
)

type RuntimeConfig struct {
	DBPath          string
	Theme           string
	DefaultView     string
	CalendarID      string
	SyncPastDays    int
	SyncFutureDays  int
	Offline         bool
	SeedSamples     bool
	CredentialsPath string
	TokenCachePath  string
	SchedulerBuffer int
}

func DefaultRuntimeConfig() RuntimeConfig {
	home, _ := os.UserHomeDir()
	base := filepath.Join(home, ".gcal-imp")
	return RuntimeConfig{
		DBPath:          filepath.Join(base, "cache.db"),
		Theme:           "default",
		DefaultView:     "month",
		CalendarID:      model.DefaultCalendarID,
		SyncPastDays:    90,
		SyncFutureDays:  365,
		CredentialsPath: filepath.Join(base, "credentials.json"),
		TokenCachePath:  filepath.Join(base, "token.json"),
		SchedulerBuffer: 64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("GCAL_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("GCAL_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("GCAL_DEFAULT_VIEW")); v != "" {
		cfg.DefaultView = v
	}
	if v := strings.TrimSpace(os.Getenv("GCAL_CALENDAR_ID")); v != "" {
		cfg.CalendarID = v
	}
	if v, ok := getEnvInt("GCAL_SYNC_PAST_DAYS"); ok && v > 0 {
		cfg.SyncPastDays = v
	}
	if v, ok := getEnvInt("GCAL_SYNC_FUTURE_DAYS"); ok && v > 0 {
		cfg.SyncFutureDays = v
	}
	if v, ok := getEnvBool("GCAL_OFFLINE"); ok {
		cfg.Offline = v
	}
	if v, ok := getEnvBool("GCAL_SEED_SAMPLES"); ok {
		cfg.SeedSamples = v
	}
	if v := strings.TrimSpace(os.Getenv("GCAL_CREDENTIALS")); v != "" {
		cfg.CredentialsPath = v
	}
	if v := strings.TrimSpace(os.Getenv("GCAL_TOKEN_CACHE")); v != "" {
		cfg.TokenCachePath = v
	}
	if v, ok := getEnvInt("GCAL_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
