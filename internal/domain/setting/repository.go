package setting

import "context"

// Setting keys
const (
	KeyLateToleranceMinutes = "late_tolerance_minutes"
)

const DefaultLateToleranceMinutes = 10

// SettingsProvider reads process-wide settings. A missing key yields fallback.
type SettingsProvider interface {
	GetInt(ctx context.Context, key string, fallback int) (int, error)
}
