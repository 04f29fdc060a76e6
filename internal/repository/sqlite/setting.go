package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/setting"
)

type settingRepositoryImpl struct {
	db *sql.DB
}

func NewSettingRepository(db *sql.DB) setting.SettingsProvider {
	return &settingRepositoryImpl{db: db}
}

// GetInt implements setting.SettingsProvider.
func (r *settingRepositoryImpl) GetInt(ctx context.Context, key string, fallback int) (int, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fallback, nil
		}
		return 0, fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s = %q", setting.ErrInvalidSettingValue, key, raw)
	}
	return v, nil
}
