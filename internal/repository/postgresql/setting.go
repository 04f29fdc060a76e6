package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/setting"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingsProvider {
	return &settingRepositoryImpl{db: db}
}

// GetInt implements setting.SettingsProvider.
func (s *settingRepositoryImpl) GetInt(ctx context.Context, key string, fallback int) (int, error) {
	var raw string
	err := s.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
