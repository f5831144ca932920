package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/validation"
)

// settingRules validates the value of each known setting key.
var settingRules = map[string]func(string) string{
	model.SettingCustomerSatisfaction: func(v string) string {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			return "must be an integer between 0 and 100"
		}
		return ""
	},
}

// SettingsService is a key/value store for operator-tunable values such as
// the customer satisfaction score.
type SettingsService struct {
	db DB
}

func NewSettingsService(db DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) Get(ctx context.Context, key string) (*model.Setting, error) {
	var st model.Setting
	err := s.db.QueryRow(ctx,
		"SELECT key, value, updated_at FROM settings WHERE key = $1", key,
	).Scan(&st.Key, &st.Value, &st.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "setting", key)
	}
	return &st, nil
}

func (s *SettingsService) GetAll(ctx context.Context) ([]model.Setting, error) {
	rows, err := s.db.Query(ctx, "SELECT key, value, updated_at FROM settings ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return collectAll(rows, "setting", func(row scanner) (model.Setting, error) {
		var st model.Setting
		err := row.Scan(&st.Key, &st.Value, &st.UpdatedAt)
		return st, err
	})
}

// Set validates and upserts a setting.
func (s *SettingsService) Set(ctx context.Context, key, value string) (*model.Setting, error) {
	check, ok := settingRules[key]
	if !ok {
		return nil, validation.Errors{"key": "unknown setting"}
	}
	if msg := check(value); msg != "" {
		return nil, validation.Errors{"value": msg}
	}

	st := &model.Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	_, err := s.db.Exec(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		st.Key, st.Value, st.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("set setting %q: %w", key, err)
	}
	return st, nil
}

// Int returns an integer setting, or fallback when it is unset or malformed.
func (s *SettingsService) Int(ctx context.Context, key string, fallback int) (int, error) {
	st, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(st.Value)
	if err != nil {
		return fallback, nil
	}
	return n, nil
}
