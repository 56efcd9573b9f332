package settings

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"PantryOS-Server/domain"
	"PantryOS-Server/entities"
	"PantryOS-Server/internal/utils"
	"PantryOS-Server/pkg/store"
)

type (
	SettingsService interface {
		Get() entities.Settings
		Update(req domain.UpdateSettingsRequest) (entities.Settings, error)
	}

	settingsService struct {
		store     *store.SettingsStore
		validator *validator.Validate
	}
)

func NewSettingsService(st *store.SettingsStore, validator *validator.Validate) SettingsService {
	return &settingsService{store: st, validator: validator}
}

func (s *settingsService) Get() entities.Settings {
	return s.store.Get()
}

// Update merges the provided fields over the current settings, validates the
// result, and persists it. Nothing is written when validation fails.
func (s *settingsService) Update(req domain.UpdateSettingsRequest) (entities.Settings, error) {
	current := s.store.Get()
	next := current

	if req.Culture != nil {
		next.Culture = utils.TextValue(req.Culture, "")
	}
	if req.Currency != nil {
		next.Currency = utils.TextValue(req.Currency, "")
	}
	if req.Timezone != nil {
		next.Timezone = utils.TextValue(req.Timezone, "")
	}
	if req.LogLevel != nil {
		next.LogLevel = strings.ToLower(utils.TextValue(req.LogLevel, current.LogLevel))
	}

	if err := s.validator.Struct(next); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			switch fieldErrors[0].Field() {
			case "Culture":
				return current, domain.ErrInvalidCulture
			case "Currency":
				return current, domain.ErrInvalidCurrency
			case "Timezone":
				return current, domain.ErrInvalidTimezone
			}
		}
		return current, err
	}

	if err := s.store.Update(next); err != nil {
		return current, err
	}
	return next, nil
}
