package service

import (
	"errors"
	"fmt"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FlagService reads and toggles persisted feature switches. Flags are
// get-or-create: a key nobody has toggled yet reports its default.
type FlagService interface {
	GetBool(key string, fallback bool) bool
	Set(key string, value bool) (bool, error)
	Toggle(key string, fallback bool) (bool, error)
}

type flagService struct {
	flagRepo repository.FlagRepository
}

func NewFlagService(flagRepo repository.FlagRepository) FlagService {
	return &flagService{flagRepo: flagRepo}
}

func (s *flagService) GetBool(key string, fallback bool) bool {
	flag, err := s.flagRepo.Find(key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Str("key", key).Msg("Failed to read feature flag")
		}
		return fallback
	}
	return flag.Value
}

func (s *flagService) Set(key string, value bool) (bool, error) {
	flag, err := s.flagRepo.Upsert(key, value)
	if err != nil {
		return false, fmt.Errorf("setting flag %s: %w", key, err)
	}
	log.Info().Str("key", key).Bool("value", flag.Value).Msg("Feature flag set")
	return flag.Value, nil
}

func (s *flagService) Toggle(key string, fallback bool) (bool, error) {
	return s.Set(key, !s.GetBool(key, fallback))
}
