// This file holds the reader settings: the registered library roots, the
// active one, and the viewer preferences. They live in a JSON file that
// the web UI and the CLI both edit.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// Reading directions understood by the viewer.
const (
	DirectionLeftToRight = "left_to_right"
	DirectionRightToLeft = "right_to_left"
)

const defaultPreloadBuffer = 3

// ReaderSettings is the content of the settings file.
type ReaderSettings struct {
	BasePaths        []string `mapstructure:"base_paths" json:"base_paths"`
	CurrentBasePath  string   `mapstructure:"current_base_path" json:"current_base_path"`
	ReadingDirection string   `mapstructure:"reading_direction" json:"reading_direction"`
	PreloadBuffer    int      `mapstructure:"preload_buffer" json:"preload_buffer"`
}

// Validate checks the settings before they are written.
func (s *ReaderSettings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.BasePaths, validation.Each(validation.Required)),
		validation.Field(&s.CurrentBasePath, validation.Required),
		validation.Field(&s.ReadingDirection, validation.Required, validation.In(DirectionLeftToRight, DirectionRightToLeft)),
		validation.Field(&s.PreloadBuffer, validation.Required, validation.Min(1), validation.Max(50)),
	)
}

func (s ReaderSettings) clone() ReaderSettings {
	s.BasePaths = slices.Clone(s.BasePaths)
	return s
}

// SettingsPatch carries a partial update; nil fields are left untouched.
type SettingsPatch struct {
	BasePaths        *[]string `json:"base_paths"`
	CurrentBasePath  *string   `json:"current_base_path"`
	ReadingDirection *string   `json:"reading_direction"`
	PreloadBuffer    *int      `json:"preload_buffer"`
}

// SettingsStore loads and saves ReaderSettings.
type SettingsStore struct {
	mu      sync.RWMutex
	v       *viper.Viper
	path    string
	current ReaderSettings
}

// NewSettingsStore reads the settings file at path. When the file does not
// exist the defaults are used, rooted at defaultRoot, and nothing is written
// until the first update.
func NewSettingsStore(path, defaultRoot string) (*SettingsStore, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("base_paths", []string{defaultRoot})
	v.SetDefault("current_base_path", defaultRoot)
	v.SetDefault("reading_direction", DirectionLeftToRight)
	v.SetDefault("preload_buffer", defaultPreloadBuffer)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}

	s := &SettingsStore{v: v, path: path}
	if err := v.Unmarshal(&s.current); err != nil {
		return nil, fmt.Errorf("failed to decode settings %s: %w", path, err)
	}
	return s, nil
}

// Get returns a copy of the current settings.
func (s *SettingsStore) Get() ReaderSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.clone()
}

// ActiveRoot returns the directory browsing is rooted at.
func (s *SettingsStore) ActiveRoot() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.CurrentBasePath
}

// Update applies the fields present in patch, validates the result and
// persists it.
func (s *SettingsStore) Update(patch SettingsPatch) (ReaderSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.clone()
	if patch.BasePaths != nil {
		next.BasePaths = slices.Clone(*patch.BasePaths)
	}
	if patch.CurrentBasePath != nil {
		next.CurrentBasePath = *patch.CurrentBasePath
	}
	if patch.ReadingDirection != nil {
		next.ReadingDirection = *patch.ReadingDirection
	}
	if patch.PreloadBuffer != nil {
		next.PreloadBuffer = *patch.PreloadBuffer
	}
	if err := s.save(next); err != nil {
		return ReaderSettings{}, err
	}
	return next.clone(), nil
}

// Use makes root the active root, registering it first if it is new.
func (s *SettingsStore) Use(root string) (ReaderSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.clone()
	if !slices.Contains(next.BasePaths, root) {
		next.BasePaths = append(next.BasePaths, root)
	}
	next.CurrentBasePath = root
	if err := s.save(next); err != nil {
		return ReaderSettings{}, err
	}
	return next.clone(), nil
}

// save must be called with mu held.
func (s *SettingsStore) save(next ReaderSettings) error {
	if err := next.Validate(); err != nil {
		return err
	}
	s.v.Set("base_paths", next.BasePaths)
	s.v.Set("current_base_path", next.CurrentBasePath)
	s.v.Set("reading_direction", next.ReadingDirection)
	s.v.Set("preload_buffer", next.PreloadBuffer)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", s.path, err)
	}
	s.current = next
	return nil
}
