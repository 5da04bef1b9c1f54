package core

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// SettingsService allows querying, updating, and saving settings.
type SettingsService interface {
	HideOnScroll() bool
	SetHideOnScroll(bool)
	TouchSlop() float32
	SetTouchSlop(float32)
	LegacyZOrder() bool
	SetLegacyZOrder(bool)
	DarkMode() bool
	SetDarkMode(bool)
	Debug() bool
	SetDebug(bool)
	SettingsFile() string
	Persist() error
}

// DefaultTouchSlop is the touch slop, in Dp, used when the settings do
// not specify one.
const DefaultTouchSlop float32 = 8

type Settings struct {
	// whether scrolling content hides the navigation bar. The nil state
	// indicates that the user has not changed this value, and should be
	// treated as true.
	HideOnScroll *bool

	// touch slop in Dp; the scroll threshold is twice this value. Zero
	// selects DefaultTouchSlop.
	TouchSlop float32

	// whether the navigation bar must be raised above banners by hand
	// instead of relying on drawing order
	LegacyZOrder bool

	DarkMode bool

	// log every navigation bar state change
	Debug bool
}

type settingsService struct {
	Settings
	dataDir string
}

var _ SettingsService = &settingsService{}

func newSettingsService(stateDir string) (SettingsService, error) {
	s := &settingsService{
		dataDir: stateDir,
	}
	if err := s.Load(); err != nil {
		log.Printf("no loadable settings file found; defaults will be used: %v", err)
	}
	return s, nil
}

func (s *settingsService) Load() error {
	jsonSettings, err := os.ReadFile(s.SettingsFile())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err = json.Unmarshal(jsonSettings, &s.Settings); err != nil {
		return fmt.Errorf("couldn't parse json settings: %w", err)
	}
	return nil
}

func (s *settingsService) HideOnScroll() bool {
	return s.Settings.HideOnScroll == nil || *s.Settings.HideOnScroll
}

func (s *settingsService) SetHideOnScroll(hide bool) {
	s.Settings.HideOnScroll = &hide
}

func (s *settingsService) TouchSlop() float32 {
	if s.Settings.TouchSlop <= 0 {
		return DefaultTouchSlop
	}
	return s.Settings.TouchSlop
}

func (s *settingsService) SetTouchSlop(dp float32) {
	s.Settings.TouchSlop = dp
}

func (s *settingsService) LegacyZOrder() bool {
	return s.Settings.LegacyZOrder
}

func (s *settingsService) SetLegacyZOrder(legacy bool) {
	s.Settings.LegacyZOrder = legacy
}

func (s *settingsService) DarkMode() bool {
	return s.Settings.DarkMode
}

func (s *settingsService) SetDarkMode(enabled bool) {
	s.Settings.DarkMode = enabled
}

func (s *settingsService) Debug() bool {
	return s.Settings.Debug
}

func (s *settingsService) SetDebug(enabled bool) {
	s.Settings.Debug = enabled
}

func (s *settingsService) SettingsFile() string {
	return filepath.Join(s.dataDir, "settings.json")
}

func (s *settingsService) Persist() error {
	if err := os.MkdirAll(s.dataDir, 0770); err != nil {
		return fmt.Errorf("failed creating settings directory: %w", err)
	}
	data, err := json.MarshalIndent(&s.Settings, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't marshal settings as json: %w", err)
	}
	err = os.WriteFile(s.SettingsFile(), data, 0660)
	if err != nil {
		return fmt.Errorf("couldn't save settings file: %w", err)
	}
	return nil
}
