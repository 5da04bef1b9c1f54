package core

import (
	navTheme "git.sr.ht/~whereswaldon/bottomnav/widget/theme"
)

// ThemeService provides methods to fetch and manipulate the current
// application theme.
type ThemeService interface {
	Current() *navTheme.Theme
	SetDarkMode(bool)
}

// themeService implements ThemeService.
type themeService struct {
	*navTheme.Theme
	settings SettingsService
}

var _ ThemeService = &themeService{}

func newThemeService(settings SettingsService) (ThemeService, error) {
	t := &themeService{
		Theme:    navTheme.New(),
		settings: settings,
	}
	t.Theme.ToggleDark(settings.DarkMode())
	return t, nil
}

// Current returns the current theme.
func (t *themeService) Current() *navTheme.Theme {
	return t.Theme
}

// SetDarkMode switches the theme palette and records the choice in the
// settings.
func (t *themeService) SetDarkMode(dark bool) {
	t.settings.SetDarkMode(dark)
	t.Theme.ToggleDark(dark)
}
