package core

import (
	"fmt"
)

// App bundles core application services into a single convenience type.
type App interface {
	Settings() SettingsService
	Banners() BannerService
	Theme() ThemeService
}

// app bundles services together.
type app struct {
	SettingsService
	BannerService
	ThemeService
}

var _ App = &app{}

// NewApp constructs an App or fails with an error. This process will fail
// if any of the application services fail to initialize correctly. The
// invalidate function is used by services to request a new frame.
func NewApp(stateDir string, invalidate func()) (application App, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("failed constructing app: %w", err)
		}
	}()
	a := &app{}
	// Settings must be initialized first, as other services rely on derived
	// values from it
	if a.SettingsService, err = newSettingsService(stateDir); err != nil {
		return nil, err
	}
	if a.ThemeService, err = newThemeService(a.SettingsService); err != nil {
		return nil, err
	}
	a.BannerService = NewBannerService(invalidate)

	return a, nil
}

// Settings returns the app's settings service implementation.
func (a *app) Settings() SettingsService {
	return a.SettingsService
}

// Banners returns the app's banner service implementation.
func (a *app) Banners() BannerService {
	return a.BannerService
}

// Theme returns the app's theme service implementation.
func (a *app) Theme() ThemeService {
	return a.ThemeService
}
