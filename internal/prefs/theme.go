package prefs

import (
	"errors"
	"fmt"

	"github.com/ecowatch/envboard/internal/store"
)

// ThemeKey is the store key holding the theme preference string.
const ThemeKey = "theme"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Themes persists the dashboard theme preference.
type Themes struct {
	local      *store.Local
	defaultVal string
}

func NewThemes(local *store.Local, defaultTheme string) *Themes {
	if defaultTheme == "" {
		defaultTheme = ThemeLight
	}
	return &Themes{local: local, defaultVal: defaultTheme}
}

// Get returns the stored theme, lazily initializing the key to the default.
func (t *Themes) Get() (string, error) {
	var theme string
	err := t.local.Get(ThemeKey, &theme)
	if errors.Is(err, store.ErrNotFound) {
		if err := t.local.Put(ThemeKey, t.defaultVal); err != nil {
			return "", err
		}
		return t.defaultVal, nil
	}
	if err != nil {
		return "", err
	}
	return theme, nil
}

// Set stores the theme preference. Only "dark" and "light" are valid.
func (t *Themes) Set(theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return fmt.Errorf("invalid theme %q (allowed: dark, light)", theme)
	}
	return t.local.Put(ThemeKey, theme)
}
