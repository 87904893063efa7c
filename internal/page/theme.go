package page

import (
	"context"
	"fmt"
)

const (
	// ThemeKey is the preference key holding the theme.
	ThemeKey = "theme"
	// ThemeDark is the only value ever stored under ThemeKey.
	ThemeDark = "dark"

	darkClass = "dark"
)

// PreferenceStore persists string preferences.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ResolveTheme reports whether the dark theme applies: either it was chosen
// explicitly, or nothing was stored and the system prefers dark.
func ResolveTheme(ctx context.Context, store PreferenceStore, prefersDark bool) (bool, error) {
	v, ok, err := store.Get(ctx, ThemeKey)
	if err != nil {
		return false, fmt.Errorf("reading theme preference: %w", err)
	}
	return v == ThemeDark || (!ok && prefersDark), nil
}

// ApplyTheme sets or clears the dark class on the document root.
func ApplyTheme(root *ClassList, dark bool) {
	if dark {
		root.Add(darkClass)
	} else {
		root.Remove(darkClass)
	}
}

// ToggleTheme flips the theme on root and persists the choice. Leaving dark
// mode removes the stored key rather than storing a light value. It reports
// whether the dark theme is now active.
func ToggleTheme(ctx context.Context, store PreferenceStore, root *ClassList) (bool, error) {
	if root.Contains(darkClass) {
		if err := store.Delete(ctx, ThemeKey); err != nil {
			return true, fmt.Errorf("clearing theme preference: %w", err)
		}
	} else {
		if err := store.Set(ctx, ThemeKey, ThemeDark); err != nil {
			return false, fmt.Errorf("saving theme preference: %w", err)
		}
	}
	return root.Toggle(darkClass), nil
}
