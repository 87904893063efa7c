package prefs

import (
	"testing"

	"github.com/ziadkadry99/inkwell/internal/db"
	"github.com/ziadkadry99/inkwell/internal/page"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestGetSetDelete(t *testing.T) {
	s := setupStore(t)
	ctx := t.Context()

	if _, ok, err := s.Get(ctx, "theme"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v", ok, err)
	}

	if err := s.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "theme", "dusk"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := s.Get(ctx, "theme")
	if err != nil || !ok || v != "dusk" {
		t.Errorf("Get = %q, %v, %v; want dusk, true, nil", v, ok, err)
	}

	if err := s.Delete(ctx, "theme"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "theme"); ok {
		t.Error("key still present after Delete")
	}
	if err := s.Delete(ctx, "theme"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestThemePersistence(t *testing.T) {
	s := setupStore(t)
	ctx := t.Context()
	root := page.NewClassList()

	dark, err := page.ResolveTheme(ctx, s, false)
	if err != nil || dark {
		t.Fatalf("fresh store resolves dark=%v err=%v", dark, err)
	}
	page.ApplyTheme(root, dark)

	if dark, err = page.ToggleTheme(ctx, s, root); err != nil || !dark {
		t.Fatalf("toggle to dark = %v, %v", dark, err)
	}
	if v, ok, _ := s.Get(ctx, page.ThemeKey); !ok || v != page.ThemeDark {
		t.Errorf("stored theme = %q, %v", v, ok)
	}

	// A new session reads the persisted choice.
	if dark, _ = page.ResolveTheme(ctx, s, false); !dark {
		t.Error("persisted dark theme not resolved")
	}

	if dark, err = page.ToggleTheme(ctx, s, root); err != nil || dark {
		t.Fatalf("toggle to light = %v, %v", dark, err)
	}
	if _, ok, _ := s.Get(ctx, page.ThemeKey); ok {
		t.Error("theme key should be removed when leaving dark mode")
	}
	if dark, _ = page.ResolveTheme(ctx, s, true); !dark {
		t.Error("with nothing stored the system preference applies")
	}
}
