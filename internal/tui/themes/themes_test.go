package themes

import "testing"

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	for _, p := range []PresetName{PresetDark, PresetLight, PresetNord} {
		if r.Get(p) == nil {
			t.Errorf("preset %q not found in registry", p)
		}
	}
	if r.ActiveName() != PresetDark {
		t.Errorf("expected dark to be active, got %q", r.ActiveName())
	}
}

func TestRegistry_SetActive(t *testing.T) {
	r := NewRegistry()

	if err := r.SetActive(PresetNord); err != nil {
		t.Fatalf("SetActive(nord) failed: %v", err)
	}
	if r.Active().Name != "nord" {
		t.Errorf("expected nord theme, got %q", r.Active().Name)
	}

	if err := r.SetActive("solarized"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if r.ActiveName() != PresetNord {
		t.Error("failed SetActive should keep the previous theme")
	}

	if err := r.SetActive(PresetAuto); err != nil {
		t.Fatalf("SetActive(auto) failed: %v", err)
	}
	if name := r.ActiveName(); name != PresetDark && name != PresetLight {
		t.Errorf("auto resolved to %q", name)
	}
}

func TestRegistry_ListPresets(t *testing.T) {
	got := NewRegistry().ListPresets()
	want := []PresetName{PresetDark, PresetLight, PresetNord}
	if len(got) != len(want) {
		t.Fatalf("expected %d presets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("preset[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTheme_WithPalette(t *testing.T) {
	dark := DarkTheme()
	nord := dark.WithPalette(NordPalette())

	if nord.Palette.Primary != NordPalette().Primary {
		t.Error("palette not applied")
	}
	if dark.Palette.Primary != DefaultDarkPalette().Primary {
		t.Error("WithPalette modified the original theme")
	}
}
