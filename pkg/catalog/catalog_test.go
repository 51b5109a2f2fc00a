package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cat, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.All()) == 0 {
		t.Fatal("built-in catalog is empty")
	}
	c, ok := cat.Find("Lettuce")
	if !ok {
		t.Fatal("Lettuce missing from defaults")
	}
	if c.GrowDays != 30 {
		t.Errorf("Lettuce GrowDays = %d, want 30", c.GrowDays)
	}
}

func TestFindIsCaseInsensitive(t *testing.T) {
	cat, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, name := range []string{"lettuce", "LETTUCE", " Lettuce "} {
		if _, ok := cat.Find(name); !ok {
			t.Errorf("Find(%q) should resolve", name)
		}
	}
	if _, ok := cat.Find("moon cheese"); ok {
		t.Error("unknown crop should not resolve")
	}
}

func TestCSVOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crops.csv")
	csv := "crop_name,emoji,days_to_harvest,hex\n" +
		"Lettuce,🥬,45,#123456\n" +
		"Dragonfruit,🐉,90,#FF00FF\n" +
		"Broken,,0,\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Overlay replaces by name.
	c, ok := cat.Find("Lettuce")
	if !ok || c.GrowDays != 45 || c.Color != "#123456" {
		t.Errorf("overlaid Lettuce = %+v", c)
	}
	// And adds new entries.
	if _, ok := cat.Find("Dragonfruit"); !ok {
		t.Error("overlay should add new crops")
	}
	// Rows with no grow duration are skipped.
	if _, ok := cat.Find("Broken"); ok {
		t.Error("invalid overlay row should be skipped")
	}
}

func TestLoadMissingOverlayFails(t *testing.T) {
	if _, err := Load("/no/such/file.csv", ""); err == nil {
		t.Error("a typo'd overlay path must be a hard error")
	}
}
