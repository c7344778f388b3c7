package resources

import "testing"

func TestIconsAreEmbedded(t *testing.T) {
	for _, name := range []string{IconWork, IconBreak, IconPaused} {
		resource, err := Icon(name)
		if err != nil {
			t.Fatalf("icon %s: %v", name, err)
		}
		if len(resource.Content()) == 0 {
			t.Fatalf("icon %s is empty", name)
		}
		again, err := Icon(name)
		if err != nil || again != resource {
			t.Fatalf("icon %s should be cached", name)
		}
	}
}

func TestIconMissing(t *testing.T) {
	if _, err := Icon("missing.svg"); err == nil {
		t.Fatalf("expected error for missing icon")
	}
}
