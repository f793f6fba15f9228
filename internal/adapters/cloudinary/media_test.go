package cloudinary

import (
	"strings"
	"testing"
)

func TestPublicID(t *testing.T) {
	t.Run("keeps filename as prefix and strips extension", func(t *testing.T) {
		id := publicID("hoodie-front.png")
		if !strings.HasPrefix(id, "hoodie-front-") {
			t.Fatalf("expected prefix 'hoodie-front-', got %q", id)
		}
		if strings.Contains(id, ".png") {
			t.Fatalf("expected extension to be stripped, got %q", id)
		}
	})

	t.Run("uses only the base of a path", func(t *testing.T) {
		id := publicID("uploads/2024/tee.jpg")
		if !strings.HasPrefix(id, "tee-") {
			t.Fatalf("expected prefix 'tee-', got %q", id)
		}
	})

	t.Run("falls back for empty filename", func(t *testing.T) {
		id := publicID("")
		if !strings.HasPrefix(id, "image-") {
			t.Fatalf("expected fallback prefix 'image-', got %q", id)
		}
	})

	t.Run("generated names are unique", func(t *testing.T) {
		if publicID("same.png") == publicID("same.png") {
			t.Fatal("expected distinct IDs for repeated uploads")
		}
	})
}
