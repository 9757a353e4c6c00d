package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateTemp(t *testing.T) {
	f, err := CreateTemp("card_*.pdf")
	if err != nil {
		t.Fatalf("CreateTemp returned error: %v", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if filepath.Dir(f.Name()) != filepath.Clean(GetTempDir()) {
		t.Errorf("temp file %s not under %s", f.Name(), GetTempDir())
	}

	base := filepath.Base(f.Name())
	if !strings.HasPrefix(base, "card_") || !strings.HasSuffix(base, ".pdf") {
		t.Errorf("temp file name %s does not match pattern card_*.pdf", base)
	}
}

func TestIsAllowedImageFile(t *testing.T) {
	tests := []struct {
		fileName string
		want     bool
	}{
		{"front.png", true},
		{"front.JPG", true},
		{"back.jpeg", true},
		{"scan.tiff", true},
		{"scan.tif", true},
		{"anim.gif", true},
		{"art.webp", true},
		{"profile.icc", false},
		{"document.pdf", false},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAllowedImageFile(tt.fileName); got != tt.want {
			t.Errorf("IsAllowedImageFile(%q) = %v, want %v", tt.fileName, got, tt.want)
		}
	}
}

func TestImageMIMESubtype(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"front.jpg", "jpeg"},
		{"front.JPG", "jpeg"},
		{"front.jpeg", "jpeg"},
		{"front.png", "png"},
		{"art.webp", "webp"},
	}

	for _, tt := range tests {
		if got := ImageMIMESubtype(tt.fileName); got != tt.want {
			t.Errorf("ImageMIMESubtype(%q) = %q, want %q", tt.fileName, got, tt.want)
		}
	}
}
