package icc

import (
	"encoding/base64"
	"errors"
	"os"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	return store
}

func TestSaveListDelete(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"GRACoL2013.icc", "FOGRA39.icc"} {
		if _, err := store.Save(name, strings.NewReader("profile-bytes")); err != nil {
			t.Fatalf("Save(%s) returned error: %v", name, err)
		}
	}

	profiles, err := store.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	// Sorted by name, case-insensitive.
	if profiles[0].Name != "FOGRA39" || profiles[1].Name != "GRACoL2013" {
		t.Errorf("unexpected order: %+v", profiles)
	}
	if profiles[0].Filename != "FOGRA39.icc" {
		t.Errorf("filename = %s, want FOGRA39.icc", profiles[0].Filename)
	}

	if err := store.Delete("FOGRA39.icc"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	profiles, _ = store.List()
	if len(profiles) != 1 {
		t.Errorf("expected 1 profile after delete, got %d", len(profiles))
	}

	if err := store.Delete("FOGRA39.icc"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound for missing profile, got %v", err)
	}
}

func TestSaveRejectsNonICCFiles(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save("malware.exe", strings.NewReader("x")); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("expected ErrInvalidProfile, got %v", err)
	}
}

func TestSaveSanitizesPath(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save("../../etc/evil.icc", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Errorf("stored name still contains path components: %s", name)
	}
}

func TestDeleteSanitizesPath(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save("GRACoL2013.icc", strings.NewReader("x")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	// None of these name a stored profile; all must leave the store intact.
	for _, name := range []string{"..", "../..", ".", "", "..%2F..", "GRACoL2013"} {
		if err := store.Delete(name); !errors.Is(err, ErrProfileNotFound) {
			t.Errorf("Delete(%q) = %v, want ErrProfileNotFound", name, err)
		}
	}

	if _, err := os.Stat(store.dir); err != nil {
		t.Fatalf("profile directory no longer accessible: %v", err)
	}
	profiles, err := store.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(profiles) != 1 {
		t.Errorf("expected stored profile to survive, got %d profiles", len(profiles))
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("upload interrupted")
}

func TestSaveRemovesPartialFileOnError(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save("FOGRA39.icc", errReader{}); err == nil {
		t.Fatal("expected Save to return the read error")
	}

	profiles, err := store.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("partial file left behind: %+v", profiles)
	}
}

func TestBase64(t *testing.T) {
	store := newTestStore(t)

	content := "icc-profile-content"
	if _, err := store.Save("sRGB.icc", strings.NewReader(content)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	// Extension may be omitted.
	for _, name := range []string{"sRGB", "sRGB.icc"} {
		got, err := store.Base64(name)
		if err != nil {
			t.Fatalf("Base64(%s) returned error: %v", name, err)
		}
		if got != base64.StdEncoding.EncodeToString([]byte(content)) {
			t.Errorf("Base64(%s) returned wrong content", name)
		}
	}

	if _, err := store.Base64("missing"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
	if _, err := store.Base64(""); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound for empty name, got %v", err)
	}
}
