package icc

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SeakMengs/CardProof/internal/util"
	"go.uber.org/zap"
)

var (
	ErrProfileNotFound = errors.New("icc profile not found")
	ErrInvalidProfile  = errors.New("file must have .icc extension")
)

// Profile describes one stored ICC color profile.
type Profile struct {
	Filename string `json:"filename"`
	Name     string `json:"name"`
}

// Store keeps uploaded ICC color profiles in a flat directory. Profiles are
// embedded base64 into generated markup as the PDF output intent.
type Store struct {
	dir    string
	logger *zap.SugaredLogger
}

func NewStore(dir string, logger *zap.SugaredLogger) (*Store, error) {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create icc profile directory: %w", err)
	}

	return &Store{dir: dir, logger: logger}, nil
}

// List returns the stored profiles sorted by display name.
func (s *Store) List() ([]Profile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read icc profile directory: %w", err)
	}

	profiles := []Profile{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".icc") {
			continue
		}
		profiles = append(profiles, Profile{
			Filename: entry.Name(),
			Name:     strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
		})
	}

	sort.Slice(profiles, func(i, j int) bool {
		return strings.ToLower(profiles[i].Name) < strings.ToLower(profiles[j].Name)
	})

	return profiles, nil
}

// Save stores an uploaded profile under its sanitized filename and returns
// that filename.
func (s *Store) Save(fileName string, r io.Reader) (string, error) {
	fileName = sanitizeFileName(fileName)
	if !strings.HasSuffix(strings.ToLower(fileName), ".icc") {
		return "", ErrInvalidProfile
	}

	path := filepath.Join(s.dir, fileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create icc profile file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write icc profile: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write icc profile: %w", err)
	}

	s.logger.Infof("Saved ICC profile %s", fileName)
	return fileName, nil
}

// Delete removes a stored profile. Names that do not sanitize to an .icc
// filename can never match a stored profile, so they report not found
// without touching the filesystem.
func (s *Store) Delete(fileName string) error {
	fileName = sanitizeFileName(fileName)
	if !strings.HasSuffix(strings.ToLower(fileName), ".icc") {
		return ErrProfileNotFound
	}

	path := filepath.Join(s.dir, fileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ErrProfileNotFound
	}

	return os.Remove(path)
}

// Base64 reads a stored profile and returns it base64-encoded for embedding
// as a data URI. The .icc extension may be omitted.
func (s *Store) Base64(name string) (string, error) {
	if name == "" {
		return "", ErrProfileNotFound
	}

	fileName := sanitizeFileName(name)
	if !strings.HasSuffix(strings.ToLower(fileName), ".icc") {
		fileName += ".icc"
	}

	data, err := os.ReadFile(filepath.Join(s.dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrProfileNotFound
		}
		return "", fmt.Errorf("failed to read icc profile: %w", err)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// sanitizeFileName strips any path components so stored names can never
// escape the profile directory.
func sanitizeFileName(fileName string) string {
	fileName = filepath.Base(filepath.Clean(fileName))
	return strings.ReplaceAll(fileName, "..", "")
}
