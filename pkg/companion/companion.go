// Package companion manages the files the read pipeline writes next to a
// non-XML descriptor.
//
// A companion is a hidden sibling named ".polyglot.<original>" that holds the
// translated pom.xml content. The build engine only ever sees the companion;
// the original descriptor is never modified. Placeholders created by a
// [Manager] are removed again by [Manager.Close].
//
// A dump is an optional, user-visible copy of the translation (usually
// "pom.xml") prefixed with a "do not modify" banner.
package companion

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/polyglot/pkg/errors"
)

// Prefix marks companion files.
const Prefix = ".polyglot."

// Banner replaces the end of the XML declaration in dump files.
const Banner = "?>\n<!--\n\n\nDO NOT MODIFY - GENERATED CODE\n\n\n-->"

// Path returns the companion path for an original descriptor.
func Path(original string) string {
	return filepath.Join(filepath.Dir(original), Prefix+filepath.Base(original))
}

// IsCompanion reports whether path names a companion file.
func IsCompanion(path string) bool {
	return strings.HasPrefix(filepath.Base(path), Prefix)
}

// Original returns the original descriptor for a companion path.
func Original(path string) (string, bool) {
	name, ok := strings.CutPrefix(filepath.Base(path), Prefix)
	if !ok || name == "" {
		return "", false
	}
	return filepath.Join(filepath.Dir(path), name), true
}

// WithBanner inserts [Banner] after the first XML declaration in rendered.
func WithBanner(rendered []byte) []byte {
	return []byte(strings.Replace(string(rendered), "?>", Banner, 1))
}

// Manager creates companions and tracks the placeholders it created.
// It is safe for concurrent use; the file contents themselves are not locked.
type Manager struct {
	mu      sync.Mutex
	created []string
	logger  *log.Logger
}

// NewManager returns a Manager. A nil logger uses log.Default().
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{logger: logger}
}

// Ensure returns the companion path for original, creating an empty
// placeholder if none exists yet. Placeholders are registered once and
// removed by Close.
func (m *Manager) Ensure(original string) (string, error) {
	path := Path(original)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return path, nil
		}
		return "", perrors.Wrap(perrors.ErrCodeTranslation, err, "create companion %s", path)
	}
	if err := f.Close(); err != nil {
		return "", perrors.Wrap(perrors.ErrCodeTranslation, err, "create companion %s", path)
	}

	if !slices.Contains(m.created, path) {
		m.created = append(m.created, path)
	}
	m.logger.Debug("companion created", "path", path)
	return path, nil
}

// WriteTranslation overwrites the companion with rendered.
func (m *Manager) WriteTranslation(path string, rendered []byte) error {
	if err := os.WriteFile(path, rendered, 0644); err != nil {
		return perrors.Wrap(perrors.ErrCodeTranslation, err, "write companion %s", path)
	}
	return nil
}

// WriteDump writes rendered, with the banner applied, to target. It returns
// false without touching the file when the existing content is identical.
// A read-only dump is made writable before it is replaced.
func (m *Manager) WriteDump(target string, rendered []byte, readOnly bool) (bool, error) {
	content := WithBanner(rendered)

	existing, err := os.ReadFile(target)
	switch {
	case err == nil && bytes.Equal(existing, content):
		m.logger.Debug("dump unchanged", "path", target)
		return false, nil
	case err == nil:
		if err := os.Chmod(target, 0644); err != nil {
			return false, perrors.Wrap(perrors.ErrCodeTranslation, err, "make dump writable %s", target)
		}
	case !os.IsNotExist(err):
		return false, perrors.Wrap(perrors.ErrCodeTranslation, err, "read dump %s", target)
	}

	if err := os.WriteFile(target, content, 0644); err != nil {
		return false, perrors.Wrap(perrors.ErrCodeTranslation, err, "write dump %s", target)
	}
	if readOnly {
		if err := os.Chmod(target, 0444); err != nil {
			return true, perrors.Wrap(perrors.ErrCodeTranslation, err, "make dump read-only %s", target)
		}
	}
	m.logger.Debug("dump written", "path", target, "readonly", readOnly)
	return true, nil
}

// Created lists the placeholders registered for removal.
func (m *Manager) Created() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.created)
}

// Close removes every placeholder this manager created. It is safe to call
// more than once; the first removal error is returned.
func (m *Manager) Close() error {
	m.mu.Lock()
	created := m.created
	m.created = nil
	m.mu.Unlock()

	var first error
	for _, path := range created {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if first == nil {
				first = err
			}
			continue
		}
		m.logger.Debug("companion removed", "path", path)
	}
	return first
}
