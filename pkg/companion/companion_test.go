package companion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	perrors "github.com/matzehuels/polyglot/pkg/errors"
)

const rendered = `<?xml version="1.0" encoding="UTF-8"?>
<project></project>
`

func TestPathHelpers(t *testing.T) {
	original := filepath.Join("proj", "pom.yaml")
	companion := filepath.Join("proj", ".polyglot.pom.yaml")

	if got := Path(original); got != companion {
		t.Errorf("Path() = %q, want %q", got, companion)
	}
	if !IsCompanion(companion) {
		t.Error("IsCompanion(companion) = false")
	}
	if IsCompanion(original) {
		t.Error("IsCompanion(original) = true")
	}

	got, ok := Original(companion)
	if !ok || got != original {
		t.Errorf("Original() = %q, %v; want %q, true", got, ok, original)
	}
	if _, ok := Original(original); ok {
		t.Error("Original() of a non-companion should fail")
	}
	if _, ok := Original(filepath.Join("proj", Prefix)); ok {
		t.Error("Original() of a bare prefix should fail")
	}
}

func TestWithBanner(t *testing.T) {
	got := string(WithBanner([]byte(rendered)))
	if !strings.HasPrefix(got, `<?xml version="1.0" encoding="UTF-8"?>`+"\n<!--") {
		t.Errorf("banner not placed after declaration:\n%s", got)
	}
	if !strings.Contains(got, "DO NOT MODIFY - GENERATED CODE") {
		t.Error("banner text missing")
	}
	if strings.Count(got, "DO NOT MODIFY") != 1 {
		t.Error("banner should be inserted once")
	}
}

func TestEnsure(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "pom.yaml")
	m := NewManager(nil)

	path, err := m.Ensure(original)
	if err != nil {
		t.Fatalf("Ensure() error: %v", err)
	}
	if path != Path(original) {
		t.Errorf("Ensure() = %q, want %q", path, Path(original))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("placeholder missing: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("placeholder size = %d, want 0", info.Size())
	}

	again, err := m.Ensure(original)
	if err != nil || again != path {
		t.Errorf("second Ensure() = %q, %v", again, err)
	}
	if got := m.Created(); len(got) != 1 {
		t.Errorf("Created() = %v, want one entry", got)
	}
}

func TestEnsureKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "pom.yaml")
	if err := os.WriteFile(Path(original), []byte("previous"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(nil)
	if _, err := m.Ensure(original); err != nil {
		t.Fatalf("Ensure() error: %v", err)
	}
	if len(m.Created()) != 0 {
		t.Error("pre-existing companion should not be registered")
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	data, err := os.ReadFile(Path(original))
	if err != nil || string(data) != "previous" {
		t.Errorf("pre-existing companion changed: %q, %v", data, err)
	}
}

func TestEnsureFailure(t *testing.T) {
	original := filepath.Join(t.TempDir(), "missing", "pom.yaml")
	m := NewManager(nil)

	_, err := m.Ensure(original)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !perrors.Is(err, perrors.ErrCodeTranslation) {
		t.Errorf("error code = %q, want %q", perrors.GetCode(err), perrors.ErrCodeTranslation)
	}
}

func TestClose(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(nil)

	a, _ := m.Ensure(filepath.Join(dir, "pom.yaml"))
	b, _ := m.Ensure(filepath.Join(dir, "pom.toml"))

	if err := m.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	for _, p := range []string{a, b} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s should be removed", p)
		}
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if len(m.Created()) != 0 {
		t.Error("Created() should be empty after Close")
	}
}

func TestCloseToleratesRemovedFiles(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(nil)
	path, _ := m.Ensure(filepath.Join(dir, "pom.yaml"))
	_ = os.Remove(path)

	if err := m.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestWriteTranslation(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(nil)
	path, _ := m.Ensure(filepath.Join(dir, "pom.yaml"))

	if err := m.WriteTranslation(path, []byte("a much longer first rendering")); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteTranslation(path, []byte("short")); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "short" {
		t.Errorf("companion = %q, want full overwrite", data)
	}
}

func TestWriteDump(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "pom.xml")
	m := NewManager(nil)

	written, err := m.WriteDump(target, []byte(rendered), false)
	if err != nil || !written {
		t.Fatalf("first WriteDump() = %v, %v", written, err)
	}
	data, _ := os.ReadFile(target)
	if string(data) != string(WithBanner([]byte(rendered))) {
		t.Errorf("dump content = %q", data)
	}

	written, err = m.WriteDump(target, []byte(rendered), false)
	if err != nil || written {
		t.Errorf("identical WriteDump() = %v, %v; want skip", written, err)
	}

	written, err = m.WriteDump(target, []byte(strings.Replace(rendered, "<project>", "<project><name>x</name>", 1)), false)
	if err != nil || !written {
		t.Errorf("changed WriteDump() = %v, %v; want write", written, err)
	}
}

func TestWriteDumpReadOnly(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "pom.xml")
	m := NewManager(nil)

	if _, err := m.WriteDump(target, []byte(rendered), true); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0222 != 0 {
		t.Errorf("dump mode = %v, want read-only", info.Mode().Perm())
	}

	// A read-only dump is replaced when the translation changes.
	changed := strings.Replace(rendered, "<project>", "<project><name>x</name>", 1)
	written, err := m.WriteDump(target, []byte(changed), false)
	if err != nil || !written {
		t.Fatalf("WriteDump() over read-only = %v, %v", written, err)
	}
	info, _ = os.Stat(target)
	if info.Mode().Perm()&0200 == 0 {
		t.Errorf("dump mode = %v, want writable", info.Mode().Perm())
	}
}
