package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRemoveCommand_DeletesProjectInstallFirst(t *testing.T) {
	projectRoot := t.TempDir()
	globalRoot := t.TempDir()

	for _, root := range []string{projectRoot, globalRoot} {
		dir := filepath.Join(root, "skills", "code-review")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create skill dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("# x"), 0644); err != nil {
			t.Fatalf("failed to write SKILL.md: %v", err)
		}
	}

	var out bytes.Buffer
	if err := runRemove(&out, []string{projectRoot, globalRoot}, "code-review"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(projectRoot, "skills", "code-review")); !os.IsNotExist(err) {
		t.Error("expected project install to be removed")
	}
	if _, err := os.Stat(filepath.Join(globalRoot, "skills", "code-review")); err != nil {
		t.Error("expected global install to be untouched")
	}
	if !strings.Contains(out.String(), "✓ Removed 'code-review'") {
		t.Errorf("expected removal message, got:\n%s", out.String())
	}
}

func TestRemoveCommand_NotFoundIsNotAnError(t *testing.T) {
	var out bytes.Buffer
	if err := runRemove(&out, []string{t.TempDir()}, "ghost"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Skill 'ghost' not found locally.") {
		t.Errorf("expected not-found message, got:\n%s", out.String())
	}
}

func TestRemoveCommand_RejectsPathishNames(t *testing.T) {
	for _, name := range []string{"../evil", "a/b", `a\b`, ".", ".."} {
		if err := runRemove(&bytes.Buffer{}, []string{t.TempDir()}, name); err == nil {
			t.Errorf("expected error for name %q, got nil", name)
		}
	}
}
