package render

import (
	"strings"
	"testing"
)

func TestDocument_MetadataBeforeBody(t *testing.T) {
	r := New(80)
	content := "---\nname: code-review\nversion: 1.0.0\n---\n# Usage\n\nRun it."

	out := r.Document(content)

	metaIdx := strings.Index(out, "code-review")
	bodyIdx := strings.Index(out, "Usage")
	if metaIdx == -1 {
		t.Fatal("expected metadata value in output")
	}
	if bodyIdx == -1 {
		t.Fatal("expected body heading in output")
	}
	if metaIdx > bodyIdx {
		t.Error("metadata block must precede the body")
	}
}

func TestDocument_NoMetadata(t *testing.T) {
	r := New(80)

	out := r.Document("plain readme without front matter")

	if strings.Contains(out, "METADATA") {
		t.Error("no metadata block expected")
	}
	if !strings.Contains(out, "plain readme") {
		t.Errorf("body missing from output: %q", out)
	}
}

func TestMetadataTable_StableKeyOrder(t *testing.T) {
	meta := map[string]string{"version": "1.0", "description": "x", "name": "y"}

	first := metadataTable(meta)
	for i := 0; i < 10; i++ {
		if got := metadataTable(meta); got != first {
			t.Fatal("metadata table order must be deterministic")
		}
	}

	if strings.Index(first, "description") > strings.Index(first, "version") {
		t.Error("keys must be sorted")
	}
}

func TestMarkdown_FallsBackWhenUninitialized(t *testing.T) {
	r := &Renderer{width: 80}

	if got := r.Markdown("# hi"); got != "# hi" {
		t.Errorf("expected plain text fallback, got %q", got)
	}
}
