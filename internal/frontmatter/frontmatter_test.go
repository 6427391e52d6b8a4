package frontmatter

import "testing"

func TestParse_MetadataAndBody(t *testing.T) {
	content := `---
name: code-review
description: "Reviews pull requests"
version: '1.2.0'
---

# Code Review

Run it against a diff.`

	meta, body := Parse(content)

	if meta["name"] != "code-review" {
		t.Errorf("expected name 'code-review', got %q", meta["name"])
	}
	if meta["description"] != "Reviews pull requests" {
		t.Errorf("expected quotes stripped, got %q", meta["description"])
	}
	if meta["version"] != "1.2.0" {
		t.Errorf("expected single quotes stripped, got %q", meta["version"])
	}
	if body != "# Code Review\n\nRun it against a diff." {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestParse_NoFrontMatter(t *testing.T) {
	content := "# Just a README\n\nNo metadata here."

	meta, body := Parse(content)

	if len(meta) != 0 {
		t.Errorf("expected no metadata, got %v", meta)
	}
	if body != content {
		t.Errorf("expected full content as body, got %q", body)
	}
}

func TestParse_MissingClosingDelimiter(t *testing.T) {
	content := "---\nname: broken\ndescription: never closed"

	meta, body := Parse(content)

	if len(meta) != 0 {
		t.Errorf("malformed header must yield no metadata, got %v", meta)
	}
	if body != content {
		t.Errorf("malformed header must keep full content as body, got %q", body)
	}
}

func TestParse_IgnoresMalformedHeaderLines(t *testing.T) {
	content := "---\nname: ok\nthis line has no separator\n: leading colon\n---\nbody"

	meta, body := Parse(content)

	if len(meta) != 1 || meta["name"] != "ok" {
		t.Errorf("expected only the valid pair, got %v", meta)
	}
	if body != "body" {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestParse_ColonInValue(t *testing.T) {
	content := "---\nhomepage: https://example.com/skill\n---\nbody"

	meta, _ := Parse(content)

	if meta["homepage"] != "https://example.com/skill" {
		t.Errorf("value must keep everything after the first colon, got %q", meta["homepage"])
	}
}

func TestParse_EmptyContent(t *testing.T) {
	meta, body := Parse("")

	if len(meta) != 0 || body != "" {
		t.Errorf("expected empty result, got %v / %q", meta, body)
	}
}
