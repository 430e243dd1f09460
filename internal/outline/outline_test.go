package outline

import (
	"testing"
)

func TestExtract(t *testing.T) {
	content := `# Document Title

Intro paragraph.

## Top Stories

Some text.

### Model Releases

More text.

## Resources
`
	items := Extract(content)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	want := []Item{
		{ID: "top-stories", Text: "Top Stories", Level: 2},
		{ID: "model-releases", Text: "Model Releases", Level: 3},
		{ID: "resources", Text: "Resources", Level: 2},
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("item %d: expected %+v, got %+v", i, w, items[i])
		}
	}
}

func TestExtractAnchorDeterminism(t *testing.T) {
	items := Extract("## Hello, World!")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	want := Item{ID: "hello-world", Text: "Hello, World!", Level: 2}
	if items[0] != want {
		t.Errorf("expected %+v, got %+v", want, items[0])
	}
}

func TestExtractIgnoresOtherLevels(t *testing.T) {
	content := `# Title

#### Too Deep

##NoSpace

## Real Heading
`
	items := Extract(content)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if items[0].Text != "Real Heading" {
		t.Errorf("expected 'Real Heading', got %q", items[0].Text)
	}
}

func TestExtractUnicodeSpaceHeading(t *testing.T) {
	items := Extract("## Top\u00a0Stories")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	want := Item{ID: "top-stories", Text: "Top\u00a0Stories", Level: 2}
	if items[0] != want {
		t.Errorf("expected %+v, got %+v", want, items[0])
	}
}

func TestExtractEmpty(t *testing.T) {
	if items := Extract(""); len(items) != 0 {
		t.Errorf("expected empty outline, got %d items", len(items))
	}
	if items := Extract("No headings here, just prose."); len(items) != 0 {
		t.Errorf("expected empty outline, got %d items", len(items))
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"Top Stories", "top-stories"},
		{"GPT-5: What's New?", "gpt-5-whats-new"},
		{"  Spaced   Out  ", "-spaced-out-"},
		{"already-hyphenated", "already-hyphenated"},
		{"Ups & Downs (2024)", "ups-downs-2024"},
		{"Top\u00a0Stories", "top-stories"},
		{"Wide\u3000Gap", "wide-gap"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
