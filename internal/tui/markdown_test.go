package tui

import (
	"strings"
	"testing"
)

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := renderMarkdown("   \n\t", 40); got != "" {
		t.Fatalf("blank input should render empty, got %q", got)
	}
}

func TestRenderMarkdownWraps(t *testing.T) {
	t.Setenv("ROLO_TUI_MD_STYLE", "dark")
	out := renderMarkdown("hello **world**", 40)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Fatalf("rendered output dropped content: %q", out)
	}
}

func TestMarkdownStyleSelection(t *testing.T) {
	t.Setenv("ROLO_TUI_MD_STYLE", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("env override: style = %q, want light", got)
	}

	t.Setenv("ROLO_TUI_MD_STYLE", "")
	t.Setenv("COLORFGBG", "15;0")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("COLORFGBG dark bg: style = %q, want dark", got)
	}

	t.Setenv("COLORFGBG", "0;15")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("COLORFGBG light bg: style = %q, want light", got)
	}

	t.Setenv("COLORFGBG", "")
	orig := hasDarkBackground
	defer func() { hasDarkBackground = orig }()
	hasDarkBackground = func() bool { return true }
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("terminal dark bg: style = %q, want dark", got)
	}
}
