package markdown_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-devlog/internal/markdown"
)

func TestSanitizeHTMLKeepsAllowedElements(t *testing.T) {
	cases := []string{
		"<p>text</p>",
		"<h2>heading</h2>",
		"<blockquote>quote</blockquote>",
		"<ul><li>item</li></ul>",
		"<table><thead><tr><th>h</th></tr></thead><tbody><tr><td>d</td></tr></tbody></table>",
		"<pre><code class=\"language-go\">x</code></pre>",
	}
	for _, input := range cases {
		if got := markdown.SanitizeHTML(input); got != input {
			t.Fatalf("SanitizeHTML(%q) = %q, want unchanged", input, got)
		}
	}
}

func TestSanitizeHTMLStripsDisallowedMarkup(t *testing.T) {
	cases := map[string]string{
		"<script>alert(1)</script>":                "",
		"<iframe src=\"https://x.test\"></iframe>": "",
		"<p onclick=\"alert(1)\">text</p>":         "<p>text</p>",
		"<a href=\"javascript:alert(1)\">link</a>": "link",
		"<img src=\"x\" onerror=\"alert(1)\">":     "<img src=\"x\">",
		"<style>body{display:none}</style>":        "",
	}
	for input, want := range cases {
		if got := markdown.SanitizeHTML(input); got != want {
			t.Fatalf("SanitizeHTML(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSanitizeHTMLDropsEscapedHandlerTags(t *testing.T) {
	cases := map[string]string{
		"<p>&lt;svg/onload=alert(1)&gt;</p>":            "<p></p>",
		"<p>&lt;img src=x onerror=steal()&gt; tail</p>": "<p> tail</p>",
		"<p>&lt;a href=javascript:x()&gt;</p>":          "<p></p>",
		"<p>a &lt; b and c &gt; d</p>":                  "<p>a &lt; b and c &gt; d</p>",
	}
	for input, want := range cases {
		if got := markdown.SanitizeHTML(input); got != want {
			t.Fatalf("SanitizeHTML(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSanitizeHTMLKeepsSafeLinks(t *testing.T) {
	input := "<a href=\"https://example.com\" title=\"t\" rel=\"nofollow\">link</a>"
	got := markdown.SanitizeHTML(input)
	if !strings.Contains(got, "href=\"https://example.com\"") || !strings.Contains(got, ">link</a>") {
		t.Fatalf("SanitizeHTML(%q) = %q, want link preserved", input, got)
	}
}

func TestSanitizeTextStripsEverything(t *testing.T) {
	got := markdown.SanitizeText("<p>keep <strong>the</strong> words</p><script>drop()</script>")
	if strings.Contains(got, "<") {
		t.Fatalf("SanitizeText leaked markup: %q", got)
	}
	if !strings.Contains(got, "keep") || !strings.Contains(got, "words") {
		t.Fatalf("SanitizeText dropped text content: %q", got)
	}
}
