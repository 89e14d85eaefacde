package service

import (
	"strings"
	"testing"
)

func TestFormatHTML_InlineMarkup(t *testing.T) {
	got := FormatHTML("**Bold** and *italic* and `code`")
	want := "<p><strong>Bold</strong> and <em>italic</em> and <code>code</code></p>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatHTML_ParagraphsAndBreaks(t *testing.T) {
	got := FormatHTML("first\n\nsecond\nthird")
	want := "<p>first</p><p>second<br>third</p>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// El orden de reglas es el del cliente original: el code inline corre antes
// que los bloques cercados, así que un fence queda partido en `` + <code>.
// Comportamiento defectuoso pero conservado por compatibilidad.
func TestFormatHTML_FencedBlockReferenceOrder(t *testing.T) {
	got := FormatHTML("A\n\n```go\nx := 1\n```\nB")
	want := "<p>A</p><p>``<code>go<br>x := 1<br></code>``<br>B</p>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatHTML_SecondPassOnTranslatedOutput(t *testing.T) {
	// Sin fences, la salida traducida no conserva asteriscos, backticks ni
	// saltos de línea: una segunda pasada solo re-envuelve el párrafo.
	out := FormatHTML("**Bold** with `code`\nand *italic*")
	again := FormatHTML(out)
	if again != "<p>"+out+"</p>" {
		t.Fatalf("expected second pass to only re-wrap, got %q", again)
	}
	if strings.Count(again, "<strong>") != 1 || strings.Count(again, "<code>") != 1 {
		t.Fatalf("expected no double-wrapped tags, got %q", again)
	}
}

func TestFormatHTML_CannedBlocksRender(t *testing.T) {
	for name, block := range map[string]string{
		"python":  pythonHelp,
		"js":      javascriptHelp,
		"debug":   debugHelp,
		"web":     webHelp,
		"generic": genericHelp,
	} {
		html := FormatHTML(block)
		if !strings.HasPrefix(html, "<p>") || !strings.HasSuffix(html, "</p>") {
			t.Fatalf("%s: expected paragraph wrapping, got %q", name, html)
		}
		if strings.Contains(html, "\n") {
			t.Fatalf("%s: expected all newlines translated", name)
		}
		if strings.Contains(html, "**") {
			t.Fatalf("%s: expected all bold markers translated", name)
		}
	}
}
