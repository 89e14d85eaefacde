package service

import (
	"regexp"
	"strings"
)

// Las reglas replican el formateador del cliente original, en su orden
// literal: bold, italic, code inline, bloques cercados, párrafos y saltos
// de línea. El orden corrompe asteriscos y backticks dentro de código
// (defecto conocido); se conserva por compatibilidad.
var (
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.*?)\*`)
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	codeBlockRe  = regexp.MustCompile("(?s)```(.*?)```")
)

// FormatHTML traduce el markup mínimo de las respuestas a HTML de
// presentación.
func FormatHTML(text string) string {
	formatted := boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	formatted = italicRe.ReplaceAllString(formatted, "<em>$1</em>")
	formatted = inlineCodeRe.ReplaceAllString(formatted, "<code>$1</code>")
	formatted = codeBlockRe.ReplaceAllString(formatted, "<pre><code>$1</code></pre>")
	formatted = strings.ReplaceAll(formatted, "\n\n", "</p><p>")
	formatted = strings.ReplaceAll(formatted, "\n", "<br>")
	return "<p>" + formatted + "</p>"
}
