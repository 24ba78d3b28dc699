// Package notify sends issue and renewal notices to members by email (SES)
// and SMS (SNS). Message bodies are plain-text templates with {{name}}
// placeholders.
package notify

import (
	"strings"
)

// Render replaces each {{key}} in tmpl with subs[key]. Placeholders without
// a substitution are left as they are.
func Render(tmpl string, subs map[string]string) string {
	if len(subs) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(subs))
	for k, v := range subs {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// StripLine removes every line of text containing {{placeholder}}, together
// with its line break.
func StripLine(text, placeholder string) string {
	token := "{{" + placeholder + "}}"
	if !strings.Contains(text, token) {
		return text
	}
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, l := range lines {
		if strings.Contains(l, token) {
			continue
		}
		b.WriteString(l)
	}
	return b.String()
}

// HTMLBody wraps a plain-text message in a right-to-left HTML paragraph.
func HTMLBody(text string) string {
	return `<html><head></head><body><p dir="rtl">` +
		strings.ReplaceAll(text, "\n", "<br>") +
		`</p></body></html>`
}
