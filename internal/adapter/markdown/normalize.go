package markdown

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"golang.org/x/net/html"
)

// Literal markers LeetCode embeds in every question body. Sections are
// located by first occurrence.
const (
	markerExampleOne = `<p><strong class="example">Example 1:</strong></p>`
	markerExampleTwo = `<p><strong class="example">Example 2:</strong></p>`
	markerFollowUp   = `<strong>Follow up:</strong> `
)

var converter = md.NewConverter("", true, &md.Options{HeadingStyle: "atx"})

// Inline markup Discord cannot render inside code spans.
var flattenedInCode = map[string]bool{
	"b":      true,
	"i":      true,
	"u":      true,
	"strong": true,
	"em":     true,
}

// Convert turns judge rich-text HTML into Discord-displayable Markdown.
func Convert(input string) string {
	if input == "" {
		return ""
	}

	cleaned := sanitize(input)

	out, err := converter.ConvertString(cleaned)
	if err != nil {
		out = cleaned
	}

	out = strings.ReplaceAll(out, "\n\n", "\n")
	return strings.TrimSpace(out)
}

// ParseContent splits raw question HTML into its description, first example
// and optional follow-up, converting each section independently. When the
// first example marker is missing the whole content becomes the
// description; when the second is missing the example runs to the end.
func ParseContent(content string) (description, exampleOne, followUp string) {
	if pos := strings.Index(content, markerFollowUp); pos != -1 {
		followUp = Convert(content[pos+len(markerFollowUp):])
	}

	one := strings.Index(content, markerExampleOne)
	if one == -1 {
		return Convert(content), "", followUp
	}

	description = Convert(content[:one])

	start := one + len(markerExampleOne)
	if two := strings.Index(content, markerExampleTwo); two != -1 && two > start {
		exampleOne = Convert(content[start:two])
	} else {
		exampleOne = Convert(content[start:])
	}

	return description, exampleOne, followUp
}

// sanitize walks the token stream once: drops images and style blocks,
// rewrites superscripts to a caret prefix, replaces non-breaking spaces and
// strips inline formatting tags inside code/pre regions. Everything else is
// copied through verbatim for the Markdown converter.
func sanitize(input string) string {
	tz := html.NewTokenizer(strings.NewReader(input))
	var b strings.Builder
	b.Grow(len(input))

	codeDepth := 0
	inStyle := false

	for {
		tt := tz.Next()
		if tt == html.ErrorToken {
			break
		}

		raw := string(tz.Raw())

		switch tt {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tz.TagName()
			tag := string(name)

			switch {
			case tag == "style":
				inStyle = tt == html.StartTagToken
			case inStyle:
			case tag == "img":
			case tag == "sup":
				if tt == html.StartTagToken {
					b.WriteString("^")
				}
			case tag == "code" || tag == "pre":
				if tt == html.StartTagToken {
					codeDepth++
				} else if tt == html.EndTagToken && codeDepth > 0 {
					codeDepth--
				}
				b.WriteString(raw)
			case codeDepth > 0 && flattenedInCode[tag]:
			default:
				b.WriteString(raw)
			}
		case html.TextToken:
			if inStyle {
				continue
			}
			b.WriteString(strings.ReplaceAll(raw, "&nbsp;", " "))
		default:
			if !inStyle {
				b.WriteString(raw)
			}
		}
	}

	return b.String()
}
