package markdown

import (
	"strings"
	"testing"
)

func TestConvertFlattensFormattingInsideCode(t *testing.T) {
	input := `<pre><b>cost</b> = <em>[1,2]</em>, <strong>k</strong> = <u>3</u></pre>`

	out := Convert(input)

	for _, tag := range []string{"<b>", "</b>", "<i>", "<em>", "<strong>", "<u>"} {
		if strings.Contains(out, tag) {
			t.Fatalf("output still contains %s: %q", tag, out)
		}
	}
	if !strings.Contains(out, "cost = [1,2], k = 3") {
		t.Fatalf("code content mangled: %q", out)
	}
}

func TestConvertKeepsFormattingOutsideCode(t *testing.T) {
	out := Convert(`<p>A <strong>sorted</strong> array.</p>`)
	if !strings.Contains(out, "**sorted**") {
		t.Fatalf("expected bold markdown outside code, got %q", out)
	}
}

func TestConvertDropsImagesStylesAndEntities(t *testing.T) {
	input := `<p>Before&nbsp;after</p><img src="https://assets.leetcode.com/x.png" />` +
		`<style>.q { color: red; }</style><p>tail</p>`

	out := Convert(input)

	for _, banned := range []string{"<img", "<style", "&nbsp;", "color: red"} {
		if strings.Contains(out, banned) {
			t.Fatalf("output contains %q: %q", banned, out)
		}
	}
	if !strings.Contains(out, "Before after") {
		t.Fatalf("non-breaking space not replaced: %q", out)
	}
}

func TestConvertRewritesSuperscripts(t *testing.T) {
	out := Convert(`<p>at most 10<sup>9</sup> operations</p>`)
	if !strings.Contains(out, "10^9") {
		t.Fatalf("expected caret superscript, got %q", out)
	}
}

func TestConvertCollapsesDoubledNewlines(t *testing.T) {
	out := Convert(`<p>first</p><p>second</p>`)
	if strings.Contains(out, "\n\n") {
		t.Fatalf("doubled newline survived: %q", out)
	}
	if !strings.Contains(out, "first\nsecond") {
		t.Fatalf("unexpected paragraph join: %q", out)
	}
}

func TestParseContentSplitsSections(t *testing.T) {
	content := `<p>Given an integer array.</p>` +
		markerExampleOne +
		`<pre>Input: nums = [1]
Output: 1</pre>` +
		markerExampleTwo +
		`<pre>Input: nums = [2]
Output: 2</pre>` +
		`<p><strong>Follow up:</strong> Can you do it in O(n)?</p>`

	description, exampleOne, followUp := ParseContent(content)

	if !strings.Contains(description, "Given an integer array.") {
		t.Fatalf("unexpected description: %q", description)
	}
	if strings.Contains(description, "Input") {
		t.Fatalf("description leaked example content: %q", description)
	}
	if !strings.Contains(exampleOne, "nums = [1]") {
		t.Fatalf("unexpected example: %q", exampleOne)
	}
	if strings.Contains(exampleOne, "nums = [2]") {
		t.Fatalf("example one leaked example two: %q", exampleOne)
	}
	if !strings.Contains(followUp, "O(n)") {
		t.Fatalf("unexpected follow up: %q", followUp)
	}
}

func TestParseContentWithoutExampleMarker(t *testing.T) {
	description, exampleOne, followUp := ParseContent(`<p>Premium-style body with no examples.</p>`)

	if !strings.Contains(description, "Premium-style body") {
		t.Fatalf("unexpected description: %q", description)
	}
	if exampleOne != "" {
		t.Fatalf("expected empty example, got %q", exampleOne)
	}
	if followUp != "" {
		t.Fatalf("expected empty follow up, got %q", followUp)
	}
}

func TestParseContentWithoutSecondExample(t *testing.T) {
	content := `<p>Desc.</p>` + markerExampleOne + `<pre>Input: s = "ab"</pre>`

	_, exampleOne, _ := ParseContent(content)

	if !strings.Contains(exampleOne, `s = "ab"`) {
		t.Fatalf("example should extend to end of content, got %q", exampleOne)
	}
}

func TestParseContentEmpty(t *testing.T) {
	description, exampleOne, followUp := ParseContent("")
	if description != "" || exampleOne != "" || followUp != "" {
		t.Fatalf("expected all sections empty, got %q %q %q", description, exampleOne, followUp)
	}
}
