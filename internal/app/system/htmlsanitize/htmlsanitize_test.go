package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/startupbridge/internal/app/system/htmlsanitize"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text unchanged", "Workflow automation for small businesses", "Workflow automation for small businesses"},
		{"trims space", "  TechFlow  ", "TechFlow"},
		{"less-than alone is text", "Revenue < $1M", "Revenue < $1M"},
		{"strips tags", "<p><strong>Bold</strong> claim</p>", "Bold claim"},
		{"drops script", "Hello<script>alert('xss')</script>", "Hello"},
		{"drops style", "<style>body{color:red}</style>Text", "Text"},
		{"escaped script behind a tag", "<i></i>&lt;script&gt;alert(1)&lt;/script&gt;", ""},
		{"escaped tag behind a tag", "<b>Hi</b> &lt;em&gt;there&lt;/em&gt;", "Hi there"},
		{"decodes entities", "<b>R&amp;D</b> team", "R&D team"},
		{"drops attributes with tag", `<a href="javascript:alert(1)">Click</a>`, "Click"},
		{"drops image", `<img src="x" onerror="alert(1)">Logo`, "Logo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlsanitize.PlainText(tt.input); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlainText_NoMarkupSurvives(t *testing.T) {
	got := htmlsanitize.PlainText(`<iframe src="https://evil.com"></iframe><form><input name="x"></form>ok`)
	if strings.ContainsAny(got, "<>") {
		t.Errorf("markup survived: %q", got)
	}
}

func TestFields(t *testing.T) {
	name := " <em>Acme</em> "
	desc := "Plain"
	htmlsanitize.Fields(&name, &desc, nil)
	if name != "Acme" || desc != "Plain" {
		t.Errorf("Fields -> %q, %q", name, desc)
	}
}

func TestList(t *testing.T) {
	got := htmlsanitize.List([]string{"Profitable", " <b></b> ", "<i>Growing</i>"})
	if len(got) != 2 || got[0] != "Profitable" || got[1] != "Growing" {
		t.Errorf("List = %q", got)
	}
	if got := htmlsanitize.List(nil); got == nil || len(got) != 0 {
		t.Errorf("List(nil) = %#v, want empty non-nil", got)
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"Hello, World!", true},
		{"5 < 10", true},
		{"5 > 3", true},
		{"<p>Hello</p>", false},
	}
	for _, tt := range tests {
		if got := htmlsanitize.IsPlainText(tt.input); got != tt.want {
			t.Errorf("IsPlainText(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
