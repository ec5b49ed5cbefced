package render

import "testing"

func TestClip(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"日本語", 4, "日本"},
		{"日本語", 5, "日本"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := Clip(tt.in, tt.width); got != tt.want {
			t.Errorf("Clip(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}

func TestPadAndCenter(t *testing.T) {
	if got := Pad("ab", 4); got != "ab  " {
		t.Errorf("Expected padded string, got %q", got)
	}
	if got := Pad("abcdef", 4); got != "abcd" {
		t.Errorf("Expected clipped string, got %q", got)
	}
	if x := CenterX("abcd", 10); x != 3 {
		t.Errorf("Expected x=3, got %d", x)
	}
	if x := CenterX("日本", 8); x != 2 {
		t.Errorf("Expected wide runes measured by cells, got %d", x)
	}
	if x := CenterX("too wide for it", 4); x != 0 {
		t.Errorf("Expected clamp to 0, got %d", x)
	}
	if w := BlockWidth([]string{"a", "abc", "日本"}); w != 4 {
		t.Errorf("Expected block width 4, got %d", w)
	}
}
