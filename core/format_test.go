package core

import (
	"regexp"
	"strings"
	"testing"
)

var cnicShapes = []*regexp.Regexp{
	regexp.MustCompile(`^$`),
	regexp.MustCompile(`^\d{1,5}$`),
	regexp.MustCompile(`^\d{5}-\d{1,7}$`),
	regexp.MustCompile(`^\d{5}-\d{7}-\d{1}$`),
}

func TestMaskCNIC(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "partial first group", in: "123", want: "123"},
		{name: "exact first group", in: "12345", want: "12345"},
		{name: "into second group", in: "123456", want: "12345-6"},
		{name: "exact second group", in: "123456789012", want: "12345-6789012"},
		{name: "full", in: "1234567890123", want: "12345-6789012-3"},
		{name: "overflow dropped", in: "12345678901239999", want: "12345-6789012-3"},
		{name: "separators already present", in: "12345-6789012-3", want: "12345-6789012-3"},
		{name: "junk stripped", in: "12a34-5b6", want: "12345-6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskCNIC(tt.in); got != tt.want {
				t.Errorf("MaskCNIC(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMaskCNICShapeAndIdempotence(t *testing.T) {
	in := ""
	for i := 0; i <= 13; i++ {
		got := MaskCNIC(in)
		var matched bool
		for _, re := range cnicShapes {
			if re.MatchString(got) {
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("MaskCNIC(%q) = %q does not match any allowed shape", in, got)
		}
		// re-applying to its own output (separators stripped) is a no-op
		if again := MaskCNIC(strings.ReplaceAll(got, "-", "")); again != got {
			t.Errorf("MaskCNIC not idempotent: %q -> %q", got, again)
		}
		in += string(rune('0' + i%10))
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "partial", in: "030", want: "030"},
		{name: "first group", in: "0300", want: "0300"},
		{name: "into second group", in: "03001", want: "0300-1"},
		{name: "full", in: "03001234567", want: "0300-1234567"},
		{name: "overflow dropped", in: "0300123456789", want: "0300-1234567"},
		{name: "formatted input", in: "0300-1234567", want: "0300-1234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskPhone(tt.in); got != tt.want {
				t.Errorf("MaskPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrNA(t *testing.T) {
	if got := OrNA(""); got != "N/A" {
		t.Errorf("OrNA(\"\") = %q", got)
	}
	if got := OrNA("  "); got != "N/A" {
		t.Errorf("OrNA(blank) = %q", got)
	}
	if got := OrNA("x"); got != "x" {
		t.Errorf("OrNA(x) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a long description that should be cut", 10, "a long ..."},
		{"abc", 2, "ab"},
		{"anything", 0, "anything"},
		// runes, not bytes: multibyte text must never be cut mid-rune
		{"École élémentaire à Lahore", 10, "École é..."},
		{"日本語のクラス説明", 5, "日本..."},
		{"日本語", 3, "日本語"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
