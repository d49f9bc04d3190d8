package gamefile

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"Example Game", "Example Game"},
		{"any-percent", "any-percent"},
		{"Any%", `"Any%"`},
		{"Key: value", `"Key: value"`},
		{" padded", `" padded"`},
		{"padded ", `"padded "`},
		{"line\nbreak", `"line\nbreak"`},
		{`say "hi"`, `"say \"hi\""`},
		{"Baldur's Gate", `"Baldur's Gate"`},
		{"#1", `"#1"`},
		{"a & b", `"a & b"`},
		{"true", `"true"`},
		{"No", `"No"`},
		{"1942", `"1942"`},
		{"3.5", `"3.5"`},
		{"0x1F", `"0x1F"`},
		{"2024-01-02", `"2024-01-02"`},
		{"- bullet", `"- bullet"`},
		{"<tag>", "<tag>"},
		{"RTA (Real Time Attack)", "RTA (Real Time Attack)"},
		{"Any\x07Run", `"Any\u0007Run"`},
		{"Zero\x00Char", `"Zero\u0000Char"`},
		{"Bad\xffByte", `"Bad\ufffdByte"`},
		{"Line\u2028Sep", `"Line\u2028Sep"`},
		{"Next\u0085Line", `"Next\u0085Line"`},
		{"Del\x7fChar", `"Del\u007FChar"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Fatalf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestQuote_RoundTripsThroughYAML(t *testing.T) {
	inputs := []string{
		"", "plain", "Any%", "100%", "a: b", "[x]", "{y}", "a, b", "#hash", "&anchor", "*alias",
		"!tag", "|pipe", ">fold", "'single'", `"double"`, "@at", "`tick`", "multi\nline",
		" lead", "trail ", "true", "null", "~", "1e3", "007", "-dash", "?q", "Pokémon", "tab\there",
	}
	for _, in := range inputs {
		var out struct {
			V any `yaml:"v"`
		}
		src := "v: " + Quote(in) + "\n"
		if err := yaml.Unmarshal([]byte(src), &out); err != nil {
			t.Fatalf("yaml.Unmarshal(%q): %v", src, err)
		}
		s, ok := out.V.(string)
		if !ok || s != in {
			t.Fatalf("round trip of %q gave %#v", in, out.V)
		}
	}
}

func TestQuote_UnprintableRoundTripsThroughYAML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Any\x07Run", "Any\x07Run"},
		{"Zero\x00Char", "Zero\x00Char"},
		{"Bad\xffByte", "Bad\uFFFDByte"},
		{"Line\u2028Sep", "Line\u2028Sep"},
		{"Next\u0085Line", "Next\u0085Line"},
		{"Del\x7fChar", "Del\x7fChar"},
		{"Tag\U000E0001", "Tag\U000E0001"},
	}
	for _, tt := range tests {
		var out struct {
			V string `yaml:"v"`
		}
		src := "v: " + Quote(tt.in) + "\n"
		if err := yaml.Unmarshal([]byte(src), &out); err != nil {
			t.Fatalf("yaml.Unmarshal(%q): %v", src, err)
		}
		if out.V != tt.want {
			t.Fatalf("round trip of %q gave %q, want %q", tt.in, out.V, tt.want)
		}
	}
}
