package parser

import "testing"

func TestParseKeyframeSelectorKeywords(t *testing.T) {
	sels, err := ParseKeyframeSelector("from, to")
	if err != nil {
		t.Fatalf("ParseKeyframeSelector: %v", err)
	}
	if len(sels) != 2 || sels[0] != "from" || sels[1] != "to" {
		t.Fatalf("got %v, want [from to]", sels)
	}
}

func TestParseKeyframeSelectorPercentages(t *testing.T) {
	sels, err := ParseKeyframeSelector("0%, 50.5%, 100%")
	if err != nil {
		t.Fatalf("ParseKeyframeSelector: %v", err)
	}
	want := []string{"0%", "50.5%", "100%"}
	if len(sels) != len(want) {
		t.Fatalf("got %v, want %v", sels, want)
	}
	for i := range want {
		if sels[i] != want[i] {
			t.Fatalf("got %v, want %v", sels, want)
		}
	}
}

func TestParseKeyframeSelectorNegativeExponent(t *testing.T) {
	sels, err := ParseKeyframeSelector("1e-2%")
	if err != nil {
		t.Fatalf("ParseKeyframeSelector: %v", err)
	}
	if len(sels) != 1 || sels[0] != "1e-2%" {
		t.Fatalf("got %v, want [1e-2%%]", sels)
	}
}

func TestParseKeyframeSelectorInvalidKeyword(t *testing.T) {
	if _, err := ParseKeyframeSelector("middle"); err == nil {
		t.Fatalf("expected error for keyword that is neither from/to nor a percentage")
	}
}

func TestParseKeyframeSelectorMissingPercentSign(t *testing.T) {
	if _, err := ParseKeyframeSelector("50"); err == nil {
		t.Fatalf("expected error for a number missing its trailing %%")
	}
}
