package segment

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Collapses_Whitespace",
			input:    "a \t b\n\n c",
			expected: "a b c",
		},
		{
			name:     "Rejoins_Hyphen_Wrapped_Words",
			input:    "the sub- scription is auto- renewed",
			expected: "the subscription is autorenewed",
		},
		{
			name:     "Strips_Page_Artifacts",
			input:    "intro Page 2 of 14 outro",
			expected: "intro outro",
		},
		{
			name:     "Compatibility_Normalization",
			input:    "oﬃce ｈｏｕｒｓ", //ffi ligature and fullwidth letters
			expected: "office hours",
		},
		{
			name:     "Empty_Input",
			input:    "",
			expected: "",
		},
		{
			name:     "Whitespace_Only",
			input:    " \n\t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.input)
			if got != tt.expected {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// cleaning clean text must change nothing
func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"1. What is X? X is Y.\n2. What is Z?",
		"hyphen- ated chains a- b- c",
		"spread  out\n\n\ttext Page 1 of 3 with artifacts",
		"ﬁnal ｔext",
	}
	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
