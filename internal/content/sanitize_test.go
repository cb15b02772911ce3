package content

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "I feel frustrated when meetings run over.", "I feel frustrated when meetings run over."},
		{"straight quotes stripped", `She said "no" twice.`, "She said no twice."},
		{"typographic quotes stripped", "He called it “trivial”.", "He called it trivial."},
		{"asterisks stripped", "This is *really* important.", "This is really important."},
		{"backticks stripped", "Run `make` first.", "Run make first."},
		{"apostrophes kept", "Don't worry, it's fine.", "Don't worry, it's fine."},
		{"whitespace trimmed", "  padded text \n", "padded text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	in := `  *Bold* and "quoted" and don't  `
	once := CleanText(in)
	if twice := CleanText(once); twice != once {
		t.Errorf("second pass changed output: %q -> %q", once, twice)
	}
}
