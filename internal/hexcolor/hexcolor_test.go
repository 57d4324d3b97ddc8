package hexcolor

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ff5733", "#FF5733", true},
		{"#FF5733", "#FF5733", true},
		{"#ff5733", "#FF5733", true},
		{"  aBc123 ", "#ABC123", true},
		{"zzzzzz", "", false},
		{"#12345", "", false},
		{"1234567", "", false},
		{"##123456", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Normalize(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRandomIsFromPalette(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := Random()
		if !Valid(c) {
			t.Fatalf("random color %q is not valid", c)
		}
		found := false
		for _, p := range Palette {
			if p == c {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("random color %q not in palette", c)
		}
	}
}
