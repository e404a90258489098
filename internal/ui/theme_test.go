package ui

import "testing"

func TestTitleName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"liu kang", "Liu Kang"},
		{"  shang   tsung ", "Shang Tsung"},
		{"", "Character 1"},
		{"   ", "Character 1"},
	}
	for _, tc := range cases {
		if got := TitleName(tc.in, "Character 1"); got != tc.want {
			t.Fatalf("TitleName(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHealthBar(t *testing.T) {
	cases := []struct {
		hp, max, width int
		want           string
	}{
		{50, 50, 10, "[##########] 50/50"},
		{25, 50, 10, "[#####-----] 25/50"},
		{0, 50, 10, "[----------] 0/50"},
		{-4, 50, 4, "[----] 0/50"},
		{2, 50, 10, "[----------] 2/50"},
	}
	for _, tc := range cases {
		if got := HealthBar(tc.hp, tc.max, tc.width); got != tc.want {
			t.Fatalf("HealthBar(%d,%d,%d)=%q, want %q", tc.hp, tc.max, tc.width, got, tc.want)
		}
	}
}
