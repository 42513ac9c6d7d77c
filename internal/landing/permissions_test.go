package landing

import "testing"

func TestCanEditOnlyOwner(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{"owner", true},
		{"member", false},
		{"admin", false},
		{"Owner", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := CanEdit(tc.role); got != tc.want {
			t.Fatalf("CanEdit(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestShouldResetDraft(t *testing.T) {
	cases := []struct {
		open   bool
		saving bool
		want   bool
	}{
		{open: false, saving: false, want: true},
		{open: false, saving: true, want: false},
		{open: true, saving: false, want: false},
		{open: true, saving: true, want: false},
	}
	for _, tc := range cases {
		if got := ShouldResetDraft(tc.open, tc.saving); got != tc.want {
			t.Fatalf("ShouldResetDraft(%v, %v) = %v, want %v", tc.open, tc.saving, got, tc.want)
		}
	}
}
