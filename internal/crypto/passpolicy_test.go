package crypto

import "testing"

func TestIsStrongPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		pw   string
		want bool
	}{
		{"ok", "Password123!", true},
		{"ok min length", "Aa1!aaaaaa", true},
		{"too short", "Passw0rd!", false},
		{"no uppercase", "password123!", false},
		{"no lowercase", "PASSWORD123!", false},
		{"no digit", "Password!!!!", false},
		{"no symbol", "Password1234", false},
		{"empty", "", false},
		{"symbol only counted once scanned", "Aa1?Bb2?Cc", true},
		{"unicode letters count as letters", "Straße123!X", true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsStrongPassword(tc.pw); got != tc.want {
				t.Fatalf("IsStrongPassword(%q)=%v, want %v", tc.pw, got, tc.want)
			}
		})
	}
}
