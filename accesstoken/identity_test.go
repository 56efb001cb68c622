package accesstoken

import "testing"

func TestIdentity_Canonicalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		identity  Identity
		wantStr   string
		wantEmpty bool
	}{
		{"zero value", Identity{}, "", true},
		{"uid zero", UID(0), "", true},
		{"uid", UID(2882341273), "2882341273", false},
		{"account", UserAccount("2882341273"), "2882341273", false},
		// The literal "0" stays as-is: only the numeric zero
		// canonicalizes to empty.
		{"account zero string", UserAccount("0"), "0", false},
		{"empty account", UserAccount(""), "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.identity.String(); got != tc.wantStr {
				t.Fatalf("String() = %q, want %q", got, tc.wantStr)
			}
			if got := tc.identity.IsEmpty(); got != tc.wantEmpty {
				t.Fatalf("IsEmpty() = %v, want %v", got, tc.wantEmpty)
			}
		})
	}
}

func TestIdentity_UIDEqualsDecimalAccount(t *testing.T) {
	t.Parallel()

	if UID(7) != UserAccount("7") {
		t.Fatal("UID(7) and UserAccount(\"7\") must compare equal")
	}
	if UID(0) != (Identity{}) {
		t.Fatal("UID(0) must equal the zero-value identity")
	}
}
