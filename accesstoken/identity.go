package accesstoken

import "strconv"

// Identity is the user identity baked into a token: empty, numeric, or
// textual. The zero value is the empty identity, which signs the token
// for any user.
//
// Construction canonicalizes numeric identities: UID(0) becomes the
// empty identity and any other UID is rendered in decimal. UserAccount
// applies no canonicalization, so UserAccount("0") keeps the literal
// string "0". Existing verifiers distinguish the two cases; the
// asymmetry is part of the wire contract.
type Identity struct {
	s string
}

// UID returns the identity for a numeric user ID. UID(0) means "no
// identity".
func UID(n uint64) Identity {
	if n == 0 {
		return Identity{}
	}
	return Identity{s: strconv.FormatUint(n, 10)}
}

// UserAccount returns the identity for a textual user account, taken
// verbatim.
func UserAccount(s string) Identity {
	return Identity{s: s}
}

// IsEmpty reports whether id is the empty identity.
func (id Identity) IsEmpty() bool {
	return id.s == ""
}

// String returns the canonical wire string, "" for the empty identity.
func (id Identity) String() string {
	return id.s
}
