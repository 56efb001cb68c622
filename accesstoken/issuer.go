package accesstoken

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// DefaultLifetime is how long a token minted by an Issuer stays valid.
const DefaultLifetime = 24 * time.Hour

// Issuer mints tokens with a random salt and the default lifetime. The
// zero value uses crypto/rand and the system clock; tests substitute
// both for deterministic output.
type Issuer struct {
	// Rand supplies the salt bytes. Nil means crypto/rand.Reader.
	Rand io.Reader

	// Now supplies the issue time. Nil means time.Now.
	Now func() time.Time
}

// New returns a token with a freshly drawn salt and an expiry of
// DefaultLifetime from now, ready to receive grants.
func (iss *Issuer) New(appID, appCertificate, channelName string, identity Identity) (*Token, error) {
	salt, err := iss.salt()
	if err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	now := time.Now
	if iss.Now != nil {
		now = iss.Now
	}
	expiresAt := uint32(now().Add(DefaultLifetime).Unix())

	return New(appID, appCertificate, channelName, identity, salt, expiresAt), nil
}

// NewToken builds a token granting every named privilege, each
// expiring together with the token itself. Per-privilege expiries need
// the Token API directly.
func (iss *Issuer) NewToken(appID, appCertificate, channelName string, identity Identity, privilegeNames []string) (string, error) {
	t, err := iss.New(appID, appCertificate, channelName, identity)
	if err != nil {
		return "", err
	}

	for _, name := range privilegeNames {
		p, err := PrivilegeFromName(name)
		if err != nil {
			return "", err
		}
		t.AddPrivilege(p, t.ExpiresAt)
	}

	return t.Build()
}

// salt draws a uniform value from the full 32-bit range.
func (iss *Issuer) salt() (uint32, error) {
	r := iss.Rand
	if r == nil {
		r = rand.Reader
	}
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// NewToken mints a token with ambient randomness and clock. See
// Issuer.NewToken.
func NewToken(appID, appCertificate, channelName string, identity Identity, privilegeNames []string) (string, error) {
	var iss Issuer
	return iss.NewToken(appID, appCertificate, channelName, identity, privilegeNames)
}
