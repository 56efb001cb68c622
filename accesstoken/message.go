package accesstoken

import (
	"bytes"
	"fmt"
	"math"

	"github.com/dmitrijs2005/rtctoken/internal/packx"
)

// Grant pairs a privilege with its own expiration, a Unix timestamp in
// seconds. A token carries any number of grants, each time-bounded
// independently of the token's overall expiry.
type Grant struct {
	Privilege Privilege
	ExpiresAt uint32
}

// packMessage serializes salt, ts and the grant list into the binary
// message that gets signed: salt and ts as uint32, the grant count as
// uint16, then per grant the privilege code (uint16) and its expiry
// (uint32). All little-endian, grants in input order. No
// deduplication, no expiry validation: the builder is mechanical.
func packMessage(salt, ts uint32, grants []Grant) ([]byte, error) {
	if len(grants) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyGrants, len(grants))
	}

	buf := new(bytes.Buffer)
	buf.Grow(10 + 6*len(grants))

	packx.WriteUint32(buf, salt)
	packx.WriteUint32(buf, ts)
	packx.WriteUint16(buf, uint16(len(grants)))
	for _, g := range grants {
		if !g.Privilege.Valid() {
			return nil, fmt.Errorf("%w: code %d", ErrUnknownPrivilege, uint16(g.Privilege))
		}
		packx.WriteUint16(buf, uint16(g.Privilege))
		packx.WriteUint32(buf, g.ExpiresAt)
	}

	return buf.Bytes(), nil
}

// unpackMessage is the inverse of packMessage. Unknown privilege codes
// pass through: a parser must not reject codes added after it shipped.
func unpackMessage(msg []byte) (salt, ts uint32, grants []Grant, err error) {
	r := packx.NewReader(msg)
	salt = r.Uint32()
	ts = r.Uint32()
	count := int(r.Uint16())
	for i := 0; i < count; i++ {
		code := r.Uint16()
		expiresAt := r.Uint32()
		grants = append(grants, Grant{Privilege: Privilege(code), ExpiresAt: expiresAt})
	}
	if r.Err() != nil {
		return 0, 0, nil, r.Err()
	}
	if r.Len() != 0 {
		return 0, 0, nil, fmt.Errorf("%d trailing message bytes", r.Len())
	}
	return salt, ts, grants, nil
}
