package accesstoken

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/dmitrijs2005/rtctoken/internal/packx"
)

// versionTag identifies the token wire format. Verifiers dispatch on
// these three bytes.
const versionTag = "006"

// appIDLength is the length of an application id as issued by the
// service. The id is embedded raw in the envelope, without a length
// prefix, so parsing relies on this.
const appIDLength = 32

// SignatureSize is the size of a token signature (an HMAC-SHA256
// digest).
const SignatureSize = sha256.Size

// Token carries everything needed to build one signed token. Fields
// are plain values; a Token is built and discarded within a single
// call, so instances must not be shared across goroutines while being
// mutated.
type Token struct {
	AppID          string
	AppCertificate string
	ChannelName    string
	Identity       Identity
	Salt           uint32 // random value mixed into the signed message
	ExpiresAt      uint32 // overall token expiry, Unix seconds
	Grants         []Grant

	// Populated by Parse; unused by Build.
	Signature      []byte
	CRCChannelName uint32
	CRCIdentity    uint32
}

// New returns a token with no grants yet. Salt and expiry are taken as
// given; Issuer picks them for callers that do not need deterministic
// output.
func New(appID, appCertificate, channelName string, identity Identity, salt, expiresAt uint32) *Token {
	return &Token{
		AppID:          appID,
		AppCertificate: appCertificate,
		ChannelName:    channelName,
		Identity:       identity,
		Salt:           salt,
		ExpiresAt:      expiresAt,
	}
}

// AddGrant appends a grant. Input order is preserved through
// serialization; verifiers attach no meaning to it.
func (t *Token) AddGrant(g Grant) {
	t.Grants = append(t.Grants, g)
}

// AddPrivilege appends a grant for p expiring at expiresAt (Unix
// seconds).
func (t *Token) AddPrivilege(p Privilege, expiresAt uint32) {
	t.AddGrant(Grant{Privilege: p, ExpiresAt: expiresAt})
}

// Build signs the token and returns the encoded string:
// "006" + appID + base64 of the signed content block. The result is
// fully determined by the token's fields.
func (t *Token) Build() (string, error) {
	if t.AppCertificate == "" {
		return "", ErrEmptyCertificate
	}

	msg, err := packMessage(t.Salt, t.ExpiresAt, t.Grants)
	if err != nil {
		return "", err
	}

	identity := t.Identity.String()

	// The signed region is appID, channel name, identity and message
	// concatenated with no separators. The verifier reconstructs the
	// boundaries from the envelope's own message length prefix, so
	// neither the order nor the absence of delimiters may change.
	signed := new(bytes.Buffer)
	signed.WriteString(t.AppID)
	signed.WriteString(t.ChannelName)
	signed.WriteString(identity)
	signed.Write(msg)

	signature := sign([]byte(t.AppCertificate), signed.Bytes())

	content := new(bytes.Buffer)
	packx.WriteBytes(content, signature)
	packx.WriteUint32(content, crc32.ChecksumIEEE([]byte(t.ChannelName)))
	packx.WriteUint32(content, crc32.ChecksumIEEE([]byte(identity)))
	packx.WriteBytes(content, msg)

	return versionTag + t.AppID + base64.StdEncoding.EncodeToString(content.Bytes()), nil
}

// sign computes the HMAC-SHA256 of data under key.
func sign(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// Parse decodes a token string back into its fields. It checks
// structural consistency only: the signature is returned as-is, never
// verified, and the channel name and identity are recoverable only as
// their CRC-32 checksums because the wire format does not carry the
// strings themselves.
//
// A token built with a numeric identity parses with empty fields for
// identity and channel; compare CRCChannelName and CRCIdentity against
// locally computed checksums instead.
func Parse(s string) (*Token, error) {
	if len(s) < len(versionTag)+appIDLength {
		return nil, fmt.Errorf("%w: too short", ErrInvalidToken)
	}
	if !strings.HasPrefix(s, versionTag) {
		return nil, fmt.Errorf("%w: version %q", ErrInvalidToken, s[:len(versionTag)])
	}

	appID := s[len(versionTag) : len(versionTag)+appIDLength]
	content, err := base64.StdEncoding.DecodeString(s[len(versionTag)+appIDLength:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	r := packx.NewReader(content)
	signature := r.Bytes()
	crcChannel := r.Uint32()
	crcIdentity := r.Uint32()
	msg := r.Bytes()
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidToken, r.Len())
	}

	salt, ts, grants, err := unpackMessage(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return &Token{
		AppID:          appID,
		Salt:           salt,
		ExpiresAt:      ts,
		Grants:         grants,
		Signature:      bytes.Clone(signature),
		CRCChannelName: crcChannel,
		CRCIdentity:    crcIdentity,
	}, nil
}
