package accesstoken

import (
	"encoding/base64"
	"errors"
	"hash/crc32"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/rtctoken/internal/packx"
)

// Reference inputs shared by the deterministic build tests. The
// expected tokens are pinned snapshots: any byte-layout change breaks
// them, which is the point.
const (
	testAppID       = "970CA35de60c44645bbae8a215061b33"
	testCertificate = "5CFd2fd1755d40ecb72977518be15d3b"
	testChannelName = "7d72365eb983485397e3e3f9d460bdda"
)

const (
	testSalt      = uint32(1)
	testTs        = uint32(1111111)
	testExpiresAt = uint32(1446455471)
)

func buildReference(t *testing.T, identity Identity) string {
	t.Helper()

	tok := New(testAppID, testCertificate, testChannelName, identity, testSalt, testTs)
	tok.AddPrivilege(PrivilegeJoinChannel, testExpiresAt)

	s, err := tok.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return s
}

func TestBuild_UserAccountZeroString(t *testing.T) {
	t.Parallel()

	got := buildReference(t, UserAccount("0"))
	want := "006970CA35de60c44645bbae8a215061b33IABNRUO/126HmzFc+J8lQFfnkssUdUXqiePeE2WNZ7lyubdIfRAh39v0EAABAAAAR/QQAAEAAQCvKDdW"
	if got != want {
		t.Fatalf("token mismatch:\ngot  %s\nwant %s", got, want)
	}
}

func TestBuild_UIDZero(t *testing.T) {
	t.Parallel()

	want := "006970CA35de60c44645bbae8a215061b33IACw1o7htY6ISdNRtku3p9tjTPi0jCKf9t49UHJhzCmL6bdIfRAAAAAAEAABAAAAR/QQAAEAAQCvKDdW"

	got := buildReference(t, UID(0))
	if got != want {
		t.Fatalf("token mismatch:\ngot  %s\nwant %s", got, want)
	}

	// UID(0) and the zero-value identity are the same thing and must
	// sign identically.
	if empty := buildReference(t, Identity{}); empty != got {
		t.Fatalf("UID(0) and empty identity diverge:\n%s\n%s", got, empty)
	}

	// The literal account "0" is intentionally not canonicalized, so
	// it must NOT collide with UID(0).
	if zeroStr := buildReference(t, UserAccount("0")); zeroStr == got {
		t.Fatalf("UserAccount(%q) unexpectedly equals UID(0) token", "0")
	}
}

func TestBuild_NumericUID(t *testing.T) {
	t.Parallel()

	want := "006970CA35de60c44645bbae8a215061b33IACV0fZUBw+72cVoL9eyGGh3Q6Poi8bgjwVLnyKSJyOXR7dIfRBXoFHlEAABAAAAR/QQAAEAAQCvKDdW"

	got := buildReference(t, UID(2882341273))
	if got != want {
		t.Fatalf("token mismatch:\ngot  %s\nwant %s", got, want)
	}

	// A numeric UID signs exactly like its decimal rendering.
	if text := buildReference(t, UserAccount("2882341273")); text != got {
		t.Fatalf("UID and decimal UserAccount diverge:\n%s\n%s", got, text)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	first := buildReference(t, UID(2882341273))
	second := buildReference(t, UID(2882341273))
	if first != second {
		t.Fatalf("same inputs produced different tokens:\n%s\n%s", first, second)
	}
}

func TestBuild_EnvelopePrefix(t *testing.T) {
	t.Parallel()

	s := buildReference(t, UID(1))
	if !strings.HasPrefix(s, "006"+testAppID) {
		t.Fatalf("token %q does not start with version tag and app id", s)
	}
}

func TestBuild_EmptyCertificate(t *testing.T) {
	t.Parallel()

	tok := New(testAppID, "", testChannelName, UID(1), testSalt, testTs)
	tok.AddPrivilege(PrivilegeJoinChannel, testExpiresAt)

	_, err := tok.Build()
	if !errors.Is(err, ErrEmptyCertificate) {
		t.Fatalf("expected ErrEmptyCertificate, got %v", err)
	}
}

func TestBuild_InvalidPrivilegeCode(t *testing.T) {
	t.Parallel()

	tok := New(testAppID, testCertificate, testChannelName, UID(1), testSalt, testTs)
	tok.AddPrivilege(Privilege(999), testExpiresAt)

	_, err := tok.Build()
	if !errors.Is(err, ErrUnknownPrivilege) {
		t.Fatalf("expected ErrUnknownPrivilege, got %v", err)
	}
}

func TestBuild_LengthConsistency(t *testing.T) {
	t.Parallel()

	tok := New(testAppID, testCertificate, testChannelName, UID(7), testSalt, testTs)
	tok.AddPrivilege(PrivilegeJoinChannel, testExpiresAt)
	tok.AddPrivilege(PrivilegePublishAudio, testExpiresAt+60)
	tok.AddPrivilege(PrivilegePublishVideo, testExpiresAt+120)

	s, err := tok.Build()
	require.NoError(t, err)

	content, err := base64.StdEncoding.DecodeString(s[len("006")+len(testAppID):])
	require.NoError(t, err)

	r := packx.NewReader(content)
	signature := r.Bytes()
	r.Uint32() // crc channel
	r.Uint32() // crc identity
	msg := r.Bytes()
	require.NoError(t, r.Err())
	require.Equal(t, 0, r.Len(), "trailing bytes after message")

	require.Len(t, signature, SignatureSize)
	require.Len(t, msg, 10+6*len(tok.Grants))
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	tok := New(testAppID, testCertificate, testChannelName, UID(2882341273), testSalt, testTs)
	tok.AddPrivilege(PrivilegeJoinChannel, testExpiresAt)
	tok.AddPrivilege(PrivilegePublishAudio, testExpiresAt+3600)

	s, err := tok.Build()
	require.NoError(t, err)

	parsed, err := Parse(s)
	require.NoError(t, err)

	require.Equal(t, testAppID, parsed.AppID)
	require.Equal(t, testSalt, parsed.Salt)
	require.Equal(t, testTs, parsed.ExpiresAt)
	require.Equal(t, tok.Grants, parsed.Grants)
	require.Len(t, parsed.Signature, SignatureSize)
	require.Equal(t, crc32.ChecksumIEEE([]byte(testChannelName)), parsed.CRCChannelName)
	require.Equal(t, crc32.ChecksumIEEE([]byte("2882341273")), parsed.CRCIdentity)
}

func TestParse_EmptyIdentityCRC(t *testing.T) {
	t.Parallel()

	parsed, err := Parse(buildReference(t, UID(0)))
	require.NoError(t, err)
	require.Equal(t, uint32(0), parsed.CRCIdentity, "CRC-32 of the empty identity must be zero")
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	valid := buildReference(t, UID(1))

	// A structurally valid envelope with junk appended to the decoded
	// content block.
	content, err := base64.StdEncoding.DecodeString(valid[len("006")+len(testAppID):])
	require.NoError(t, err)
	trailing := "006" + testAppID + base64.StdEncoding.EncodeToString(append(content, 0x00))

	tests := []struct {
		name  string
		token string
	}{
		{"too short", "006abc"},
		{"wrong version", "005" + valid[3:]},
		{"bad base64", "006" + testAppID + "!!!not-base64!!!"},
		{"truncated content", valid[:len(valid)-8]},
		{"trailing bytes", trailing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
