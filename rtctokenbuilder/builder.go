// Package rtctokenbuilder mints RTC channel tokens for the common role
// presets, hiding grant bookkeeping from callers that do not need
// per-privilege expiries.
package rtctokenbuilder

import (
	"github.com/dmitrijs2005/rtctoken/accesstoken"
)

// Role selects the privilege set baked into a token.
type Role uint16

const (
	// RoleAttendee keeps the historical code 0 and is treated as a
	// publisher.
	RoleAttendee Role = 0

	// RolePublisher can join the channel and publish audio, video and
	// data streams.
	RolePublisher Role = 1

	// RoleSubscriber can only join the channel.
	RoleSubscriber Role = 2

	// RoleAdmin keeps the historical code 101 and is treated as a
	// publisher.
	RoleAdmin Role = 101
)

func (r Role) canPublish() bool {
	return r == RoleAttendee || r == RolePublisher || r == RoleAdmin
}

// BuildToken mints a channel token for the given role. Every granted
// privilege expires at expiresAt (Unix seconds); the token's own
// expiry follows the default lifetime.
func BuildToken(appID, appCertificate, channelName string, identity accesstoken.Identity, role Role, expiresAt uint32) (string, error) {
	var iss accesstoken.Issuer
	t, err := iss.New(appID, appCertificate, channelName, identity)
	if err != nil {
		return "", err
	}

	t.AddPrivilege(accesstoken.PrivilegeJoinChannel, expiresAt)
	if role.canPublish() {
		t.AddPrivilege(accesstoken.PrivilegePublishAudio, expiresAt)
		t.AddPrivilege(accesstoken.PrivilegePublishVideo, expiresAt)
		t.AddPrivilege(accesstoken.PrivilegePublishData, expiresAt)
	}

	return t.Build()
}

// BuildTokenWithUID is BuildToken for numeric user IDs. A uid of 0
// means "any user".
func BuildTokenWithUID(appID, appCertificate, channelName string, uid uint32, role Role, expiresAt uint32) (string, error) {
	return BuildToken(appID, appCertificate, channelName, accesstoken.UID(uint64(uid)), role, expiresAt)
}
