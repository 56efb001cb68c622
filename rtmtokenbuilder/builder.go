// Package rtmtokenbuilder mints RTM (messaging) login tokens. An RTM
// token binds only a user ID: the channel-name slot of the wire format
// carries the user ID and the identity slot stays empty.
package rtmtokenbuilder

import (
	"github.com/dmitrijs2005/rtctoken/accesstoken"
)

// BuildToken mints a login token for userID with the rtm_login
// privilege expiring at expiresAt (Unix seconds).
func BuildToken(appID, appCertificate, userID string, expiresAt uint32) (string, error) {
	var iss accesstoken.Issuer
	t, err := iss.New(appID, appCertificate, userID, accesstoken.Identity{})
	if err != nil {
		return "", err
	}

	t.AddPrivilege(accesstoken.PrivilegeRTMLogin, expiresAt)
	return t.Build()
}
