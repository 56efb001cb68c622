// Package accesstoken builds and parses version-"006" access tokens
// for a real-time communication service.
//
// A token grants a client a set of privileges on a channel, each with
// its own expiration. The pipeline: serialize salt, expiry and grants
// into a little-endian binary message; sign appID + channel name +
// identity + message with HMAC-SHA256 under the application
// certificate; assemble signature, CRC-32 checksums and message into a
// length-prefixed content block; base64-encode it behind the "006" +
// appID prefix.
//
// Typical use:
//
//	token, err := accesstoken.NewToken(appID, cert, channel,
//		accesstoken.UID(2882341273),
//		[]string{"join_channel", "publish_audio"})
//
// Per-privilege expiries and deterministic salt/timestamps go through
// New, AddPrivilege and Build directly. Parse recovers the envelope
// fields of an existing token without verifying its signature.
package accesstoken
