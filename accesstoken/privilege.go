package accesstoken

import "fmt"

// Privilege is a wire-format permission code. The set of codes is
// closed: verifiers and clients agree on it out of band, so new codes
// cannot be minted at runtime.
type Privilege uint16

const (
	PrivilegeJoinChannel         Privilege = 1
	PrivilegePublishAudio        Privilege = 2
	PrivilegePublishVideo        Privilege = 3
	PrivilegePublishData         Privilege = 4
	PrivilegePublishAudioCDN     Privilege = 5
	PrivilegePublishVideoCDN     Privilege = 6
	PrivilegeRequestPublishAudio Privilege = 7
	PrivilegeRequestPublishVideo Privilege = 8
	PrivilegeRequestPublishData  Privilege = 9
	PrivilegeInvitePublishAudio  Privilege = 10
	PrivilegeInvitePublishVideo  Privilege = 11
	PrivilegeInvitePublishData   Privilege = 12
	PrivilegeAdministrateChannel Privilege = 101
	PrivilegeRTMLogin            Privilege = 1000
)

var privilegeCodes = map[string]Privilege{
	"join_channel":          PrivilegeJoinChannel,
	"publish_audio":         PrivilegePublishAudio,
	"publish_video":         PrivilegePublishVideo,
	"publish_data":          PrivilegePublishData,
	"publish_audio_cdn":     PrivilegePublishAudioCDN,
	"publish_video_cdn":     PrivilegePublishVideoCDN,
	"request_publish_audio": PrivilegeRequestPublishAudio,
	"request_publish_video": PrivilegeRequestPublishVideo,
	"request_publish_data":  PrivilegeRequestPublishData,
	"invite_publish_audio":  PrivilegeInvitePublishAudio,
	"invite_publish_video":  PrivilegeInvitePublishVideo,
	"invite_publish_data":   PrivilegeInvitePublishData,
	"administrate_channel":  PrivilegeAdministrateChannel,
	"rtm_login":             PrivilegeRTMLogin,
}

// PrivilegeFromName resolves a symbolic privilege name to its wire
// code. Names outside the closed set report ErrUnknownPrivilege.
func PrivilegeFromName(name string) (Privilege, error) {
	p, ok := privilegeCodes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPrivilege, name)
	}
	return p, nil
}

// Privileges returns the full name-to-code mapping. The returned map
// is a copy; the registry itself is immutable.
func Privileges() map[string]Privilege {
	m := make(map[string]Privilege, len(privilegeCodes))
	for name, code := range privilegeCodes {
		m[name] = code
	}
	return m
}

// Valid reports whether p is one of the defined privilege codes.
func (p Privilege) Valid() bool {
	switch p {
	case PrivilegeJoinChannel, PrivilegePublishAudio, PrivilegePublishVideo,
		PrivilegePublishData, PrivilegePublishAudioCDN, PrivilegePublishVideoCDN,
		PrivilegeRequestPublishAudio, PrivilegeRequestPublishVideo,
		PrivilegeRequestPublishData, PrivilegeInvitePublishAudio,
		PrivilegeInvitePublishVideo, PrivilegeInvitePublishData,
		PrivilegeAdministrateChannel, PrivilegeRTMLogin:
		return true
	}
	return false
}

// String returns the symbolic name of p, or a numeric form for codes
// outside the defined set.
func (p Privilege) String() string {
	switch p {
	case PrivilegeJoinChannel:
		return "join_channel"
	case PrivilegePublishAudio:
		return "publish_audio"
	case PrivilegePublishVideo:
		return "publish_video"
	case PrivilegePublishData:
		return "publish_data"
	case PrivilegePublishAudioCDN:
		return "publish_audio_cdn"
	case PrivilegePublishVideoCDN:
		return "publish_video_cdn"
	case PrivilegeRequestPublishAudio:
		return "request_publish_audio"
	case PrivilegeRequestPublishVideo:
		return "request_publish_video"
	case PrivilegeRequestPublishData:
		return "request_publish_data"
	case PrivilegeInvitePublishAudio:
		return "invite_publish_audio"
	case PrivilegeInvitePublishVideo:
		return "invite_publish_video"
	case PrivilegeInvitePublishData:
		return "invite_publish_data"
	case PrivilegeAdministrateChannel:
		return "administrate_channel"
	case PrivilegeRTMLogin:
		return "rtm_login"
	}
	return fmt.Sprintf("privilege(%d)", uint16(p))
}
