package domain

import "time"

// Profile is the blob persisted for the current user and sent to the network.
type Profile struct {
	Nickname string    `json:"nickname"`
	Bio      string    `json:"bio"`
	Avatar   string    `json:"avatar"`
	Banner   string    `json:"banner"`
	Time     Timestamp `json:"time"`
}

// SameContent compares the user-editable fields, ignoring Time.
func (p Profile) SameContent(other Profile) bool {
	return p.Nickname == other.Nickname &&
		p.Bio == other.Bio &&
		p.Avatar == other.Avatar &&
		p.Banner == other.Banner
}

// UpdatedAt converts Time to wall-clock time.
func (p Profile) UpdatedAt() time.Time {
	return time.Unix(int64(p.Time), 0)
}

// Default images shown when a profile has none.
const (
	DefaultPortrait = "/portrait-default.png"
	DefaultBanner   = "/banner-default.png"
)

// PortraitImage returns the avatar or the default portrait.
func (p Profile) PortraitImage() string {
	if p.Avatar == "" {
		return DefaultPortrait
	}
	return p.Avatar
}

// BannerImage returns the banner or the default banner.
func (p Profile) BannerImage() string {
	if p.Banner == "" {
		return DefaultBanner
	}
	return p.Banner
}
