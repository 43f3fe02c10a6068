package settings

import (
	"errors"
	"time"
)

var ErrUnauthorized = errors.New("settings management requires the admin role")

// Settings are the cosmetic, admin-managed shell options.
type Settings struct {
	Theme         string     `json:"theme"`
	BannerText    string     `json:"bannerText"`
	BannerEnabled bool       `json:"bannerEnabled"`
	FeatureName   string     `json:"featureName,omitempty"`
	FeatureEndsAt *time.Time `json:"featureEndsAt,omitempty"`
}

// Defaults returns the in-code fallback used when nothing is stored or the
// stored blob does not decode.
func Defaults() Settings {
	return Settings{
		Theme:         "dark",
		BannerText:    "Welcome to MythOS",
		BannerEnabled: false,
	}
}
