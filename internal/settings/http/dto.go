package http

import (
	"time"

	"github.com/mythoslab/mythos-backend/internal/settings"
)

// Response is the shape of settings data returned by the API.
type Response struct {
	Theme         string     `json:"theme"`
	BannerText    string     `json:"banner_text"`
	BannerEnabled bool       `json:"banner_enabled"`
	FeatureName   string     `json:"feature_name,omitempty"`
	FeatureEndsAt *time.Time `json:"feature_ends_at,omitempty"`
}

func NewResponse(s settings.Settings) Response {
	return Response{
		Theme:         s.Theme,
		BannerText:    s.BannerText,
		BannerEnabled: s.BannerEnabled,
		FeatureName:   s.FeatureName,
		FeatureEndsAt: s.FeatureEndsAt,
	}
}

// UpdateBody is the payload for PUT /v1/settings.
type UpdateBody struct {
	Theme         string     `json:"theme" binding:"required"`
	BannerText    string     `json:"banner_text"`
	BannerEnabled bool       `json:"banner_enabled"`
	FeatureName   string     `json:"feature_name"`
	FeatureEndsAt *time.Time `json:"feature_ends_at"`
}

func (b UpdateBody) ToSettings() settings.Settings {
	return settings.Settings{
		Theme:         b.Theme,
		BannerText:    b.BannerText,
		BannerEnabled: b.BannerEnabled,
		FeatureName:   b.FeatureName,
		FeatureEndsAt: b.FeatureEndsAt,
	}
}
