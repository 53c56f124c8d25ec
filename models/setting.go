package models

import "time"

// Setting keys.
const (
	SettingRegionColors = "region_colors"
	SettingBranding     = "branding"
)

// Setting represents key-value application settings such as the map
// region colors and branding image references. Values are JSON.
type Setting struct {
	Key      string     `gorm:"primaryKey;column:setting_key" json:"key"`
	Value    string     `gorm:"column:setting_value" json:"value"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

// TableName specifies the table name for GORM
func (Setting) TableName() string {
	return "system_settings"
}

// RegionColors maps each of the five map regions to a display color.
type RegionColors struct {
	North   string `json:"North"`
	West    string `json:"West"`
	East    string `json:"East"`
	Central string `json:"Central"`
	South   string `json:"South"`
}

// DefaultRegionColors are used until an admin customizes the map.
func DefaultRegionColors() RegionColors {
	return RegionColors{
		North:   "hsl(200 70% 45%)",
		West:    "hsl(150 55% 45%)",
		East:    "hsl(280 60% 50%)",
		Central: "hsl(30 65% 50%)",
		South:   "hsl(340 65% 50%)",
	}
}

// Branding holds references to uploaded brand assets. The files
// themselves live in external storage; only the references are kept.
type Branding struct {
	LogoURL   string `json:"logo_url"`
	BannerURL string `json:"banner_url"`
	SiteTitle string `json:"site_title"`
}
