package models

// Region values for the Africa map.
const (
	RegionNorth   = "North"
	RegionWest    = "West"
	RegionEast    = "East"
	RegionCentral = "Central"
	RegionSouth   = "South"
)

// Regions lists the five map regions in display order.
var Regions = []string{RegionNorth, RegionWest, RegionEast, RegionCentral, RegionSouth}

// Country is admin-managed reference data read by the map and the
// statistics endpoints.
type Country struct {
	CountryID  string   `gorm:"primaryKey;column:country_id" json:"country_id"`
	Name       string   `gorm:"column:name" json:"name"`
	Capital    string   `gorm:"column:capital" json:"capital"`
	Population int64    `gorm:"column:population" json:"population"`
	Area       int64    `gorm:"column:area" json:"area"`
	Region     string   `gorm:"column:region" json:"region"`
	GDP        *int64   `gorm:"column:gdp" json:"gdp,omitempty"`
	Languages  []string `gorm:"column:languages;serializer:json" json:"languages,omitempty"`
}

func (Country) TableName() string {
	return "countries"
}

// ValidRegion reports whether region is one of the five map regions.
func ValidRegion(region string) bool {
	switch region {
	case RegionNorth, RegionWest, RegionEast, RegionCentral, RegionSouth:
		return true
	}
	return false
}
