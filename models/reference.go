package models

// The five PIFAH investment pillars.
const (
	PillarHealthInfrastructure = "Health Infrastructure"
	PillarLocalManufacturing   = "Local Manufacturing"
	PillarDiagnosticsImaging   = "Diagnostics & Imaging"
	PillarDigitalHealthAI      = "Digital Health & AI"
	PillarHumanCapital         = "Human Capital Development"
)

// Pillars lists the investment pillars in display order.
var Pillars = []string{
	PillarHealthInfrastructure,
	PillarLocalManufacturing,
	PillarDiagnosticsImaging,
	PillarDigitalHealthAI,
	PillarHumanCapital,
}

// ValidPillar reports whether pillar is one of the five PIFAH pillars.
func ValidPillar(pillar string) bool {
	for _, p := range Pillars {
		if p == pillar {
			return true
		}
	}
	return false
}

// REC is a Regional Economic Community. Display-only reference data;
// RECs take no part in workflow or aggregation logic.
type REC struct {
	Acronym   string   `json:"acronym"`
	Name      string   `json:"name"`
	Countries []string `json:"countries"`
	Color     string   `json:"color"`
}

// RECs lists the eight Regional Economic Communities.
var RECs = []REC{
	{
		Acronym:   "ECOWAS",
		Name:      "Economic Community of West African States",
		Countries: []string{"Benin", "Burkina Faso", "Cape Verde", "Ivory Coast", "Gambia", "Ghana", "Guinea", "Guinea-Bissau", "Liberia", "Mali", "Niger", "Nigeria", "Senegal", "Sierra Leone", "Togo"},
		Color:     "hsl(210, 75%, 60%)",
	},
	{
		Acronym:   "EAC",
		Name:      "East African Community",
		Countries: []string{"Burundi", "Kenya", "Rwanda", "South Sudan", "Tanzania", "Uganda"},
		Color:     "hsl(150, 65%, 55%)",
	},
	{
		Acronym:   "SADC",
		Name:      "Southern African Development Community",
		Countries: []string{"Angola", "Botswana", "Comoros", "Democratic Republic of the Congo", "Eswatini", "Lesotho", "Madagascar", "Malawi", "Mauritius", "Mozambique", "Namibia", "Seychelles", "South Africa", "Tanzania", "Zambia", "Zimbabwe"},
		Color:     "hsl(280, 65%, 60%)",
	},
	{
		Acronym:   "COMESA",
		Name:      "Common Market for Eastern and Southern Africa",
		Countries: []string{"Burundi", "Comoros", "Democratic Republic of the Congo", "Djibouti", "Egypt", "Eritrea", "Eswatini", "Ethiopia", "Kenya", "Libya", "Madagascar", "Malawi", "Mauritius", "Rwanda", "Seychelles", "Somalia", "Sudan", "Tunisia", "Uganda", "Zambia", "Zimbabwe"},
		Color:     "hsl(30, 75%, 58%)",
	},
	{
		Acronym:   "IGAD",
		Name:      "Intergovernmental Authority on Development",
		Countries: []string{"Djibouti", "Eritrea", "Ethiopia", "Kenya", "Somalia", "South Sudan", "Sudan", "Uganda"},
		Color:     "hsl(340, 70%, 62%)",
	},
	{
		Acronym:   "ECCAS",
		Name:      "Economic Community of Central African States",
		Countries: []string{"Angola", "Burundi", "Cameroon", "Central African Republic", "Chad", "Democratic Republic of the Congo", "Republic of the Congo", "Equatorial Guinea", "Gabon", "Rwanda", "São Tomé and Príncipe"},
		Color:     "hsl(180, 65%, 55%)",
	},
	{
		Acronym:   "AMU",
		Name:      "Arab Maghreb Union",
		Countries: []string{"Algeria", "Libya", "Mauritania", "Morocco", "Tunisia"},
		Color:     "hsl(45, 75%, 58%)",
	},
	{
		Acronym:   "CEN-SAD",
		Name:      "Community of Sahel-Saharan States",
		Countries: []string{"Benin", "Burkina Faso", "Central African Republic", "Chad", "Comoros", "Ivory Coast", "Djibouti", "Egypt", "Eritrea", "Gambia", "Ghana", "Guinea", "Guinea-Bissau", "Kenya", "Liberia", "Libya", "Mali", "Mauritania", "Morocco", "Niger", "Nigeria", "Senegal", "Sierra Leone", "Somalia", "Sudan", "Togo", "Tunisia"},
		Color:     "hsl(260, 60%, 60%)",
	},
}

// RECsForCountry returns the communities a country belongs to.
func RECsForCountry(countryName string) []REC {
	var out []REC
	for _, rec := range RECs {
		for _, c := range rec.Countries {
			if c == countryName {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
