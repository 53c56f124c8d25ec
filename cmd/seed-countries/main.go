package main

import (
	"log"

	"pifah-api/config"
	"pifah-api/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

func gdp(v int64) *int64 { return &v }

// africaCountries is the 54-country reference dataset rendered on the
// map. GDP figures are in billions of USD.
var africaCountries = []models.Country{
	{CountryID: "dz", Name: "Algeria", Capital: "Algiers", Population: 44700000, Area: 2381741, Region: models.RegionNorth, GDP: gdp(195)},
	{CountryID: "ao", Name: "Angola", Capital: "Luanda", Population: 35588000, Area: 1246700, Region: models.RegionCentral, GDP: gdp(94)},
	{CountryID: "bj", Name: "Benin", Capital: "Porto-Novo", Population: 13353000, Area: 112622, Region: models.RegionWest, GDP: gdp(17)},
	{CountryID: "bw", Name: "Botswana", Capital: "Gaborone", Population: 2630000, Area: 581730, Region: models.RegionSouth, GDP: gdp(18)},
	{CountryID: "bf", Name: "Burkina Faso", Capital: "Ouagadougou", Population: 22673000, Area: 272967, Region: models.RegionWest, GDP: gdp(19)},
	{CountryID: "bi", Name: "Burundi", Capital: "Gitega", Population: 12889000, Area: 27834, Region: models.RegionEast, GDP: gdp(3)},
	{CountryID: "cm", Name: "Cameroon", Capital: "Yaoundé", Population: 28088000, Area: 475442, Region: models.RegionCentral, GDP: gdp(45)},
	{CountryID: "cv", Name: "Cape Verde", Capital: "Praia", Population: 594000, Area: 4033, Region: models.RegionWest, GDP: gdp(2)},
	{CountryID: "cf", Name: "Central African Republic", Capital: "Bangui", Population: 5579000, Area: 622984, Region: models.RegionCentral, GDP: gdp(2)},
	{CountryID: "td", Name: "Chad", Capital: "N'Djamena", Population: 17723000, Area: 1284000, Region: models.RegionCentral, GDP: gdp(11)},
	{CountryID: "km", Name: "Comoros", Capital: "Moroni", Population: 907000, Area: 1862, Region: models.RegionEast, GDP: gdp(1)},
	{CountryID: "cg", Name: "Congo", Capital: "Brazzaville", Population: 5970000, Area: 342000, Region: models.RegionCentral, GDP: gdp(11)},
	{CountryID: "cd", Name: "DR Congo", Capital: "Kinshasa", Population: 99010000, Area: 2344858, Region: models.RegionCentral, GDP: gdp(55)},
	{CountryID: "ci", Name: "Côte d'Ivoire", Capital: "Yamoussoukro", Population: 28088000, Area: 322463, Region: models.RegionWest, GDP: gdp(70)},
	{CountryID: "dj", Name: "Djibouti", Capital: "Djibouti", Population: 1120000, Area: 23200, Region: models.RegionEast, GDP: gdp(4)},
	{CountryID: "eg", Name: "Egypt", Capital: "Cairo", Population: 111000000, Area: 1002450, Region: models.RegionNorth, GDP: gdp(469)},
	{CountryID: "gq", Name: "Equatorial Guinea", Capital: "Malabo", Population: 1674000, Area: 28051, Region: models.RegionCentral, GDP: gdp(10)},
	{CountryID: "er", Name: "Eritrea", Capital: "Asmara", Population: 3684000, Area: 117600, Region: models.RegionEast, GDP: gdp(2)},
	{CountryID: "sz", Name: "Eswatini", Capital: "Mbabane", Population: 1210000, Area: 17364, Region: models.RegionSouth, GDP: gdp(4)},
	{CountryID: "et", Name: "Ethiopia", Capital: "Addis Ababa", Population: 123379000, Area: 1104300, Region: models.RegionEast, GDP: gdp(126)},
	{CountryID: "ga", Name: "Gabon", Capital: "Libreville", Population: 2388000, Area: 267668, Region: models.RegionCentral, GDP: gdp(19)},
	{CountryID: "gm", Name: "Gambia", Capital: "Banjul", Population: 2706000, Area: 10689, Region: models.RegionWest, GDP: gdp(2)},
	{CountryID: "gh", Name: "Ghana", Capital: "Accra", Population: 34121000, Area: 238533, Region: models.RegionWest, GDP: gdp(77)},
	{CountryID: "gn", Name: "Guinea", Capital: "Conakry", Population: 14191000, Area: 245857, Region: models.RegionWest, GDP: gdp(16)},
	{CountryID: "gw", Name: "Guinea-Bissau", Capital: "Bissau", Population: 2106000, Area: 36125, Region: models.RegionWest, GDP: gdp(2)},
	{CountryID: "ke", Name: "Kenya", Capital: "Nairobi", Population: 55100000, Area: 580367, Region: models.RegionEast, GDP: gdp(115)},
	{CountryID: "ls", Name: "Lesotho", Capital: "Maseru", Population: 2306000, Area: 30355, Region: models.RegionSouth, GDP: gdp(2)},
	{CountryID: "lr", Name: "Liberia", Capital: "Monrovia", Population: 5418000, Area: 111369, Region: models.RegionWest, GDP: gdp(4)},
	{CountryID: "ly", Name: "Libya", Capital: "Tripoli", Population: 6888000, Area: 1759540, Region: models.RegionNorth, GDP: gdp(25)},
	{CountryID: "mg", Name: "Madagascar", Capital: "Antananarivo", Population: 30325000, Area: 587041, Region: models.RegionEast, GDP: gdp(15)},
	{CountryID: "mw", Name: "Malawi", Capital: "Lilongwe", Population: 20931000, Area: 118484, Region: models.RegionEast, GDP: gdp(13)},
	{CountryID: "ml", Name: "Mali", Capital: "Bamako", Population: 22594000, Area: 1240192, Region: models.RegionWest, GDP: gdp(19)},
	{CountryID: "mr", Name: "Mauritania", Capital: "Nouakchott", Population: 4862000, Area: 1030700, Region: models.RegionWest, GDP: gdp(9)},
	{CountryID: "mu", Name: "Mauritius", Capital: "Port Louis", Population: 1300000, Area: 2040, Region: models.RegionEast, GDP: gdp(12)},
	{CountryID: "ma", Name: "Morocco", Capital: "Rabat", Population: 37840000, Area: 446550, Region: models.RegionNorth, GDP: gdp(134)},
	{CountryID: "mz", Name: "Mozambique", Capital: "Maputo", Population: 33897000, Area: 801590, Region: models.RegionEast, GDP: gdp(16)},
	{CountryID: "na", Name: "Namibia", Capital: "Windhoek", Population: 2604000, Area: 825615, Region: models.RegionSouth, GDP: gdp(11)},
	{CountryID: "ne", Name: "Niger", Capital: "Niamey", Population: 26207000, Area: 1267000, Region: models.RegionWest, GDP: gdp(16)},
	{CountryID: "ng", Name: "Nigeria", Capital: "Abuja", Population: 223804000, Area: 923768, Region: models.RegionWest, GDP: gdp(477)},
	{CountryID: "rw", Name: "Rwanda", Capital: "Kigali", Population: 13776000, Area: 26338, Region: models.RegionEast, GDP: gdp(13)},
	{CountryID: "st", Name: "São Tomé and Príncipe", Capital: "São Tomé", Population: 231000, Area: 964, Region: models.RegionCentral, GDP: gdp(1)},
	{CountryID: "sn", Name: "Senegal", Capital: "Dakar", Population: 17740000, Area: 196722, Region: models.RegionWest, GDP: gdp(28)},
	{CountryID: "sc", Name: "Seychelles", Capital: "Victoria", Population: 107000, Area: 452, Region: models.RegionEast, GDP: gdp(2)},
	{CountryID: "sl", Name: "Sierra Leone", Capital: "Freetown", Population: 8606000, Area: 71740, Region: models.RegionWest, GDP: gdp(4)},
	{CountryID: "so", Name: "Somalia", Capital: "Mogadishu", Population: 18143000, Area: 637657, Region: models.RegionEast, GDP: gdp(8)},
	{CountryID: "za", Name: "South Africa", Capital: "Pretoria", Population: 60604000, Area: 1221037, Region: models.RegionSouth, GDP: gdp(380)},
	{CountryID: "ss", Name: "South Sudan", Capital: "Juba", Population: 11088000, Area: 644329, Region: models.RegionEast, GDP: gdp(3)},
	{CountryID: "sd", Name: "Sudan", Capital: "Khartoum", Population: 48109000, Area: 1886068, Region: models.RegionNorth, GDP: gdp(35)},
	{CountryID: "tz", Name: "Tanzania", Capital: "Dodoma", Population: 65498000, Area: 947303, Region: models.RegionEast, GDP: gdp(75)},
	{CountryID: "tg", Name: "Togo", Capital: "Lomé", Population: 8848000, Area: 56785, Region: models.RegionWest, GDP: gdp(8)},
	{CountryID: "tn", Name: "Tunisia", Capital: "Tunis", Population: 12458000, Area: 163610, Region: models.RegionNorth, GDP: gdp(47)},
	{CountryID: "ug", Name: "Uganda", Capital: "Kampala", Population: 48582000, Area: 241550, Region: models.RegionEast, GDP: gdp(45)},
	{CountryID: "zm", Name: "Zambia", Capital: "Lusaka", Population: 20017000, Area: 752612, Region: models.RegionSouth, GDP: gdp(22)},
	{CountryID: "zw", Name: "Zimbabwe", Capital: "Harare", Population: 16320000, Area: 390757, Region: models.RegionSouth, GDP: gdp(28)},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	config.MigrateDB()

	// Upsert so the seed can be re-run after manual edits.
	result := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "country_id"}},
		UpdateAll: true,
	}).Create(&africaCountries)

	if result.Error != nil {
		log.Fatal("Failed to seed countries:", result.Error)
	}

	log.Printf("Seeded %d countries", len(africaCountries))
}
