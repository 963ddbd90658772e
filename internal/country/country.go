// Package country maps ISO 3166 alpha-2 codes to display names.
package country

const Unknown = "Unknown"

var names = map[string]string{
	"AD": "Andorra",
	"AT": "Austria",
	"BE": "Belgium",
	"CH": "Switzerland",
	"CY": "Cyprus",
	"CZ": "Czech Republic",
	"DE": "Germany",
	"DK": "Denmark",
	"EE": "Estonia",
	"ES": "Spain",
	"FI": "Finland",
	"FR": "France",
	"GB": "United Kingdom",
	"GR": "Greece",
	"HR": "Croatia",
	"HU": "Hungary",
	"IE": "Ireland",
	"IS": "Iceland",
	"IT": "Italy",
	"LI": "Liechtenstein",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"MC": "Monaco",
	"MT": "Malta",
	"NL": "Netherlands",
	"NO": "Norway",
	"PL": "Poland",
	"PT": "Portugal",
	"RO": "Romania",
	"SE": "Sweden",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"US": "United States",
}

// Name returns the display name for code, or Unknown.
func Name(code string) string {
	if name, ok := names[code]; ok {
		return name
	}
	return Unknown
}
