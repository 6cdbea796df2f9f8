package georelate

// stateFIPS maps a U.S. Census state FIPS code to its name, ported from
// the original implementation's state table. Used to compose an optional
// state-name suffix onto a dataset object's display name when the dataset
// config supplies a FIPS column (spec.md §3 name composition).
var stateFIPS = map[int]string{
	1: "Alabama", 2: "Alaska", 3: "American Samoa", 4: "Arizona", 5: "Arkansas",
	6: "California", 7: "Canal Zone", 8: "Colorado", 9: "Connecticut", 10: "Delaware",
	11: "District of Columbia", 12: "Florida", 13: "Georgia", 14: "Guam", 15: "Hawaii",
	16: "Idaho", 17: "Illinois", 18: "Indiana", 19: "Iowa", 20: "Kansas",
	21: "Kentucky", 22: "Louisiana", 23: "Maine", 24: "Maryland", 25: "Massachusetts",
	26: "Michigan", 27: "Minnesota", 28: "Mississippi", 29: "Missouri", 30: "Montana",
	31: "Nebraska", 32: "Nevada", 33: "New Hampshire", 34: "New Jersey", 35: "New Mexico",
	36: "New York", 37: "North Carolina", 38: "North Dakota", 39: "Ohio", 40: "Oklahoma",
	41: "Oregon", 42: "Pennsylvania", 43: "Puerto Rico", 44: "Rhode Island", 45: "South Carolina",
	46: "South Dakota", 47: "Tennessee", 48: "Texas", 49: "Utah", 50: "Vermont",
	51: "Virginia", 52: "Virgin Islands of the U.S.", 53: "Washington", 54: "West Virginia",
	55: "Wisconsin", 56: "Wyoming", 60: "American Samoa", 64: "Federated States of Micronesia",
	66: "Guam", 67: "Johnston Atoll", 68: "Marshall Islands", 69: "Northern Mariana Islands",
	70: "Palau", 71: "Midway Islands", 72: "Puerto Rico", 74: "U.S. Minor Outlying Islands",
	76: "Navassa Island", 78: "Virgin Islands of the U.S.", 79: "Wake Island", 81: "Baker Island",
	84: "Howland Island", 86: "Jarvis Island", 89: "Kingman Reef", 95: "Palmyra Atoll",
}

// stateFPToStateName returns the state name for a FIPS code, or the
// original implementation's literal fallback string when the code is
// unrecognized.
func stateFPToStateName(fp int) string {
	if name, ok := stateFIPS[fp]; ok {
		return name
	}
	return "Invalid FIPS Code"
}
