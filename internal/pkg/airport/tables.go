package airport

type cityCode struct {
	city string
	code string
}

// cityCodes is ordered: substring and fuzzy matching return the first
// candidate in this order on ties.
var cityCodes = []cityCode{
	// India
	{"mumbai", "BOM"}, {"bombay", "BOM"},
	{"delhi", "DEL"}, {"new delhi", "DEL"},
	{"bangalore", "BLR"}, {"bengaluru", "BLR"},
	{"hyderabad", "HYD"}, {"hyd", "HYD"},
	{"chennai", "MAA"}, {"madras", "MAA"},
	{"kolkata", "CCU"}, {"calcutta", "CCU"},
	{"pune", "PNQ"}, {"poona", "PNQ"},
	{"goa", "GOI"}, {"panaji", "GOI"},
	{"ahmedabad", "AMD"}, {"kochi", "COK"}, {"cochin", "COK"},
	{"trivandrum", "TRV"}, {"thiruvananthapuram", "TRV"},
	{"jaipur", "JAI"}, {"udaipur", "UDR"}, {"jodhpur", "JDH"},

	// Southeast Asia
	{"singapore", "SIN"}, {"bangkok", "BKK"}, {"kuala lumpur", "KUL"},
	{"jakarta", "CGK"}, {"manila", "MNL"}, {"ho chi minh", "SGN"},
	{"hanoi", "HAN"}, {"phnom penh", "PNH"}, {"yangon", "RGN"},
	{"denpasar", "DPS"}, {"bali", "DPS"},

	// Middle East
	{"dubai", "DXB"}, {"abu dhabi", "AUH"}, {"doha", "DOH"},
	{"kuwait", "KWI"}, {"riyadh", "RUH"}, {"jeddah", "JED"},
	{"muscat", "MCT"}, {"tehran", "IKA"}, {"baghdad", "BGW"},
	{"beirut", "BEY"}, {"amman", "AMM"}, {"tel aviv", "TLV"},

	// Europe
	{"london", "LHR"}, {"heathrow", "LHR"}, {"gatwick", "LGW"},
	{"manchester", "MAN"}, {"edinburgh", "EDI"}, {"glasgow", "GLA"},
	{"paris", "CDG"}, {"charles de gaulle", "CDG"}, {"orly", "ORY"},
	{"amsterdam", "AMS"}, {"frankfurt", "FRA"}, {"munich", "MUC"},
	{"berlin", "BER"}, {"hamburg", "HAM"}, {"cologne", "CGN"},
	{"zurich", "ZUR"}, {"geneva", "GVA"}, {"basel", "BSL"},
	{"madrid", "MAD"}, {"barcelona", "BCN"}, {"lisbon", "LIS"},
	{"rome", "FCO"}, {"fiumicino", "FCO"}, {"milan", "MXP"},
	{"venice", "VCE"}, {"naples", "NAP"}, {"vienna", "VIE"},
	{"brussels", "BRU"}, {"stockholm", "ARN"}, {"copenhagen", "CPH"},
	{"oslo", "OSL"}, {"helsinki", "HEL"}, {"reykjavik", "KEF"},
	{"athens", "ATH"}, {"istanbul", "IST"}, {"ankara", "ESB"},
	{"moscow", "SVO"}, {"st petersburg", "LED"},

	// North America
	{"new york", "JFK"}, {"jfk", "JFK"}, {"laguardia", "LGA"}, {"newark", "EWR"},
	{"los angeles", "LAX"}, {"san francisco", "SFO"}, {"chicago", "ORD"},
	{"miami", "MIA"}, {"las vegas", "LAS"}, {"seattle", "SEA"},
	{"boston", "BOS"}, {"washington", "DCA"}, {"atlanta", "ATL"},
	{"denver", "DEN"}, {"phoenix", "PHX"}, {"dallas", "DFW"},
	{"houston", "IAH"}, {"philadelphia", "PHL"}, {"detroit", "DTW"},
	{"toronto", "YYZ"}, {"vancouver", "YVR"}, {"montreal", "YUL"},
	{"calgary", "YYC"}, {"ottawa", "YOW"}, {"winnipeg", "YWG"},
	{"mexico city", "MEX"}, {"cancun", "CUN"}, {"guadalajara", "GDL"},

	// East Asia
	{"tokyo", "NRT"}, {"narita", "NRT"}, {"haneda", "HND"},
	{"osaka", "KIX"}, {"kyoto", "KIX"}, {"nagoya", "NGO"},
	{"seoul", "ICN"}, {"incheon", "ICN"}, {"gimpo", "GMP"},
	{"busan", "PUS"}, {"beijing", "PEK"}, {"capital", "PEK"},
	{"shanghai", "PVG"}, {"pudong", "PVG"}, {"hongqiao", "SHA"},
	{"guangzhou", "CAN"}, {"shenzhen", "SZX"}, {"chengdu", "CTU"},
	{"hong kong", "HKG"}, {"macau", "MFM"}, {"taipei", "TPE"},
	{"kaohsiung", "KHH"},

	// Oceania
	{"sydney", "SYD"}, {"melbourne", "MEL"}, {"brisbane", "BNE"},
	{"perth", "PER"}, {"adelaide", "ADL"}, {"darwin", "DRW"},
	{"auckland", "AKL"}, {"wellington", "WLG"}, {"christchurch", "CHC"},
	{"fiji", "NAN"}, {"nadi", "NAN"},

	// Africa
	{"cairo", "CAI"}, {"casablanca", "CMN"}, {"johannesburg", "JNB"},
	{"cape town", "CPT"}, {"nairobi", "NBO"}, {"lagos", "LOS"},
	{"addis ababa", "ADD"}, {"tunis", "TUN"}, {"algiers", "ALG"},

	// South America
	{"sao paulo", "GRU"}, {"rio de janeiro", "GIG"}, {"brasilia", "BSB"},
	{"buenos aires", "EZE"}, {"lima", "LIM"}, {"bogota", "BOG"},
	{"santiago", "SCL"}, {"caracas", "CCS"}, {"quito", "UIO"},
}

// codeCities is the reverse table. Its spelling is authoritative for
// code -> city and may differ from the forward table.
var codeCities = map[string]string{
	// India
	"BLR": "Bangalore", "DEL": "Delhi", "BOM": "Mumbai", "MAA": "Chennai",
	"CCU": "Kolkata", "HYD": "Hyderabad", "AMD": "Ahmedabad", "COK": "Kochi",
	"GOI": "Goa", "PNQ": "Pune", "IXC": "Chandigarh", "JAI": "Jaipur",
	"LKO": "Lucknow", "NAG": "Nagpur", "IXB": "Bagdogra", "TRV": "Trivandrum",
	"UDR": "Udaipur", "JDH": "Jodhpur",

	// Southeast Asia
	"SIN": "Singapore", "KUL": "Kuala Lumpur", "BKK": "Bangkok", "CGK": "Jakarta",
	"MNL": "Manila", "HAN": "Hanoi", "SGN": "Ho Chi Minh City", "RGN": "Yangon",
	"PNH": "Phnom Penh", "VTE": "Vientiane", "BWN": "Bandar Seri Begawan",
	"DPS": "Denpasar",

	// Middle East
	"DXB": "Dubai", "AUH": "Abu Dhabi", "DOH": "Doha", "KWI": "Kuwait City",
	"RUH": "Riyadh", "JED": "Jeddah", "BAH": "Manama", "MCT": "Muscat",
	"AMM": "Amman", "BEY": "Beirut", "DAM": "Damascus", "BGW": "Baghdad",
	"IKA": "Tehran", "TBS": "Tbilisi", "EVN": "Yerevan", "TLV": "Tel Aviv",

	// Europe
	"LHR": "London", "LGW": "London", "MAN": "Manchester", "EDI": "Edinburgh",
	"GLA": "Glasgow", "CDG": "Paris", "ORY": "Paris", "FRA": "Frankfurt",
	"AMS": "Amsterdam", "MAD": "Madrid", "BCN": "Barcelona", "LIS": "Lisbon",
	"FCO": "Rome", "MXP": "Milan", "VCE": "Venice", "NAP": "Naples",
	"MUC": "Munich", "BER": "Berlin", "HAM": "Hamburg", "CGN": "Cologne",
	"VIE": "Vienna", "ZUR": "Zurich", "GVA": "Geneva", "BSL": "Basel",
	"BRU": "Brussels", "CPH": "Copenhagen", "ARN": "Stockholm", "OSL": "Oslo",
	"HEL": "Helsinki", "KEF": "Reykjavik", "WAW": "Warsaw", "PRG": "Prague",
	"BUD": "Budapest", "ATH": "Athens", "IST": "Istanbul", "ESB": "Ankara",
	"SVO": "Moscow", "LED": "St Petersburg",

	// North America
	"JFK": "New York", "LGA": "New York", "EWR": "Newark", "LAX": "Los Angeles",
	"SFO": "San Francisco", "ORD": "Chicago", "MIA": "Miami", "LAS": "Las Vegas",
	"SEA": "Seattle", "BOS": "Boston", "DCA": "Washington", "ATL": "Atlanta",
	"DEN": "Denver", "PHX": "Phoenix", "DFW": "Dallas", "IAH": "Houston",
	"PHL": "Philadelphia", "DTW": "Detroit", "YYZ": "Toronto", "YVR": "Vancouver",
	"YUL": "Montreal", "YYC": "Calgary", "YOW": "Ottawa", "YWG": "Winnipeg",
	"MEX": "Mexico City", "CUN": "Cancun", "GDL": "Guadalajara",

	// East Asia
	"NRT": "Tokyo", "HND": "Tokyo", "KIX": "Osaka", "NGO": "Nagoya",
	"ICN": "Seoul", "GMP": "Seoul", "PUS": "Busan", "PEK": "Beijing",
	"PVG": "Shanghai", "SHA": "Shanghai", "CAN": "Guangzhou", "SZX": "Shenzhen",
	"CTU": "Chengdu", "HKG": "Hong Kong", "MFM": "Macau", "TPE": "Taipei",
	"KHH": "Kaohsiung",

	// Oceania
	"SYD": "Sydney", "MEL": "Melbourne", "BNE": "Brisbane", "PER": "Perth",
	"ADL": "Adelaide", "DRW": "Darwin", "AKL": "Auckland", "WLG": "Wellington",
	"CHC": "Christchurch", "NAN": "Nadi",

	// Africa
	"CAI": "Cairo", "CMN": "Casablanca", "JNB": "Johannesburg", "CPT": "Cape Town",
	"NBO": "Nairobi", "LOS": "Lagos", "ADD": "Addis Ababa", "TUN": "Tunis",
	"ALG": "Algiers",

	// South America
	"GRU": "Sao Paulo", "GIG": "Rio de Janeiro", "BSB": "Brasilia",
	"EZE": "Buenos Aires", "LIM": "Lima", "BOG": "Bogota", "SCL": "Santiago",
	"CCS": "Caracas", "UIO": "Quito",
}

var timezoneLabels = map[string]string{
	// India
	"BOM": "Indian Time (IST)", "DEL": "Indian Time (IST)", "BLR": "Indian Time (IST)",
	"MAA": "Indian Time (IST)", "CCU": "Indian Time (IST)", "HYD": "Indian Time (IST)",
	"AMD": "Indian Time (IST)", "COK": "Indian Time (IST)", "GOI": "Indian Time (IST)",
	"PNQ": "Indian Time (IST)", "TRV": "Indian Time (IST)", "JAI": "Indian Time (IST)",

	// Southeast Asia
	"SIN": "Singapore Time (SGT)",
	"KUL": "Malaysia Time (MYT)",
	"BKK": "Thailand Time (ICT)",
	"CGK": "Indonesia Time (WIB)",
	"DPS": "Indonesia Time (WITA)",
	"MNL": "Philippines Time (PHT)",
	"HAN": "Vietnam Time (ICT)",
	"SGN": "Vietnam Time (ICT)",

	// Middle East
	"DXB": "UAE Time (GST)",
	"AUH": "UAE Time (GST)",
	"DOH": "Qatar Time (AST)",
	"KWI": "Kuwait Time (AST)",
	"RUH": "Saudi Time (AST)",
	"JED": "Saudi Time (AST)",
	"MCT": "Oman Time (GST)",
	"TLV": "Israel Time (IST)",
	"BEY": "Lebanon Time (EET)",
	"AMM": "Jordan Time (EET)",

	// Europe
	"LHR": "UK Time (GMT/BST)",
	"LGW": "UK Time (GMT/BST)",
	"MAN": "UK Time (GMT/BST)",
	"CDG": "France Time (CET/CEST)",
	"ORY": "France Time (CET/CEST)",
	"AMS": "Netherlands Time (CET/CEST)",
	"FRA": "Germany Time (CET/CEST)",
	"MUC": "Germany Time (CET/CEST)",
	"ZUR": "Switzerland Time (CET/CEST)",
	"VIE": "Austria Time (CET/CEST)",
	"FCO": "Italy Time (CET/CEST)",
	"MXP": "Italy Time (CET/CEST)",
	"MAD": "Spain Time (CET/CEST)",
	"BCN": "Spain Time (CET/CEST)",
	"IST": "Turkey Time (TRT)",
	"SVO": "Russia Time (MSK)",
	"ATH": "Greece Time (EET)",

	// North America
	"JFK": "US Eastern Time (EST/EDT)",
	"LGA": "US Eastern Time (EST/EDT)",
	"EWR": "US Eastern Time (EST/EDT)",
	"LAX": "US Pacific Time (PST/PDT)",
	"SFO": "US Pacific Time (PST/PDT)",
	"ORD": "US Central Time (CST/CDT)",
	"DFW": "US Central Time (CST/CDT)",
	"YYZ": "Canada Eastern Time (EST/EDT)",
	"YVR": "Canada Pacific Time (PST/PDT)",

	// East Asia
	"NRT": "Japan Time (JST)",
	"HND": "Japan Time (JST)",
	"KIX": "Japan Time (JST)",
	"ICN": "Korea Time (KST)",
	"GMP": "Korea Time (KST)",
	"PEK": "China Time (CST)",
	"PVG": "China Time (CST)",
	"SHA": "China Time (CST)",
	"HKG": "Hong Kong Time (HKT)",
	"TPE": "Taiwan Time (CST)",

	// Oceania
	"SYD": "Australia Eastern Time (AEST/AEDT)",
	"MEL": "Australia Eastern Time (AEST/AEDT)",
	"BNE": "Australia Eastern Time (AEST/AEDT)",
	"PER": "Australia Western Time (AWST)",
	"AKL": "New Zealand Time (NZST/NZDT)",

	// Africa
	"CAI": "Egypt Time (EET)",
	"JNB": "South Africa Time (SAST)",
	"CPT": "South Africa Time (SAST)",
	"NBO": "Kenya Time (EAT)",
	"ADD": "Ethiopia Time (EAT)",
}

var airlineCodes = map[string]string{
	"indigo":             "6E",
	"air india":          "AI",
	"air india express":  "IX",
	"spicejet":           "SG",
	"go first":           "G8",
	"vistara":            "UK",
	"akasa air":          "QP",
	"singapore airlines": "SQ",
	"emirates":           "EK",
	"qatar airways":      "QR",
	"etihad airways":     "EY",
	"lufthansa":          "LH",
	"british airways":    "BA",
	"air france":         "AF",
	"klm":                "KL",
	"turkish airlines":   "TK",
	"cathay pacific":     "CX",
	"thai airways":       "TG",
	"malaysia airlines":  "MH",
	"korean air":         "KE",
	"japan airlines":     "JL",
	"all nippon airways": "NH",
}

// domesticAirports are the Indian airports booking platforms treat as
// domestic when building search links.
var domesticAirports = map[string]struct{}{
	"BLR": {}, "DEL": {}, "BOM": {}, "MAA": {}, "CCU": {}, "HYD": {}, "AMD": {}, "COK": {},
	"GOI": {}, "PNQ": {}, "JAI": {}, "IXC": {}, "LKO": {}, "NAG": {}, "IXB": {},
}
