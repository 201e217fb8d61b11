package countries

var countryData = []Country{
	{Name: "Afghanistan", ShortCode: "AF"},
	{Name: "Albania", ShortCode: "AL"},
	{Name: "Algeria", ShortCode: "DZ"},
	{Name: "Andorra", ShortCode: "AD"},
	{Name: "Angola", ShortCode: "AO"},
	{Name: "Antigua and Barbuda", ShortCode: "AG"},
	{Name: "Argentina", ShortCode: "AR"},
	{Name: "Armenia", ShortCode: "AM"},
	{Name: "Australia", ShortCode: "AU"},
	{Name: "Austria", ShortCode: "AT"},
	{Name: "Azerbaijan", ShortCode: "AZ"},
	{Name: "Bahamas", ShortCode: "BS"},
	{Name: "Bahrain", ShortCode: "BH"},
	{Name: "Bangladesh", ShortCode: "BD"},
	{Name: "Barbados", ShortCode: "BB"},
	{Name: "Belarus", ShortCode: "BY"},
	{Name: "Belgium", ShortCode: "BE"},
	{Name: "Belize", ShortCode: "BZ"},
	{Name: "Benin", ShortCode: "BJ"},
	{Name: "Bhutan", ShortCode: "BT"},
	{Name: "Bolivia", ShortCode: "BO"},
	{Name: "Bosnia and Herzegovina", ShortCode: "BA"},
	{Name: "Botswana", ShortCode: "BW"},
	{Name: "Brazil", ShortCode: "BR"},
	{Name: "Brunei", ShortCode: "BN"},
	{Name: "Bulgaria", ShortCode: "BG"},
	{Name: "Burkina Faso", ShortCode: "BF"},
	{Name: "Burundi", ShortCode: "BI"},
	{Name: "Cabo Verde", ShortCode: "CV"},
	{Name: "Cambodia", ShortCode: "KH"},
	{Name: "Cameroon", ShortCode: "CM"},
	{Name: "Canada", ShortCode: "CA"},
	{Name: "Central African Republic", ShortCode: "CF"},
	{Name: "Chad", ShortCode: "TD"},
	{Name: "Chile", ShortCode: "CL"},
	{Name: "China", ShortCode: "CN"},
	{Name: "Colombia", ShortCode: "CO"},
	{Name: "Comoros", ShortCode: "KM"},
	{Name: "Congo", ShortCode: "CG"},
	{Name: "Costa Rica", ShortCode: "CR"},
	{Name: "Croatia", ShortCode: "HR"},
	{Name: "Cuba", ShortCode: "CU"},
	{Name: "Cyprus", ShortCode: "CY"},
	{Name: "Czechia", ShortCode: "CZ"},
	{Name: "Democratic Republic of the Congo", ShortCode: "CD"},
	{Name: "Denmark", ShortCode: "DK"},
	{Name: "Djibouti", ShortCode: "DJ"},
	{Name: "Dominica", ShortCode: "DM"},
	{Name: "Dominican Republic", ShortCode: "DO"},
	{Name: "Ecuador", ShortCode: "EC"},
	{Name: "Egypt", ShortCode: "EG"},
	{Name: "El Salvador", ShortCode: "SV"},
	{Name: "Equatorial Guinea", ShortCode: "GQ"},
	{Name: "Eritrea", ShortCode: "ER"},
	{Name: "Estonia", ShortCode: "EE"},
	{Name: "Eswatini", ShortCode: "SZ"},
	{Name: "Ethiopia", ShortCode: "ET"},
	{Name: "Fiji", ShortCode: "FJ"},
	{Name: "Finland", ShortCode: "FI"},
	{Name: "France", ShortCode: "FR"},
	{Name: "Gabon", ShortCode: "GA"},
	{Name: "Gambia", ShortCode: "GM"},
	{Name: "Georgia", ShortCode: "GE"},
	{Name: "Germany", ShortCode: "DE"},
	{Name: "Ghana", ShortCode: "GH"},
	{Name: "Greece", ShortCode: "GR"},
	{Name: "Grenada", ShortCode: "GD"},
	{Name: "Guatemala", ShortCode: "GT"},
	{Name: "Guinea", ShortCode: "GN"},
	{Name: "Guinea-Bissau", ShortCode: "GW"},
	{Name: "Guyana", ShortCode: "GY"},
	{Name: "Haiti", ShortCode: "HT"},
	{Name: "Honduras", ShortCode: "HN"},
	{Name: "Hong Kong", ShortCode: "HK"},
	{Name: "Hungary", ShortCode: "HU"},
	{Name: "Iceland", ShortCode: "IS"},
	{Name: "India", ShortCode: "IN"},
	{Name: "Indonesia", ShortCode: "ID"},
	{Name: "Iran", ShortCode: "IR"},
	{Name: "Iraq", ShortCode: "IQ"},
	{Name: "Ireland", ShortCode: "IE"},
	{Name: "Israel", ShortCode: "IL"},
	{Name: "Italy", ShortCode: "IT"},
	{Name: "Ivory Coast", ShortCode: "CI"},
	{Name: "Jamaica", ShortCode: "JM"},
	{Name: "Japan", ShortCode: "JP"},
	{Name: "Jordan", ShortCode: "JO"},
	{Name: "Kazakhstan", ShortCode: "KZ"},
	{Name: "Kenya", ShortCode: "KE"},
	{Name: "Kiribati", ShortCode: "KI"},
	{Name: "Kosovo", ShortCode: "XK"},
	{Name: "Kuwait", ShortCode: "KW"},
	{Name: "Kyrgyzstan", ShortCode: "KG"},
	{Name: "Laos", ShortCode: "LA"},
	{Name: "Latvia", ShortCode: "LV"},
	{Name: "Lebanon", ShortCode: "LB"},
	{Name: "Lesotho", ShortCode: "LS"},
	{Name: "Liberia", ShortCode: "LR"},
	{Name: "Libya", ShortCode: "LY"},
	{Name: "Liechtenstein", ShortCode: "LI"},
	{Name: "Lithuania", ShortCode: "LT"},
	{Name: "Luxembourg", ShortCode: "LU"},
	{Name: "Madagascar", ShortCode: "MG"},
	{Name: "Malawi", ShortCode: "MW"},
	{Name: "Malaysia", ShortCode: "MY"},
	{Name: "Maldives", ShortCode: "MV"},
	{Name: "Mali", ShortCode: "ML"},
	{Name: "Malta", ShortCode: "MT"},
	{Name: "Marshall Islands", ShortCode: "MH"},
	{Name: "Mauritania", ShortCode: "MR"},
	{Name: "Mauritius", ShortCode: "MU"},
	{Name: "Mexico", ShortCode: "MX"},
	{Name: "Micronesia", ShortCode: "FM"},
	{Name: "Moldova", ShortCode: "MD"},
	{Name: "Monaco", ShortCode: "MC"},
	{Name: "Mongolia", ShortCode: "MN"},
	{Name: "Montenegro", ShortCode: "ME"},
	{Name: "Morocco", ShortCode: "MA"},
	{Name: "Mozambique", ShortCode: "MZ"},
	{Name: "Myanmar", ShortCode: "MM"},
	{Name: "Namibia", ShortCode: "NA"},
	{Name: "Nauru", ShortCode: "NR"},
	{Name: "Nepal", ShortCode: "NP"},
	{Name: "Netherlands", ShortCode: "NL"},
	{Name: "New Zealand", ShortCode: "NZ"},
	{Name: "Nicaragua", ShortCode: "NI"},
	{Name: "Niger", ShortCode: "NE"},
	{Name: "Nigeria", ShortCode: "NG"},
	{Name: "North Korea", ShortCode: "KP"},
	{Name: "North Macedonia", ShortCode: "MK"},
	{Name: "Norway", ShortCode: "NO"},
	{Name: "Oman", ShortCode: "OM"},
	{Name: "Pakistan", ShortCode: "PK"},
	{Name: "Palau", ShortCode: "PW"},
	{Name: "Palestine", ShortCode: "PS"},
	{Name: "Panama", ShortCode: "PA"},
	{Name: "Papua New Guinea", ShortCode: "PG"},
	{Name: "Paraguay", ShortCode: "PY"},
	{Name: "Peru", ShortCode: "PE"},
	{Name: "Philippines", ShortCode: "PH"},
	{Name: "Poland", ShortCode: "PL"},
	{Name: "Portugal", ShortCode: "PT"},
	{Name: "Puerto Rico", ShortCode: "PR"},
	{Name: "Qatar", ShortCode: "QA"},
	{Name: "Romania", ShortCode: "RO"},
	{Name: "Russia", ShortCode: "RU"},
	{Name: "Rwanda", ShortCode: "RW"},
	{Name: "Saint Kitts and Nevis", ShortCode: "KN"},
	{Name: "Saint Lucia", ShortCode: "LC"},
	{Name: "Saint Vincent and the Grenadines", ShortCode: "VC"},
	{Name: "Samoa", ShortCode: "WS"},
	{Name: "San Marino", ShortCode: "SM"},
	{Name: "Sao Tome and Principe", ShortCode: "ST"},
	{Name: "Saudi Arabia", ShortCode: "SA"},
	{Name: "Senegal", ShortCode: "SN"},
	{Name: "Serbia", ShortCode: "RS"},
	{Name: "Seychelles", ShortCode: "SC"},
	{Name: "Sierra Leone", ShortCode: "SL"},
	{Name: "Singapore", ShortCode: "SG"},
	{Name: "Slovakia", ShortCode: "SK"},
	{Name: "Slovenia", ShortCode: "SI"},
	{Name: "Solomon Islands", ShortCode: "SB"},
	{Name: "Somalia", ShortCode: "SO"},
	{Name: "South Africa", ShortCode: "ZA"},
	{Name: "South Korea", ShortCode: "KR"},
	{Name: "South Sudan", ShortCode: "SS"},
	{Name: "Spain", ShortCode: "ES"},
	{Name: "Sri Lanka", ShortCode: "LK"},
	{Name: "Sudan", ShortCode: "SD"},
	{Name: "Suriname", ShortCode: "SR"},
	{Name: "Sweden", ShortCode: "SE"},
	{Name: "Switzerland", ShortCode: "CH"},
	{Name: "Syria", ShortCode: "SY"},
	{Name: "Taiwan", ShortCode: "TW"},
	{Name: "Tajikistan", ShortCode: "TJ"},
	{Name: "Tanzania", ShortCode: "TZ"},
	{Name: "Thailand", ShortCode: "TH"},
	{Name: "Timor-Leste", ShortCode: "TL"},
	{Name: "Togo", ShortCode: "TG"},
	{Name: "Tonga", ShortCode: "TO"},
	{Name: "Trinidad and Tobago", ShortCode: "TT"},
	{Name: "Tunisia", ShortCode: "TN"},
	{Name: "Turkey", ShortCode: "TR"},
	{Name: "Turkmenistan", ShortCode: "TM"},
	{Name: "Tuvalu", ShortCode: "TV"},
	{Name: "Uganda", ShortCode: "UG"},
	{Name: "Ukraine", ShortCode: "UA"},
	{Name: "United Arab Emirates", ShortCode: "AE"},
	{Name: "United Kingdom", ShortCode: "GB"},
	{Name: "United States", ShortCode: "US"},
	{Name: "Uruguay", ShortCode: "UY"},
	{Name: "Uzbekistan", ShortCode: "UZ"},
	{Name: "Vanuatu", ShortCode: "VU"},
	{Name: "Vatican City", ShortCode: "VA"},
	{Name: "Venezuela", ShortCode: "VE"},
	{Name: "Vietnam", ShortCode: "VN"},
	{Name: "Yemen", ShortCode: "YE"},
	{Name: "Zambia", ShortCode: "ZM"},
	{Name: "Zimbabwe", ShortCode: "ZW"},
}
