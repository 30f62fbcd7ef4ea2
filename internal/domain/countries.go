package domain

// Countries is the static country reference table: ISO 3166-1 alpha-2 code,
// display name, centroid position (lng, lat), and whether the geocoding
// backend returns structured street-number/street data for that country.
var Countries = []Country{
	{Code: "AF", Name: "Afghanistan", Position: []float64{69.10221, 34.53313}},
	{Code: "AX", Name: "Aland Islands", Position: []float64{-57.85802, -51.69671}},
	{Code: "AL", Name: "Albania", Position: []float64{19.82517, 41.32232}},
	{Code: "DZ", Name: "Algeria", Position: []float64{3.05929, 36.77156}},
	{Code: "AS", Name: "American Samoa", Position: []float64{-170.7035, -14.27272}},
	{Code: "AD", Name: "Andorra", Position: []float64{1.52604, 42.50514}},
	{Code: "AO", Name: "Angola", Position: []float64{13.23287, -8.81567}},
	{Code: "AI", Name: "Anguilla", Position: []float64{-63.0517, 18.21537}},
	{Code: "AQ", Name: "Antarctica", Position: []float64{20.67103, -80.41318}},
	{Code: "AG", Name: "Antigua and Barbuda", Position: []float64{-61.84158, 17.11632}},
	{Code: "AR", Name: "Argentina", Position: []float64{-58.37344, -34.6085}},
	{Code: "AM", Name: "Armenia", Position: []float64{44.51402, 40.17795}},
	{Code: "AW", Name: "Aruba", Position: []float64{-70.03488, 12.52367}},
	{Code: "AU", Name: "Australia", Position: []float64{149.1266, -35.3065}, Supported: true},
	{Code: "AT", Name: "Austria", Position: []float64{16.36842, 48.20263}},
	{Code: "AZ", Name: "Azerbaijan", Position: []float64{49.87222, 40.41066}},
	{Code: "BS", Name: "Bahamas, The", Position: []float64{-77.34079, 25.0771}},
	{Code: "BH", Name: "Bahrain", Position: []float64{50.57604, 26.22952}},
	{Code: "BD", Name: "Bangladesh", Position: []float64{90.39958, 23.71323}},
	{Code: "BB", Name: "Barbados", Position: []float64{-59.6127, 13.112}},
	{Code: "BY", Name: "Belarus", Position: []float64{27.56545, 53.90374}},
	{Code: "BE", Name: "Belgium", Position: []float64{4.35608, 50.84439}},
	{Code: "BZ", Name: "Belize", Position: []float64{-88.77043, 17.25414}},
	{Code: "BJ", Name: "Benin", Position: []float64{2.6138, 6.48812}},
	{Code: "BM", Name: "Bermuda", Position: []float64{-64.78414, 32.29362}},
	{Code: "BT", Name: "Bhutan", Position: []float64{89.63399, 27.47531}},
	{Code: "BO", Name: "Bolivia", Position: []float64{-68.13379, -16.49909}},
	{Code: "BQ", Name: "Bonaire, Saint Eustatius and Saba"},
	{Code: "BA", Name: "Bosnia and Herzegovina", Position: []float64{18.43583, 43.85945}},
	{Code: "BW", Name: "Botswana", Position: []float64{25.91903, -24.65528}},
	{Code: "BV", Name: "Bouvet Island", Position: []float64{-21.93419, 64.14748}},
	{Code: "BR", Name: "Brazil", Position: []float64{-47.92877, -15.77855}},
	{Code: "IO", Name: "British Indian Ocean Territory", Position: []float64{72.36922, -7.268}},
	{Code: "BN", Name: "Brunei Darussalam", Position: []float64{114.94043, 4.8919}},
	{Code: "BG", Name: "Bulgaria", Position: []float64{23.32433, 42.69718}},
	{Code: "BF", Name: "Burkina Faso", Position: []float64{-1.52711, 12.36857}},
	{Code: "BI", Name: "Burundi", Position: []float64{29.92956, -3.42705}},
	{Code: "KH", Name: "Cambodia", Position: []float64{104.87914, 11.56261}},
	{Code: "CM", Name: "Cameroon", Position: []float64{11.52025, 3.84675}},
	{Code: "CA", Name: "Canada", Position: []float64{-75.69122, 45.42177}, Supported: true},
	{Code: "IC", Name: "Canary Islands", Position: []float64{-81.38176, 19.29657}},
	{Code: "CV", Name: "Cape Verde", Position: []float64{-23.50941, 14.9155}},
	{Code: "KY", Name: "Cayman Islands", Position: []float64{-81.38176, 19.29657}},
	{Code: "CF", Name: "Central African Republic", Position: []float64{18.5586, 4.39669}},
	{Code: "TD", Name: "Chad", Position: []float64{15.04912, 12.11315}},
	{Code: "CL", Name: "Chile", Position: []float64{-70.65003, -33.43723}},
	{Code: "CN", Name: "China", Position: []float64{116.38765, 39.90657}},
	{Code: "CX", Name: "Christmas Island", Position: []float64{105.67326, -10.42496}},
	{Code: "CC", Name: "Cocos (Keeling) Islands", Position: []float64{96.82122, -12.15772}},
	{Code: "CO", Name: "Colombia", Position: []float64{-74.06942, 4.61496}},
	{Code: "KM", Name: "Comoros", Position: []float64{43.25918, -11.69222}},
	{Code: "CG", Name: "Congo", Position: []float64{15.26039, -4.27935}},
	{Code: "CD", Name: "Congo, The Democratic Republic of the", Position: []float64{15.28932, -4.31047}},
	{Code: "CK", Name: "Cook Islands", Position: []float64{-159.76823, -21.20975}},
	{Code: "CR", Name: "Costa Rica", Position: []float64{-84.0857, 9.92975}},
	{Code: "CI", Name: "Cote D'ivoire", Position: []float64{-5.28024, 6.82161}},
	{Code: "HR", Name: "Croatia", Position: []float64{15.96757, 45.80724}},
	{Code: "CW", Name: "Curaçao", Position: []float64{-68.93271, 12.10363}},
	{Code: "CY", Name: "Cyprus", Position: []float64{33.3649, 35.17216}},
	{Code: "CZ", Name: "Czech Republic", Position: []float64{14.43299, 50.07914}},
	{Code: "DK", Name: "Denmark", Position: []float64{12.56755, 55.67567}},
	{Code: "DJ", Name: "Djibouti", Position: []float64{43.14487, 11.58807}},
	{Code: "DM", Name: "Dominica", Position: []float64{-61.38608, 15.30198}},
	{Code: "DO", Name: "Dominican Republic", Position: []float64{-69.89139, 18.47185}},
	{Code: "EC", Name: "Ecuador", Position: []float64{-78.54967, -0.30991}},
	{Code: "EG", Name: "Egypt", Position: []float64{31.23525, 30.04427}},
	{Code: "SV", Name: "El Salvador", Position: []float64{-89.20681, 13.69967}},
	{Code: "GQ", Name: "Equatorial Guinea", Position: []float64{8.77948, 3.75614}},
	{Code: "ER", Name: "Eritrea", Position: []float64{38.93691, 15.33638}},
	{Code: "EE", Name: "Estonia", Position: []float64{24.75254, 59.43642}},
	{Code: "ET", Name: "Ethiopia", Position: []float64{38.76286, 9.01358}},
	{Code: "FK", Name: "Falkland Islands (Malvinas)", Position: []float64{-57.85802, -51.69671}},
	{Code: "FO", Name: "Faroe Islands", Position: []float64{-6.7728, 62.0097}},
	{Code: "FJ", Name: "Fiji", Position: []float64{178.42325, -18.14127}},
	{Code: "FI", Name: "Finland", Position: []float64{24.93265, 60.17116}},
	{Code: "FR", Name: "France", Position: []float64{2.3414, 48.85717}, Supported: true},
	{Code: "GF", Name: "French Guiana", Position: []float64{-53.23431, 3.92588}},
	{Code: "PF", Name: "French Polynesia", Position: []float64{-149.57464, -17.54472}},
	{Code: "TF", Name: "French Southern Territories"},
	{Code: "GA", Name: "Gabon", Position: []float64{9.44644, 0.39327}},
	{Code: "GM", Name: "Gambia, The", Position: []float64{-16.57475, 13.45359}},
	{Code: "GE", Name: "Georgia", Position: []float64{44.7961, 41.70907}},
	{Code: "DE", Name: "Germany", Position: []float64{13.37691, 52.51604}},
	{Code: "GH", Name: "Ghana", Position: []float64{-0.23262, 5.57888}},
	{Code: "GI", Name: "Gibraltar", Position: []float64{-5.35442, 36.14606}},
	{Code: "GR", Name: "Greece", Position: []float64{23.7364, 37.97614}},
	{Code: "GL", Name: "Greenland", Position: []float64{-51.72924, 64.17942}},
	{Code: "GD", Name: "Grenada", Position: []float64{-61.75398, 12.05209}},
	{Code: "GP", Name: "Guadeloupe", Position: []float64{-61.73434, 15.9987}},
	{Code: "GU", Name: "Guam", Position: []float64{144.75419, 13.47356}},
	{Code: "GT", Name: "Guatemala", Position: []float64{-90.46711, 14.63325}},
	{Code: "GG", Name: "Guernsey", Position: []float64{-2.53517, 49.4571}},
	{Code: "GN", Name: "Guinea", Position: []float64{-13.70539, 9.51198}},
	{Code: "GW", Name: "Guinea-Bissau", Position: []float64{-15.59854, 11.85946}},
	{Code: "GY", Name: "Guyana", Position: []float64{-58.16125, 6.80857}},
	{Code: "HT", Name: "Haiti", Position: []float64{-72.33562, 18.54495}},
	{Code: "HM", Name: "Heard Island and the McDonald Islands"},
	{Code: "VA", Name: "Holy See"},
	{Code: "HN", Name: "Honduras", Position: []float64{-87.20548, 14.08192}},
	{Code: "HK", Name: "Hong Kong", Position: []float64{114.14774, 22.36022}, Supported: true},
	{Code: "HU", Name: "Hungary", Position: []float64{19.05508, 47.49972}},
	{Code: "IS", Name: "Iceland", Position: []float64{-21.93419, 64.14748}},
	{Code: "IN", Name: "India", Position: []float64{77.21676, 28.63141}},
	{Code: "ID", Name: "Indonesia", Position: []float64{106.82648, -6.17148}},
	{Code: "IQ", Name: "Iraq", Position: []float64{44.39307, 33.3421}},
	{Code: "IE", Name: "Ireland", Position: []float64{-6.24828, 53.34807}, Supported: true},
	{Code: "IM", Name: "Isle of Man", Position: []float64{-4.53874, 54.22821}},
	{Code: "IL", Name: "Israel", Position: []float64{35.21882, 31.78001}},
	{Code: "IT", Name: "Italy", Position: []float64{12.49563, 41.90325}},
	{Code: "JM", Name: "Jamaica", Position: []float64{-76.78827, 17.97092}},
	{Code: "JP", Name: "Japan", Position: []float64{139.69172, 35.6895}},
	{Code: "JE", Name: "Jersey", Position: []float64{-2.1111, 49.18425}},
	{Code: "JO", Name: "Jordan", Position: []float64{35.94042, 31.9518}},
	{Code: "KZ", Name: "Kazakhstan", Position: []float64{71.4283, 51.12771}},
	{Code: "KE", Name: "Kenya", Position: []float64{36.82379, -1.28353}},
	{Code: "KI", Name: "Kiribati", Position: []float64{172.93646, 1.35548}},
	{Code: "XK", Name: "Kosovo", Position: []float64{21.16242, 42.6718}},
	{Code: "KW", Name: "Kuwait", Position: []float64{47.97162, 29.37332}},
	{Code: "KG", Name: "Kyrgyzstan", Position: []float64{74.60354, 42.88434}},
	{Code: "LA", Name: "Lao People's Democratic Republic", Position: []float64{102.61893, 17.9518}},
	{Code: "LV", Name: "Latvia", Position: []float64{24.11481, 56.94596}},
	{Code: "LB", Name: "Lebanon", Position: []float64{35.50678, 33.89607}},
	{Code: "LS", Name: "Lesotho", Position: []float64{27.49302, -29.31619}},
	{Code: "LR", Name: "Liberia", Position: []float64{-10.80213, 6.31672}},
	{Code: "LY", Name: "Libya", Position: []float64{13.18104, 32.89534}},
	{Code: "LI", Name: "Liechtenstein", Position: []float64{9.52164, 47.13881}},
	{Code: "LT", Name: "Lithuania", Position: []float64{25.2698, 54.69062}},
	{Code: "LU", Name: "Luxembourg", Position: []float64{6.12966, 49.6096}},
	{Code: "MO", Name: "Macao", Position: []float64{113.57266, 22.16495}},
	{Code: "MK", Name: "North Macedonia", Position: []float64{21.43029, 41.99468}},
	{Code: "MG", Name: "Madagascar", Position: []float64{47.52736, -18.91004}},
	{Code: "MW", Name: "Malawi", Position: []float64{33.77027, -13.98558}},
	{Code: "MY", Name: "Malaysia", Position: []float64{101.69404, 3.14789}},
	{Code: "MV", Name: "Maldives", Position: []float64{73.50928, 4.17524}},
	{Code: "ML", Name: "Mali", Position: []float64{-8.00005, 12.65039}},
	{Code: "MT", Name: "Malta", Position: []float64{14.5118, 35.89353}},
	{Code: "MH", Name: "Marshall Islands", Position: []float64{171.37138, 7.10941}},
	{Code: "MQ", Name: "Martinique", Position: []float64{-61.01838, 14.65313}},
	{Code: "MR", Name: "Mauritania", Position: []float64{-15.97248, 18.09193}},
	{Code: "MU", Name: "Mauritius", Position: []float64{57.51491, -20.16545}},
	{Code: "YT", Name: "Mayotte", Position: []float64{45.23009, -12.78395}},
	{Code: "MX", Name: "Mexico", Position: []float64{-99.13315, 19.43195}},
	{Code: "FM", Name: "Micronesia, Federated States of", Position: []float64{158.15775, 6.91773}},
	{Code: "MD", Name: "Moldova, Republic of", Position: []float64{28.83456, 47.02316}},
	{Code: "MC", Name: "Monaco", Position: []float64{7.41754, 43.73286}},
	{Code: "MN", Name: "Mongolia", Position: []float64{106.91809, 47.92218}},
	{Code: "ME", Name: "Montenegro", Position: []float64{19.26389, 42.43544}},
	{Code: "MS", Name: "Montserrat", Position: []float64{-62.21527, 16.7039}},
	{Code: "MA", Name: "Morocco", Position: []float64{-6.83612, 34.01791}},
	{Code: "MZ", Name: "Mozambique", Position: []float64{32.57327, -25.97457}},
	{Code: "MM", Name: "Myanmar", Position: []float64{96.07529, 19.72682}},
	{Code: "NA", Name: "Namibia", Position: []float64{17.09074, -22.5716}},
	{Code: "NR", Name: "Nauru", Position: []float64{166.91714, -0.54187}},
	{Code: "NP", Name: "Nepal", Position: []float64{85.32227, 27.69329}},
	{Code: "NL", Name: "Netherlands", Position: []float64{4.90787, 52.36993}},
	{Code: "AN", Name: "Netherlands Antilles", Position: []float64{4.90787, 52.36993}},
	{Code: "NC", Name: "New Caledonia", Position: []float64{166.46132, -22.24293}},
	{Code: "NZ", Name: "New Zealand", Position: []float64{174.77686, -41.28949}, Supported: true},
	{Code: "NI", Name: "Nicaragua", Position: []float64{-86.24082, 12.1172}},
	{Code: "NE", Name: "Niger", Position: []float64{2.11633, 13.51627}},
	{Code: "NG", Name: "Nigeria", Position: []float64{7.46228, 9.06344}},
	{Code: "NU", Name: "Niue", Position: []float64{-169.91999, -19.01916}},
	{Code: "NF", Name: "Norfolk Island", Position: []float64{167.9585, -29.05713}},
	{Code: "MP", Name: "Northern Mariana Islands", Position: []float64{145.72108, 15.20756}},
	{Code: "NO", Name: "Norway", Position: []float64{10.75, 59.91234}},
	{Code: "OM", Name: "Oman", Position: []float64{58.59122, 23.61524}},
	{Code: "PK", Name: "Pakistan", Position: []float64{73.07544, 33.70964}},
	{Code: "PW", Name: "Palau", Position: []float64{134.62193, 7.50137}},
	{Code: "PS", Name: "Palestinian Territories"},
	{Code: "PA", Name: "Panama", Position: []float64{-79.53539, 8.95241}},
	{Code: "PG", Name: "Papua New Guinea", Position: []float64{147.20381, -9.45508}},
	{Code: "PY", Name: "Paraguay", Position: []float64{-57.62776, -25.29738}},
	{Code: "PE", Name: "Peru", Position: []float64{-77.0268, -12.05618}},
	{Code: "PH", Name: "Philippines", Position: []float64{120.98626, 14.60488}, Supported: true},
	{Code: "PN", Name: "Pitcairn", Position: []float64{-130.10084, -25.0665}},
	{Code: "PL", Name: "Poland", Position: []float64{21.01037, 52.2356}},
	{Code: "PT", Name: "Portugal", Position: []float64{-9.14952, 38.72633}},
	{Code: "PR", Name: "Puerto Rico", Position: []float64{-66.11692, 18.46536}},
	{Code: "QA", Name: "Qatar", Position: []float64{51.51966, 25.29424}},
	{Code: "KR", Name: "Republic of Korea", Position: []float64{126.99989, 37.55886}},
	{Code: "RE", Name: "Reunion", Position: []float64{55.45851, -20.89077}},
	{Code: "RO", Name: "Romania", Position: []float64{26.10298, 44.43429}},
	{Code: "RU", Name: "Russian Federation", Position: []float64{37.61502, 55.75696}},
	{Code: "RW", Name: "Rwanda", Position: []float64{30.03176, -1.97576}},
	{Code: "BL", Name: "Saint Barthelemy", Position: []float64{-62.8298, 17.90281}},
	{Code: "SH", Name: "Saint Helena, Ascension and Tristan da Cunha", Position: []float64{-5.71691, -15.92632}},
	{Code: "KN", Name: "Saint Kitts and Nevis", Position: []float64{-62.72264, 17.29697}},
	{Code: "LC", Name: "Saint Lucia", Position: []float64{-60.98964, 14.01177}},
	{Code: "MF", Name: "Saint Martin", Position: []float64{-63.0446, 18.02547}},
	{Code: "PM", Name: "Saint Pierre and Miquelon", Position: []float64{-56.17258, 46.77902}},
	{Code: "VC", Name: "Saint Vincent and the Grenadines", Position: []float64{-61.22768, 13.15648}},
	{Code: "WS", Name: "Samoa", Position: []float64{-171.75674, -13.83689}},
	{Code: "SM", Name: "San Marino", Position: []float64{12.44287, 43.93947}},
	{Code: "ST", Name: "Sao Tome and Principe", Position: []float64{6.73118, 0.33973}},
	{Code: "SA", Name: "Saudi Arabia", Position: []float64{46.68723, 24.68208}},
	{Code: "SN", Name: "Senegal", Position: []float64{-17.43662, 14.66927}},
	{Code: "RS", Name: "Serbia", Position: []float64{20.46329, 44.8131}},
	{Code: "SC", Name: "Seychelles", Position: []float64{55.45228, -4.62278}},
	{Code: "SL", Name: "Sierra Leone", Position: []float64{-13.23469, 8.48686}},
	{Code: "SG", Name: "Singapore", Position: []float64{103.85238, 1.29087}, Supported: true},
	{Code: "SX", Name: "Sint Maarten", Position: []float64{-63.0446, 18.02547}},
	{Code: "SK", Name: "Slovakia", Position: []float64{17.10699, 48.14924}},
	{Code: "SI", Name: "Slovenia", Position: []float64{14.50282, 46.05062}},
	{Code: "SB", Name: "Solomon Islands", Position: []float64{159.92237, -9.4384}},
	{Code: "SO", Name: "Somalia", Position: []float64{45.34156, 2.03812}},
	{Code: "ZA", Name: "South Africa", Position: []float64{28.18832, -25.74579}},
	{Code: "GS", Name: "South Georgia and the South Sandwich Islands", Position: []float64{-36.50747, -54.28039}},
	{Code: "ES", Name: "Spain", Position: []float64{-3.68756, 40.42024}},
	{Code: "LK", Name: "Sri Lanka", Position: []float64{79.90079, 6.88398}},
	{Code: "SR", Name: "Suriname", Position: []float64{-55.16543, 5.82031}},
	{Code: "SJ", Name: "Svalbard and Jan Mayen"},
	{Code: "SZ", Name: "Swaziland", Position: []float64{31.1411, -26.32604}},
	{Code: "SE", Name: "Sweden", Position: []float64{18.06682, 59.33257}},
	{Code: "CH", Name: "Switzerland", Position: []float64{7.44046, 46.94843}},
	{Code: "TW", Name: "Taiwan", Position: []float64{121.56355, 25.03737}},
	{Code: "TJ", Name: "Tajikistan", Position: []float64{68.77152, 38.56792}},
	{Code: "TZ", Name: "Tanzania, United Republic of", Position: []float64{35.74689, -6.17351}},
	{Code: "TH", Name: "Thailand", Position: []float64{100.50482, 13.75336}},
	{Code: "TL", Name: "Timor-leste", Position: []float64{125.57033, -8.55409}},
	{Code: "TG", Name: "Togo", Position: []float64{1.22958, 6.13969}},
	{Code: "TK", Name: "Tokelau", Position: []float64{-172.51546, -8.54248}},
	{Code: "TO", Name: "Tonga", Position: []float64{-175.20344, -21.13352}},
	{Code: "TT", Name: "Trinidad and Tobago", Position: []float64{-61.51604, 10.66103}},
	{Code: "TN", Name: "Tunisia", Position: []float64{10.1827, 36.80001}},
	{Code: "TR", Name: "Turkey", Position: []float64{32.85393, 39.92121}},
	{Code: "TM", Name: "Turkmenistan", Position: []float64{58.39014, 37.95121}},
	{Code: "TC", Name: "Turks and Caicos Islands", Position: []float64{-71.14584, 21.46914}},
	{Code: "TV", Name: "Tuvalu", Position: []float64{179.19934, -8.51809}},
	{Code: "UG", Name: "Uganda", Position: []float64{32.57501, 0.31589}},
	{Code: "UA", Name: "Ukraine", Position: []float64{30.52428, 50.45056}},
	{Code: "AE", Name: "United Arab Emirates", Position: []float64{54.37173, 24.46918}},
	{Code: "GB", Name: "United Kingdom", Position: []float64{-0.12721, 51.50643}, Supported: true},
	{Code: "US", Name: "United States", Position: []float64{-77.03196, 38.89036}, Supported: true},
	{Code: "UM", Name: "United States Minor Outlying Islands"},
	{Code: "UY", Name: "Uruguay", Position: []float64{-56.16294, -34.87418}},
	{Code: "UZ", Name: "Uzbekistan", Position: []float64{69.24134, 41.32569}},
	{Code: "VU", Name: "Vanuatu", Position: []float64{168.32084, -17.73313}},
	{Code: "VE", Name: "Venezuela", Position: []float64{-66.91772, 10.50555}},
	{Code: "VN", Name: "Vietnam", Position: []float64{105.85462, 21.02884}},
	{Code: "VG", Name: "Virgin Islands, British", Position: []float64{-64.93216, 18.34055}},
	{Code: "VI", Name: "Virgin Islands, U.S.", Position: []float64{-64.93216, 18.34055}},
	{Code: "WF", Name: "Wallis and Futuna", Position: []float64{-176.17617, -13.27658}},
	{Code: "EH", Name: "Western Sahara", Position: []float64{-13.13949, 24.6585}},
	{Code: "YE", Name: "Yemen", Position: []float64{44.21122, 15.3667}},
	{Code: "ZM", Name: "Zambia", Position: []float64{28.27873, -15.42562}},
	{Code: "ZW", Name: "Zimbabwe", Position: []float64{31.04994, -17.8244}},
}
