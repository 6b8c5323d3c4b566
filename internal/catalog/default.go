package catalog

// Default returns the catalogue the site ships with. Price keys were entered
// with the "Ang bak" spelling of Red Prawn; the alias reconciles it with the
// payment-link table.
func Default() *Source {
	return &Source{
		Aliases: map[string]string{
			"Red Prawn/Ang bak": "Red Prawn/Ang Hae",
		},
		PaymentLinks: map[string]map[string]string{
			"Musang King": {
				"1kg":   "https://buy.stripe.com/bJe00keoUcaWaA70qD1Jm09",
				"1.5kg": "https://buy.stripe.com/8x200kfsY3Eq4bJ2yL1Jm0g",
				"2kg":   "https://buy.stripe.com/dRmfZifsYa2ObEba1d1Jm0h",
			},
			"Red Prawn/Ang Hae": {
				"1kg":   "https://buy.stripe.com/7sYeVecgM7UG23Bddp1Jm0b",
				"1.5kg": "https://buy.stripe.com/9B6eVe1C80se7nVgpB1Jm0i",
				"2kg":   "https://buy.stripe.com/28EcN6bcIej423B0qD1Jm0j",
			},
			"D24 Classic": {
				"1kg":   "https://buy.stripe.com/bJefZi6Wsgrc7nV0qD1Jm0f",
				"1.5kg": "https://buy.stripe.com/28E28s5So3Eq6jR4GT1Jm0k",
				"2kg":   "https://buy.stripe.com/00w00k1C87UG5fN7T51Jm0l",
			},
			"Capri": {
				"1kg":   "https://buy.stripe.com/3cI6oI94A7UGeQngpB1Jm0d",
				"1.5kg": "https://buy.stripe.com/dRm28s5So3Eq4bJddp1Jm0m",
				"2kg":   "https://buy.stripe.com/aFafZi6WsgrcgYv1uH1Jm0n",
			},
			"Golden Phoenix": {
				"1kg":   "https://buy.stripe.com/3cIbJ24Ok0se5fN0qD1Jm08",
				"1.5kg": "https://buy.stripe.com/9B6fZi94Aej4cIf7T51Jm0o",
				"2kg":   "https://buy.stripe.com/14A8wQfsY6QC6jR2yL1Jm0p",
			},
			"Ganja D15": {
				"1kg":   "https://buy.stripe.com/4gM6oI4OkcaWeQna1d1Jm05",
				"1.5kg": "https://buy.stripe.com/3cI14odkQ3EqaA73CP1Jm0q",
				"2kg":   "https://buy.stripe.com/4gM5kE2Gcdf0bEb2yL1Jm0s",
			},
			"Katak Pulu/D99": {
				"1kg":   "https://buy.stripe.com/3cI5kE6Ws2Am5fN1uH1Jm07",
				"1.5kg": "https://buy.stripe.com/6oUeVecgM1wi4bJ8X91Jm0t",
				"2kg":   "https://buy.stripe.com/eVqaEYgx2fn88rZ5KX1Jm0u",
			},
			"Lanjiao Yuan/D88 Supreme": {
				"1kg":   "https://buy.stripe.com/9B6fZi2Gc0se0Zx7T51Jm06",
				"1.5kg": "https://buy.stripe.com/5kQaEYeoUgrceQnddp1Jm0v",
				"2kg":   "https://buy.stripe.com/28E8wQcgMa2O0Zxeht1Jm0w",
			},
			"11 Susu": {
				"1kg":   "https://buy.stripe.com/8x27sM1C8ej4gYv4GT1Jm0a",
				"1.5kg": "https://buy.stripe.com/14A7sMeoUgrcfUr2yL1Jm0x",
				"2kg":   "https://buy.stripe.com/dRm5kEcgMcaW5fN7T51Jm0y",
			},
			"Khun Poh": {
				"1kg":   "https://buy.stripe.com/bJecN61C88YKfUr6P11Jm00",
				"1.5kg": "https://buy.stripe.com/5kQ6oI4Ok1wiaA77T51Jm0z",
				"2kg":   "https://buy.stripe.com/8x200kgx21wiaA7eht1Jm0A",
			},
			"Cheh Pui Kia": {
				"1kg":   "https://buy.stripe.com/cNi00k6Wsa2O5fN1uH1Jm0c",
				"1.5kg": "https://buy.stripe.com/00wbJ26Ws4Iu9w3eht1Jm0B",
				"2kg":   "https://buy.stripe.com/bJebJ2a8Efn837F5KX1Jm0C",
			},
			"604 Premium": {
				"1kg":   "https://buy.stripe.com/00weVegx2caW9w3gpB1Jm0e",
				"1.5kg": "https://buy.stripe.com/00wbJ280w3Eq9w33CP1Jm0D",
				"2kg":   "https://buy.stripe.com/14A4gA94Adf0gYvc9l1Jm0E",
			},
			"Mix and Match Gift Box": {
				"default": "https://buy.stripe.com/bJe9AU80w4Iu6jRa1d1Jm04",
			},
			"Durian Buffet": {
				"default": "https://buy.stripe.com/00w28s94A1wicIfc9l1Jm01",
			},
			"Bulk Sales": {
				"default": "https://buy.stripe.com/bJeaEY80w8YKfUr2yL1Jm02",
			},
		},
		Prices: map[string]map[string]string{
			"Musang King": {
				"1kg":   "RM85",
				"1.5kg": "RM130",
				"2kg":   "RM165",
			},
			"Red Prawn/Ang bak": {
				"1kg":   "RM30",
				"1.5kg": "RM43",
				"2kg":   "RM64",
			},
			"D24 Classic": {
				"1kg":   "RM30",
				"1.5kg": "RM43",
				"2kg":   "RM64",
			},
			"Capri": {
				"1kg":   "RM30",
				"1.5kg": "RM43",
				"2kg":   "RM64",
			},
			"Golden Phoenix": {
				"1kg":   "RM32",
				"1.5kg": "RM45",
				"2kg":   "RM65",
			},
			"Ganja D15": {
				"1kg":   "RM30",
				"1.5kg": "RM43",
				"2kg":   "RM64",
			},
			"Katak Pulu/D99": {
				"1kg":   "RM29",
				"1.5kg": "RM42",
				"2kg":   "RM62",
			},
			"Lanjiao Yuan/D88 Supreme": {
				"1kg":   "RM30",
				"1.5kg": "RM43",
				"2kg":   "RM64",
			},
			"11 Susu": {
				"1kg":   "RM29",
				"1.5kg": "RM42",
				"2kg":   "RM62",
			},
			"Khun Poh": {
				"1kg":   "RM30",
				"1.5kg": "RM43",
				"2kg":   "RM64",
			},
			"Cheh Pui Kia": {
				"1kg":   "RM30",
				"1.5kg": "RM42",
				"2kg":   "RM62",
			},
			"604 Premium": {
				"1kg":   "RM30",
				"1.5kg": "RM42",
				"2kg":   "RM62",
			},
		},
	}
}
