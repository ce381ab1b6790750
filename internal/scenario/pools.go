package scenario

// Pools fijos de los que el generador extrae datos cosméticos.
// Direcciones del mercado medio de Texas, coherentes con la banda de
// precios $250k–$400k del generador.

var addresses = []string{
	"1245 Elm Street, Austin, TX 78704",
	"567 Oak Avenue, Dallas, TX 75201",
	"890 Pine Drive, Houston, TX 77001",
	"234 Maple Lane, San Antonio, TX 78201",
	"678 Cedar Court, Fort Worth, TX 76101",
	"912 Birch Boulevard, Plano, TX 75023",
	"345 Willow Way, Arlington, TX 76010",
}

var sellerNames = []string{
	"Robert Johnson",
	"Maria Rodriguez",
	"David Wilson",
	"Jennifer Brown",
	"Michael Davis",
	"Sarah Miller",
	"James Garcia",
	"Lisa Anderson",
}

// tradeableAssets es el pool de activos del arquetipo low-equity, en el
// formato libre "<desc> ($<valor>)" que luego parsea el adapter de assets.
var tradeableAssets = []string{
	"2018 Ford F-150 ($28,000)",
	"Sea Ray boat ($15,000)",
	"Jewelry collection ($8,000)",
	"Harley-Davidson motorcycle ($12,000)",
}

const (
	conditionExcellentDetails = "Move-in ready, excellent overall condition"
	conditionCosmeticDetails  = "Needs light cosmetic repairs"

	repairMinorDetails = "Paint, carpet replacement, small fixes"
	repairMajorDetails = "Kitchen and bathroom refresh, new flooring"
)

// Textos de situación por arquetipo. Son contenido, no lógica: la UI los
// muestra tal cual en la ficha del vendedor.
type sellerProfile struct {
	title      string
	situation  string
	motivation string
	timeframe  string
}

var profiles = map[string]sellerProfile{
	"pre-foreclosure": {
		title:      "Urgent sale under financial distress",
		situation:  "Lost their job eight months ago; mortgage arrears keep piling up",
		motivation: "Avoid foreclosure and protect their credit history",
		timeframe:  "30-60 days until auction",
	},
	"relocation": {
		title:      "Urgent job relocation",
		situation:  "Got promoted out of state and must move within eight weeks",
		motivation: "Sell fast to close on the next home",
		timeframe:  "60-90 days",
	},
	"stuck-listing": {
		title:      "Listing stuck on the market",
		situation:  "Already bought the next house and is paying two mortgages; the agent has cut the price three times",
		motivation: "Stop carrying double payments",
		timeframe:  "As soon as possible",
	},
	"low-equity": {
		title:      "Underwater mortgage",
		situation:  "Bought at the 2021 peak, prices dropped 15%, and now a job move forces a sale",
		motivation: "Avoid writing a $15-25k check at closing",
		timeframe:  "4-6 months",
	},
	"high-equity": {
		title:      "Elderly owner with large equity",
		situation:  "Moving to assisted living; does not need the full price upfront and likes the idea of steady income",
		motivation: "Monthly payments instead of a lump sum",
		timeframe:  "Flexible, up to 6 months",
	},
}
