package res

// Static translation tables between the labels printed in the energy-balance
// workbooks and the OSeMOSYS three-letter codes. Resolution is total-or-skip:
// a label not present in any table is not an error, it simply does not take
// part in the RES (unit rows, subtotal rows and so on).

// regionCodes maps country names to their 3-letter region code.
var regionCodes = map[string]string{
	"Argentina":            "ARG",
	"Barbados":             "BRB",
	"Belice":               "BLZ",
	"Bolivia":              "BOL",
	"Brasil":               "BRA",
	"Chile":                "CHL",
	"Colombia":             "COL",
	"Costa Rica":           "CRI",
	"Cuba":                 "CUB",
	"Ecuador":              "ECU",
	"El Salvador":          "SLV",
	"Grenada":              "GRD",
	"Guatemala":            "GTM",
	"Guyana":               "GUY",
	"Haiti":                "HTI",
	"Honduras":             "HND",
	"Jamaica":              "JAM",
	"México":               "MEX",
	"Nicaragua":            "NIC",
	"Panamá":               "PAN",
	"Paraguay":             "PRY",
	"Perú":                 "PER",
	"República Dominicana": "DOM",
	"Suriname":             "SUR",
	"Trinidad & Tobago":    "TTO",
	"Uruguay":              "URY",
	"Venezuela":            "VEN",
}

// FuelID is the resolved identity of a commodity column.
type FuelID struct {
	Tier Tier
	Code string
}

// primaryFuels are raw resources.
var primaryFuels = map[string]string{
	"PETRÓLEO":                   "CRU",
	"GAS NATURAL":                "NGS",
	"CARBÓN MINERAL":             "COA001",
	"HIDROENERGÍA":               "HYD",
	"GEOTERMIA":                  "GEO",
	"NUCLEAR":                    "NUC",
	"LEÑA":                       "WOO",
	"CAÑA DE AZÚCAR Y DERIVADOS": "SGC",
	"OTRAS PRIMARIAS":            "OPR",
}

// secondaryFuels are refined or processed commodities.
var secondaryFuels = map[string]string{
	"GAS LICUADO DE PETRÓLEO": "LPG",
	"GASOLINA/ALCOHOL":        "GSL",
	"KEROSENE/JET FUEL":       "KER",
	"DIÉSEL OIL":              "DSL",
	"FUEL OIL":                "HFO",
	"COQUE":                   "COK",
	"CARBÓN VEGETAL":          "COA002",
	"GASES":                   "GAS",
	"OTRAS SECUNDARIAS":       "OSE",
	"NO ENERGÉTICO":           "NEN",
}

// tertiaryFuels is electricity.
var tertiaryFuels = map[string]string{
	"ELECTRICIDAD": "ELC",
}

// TechID is the resolved identity of a sector/technology row.
type TechID struct {
	Category Category
	Code     string
}

var supplyTechs = map[string]string{
	"PRODUCCIÓN":  "PRO",
	"IMPORTACIÓN": "IMP",
	"EXPORTACIÓN": "EXP",
}

var primaryConversionTechs = map[string]string{
	"REFINERÍAS":     "REF",
	"CENTROS DE GAS": "GAS",
	"CARBONERA":      "CHL",
	"DESTILERÍA":     "DET",
}

var secondaryConversionTechs = map[string]string{
	"COQUERÍA Y ALTOS HORNOS": "BOI",
	"OTROS CENTROS":           "UPSTEC",
}

var tertiaryConversionTechs = map[string]string{
	"CENTRALES ELÉCTRICAS": "PWR",
	"AUTOPRODUCTORES":      "SEL",
}

// demandTechs maps the final consumption sectors. The aggregate
// "CONSUMO FINAL" row is intentionally absent: it is the sum of these
// sectors and resolving it would double count demand.
var demandTechs = map[string]string{
	"TRANSPORTE":                    "TRA",
	"INDUSTRIAL":                    "IND",
	"RESIDENCIAL":                   "RES",
	"COMERCIAL, SERVICIOS, PÚBLICO": "COM",
	"AGRO, PESCA Y MINERÍA":         "AGR",
	"CONSTRUCCIÓN Y OTROS":          "CON",
	"CONSUMO NO ENERGÉTICO":         "NEE",
}

var primaryLossTechs = map[string]string{
	"VARIACIÓN DE INVENTARIOS": "INV",
	"NO APROVECHADO":           "WAS",
}

var secondaryLossTechs = map[string]string{
	"PÉRDIDAS":       "LOS",
	"CONSUMO PROPIO": "OWN",
}

// ResolveRegion translates a country name into its 3-letter region code.
func ResolveRegion(country string) (string, bool) {
	code, ok := regionCodes[country]
	return code, ok
}

// ResolveFuel translates a commodity column label into its tier and code.
func ResolveFuel(column string) (FuelID, bool) {
	if code, ok := primaryFuels[column]; ok {
		return FuelID{Tier: TierPrimary, Code: code}, true
	}
	if code, ok := secondaryFuels[column]; ok {
		return FuelID{Tier: TierSecondary, Code: code}, true
	}
	if code, ok := tertiaryFuels[column]; ok {
		return FuelID{Tier: TierTertiary, Code: code}, true
	}
	return FuelID{}, false
}

// ResolveTechnology translates a sector row label into its category and code.
func ResolveTechnology(row string) (TechID, bool) {
	if code, ok := supplyTechs[row]; ok {
		return TechID{Category: CategorySupply, Code: code}, true
	}
	if code, ok := primaryConversionTechs[row]; ok {
		return TechID{Category: CategoryPrimaryConversion, Code: code}, true
	}
	if code, ok := secondaryConversionTechs[row]; ok {
		return TechID{Category: CategorySecondaryConversion, Code: code}, true
	}
	if code, ok := tertiaryConversionTechs[row]; ok {
		return TechID{Category: CategoryTertiaryConversion, Code: code}, true
	}
	if code, ok := demandTechs[row]; ok {
		return TechID{Category: CategoryDemand, Code: code}, true
	}
	if code, ok := primaryLossTechs[row]; ok {
		return TechID{Category: CategoryPrimaryLoss, Code: code}, true
	}
	if code, ok := secondaryLossTechs[row]; ok {
		return TechID{Category: CategorySecondaryLoss, Code: code}, true
	}
	return TechID{}, false
}

// Regions returns all known region codes, unordered.
func Regions() []string {
	codes := make([]string, 0, len(regionCodes))
	for _, code := range regionCodes {
		codes = append(codes, code)
	}
	return codes
}
