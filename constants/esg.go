package constants

// ESGCategory is the coarse emissions classification attributed to a spend line.
type ESGCategory string

const (
	ESGTravel         ESGCategory = "travel"
	ESGTransport      ESGCategory = "transport"
	ESGOfficeSupplies ESGCategory = "office_supplies"
	ESGUtilities      ESGCategory = "utilities"
	ESGGeneral        ESGCategory = "general"
)
