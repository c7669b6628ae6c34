package constants

// Direction says whether the document bills us (incoming) or was issued by us (outgoing).
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
	DirectionUnknown  Direction = "unknown"
)
