package storage

// Symbol kinds, one per board state.
const (
	SymbolOpen   = "open"
	SymbolClosed = "closed"
	SymbolAway   = "away"
)

func ValidSymbolKind(kind string) bool {
	return kind == SymbolOpen || kind == SymbolClosed || kind == SymbolAway
}

// SymbolMessages is the singleton record of display texts shown next to each
// symbol.
type SymbolMessages struct {
	OpenMessage   string `json:"openMessage"`
	ClosedMessage string `json:"closedMessage"`
	AwayMessage   string `json:"awayMessage"`
}
