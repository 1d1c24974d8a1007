package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ProtocolInfo holds the platform-wide TVL and 24h volume. Fields missing
// from the response, or not holding a number, stay zero.
type ProtocolInfo struct {
	TVL       decimal.Decimal `json:"tvl" yaml:"tvl"`
	Volume24h decimal.Decimal `json:"volume24h" yaml:"volume24h"`
}

// UnmarshalJSON reads each field on its own so one bad value does not
// zero the other.
func (p *ProtocolInfo) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	p.TVL = decimalField(fields["tvl"])
	p.Volume24h = decimalField(fields["volume24h"])
	return nil
}

func decimalField(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Zero
	}
	return d
}

// emptyList and emptyMap build fresh defaults so callers never share a
// mutable default value.
func emptyList() []any {
	return []any{}
}

func emptyMap() map[string]any {
	return map[string]any{}
}

func unknown() string {
	return Unknown
}

func zeroInfo() ProtocolInfo {
	return ProtocolInfo{TVL: decimal.Zero, Volume24h: decimal.Zero}
}
