package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RefAttribute tags an order as originating from a partner storefront.
const RefAttribute = "ref"

// RefIDAttribute carries the partner-side identifier for association.
const RefIDAttribute = "ref_id"

type NoteAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// OrderEvent is the subset of a Shopify order webhook the bridge reads.
// The raw payload is kept alongside so persistence loses nothing.
type OrderEvent struct {
	ID              int64           `json:"id"`
	FinancialStatus string          `json:"financial_status"`
	TotalPrice      string          `json:"total_price"`
	NoteAttributes  []NoteAttribute `json:"note_attributes"`
}

// Attribute returns the first note attribute value with the given name, or
// an empty string when absent.
func (o OrderEvent) Attribute(name string) string {
	for _, attr := range o.NoteAttributes {
		if attr.Name == name {
			return attr.Value
		}
	}
	return ""
}

// splitPayload normalizes a webhook body into one raw message per order.
// Shopify delivers a single object per event; batched test deliveries arrive
// as an array.
func splitPayload(raw []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty payload")
	}

	if trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decoding order array: %w", err)
		}
		return list, nil
	}

	var single json.RawMessage
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("decoding order: %w", err)
	}
	return []json.RawMessage{single}, nil
}
