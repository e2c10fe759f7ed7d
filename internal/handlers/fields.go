package handlers

import (
	"encoding/json"
	"io"
)

// fieldAliases maps the dashed key spellings accepted on the wire to the
// canonical field names. The table is consulted once at the boundary; the
// domain types only ever see canonical names.
var fieldAliases = map[string]string{
	"flight-number": "flightnumber",
	"ticket-number": "ticketnumber",
	"pass-number":   "passportnumber",
	"name":          "passengername",
	"seat-label":    "seatlabel",
	"seat-row":      "seatrow",
}

// decodeBody decodes a JSON request body into dst, translating aliased
// field names first. A canonical key present in the body wins over its
// alias.
func decodeBody(r io.Reader, dst interface{}) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return err
	}
	for alias, canonical := range fieldAliases {
		value, ok := raw[alias]
		if !ok {
			continue
		}
		if _, exists := raw[canonical]; !exists {
			raw[canonical] = value
		}
		delete(raw, alias)
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, dst)
}
