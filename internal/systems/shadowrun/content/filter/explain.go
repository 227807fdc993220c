package filter

import (
	"google.golang.org/protobuf/encoding/protojson"
)

// Explain parses filterStr against QualityFields and renders the checked
// expression tree as indented protobuf JSON. A blank filter explains to "{}".
func Explain(filterStr string) ([]byte, error) {
	parsed, err := Parse(filterStr, QualityFields)
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		return []byte("{}"), nil
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(parsed)
}
