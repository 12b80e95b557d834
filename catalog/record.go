package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexID is a provider identifier that may arrive as a JSON string or number.
// It is always normalized to its string form before use.
type FlexID string

// UnmarshalJSON accepts both `"123"` and `123` and stores the string form.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}

	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(str))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*f = FlexID(num.String())
	return nil
}

// String returns the normalized identifier.
func (f FlexID) String() string {
	return string(f)
}

// Record is a generalized provider catalog entry: either a category or a
// playable stream. Identifier and numeric fields are decoded leniently
// because providers are inconsistent about string vs number types.
type Record struct {
	ID                 FlexID `json:"stream_id"`
	CategoryID         FlexID `json:"category_id,omitempty"`
	Name               string `json:"name"`
	ChannelNumber      int    `json:"num,omitempty"`
	Rating             FlexID `json:"rating,omitempty"`
	ContainerExtension string `json:"container_extension,omitempty"`

	// Enrichment fields, written once per pipeline run by the core and
	// read many times by the rendering layer until the next refresh.
	CleanName  string `json:"clean_name,omitempty"`
	SearchName string `json:"search_name,omitempty"`
	IsSports   bool   `json:"is_sports,omitempty"`
	IsDomestic bool   `json:"is_domestic,omitempty"`
	Liveness   string `json:"liveness,omitempty"`
}

// categoryRecord mirrors the field names the Xtreme Codes category
// endpoints use; streams and categories share the Record shape internally.
type categoryRecord struct {
	CategoryID FlexID `json:"category_id"`
	Name       string `json:"category_name"`
}

// UnmarshalJSON decodes a record accepting both the stream shape
// (stream_id/name) and the category shape (category_id/category_name).
func (r *Record) UnmarshalJSON(data []byte) error {
	type alias Record
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = Record(a)

	if r.Name == "" || r.ID == "" {
		var c categoryRecord
		if err := json.Unmarshal(data, &c); err == nil {
			if r.Name == "" {
				r.Name = c.Name
			}
			if r.ID == "" {
				r.ID = c.CategoryID
			}
		}
	}
	return nil
}

// ChannelOrdinal returns the channel number if set, or a best-effort parse
// of the ID as a fallback ordering key. Returns 0 when neither is numeric.
func (r *Record) ChannelOrdinal() int {
	if r.ChannelNumber != 0 {
		return r.ChannelNumber
	}
	if n, err := strconv.Atoi(r.ID.String()); err == nil {
		return n
	}
	return 0
}
