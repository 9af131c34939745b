// Package model holds the record types that cross the engine boundary.
package model

// Address is the optional partial address supplied alongside a raw name.
type Address struct {
	Street  string `json:"street1"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// RawRecord is a single unresolved company record as supplied by the caller.
type RawRecord struct {
	RawName string  `json:"raw_name"`
	Address Address `json:"address"`
	// Extras carries caller-supplied columns beyond the canonical input
	// set; they are appended after the canonical output columns untouched.
	Extras []string `json:"-"`
}

// OutputRecord is the resolver's final answer for one RawRecord.
// Immutable once produced; field order on export is fixed (see Columns).
type OutputRecord struct {
	RawName         string   `json:"raw_company_name"`
	NormalizedName  string   `json:"normalized_company_name"`
	Website         string   `json:"website"`
	Industry        string   `json:"industry"`
	ThirdPartyLink  string   `json:"third_party_data_source_link"`
	Remark          string   `json:"remark"`
	ConfidenceScore string   `json:"confidence_score"`
	Extras          []string `json:"-"`
}

// Columns returns the canonical output header in its fixed order.
func Columns() []string {
	return []string{
		"Raw Company Name",
		"Normalized Company Name",
		"Website",
		"Industry",
		"Third Party Data Source Link",
		"Remark",
		"Confidence Score",
	}
}

// Row renders the record's canonical seven cells followed by any extras.
func (r OutputRecord) Row() []string {
	row := []string{
		r.RawName,
		r.NormalizedName,
		r.Website,
		r.Industry,
		r.ThirdPartyLink,
		r.Remark,
		r.ConfidenceScore,
	}
	return append(row, r.Extras...)
}

// Candidate is a single URL under evaluation as a possible official site.
// Transient; produced and discarded per resolution attempt.
type Candidate struct {
	URL      string  `json:"url"`
	Domain   string  `json:"domain"`
	Score    float64 `json:"score"`
	Industry string  `json:"industry,omitempty"`
	Reason   string  `json:"reason"`
}
