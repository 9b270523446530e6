package model

import (
	"encoding/json"
	"strconv"
)

// Filters is the structured filter object extracted from a free-text query.
// Absent or empty fields impose no constraint on that dimension.
type Filters struct {
	City        string     `json:"city,omitempty"`
	BHK         StringList `json:"bhk,omitempty"`
	MinBudget   *float64   `json:"min_budget,omitempty"`
	MaxBudget   *float64   `json:"max_budget,omitempty"`
	ProjectName string     `json:"project_name,omitempty"`
	Locality    string     `json:"locality,omitempty"`
	Readiness   string     `json:"readiness,omitempty"`
}

// IsEmpty reports whether no field carries a constraint.
func (f *Filters) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.City == "" &&
		len(f.BHK) == 0 &&
		f.MinBudget == nil &&
		f.MaxBudget == nil &&
		f.ProjectName == "" &&
		f.Locality == "" &&
		f.Readiness == ""
}

// StringList accepts a JSON array of strings or numbers, or a single scalar,
// and normalizes everything to strings. Model output is loose about whether
// "3 BHK" comes back as "3", 3 or ["3"].
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = flattenToStrings(raw)
	return nil
}

func flattenToStrings(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case float64:
		return []string{formatJSONNumber(v)}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, flattenToStrings(item)...)
		}
		return out
	default:
		return nil
	}
}

func formatJSONNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
