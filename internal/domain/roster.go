package domain

type RosterRow struct {
	Index  int    `json:"index"`
	Key    string `json:"key"`
	Phone  string `json:"phone"`
	Name   string `json:"name,omitempty"`
	Amount string `json:"amount,omitempty"`
	Code   string `json:"code,omitempty"`
}

type CorrelationMapping map[string]RosterRow

type Roster struct {
	Rows    []RosterRow        // in spreadsheet order
	Mapping CorrelationMapping // last row wins on duplicate keys
}

func (r *Roster) Lookup(key string) (RosterRow, bool) {
	row, ok := r.Mapping[key]
	return row, ok
}
