package domain

import "time"

type DispatchResult struct {
	File   string `csv:"file,omitempty"    json:"file,omitempty"`
	Key    string `csv:"key,omitempty"     json:"key,omitempty"`
	Phone  string `csv:"phone"             json:"phone,omitempty"`
	Dealer string `csv:"dealer,omitempty"  json:"dealer,omitempty"`
	Status Status `csv:"status"            json:"status"`
	Detail string `csv:"detail,omitempty"  json:"detail,omitempty"`
}

type Summary struct {
	Total   int `json:"total"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Errored int `json:"errored"`
}

type Report struct {
	BatchID    string           `json:"batch_id"`
	Campaign   string           `json:"campaign"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Summary    Summary          `json:"summary"`
	Results    []DispatchResult `json:"results"`
}

func Summarize(results []DispatchResult) Summary {
	s := Summary{Total: len(results)}

	for _, r := range results {
		switch {
		case r.Status == StatusSent:
			s.Sent++
		case r.Status == StatusFailed:
			s.Failed++
		case r.Status == StatusSkipped:
			s.Skipped++
		case r.Status.IsError():
			s.Errored++
		}
	}

	return s
}
