package domain

// Batch is everything uploaded for a single run.
type Batch struct {
	Roster    *UploadedDocument
	Documents []*UploadedDocument
}

func (b *Batch) Filenames() []string {
	names := make([]string, len(b.Documents))
	for i, d := range b.Documents {
		names[i] = d.Filename
	}

	return names
}

type CampaignInfo struct {
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Template        string   `json:"template"`
	Language        string   `json:"language"`
	RequiredColumns []string `json:"required_columns"`
	Attachment      bool     `json:"attachment"`
	DedupPhones     bool     `json:"dedup_phones"`
}
