package pipeline

import (
	"fmt"
	"slices"

	"github.com/kurochkinivan/dealer_notifier/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	ColumnInvoiceNumber = "invoice number"
	ColumnPhoneNumber   = "phone number"
	ColumnDealerName    = "dealer name"
	ColumnDealerCode    = "dealer code"
	ColumnAmount        = "amount"
)

const (
	CampaignInvoice      = "invoice"
	CampaignNewUser      = "new-user"
	CampaignExistingUser = "existing-user"
)

// CountryCode is prepended to every roster phone number.
const CountryCode = "91"

// ComponentBuilder fills the template parameters for a roster row. document
// is nil for campaigns without an attachment.
type ComponentBuilder func(row domain.RosterRow, document *domain.DocumentLink) []domain.Component

type Campaign struct {
	Name            string
	Title           string
	Template        string
	Language        string
	RequiredColumns []string
	KeyColumn       string
	Attachment      bool
	DedupPhones     bool
	Components      ComponentBuilder
}

// Message builds the template message for a row from the campaign's template
// and language.
func (c *Campaign) Message(row domain.RosterRow, document *domain.DocumentLink) *domain.Message {
	var components []domain.Component
	if c.Components != nil {
		components = c.Components(row, document)
	}

	return domain.NewTemplateMessage(recipient(row.Phone), c.Template, c.Language, components...)
}

func (c *Campaign) Info() domain.CampaignInfo {
	return domain.CampaignInfo{
		Name:            c.Name,
		Title:           c.Title,
		Template:        c.Template,
		Language:        c.Language,
		RequiredColumns: slices.Clone(c.RequiredColumns),
		Attachment:      c.Attachment,
		DedupPhones:     c.DedupPhones,
	}
}

func (c *Campaign) row(table *domain.Table, i int) domain.RosterRow {
	return domain.RosterRow{
		Index:  i,
		Key:    table.Value(i, c.KeyColumn),
		Phone:  table.Value(i, ColumnPhoneNumber),
		Name:   table.Value(i, ColumnDealerName),
		Amount: normalizeAmount(table.Value(i, ColumnAmount)),
		Code:   table.Value(i, ColumnDealerCode),
	}
}

func normalizeAmount(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}

	return d.String()
}

func recipient(phone string) string {
	return CountryCode + phone
}

func InvoiceCampaign() *Campaign {
	return &Campaign{
		Name:     CampaignInvoice,
		Title:    "Invoice message",
		Template: "invoice_message",
		Language: "en_IN",
		RequiredColumns: []string{
			ColumnInvoiceNumber,
			ColumnPhoneNumber,
			ColumnDealerName,
			ColumnAmount,
		},
		KeyColumn:  ColumnInvoiceNumber,
		Attachment: true,
		Components: func(row domain.RosterRow, document *domain.DocumentLink) []domain.Component {
			return []domain.Component{
				{
					Type:       domain.ComponentHeader,
					Parameters: []domain.Parameter{domain.DocumentParameter(document.ID, document.Filename)},
				},
				{
					Type: domain.ComponentBody,
					Parameters: []domain.Parameter{
						domain.TextParameter("customer_name", row.Name),
						domain.TextParameter("invoice_number", row.Key),
						domain.TextParameter("amount", row.Amount),
					},
				},
			}
		},
	}
}

func NewUserCampaign() *Campaign {
	return &Campaign{
		Name:            CampaignNewUser,
		Title:           "New user",
		Template:        "welcome_new_user",
		Language:        "en",
		RequiredColumns: []string{ColumnPhoneNumber},
		KeyColumn:       ColumnPhoneNumber,
		DedupPhones:     true,
	}
}

func ExistingUserCampaign() *Campaign {
	return &Campaign{
		Name:     CampaignExistingUser,
		Title:    "Welcome existing user",
		Template: "welcome_existing_user",
		Language: "en",
		RequiredColumns: []string{
			ColumnPhoneNumber,
			ColumnDealerName,
			ColumnDealerCode,
		},
		KeyColumn: ColumnPhoneNumber,
		Components: func(row domain.RosterRow, _ *domain.DocumentLink) []domain.Component {
			return []domain.Component{
				{
					Type: domain.ComponentBody,
					Parameters: []domain.Parameter{
						domain.TextParameter("dealer_name", row.Name),
						domain.TextParameter("dealer_code", row.Code),
					},
				},
			}
		},
	}
}

type Campaigns struct {
	list []*Campaign
}

// NewCampaigns returns the built-in campaigns. dedup lists the campaigns that
// de-duplicate phone numbers before sending; attachment campaigns cannot be
// listed because every document is its own message.
func NewCampaigns(dedup []string) (*Campaigns, error) {
	list := []*Campaign{
		InvoiceCampaign(),
		NewUserCampaign(),
		ExistingUserCampaign(),
	}

	for _, name := range dedup {
		i := slices.IndexFunc(list, func(c *Campaign) bool { return c.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("dedup: %w %q", domain.ErrUnknownCampaign, name)
		}

		if list[i].Attachment {
			return nil, fmt.Errorf("dedup: campaign %q sends one message per document", name)
		}
	}

	for _, c := range list {
		c.DedupPhones = !c.Attachment && slices.Contains(dedup, c.Name)
	}

	return &Campaigns{list: list}, nil
}

func (c *Campaigns) Get(name string) (*Campaign, bool) {
	for _, campaign := range c.list {
		if campaign.Name == name {
			return campaign, true
		}
	}

	return nil, false
}

func (c *Campaigns) Infos() []domain.CampaignInfo {
	infos := make([]domain.CampaignInfo, len(c.list))
	for i, campaign := range c.list {
		infos[i] = campaign.Info()
	}

	return infos
}
