package domain

const (
	MessagingProduct = "whatsapp"

	ComponentHeader = "header"
	ComponentBody   = "body"

	ParameterText     = "text"
	ParameterDocument = "document"
)

// Message is a WhatsApp Cloud API template message.
type Message struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         Template `json:"template"`
}

type Template struct {
	Name       string      `json:"name"`
	Language   Language    `json:"language"`
	Components []Component `json:"components,omitempty"`
}

type Language struct {
	Code string `json:"code"`
}

type Component struct {
	Type       string      `json:"type"`
	Parameters []Parameter `json:"parameters"`
}

type Parameter struct {
	Type          string        `json:"type"`
	ParameterName string        `json:"parameter_name,omitempty"`
	Text          string        `json:"text,omitempty"`
	Document      *DocumentLink `json:"document,omitempty"`
}

type DocumentLink struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

func NewTemplateMessage(to, name, language string, components ...Component) *Message {
	return &Message{
		MessagingProduct: MessagingProduct,
		To:               to,
		Type:             "template",
		Template: Template{
			Name:       name,
			Language:   Language{Code: language},
			Components: components,
		},
	}
}

func TextParameter(name, text string) Parameter {
	return Parameter{
		Type:          ParameterText,
		ParameterName: name,
		Text:          text,
	}
}

func DocumentParameter(mediaID, filename string) Parameter {
	return Parameter{
		Type: ParameterDocument,
		Document: &DocumentLink{
			ID:       mediaID,
			Filename: filename,
		},
	}
}

// MediaUpload is an attachment ready to be uploaded to the provider.
type MediaUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}
