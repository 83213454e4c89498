// Package types defines the shared message and model types exchanged
// between the diary pipeline and LLM providers.
package types

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ContentPartType discriminates the variants of a message content part.
type ContentPartType string

const (
	// ContentPartTypeText is a plain text fragment.
	ContentPartTypeText ContentPartType = "text"

	// ContentPartTypeImage is an inlined binary image payload with a
	// declared media type, delivered to the provider as embedded data.
	ContentPartTypeImage ContentPartType = "image"
)

// ContentPart is one ordered fragment of a multimodal message.
type ContentPart struct {
	// Type indicates which of the fields below is populated.
	Type ContentPartType

	// Text holds the fragment text.
	// Only populated when Type is ContentPartTypeText.
	Text string

	// Data holds raw image bytes.
	// Only populated when Type is ContentPartTypeImage.
	Data []byte

	// MediaType is the MIME type of Data (e.g. "image/jpeg").
	// Only populated when Type is ContentPartTypeImage.
	MediaType string
}

// Message represents a single chat message, possibly multimodal.
// Part order is significant: providers must transmit parts in the
// order they appear here.
type Message struct {
	Role  Role
	Parts []ContentPart
}

// NewTextPart creates a text content part.
func NewTextPart(text string) ContentPart {
	return ContentPart{Type: ContentPartTypeText, Text: text}
}

// NewImagePart creates an image content part from raw bytes and a MIME type.
func NewImagePart(data []byte, mediaType string) ContentPart {
	return ContentPart{Type: ContentPartTypeImage, Data: data, MediaType: mediaType}
}

// NewUserMessage creates a user message from ordered content parts.
func NewUserMessage(parts ...ContentPart) *Message {
	return &Message{Role: RoleUser, Parts: parts}
}

// NewUserTextMessage creates a user message holding a single text part.
func NewUserTextMessage(text string) *Message {
	return NewUserMessage(NewTextPart(text))
}

// NewAssistantMessage creates an assistant message holding a single text part.
func NewAssistantMessage(text string) *Message {
	return &Message{Role: RoleAssistant, Parts: []ContentPart{NewTextPart(text)}}
}

// Text returns the concatenation of all text parts in order.
// Image parts are skipped.
func (m *Message) Text() string {
	var out string
	for _, p := range m.Parts {
		if p.Type == ContentPartTypeText {
			out += p.Text
		}
	}
	return out
}

// ImageCount returns the number of image parts in the message.
func (m *Message) ImageCount() int {
	n := 0
	for _, p := range m.Parts {
		if p.Type == ContentPartTypeImage {
			n++
		}
	}
	return n
}

// ModelInfo describes the LLM model behind a provider.
type ModelInfo struct {
	// Provider is the provider family (e.g. "openai").
	Provider string

	// Name is the model identifier sent with each request.
	Name string

	// SupportsVision indicates whether the model accepts image parts.
	SupportsVision bool

	// Metadata holds provider-specific extras (e.g. non-default base URL).
	Metadata map[string]interface{}
}
