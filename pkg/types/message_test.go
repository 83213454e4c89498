package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserMessagePartOrder(t *testing.T) {
	msg := NewUserMessage(
		NewTextPart("first"),
		NewImagePart([]byte{0x01}, "image/jpeg"),
		NewTextPart("second"),
	)

	assert.Equal(t, RoleUser, msg.Role)
	assert.Equal(t, ContentPartTypeText, msg.Parts[0].Type)
	assert.Equal(t, ContentPartTypeImage, msg.Parts[1].Type)
	assert.Equal(t, ContentPartTypeText, msg.Parts[2].Type)
}

func TestMessageText(t *testing.T) {
	msg := NewUserMessage(
		NewTextPart("a"),
		NewImagePart([]byte{0x01}, "image/png"),
		NewTextPart("b"),
	)

	assert.Equal(t, "ab", msg.Text())
}

func TestMessageImageCount(t *testing.T) {
	assert.Equal(t, 0, NewUserTextMessage("just text").ImageCount())

	msg := NewUserMessage(
		NewImagePart([]byte{0x01}, "image/jpeg"),
		NewImagePart([]byte{0x02}, "image/png"),
	)
	assert.Equal(t, 2, msg.ImageCount())
}

func TestNewAssistantMessage(t *testing.T) {
	msg := NewAssistantMessage("reply")

	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, "reply", msg.Text())
}

func TestNewImagePart(t *testing.T) {
	part := NewImagePart([]byte{0xDE, 0xAD}, "image/jpeg")

	assert.Equal(t, ContentPartTypeImage, part.Type)
	assert.Equal(t, []byte{0xDE, 0xAD}, part.Data)
	assert.Equal(t, "image/jpeg", part.MediaType)
}
