package email

import (
	"testing"

	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestTemplateRenderer_RenderInvitation(t *testing.T) {
	r := NewTemplateRenderer()

	data := &domain.InvitationEmailData{
		Email:     "alice@example.com",
		EventName: "Launch party",
		EventDate: "2026-09-01",
		EventTime: "19:00",
		Location:  "Berlin",
	}
	subject, htmlBody, textBody, err := r.Render("invitation", data)
	require.NoError(t, err)

	require.Equal(t, "You're invited to Launch party", subject)
	require.Contains(t, htmlBody, "<strong>Launch party</strong>")
	require.Contains(t, htmlBody, "When: 2026-09-01 19:00")
	require.Contains(t, textBody, "Where: Berlin")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("missing", nil)
	require.Error(t, err)
}
