package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

// ContactMessage is a storefront contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

const contactTemplate = `<div style="font-family:sans-serif;background:#0f0f0f;padding:32px;">
  <div style="max-width:520px;margin:0 auto;background:#181818;border:1px solid #2a2a2a;padding:28px;">
    <h2 style="color:#D4FF00;margin-top:0;">Contact Form — Griffix Racing</h2>
    <p style="color:#aaa;"><strong style="color:#e5e5e5;">From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
    <p style="color:#aaa;"><strong style="color:#e5e5e5;">Subject:</strong> {{if .Subject}}{{.Subject}}{{else}}(no subject){{end}}</p>
    <p style="color:#aaa;white-space:pre-line;"><strong style="color:#e5e5e5;">Message:</strong><br>{{.Message}}</p>
  </div>
</div>`

var contactTmpl = template.Must(template.New("contact").Parse(contactTemplate))

// SendContactMessage relays a contact-form submission to the shop
// owner, with reply-to set to the sender.
func (m *SMTPMailer) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	if m.cfg.OwnerEmail == "" {
		return fmt.Errorf("owner email is not configured")
	}

	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, msg); err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}

	subject := msg.Subject
	if subject == "" {
		subject = msg.Name
	}
	return m.sendWithReplyTo(ctx, m.cfg.OwnerEmail, "Contact Form: "+subject, body.String(), msg.Email)
}
