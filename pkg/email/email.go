package email

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// Attachment is a file sent along with a message
type Attachment struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Message is one outgoing email
type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// ErrNotConfigured is returned when no SMTP host or sender is set
var ErrNotConfigured = errors.New("email: SMTP is not configured")

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
	send   sendFunc
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config, send: smtp.SendMail}
}

// Configured reports whether the service has enough settings to send mail
func (s *EmailService) Configured() bool {
	return s.config.SMTPHost != "" && s.config.FromEmail != ""
}

// Send delivers msg over SMTP
func (s *EmailService) Send(msg Message) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	body, err := s.build(msg)
	if err != nil {
		return fmt.Errorf("failed to build email: %w", err)
	}
	return s.sendEmail(msg.To, body)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	var auth smtp.Auth
	if s.config.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)
	}

	if err := s.send(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// build writes a multipart/mixed message with an HTML part followed by one
// base64 part per attachment.
func (s *EmailService) build(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", s.config.FromName), s.config.FromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mw.Boundary())

	htmlPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {`text/html; charset="UTF-8"`},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return nil, err
	}
	if err := writeBase64(htmlPart, []byte(msg.HTMLBody)); err != nil {
		return nil, err
	}

	for _, a := range msg.Attachments {
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {a.MIMEType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename})},
		})
		if err != nil {
			return nil, err
		}
		if err := writeBase64(part, a.Data); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeBase64 wraps encoded lines at 76 characters.
func writeBase64(w io.Writer, data []byte) error {
	enc := base64.StdEncoding.EncodeToString(data)
	var b strings.Builder
	for len(enc) > 76 {
		b.WriteString(enc[:76])
		b.WriteString("\r\n")
		enc = enc[76:]
	}
	b.WriteString(enc)
	b.WriteString("\r\n")
	_, err := w.Write([]byte(b.String()))
	return err
}

// renderReceiptEmail renders the body of a shared receipt email
func renderReceiptEmail(orgName, title, caption string) (string, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		OrgName string
		Title   string
		Caption string
	}{
		OrgName: orgName,
		Title:   title,
		Caption: caption,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// receiptTemplate is the HTML template for shared receipt emails
const receiptTemplate = `
<!DOCTYPE html>
<html lang="gu">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Noto Sans Gujarati', 'Segoe UI', Tahoma, sans-serif; background-color: #fff8f0;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 32px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #f97316 0%, #ea580c 100%); padding: 28px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 22px; font-weight: 600;">{{.OrgName}}</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 32px 30px;">
                            <h2 style="color: #7c2d12; margin: 0 0 16px 0; font-size: 20px;">{{.Title}}</h2>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 16px 0;">{{.Caption}}</p>
                            <p style="color: #718096; font-size: 14px; line-height: 1.6; margin: 0;">The receipt image is attached to this email.</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #fffbeb; padding: 20px; text-align: center; border-top: 1px solid #fde68a;">
                            <p style="color: #a16207; font-size: 12px; margin: 0;">{{.OrgName}}</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
