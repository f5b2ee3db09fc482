package email

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/aakb/rasid-api/pkg/export"
)

// ChannelEmail is the share channel served by ReceiptSharer
const ChannelEmail = "email"

// ReceiptSharer delivers exported receipt images by email.
type ReceiptSharer struct {
	service *EmailService
	orgName string
}

// NewReceiptSharer creates a share channel that signs emails as orgName
func NewReceiptSharer(service *EmailService, orgName string) *ReceiptSharer {
	return &ReceiptSharer{service: service, orgName: orgName}
}

// CanShare accepts email targets with a valid address while SMTP is configured
func (s *ReceiptSharer) CanShare(target export.ShareTarget) bool {
	if target.Channel != ChannelEmail || !s.service.Configured() {
		return false
	}
	_, err := mail.ParseAddress(target.Recipient)
	return err == nil
}

// Share sends the payload's image as an attachment to the recipient's bare
// address; a display name such as "Ramesh <r@example.org>" is dropped.
func (s *ReceiptSharer) Share(ctx context.Context, target export.ShareTarget, payload export.SharePayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(target.Recipient)
	if err != nil {
		return fmt.Errorf("email recipient %q: %w", target.Recipient, err)
	}
	body, err := renderReceiptEmail(s.orgName, payload.Title, payload.Text)
	if err != nil {
		return err
	}

	msg := Message{
		To:       addr.Address,
		Subject:  payload.Title,
		HTMLBody: body,
	}
	if payload.File != nil {
		msg.Attachments = append(msg.Attachments, Attachment{
			Filename: payload.File.Filename,
			MIMEType: payload.File.MIMEType,
			Data:     payload.File.Data,
		})
	}
	return s.service.Send(msg)
}
