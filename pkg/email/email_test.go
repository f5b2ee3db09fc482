package email

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/smtp"
	"strings"
	"testing"

	"github.com/aakb/rasid-api/pkg/export"
)

type captured struct {
	addr string
	from string
	to   []string
	msg  []byte
}

func newTestService(cfg EmailConfig, sendErr error) (*EmailService, *captured) {
	c := &captured{}
	s := NewEmailService(cfg)
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		c.addr, c.from, c.to, c.msg = addr, from, to, msg
		return sendErr
	}
	return s, c
}

var testConfig = EmailConfig{
	SMTPHost:  "smtp.example.org",
	SMTPPort:  587,
	FromName:  "Ashram Office",
	FromEmail: "office@example.org",
}

func TestSendBuildsMultipartMessage(t *testing.T) {
	s, c := newTestService(testConfig, nil)
	png := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}

	err := s.Send(Message{
		To:       "donor@example.org",
		Subject:  "Receipt #42",
		HTMLBody: "<p>hello</p>",
		Attachments: []Attachment{
			{Filename: "Receipt_42_Ramesh_Patel.png", MIMEType: "image/png", Data: png},
		},
	})
	if err != nil {
		t.Fatalf("Send error = %v", err)
	}
	if c.addr != "smtp.example.org:587" || c.from != "office@example.org" {
		t.Errorf("addr/from = %q/%q", c.addr, c.from)
	}
	if len(c.to) != 1 || c.to[0] != "donor@example.org" {
		t.Errorf("to = %v", c.to)
	}

	m, err := mail.ReadMessage(bytes.NewReader(c.msg))
	if err != nil {
		t.Fatalf("ReadMessage error = %v", err)
	}
	if got := m.Header.Get("Subject"); !strings.Contains(got, "Receipt") {
		t.Errorf("Subject = %q", got)
	}
	mediaType, params, err := mime.ParseMediaType(m.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/mixed" {
		t.Fatalf("Content-Type = %q, %v", mediaType, err)
	}

	mr := multipart.NewReader(m.Body, params["boundary"])
	var parts []*multipart.Part
	var attachment []byte
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart error = %v", err)
		}
		parts = append(parts, p)
		if p.FileName() != "" {
			// multipart.Reader leaves base64 bodies encoded.
			raw, _ := io.ReadAll(p)
			attachment = raw
			if p.FileName() != "Receipt_42_Ramesh_Patel.png" {
				t.Errorf("attachment filename = %q", p.FileName())
			}
		}
	}
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
	if len(attachment) == 0 {
		t.Error("attachment part is empty")
	}
}

func TestSendNotConfigured(t *testing.T) {
	s, _ := newTestService(EmailConfig{}, nil)
	if err := s.Send(Message{To: "a@b.c"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Send error = %v, want ErrNotConfigured", err)
	}
}

func TestReceiptSharerCanShare(t *testing.T) {
	s, _ := newTestService(testConfig, nil)
	sharer := NewReceiptSharer(s, "Ashram")

	tests := []struct {
		target export.ShareTarget
		want   bool
	}{
		{export.ShareTarget{Channel: "email", Recipient: "donor@example.org"}, true},
		{export.ShareTarget{Channel: "email", Recipient: "not an address"}, false},
		{export.ShareTarget{Channel: "whatsapp", Recipient: "donor@example.org"}, false},
	}
	for _, tt := range tests {
		if got := sharer.CanShare(tt.target); got != tt.want {
			t.Errorf("CanShare(%+v) = %v, want %v", tt.target, got, tt.want)
		}
	}

	unconfigured, _ := newTestService(EmailConfig{}, nil)
	if NewReceiptSharer(unconfigured, "Ashram").CanShare(tests[0].target) {
		t.Error("unconfigured sharer reported CanShare")
	}
}

func TestReceiptSharerShare(t *testing.T) {
	s, c := newTestService(testConfig, nil)
	sharer := NewReceiptSharer(s, "Ashram")

	err := sharer.Share(context.Background(),
		export.ShareTarget{Channel: "email", Recipient: "donor@example.org"},
		export.SharePayload{
			Title: "Receipt #7",
			Text:  "Receipt for Ramesh - ₹1100",
			File:  &export.Artifact{Filename: "Receipt_7_Ramesh.png", MIMEType: "image/png", Data: []byte("png")},
		})
	if err != nil {
		t.Fatalf("Share error = %v", err)
	}
	if !bytes.Contains(c.msg, []byte("Receipt_7_Ramesh.png")) {
		t.Error("message does not carry the attachment filename")
	}
}

func TestReceiptSharerSendsToBareAddress(t *testing.T) {
	s, c := newTestService(testConfig, nil)
	sharer := NewReceiptSharer(s, "Ashram")
	target := export.ShareTarget{Channel: "email", Recipient: "Ramesh Patel <donor@example.org>"}

	if !sharer.CanShare(target) {
		t.Fatal("CanShare rejected a named address")
	}
	if err := sharer.Share(context.Background(), target, export.SharePayload{Title: "Receipt #8"}); err != nil {
		t.Fatalf("Share error = %v", err)
	}
	if len(c.to) != 1 || c.to[0] != "donor@example.org" {
		t.Errorf("to = %v, want [donor@example.org]", c.to)
	}
	m, err := mail.ReadMessage(bytes.NewReader(c.msg))
	if err != nil {
		t.Fatalf("ReadMessage error = %v", err)
	}
	if got := m.Header.Get("To"); got != "donor@example.org" {
		t.Errorf("To header = %q", got)
	}

	err = sharer.Share(context.Background(),
		export.ShareTarget{Channel: "email", Recipient: "not an address"},
		export.SharePayload{Title: "Receipt #9"})
	if err == nil {
		t.Error("Share accepted an invalid recipient")
	}
}

func TestReceiptSharerPropagatesFailure(t *testing.T) {
	boom := errors.New("connection refused")
	s, _ := newTestService(testConfig, boom)
	err := NewReceiptSharer(s, "Ashram").Share(context.Background(),
		export.ShareTarget{Channel: "email", Recipient: "donor@example.org"},
		export.SharePayload{Title: "Receipt #1"})
	if !errors.Is(err, boom) {
		t.Errorf("Share error = %v, want wrapped %v", err, boom)
	}
}

func TestRenderReceiptEmailEscapes(t *testing.T) {
	body, err := renderReceiptEmail("Ashram", "Receipt #1", "<script>x</script>")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("caption was not escaped")
	}
}
