package publisher

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/smtp"
	"net/textproto"

	"github.com/fl196/daily-news-bot/internal/digest"
)

const fromDisplayName = "📰 Daily News"

// Email sends the digest as a multipart text+HTML email over SMTP with
// STARTTLS. One connection per send, no retry.
type Email struct {
	host      string
	port      int
	sender    string
	password  string
	recipient string
}

// NewEmail creates an Email publisher. The sender address doubles as the
// SMTP username.
func NewEmail(host string, port int, sender, password, recipient string) *Email {
	return &Email{
		host:      host,
		port:      port,
		sender:    sender,
		password:  password,
		recipient: recipient,
	}
}

func (p *Email) Publish(_ context.Context, d *digest.Digest) error {
	msg, err := buildMessage(p.sender, p.recipient, Subject(d), BuildText(d), BuildHTML(d))
	if err != nil {
		return fmt.Errorf("email: failed to build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", p.host, p.port)
	c, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("email: failed to connect to %s: %w", addr, err)
	}
	defer c.Close()

	if err := c.StartTLS(&tls.Config{ServerName: p.host}); err != nil {
		return fmt.Errorf("email: starttls failed: %w", err)
	}
	if err := c.Auth(smtp.PlainAuth("", p.sender, p.password, p.host)); err != nil {
		return fmt.Errorf("email: auth failed: %w", err)
	}
	if err := c.Mail(p.sender); err != nil {
		return fmt.Errorf("email: mail command failed: %w", err)
	}
	if err := c.Rcpt(p.recipient); err != nil {
		return fmt.Errorf("email: rcpt command failed: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("email: data command failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("email: failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("email: failed to finish message: %w", err)
	}

	if err := c.Quit(); err != nil {
		return fmt.Errorf("email: quit failed: %w", err)
	}
	return nil
}

// buildMessage assembles a multipart/alternative message with the plain part
// first and the HTML part last, per mail client rendering preference.
func buildMessage(from, to, subject, textBody, htmlBody string) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", fromDisplayName), from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary())
	fmt.Fprintf(&buf, "\r\n")

	for _, part := range []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=UTF-8", textBody},
		{"text/html; charset=UTF-8", htmlBody},
	} {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Type", part.contentType)
		hdr.Set("Content-Transfer-Encoding", "quoted-printable")
		pw, err := mw.CreatePart(hdr)
		if err != nil {
			return nil, fmt.Errorf("create part: %w", err)
		}
		qw := quotedprintable.NewWriter(pw)
		if _, err := qw.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("encode part: %w", err)
		}
		if err := qw.Close(); err != nil {
			return nil, fmt.Errorf("close part: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}
	return buf.Bytes(), nil
}
