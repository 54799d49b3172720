package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"pipetrak/config"
	"pipetrak/models"
)

// ErrEmailDisabled is returned when no SMTP server is configured.
var ErrEmailDisabled = errors.New("email is not configured")

// convertHTMLToText converts HTML content to plain text for the alternative
// part of an email.
func convertHTMLToText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}

	var text strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			text.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "style", "script", "head":
				return
			case "p", "div", "br", "h1", "h2", "h3", "table", "tr":
				text.WriteString("\n")
			case "li":
				text.WriteString("- ")
			case "td", "th":
				if n.PrevSibling != nil {
					text.WriteString(" | ")
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			extractText(child)
		}
	}
	extractText(doc)

	lines := strings.Split(text.String(), "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

var reportEmailTemplate = template.Must(template.New("report").Parse(`<html>
<body>
<h2>{{.Title}}</h2>
<p>{{.Subtitle}}</p>
{{if .Message}}<p>{{.Message}}</p>{{end}}
<table border="1" cellpadding="4" cellspacing="0">
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}<tr>{{range .Total}}<td><b>{{.}}</b></td>{{end}}</tr>
</table>
{{range .Notes}}<p><i>{{.}}</i></p>{{end}}
<p>The full report is attached as {{.Attachment}}.</p>
</body>
</html>`))

// ReportEmail is one outgoing report message.
type ReportEmail struct {
	Recipients  []string
	Message     string
	Report      models.ProgressReport
	Filename    string
	ContentType string
	Attachment  []byte
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailService sends generated reports over SMTP.
type EmailService struct {
	cfg  config.SMTPConfig
	send sendFunc
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg, send: smtp.SendMail}
}

func (es *EmailService) Enabled() bool { return es.cfg.Enabled() }

// SendReport mails the report summary with the export attached.
func (es *EmailService) SendReport(e ReportEmail) error {
	if !es.cfg.Enabled() {
		return ErrEmailDisabled
	}
	to, err := ParseRecipients(e.Recipients)
	if err != nil {
		return err
	}
	msg, err := es.buildMessage(to, e)
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if es.cfg.User != "" {
		auth = smtp.PlainAuth("", es.cfg.User, es.cfg.Password, es.cfg.Host)
	}
	addr := es.cfg.Host + ":" + strconv.Itoa(es.cfg.Port)
	if err := es.send(addr, auth, es.cfg.From, to, msg); err != nil {
		return fmt.Errorf("send report email: %w", err)
	}
	return nil
}

// ParseRecipients validates and normalises a recipient list.
func ParseRecipients(list []string) ([]string, error) {
	out := make([]string, 0, len(list))
	for _, r := range list {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		addr, err := mail.ParseAddress(r)
		if err != nil {
			return nil, fmt.Errorf("invalid recipient %q: %w", r, err)
		}
		out = append(out, addr.Address)
	}
	if len(out) == 0 {
		return nil, errors.New("at least one recipient is required")
	}
	return out, nil
}

// buildMessage renders a multipart/mixed message: an HTML body with a
// plain-text alternative, followed by the attachment.
func (es *EmailService) buildMessage(to []string, e ReportEmail) ([]byte, error) {
	table := BuildExportTable(e.Report)
	var body bytes.Buffer
	if err := reportEmailTemplate.Execute(&body, struct {
		ExportTable
		Message    string
		Attachment string
	}{table, e.Message, e.Filename}); err != nil {
		return nil, fmt.Errorf("render email body: %w", err)
	}
	htmlBody := body.String()

	var buf bytes.Buffer
	mixed := multipart.NewWriter(&buf)
	headers := []string{
		"From: " + es.cfg.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + mime.QEncoding.Encode("utf-8", table.Title),
		"MIME-Version: 1.0",
		"Content-Type: multipart/mixed; boundary=" + mixed.Boundary(),
		"",
		"",
	}
	msg := bytes.NewBufferString(strings.Join(headers, "\r\n"))

	altBody := &bytes.Buffer{}
	alt := multipart.NewWriter(altBody)
	for _, part := range []struct{ ctype, content string }{
		{"text/plain; charset=utf-8", convertHTMLToText(htmlBody)},
		{"text/html; charset=utf-8", htmlBody},
	} {
		w, err := alt.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {part.ctype},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}
	if err := alt.Close(); err != nil {
		return nil, err
	}

	w, err := mixed.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"multipart/alternative; boundary=" + alt.Boundary()},
	})
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(altBody.Bytes()); err != nil {
		return nil, err
	}

	if len(e.Attachment) > 0 {
		w, err := mixed.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {e.ContentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": e.Filename})},
		})
		if err != nil {
			return nil, err
		}
		encoded := base64.StdEncoding.EncodeToString(e.Attachment)
		for len(encoded) > 76 {
			if _, err := w.Write([]byte(encoded[:76] + "\r\n")); err != nil {
				return nil, err
			}
			encoded = encoded[76:]
		}
		if _, err := w.Write([]byte(encoded + "\r\n")); err != nil {
			return nil, err
		}
	}
	if err := mixed.Close(); err != nil {
		return nil, err
	}
	msg.Write(buf.Bytes())
	return msg.Bytes(), nil
}
