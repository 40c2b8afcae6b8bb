package service

import (
	"bytes"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"employeehub/config"
	"employeehub/models"
)

var changeMailTemplate = template.Must(template.New("change").Parse(`<html>
  <body style="font-family: Arial, sans-serif; padding: 20px; background-color: #f5f5f5;">
    <div style="background-color: white; padding: 30px; border-radius: 10px;">
      <h2 style="color: {{.Color}}; border-bottom: 3px solid {{.Color}}; padding-bottom: 10px;">{{.Title}}</h2>
      <p style="font-size: 16px; color: #333;">Database change detected:</p>
      <table style="border-collapse: collapse; margin: 20px 0; width: 100%;">
        <tr><td style="padding: 12px; border: 1px solid #ddd; font-weight: bold;">Employee ID</td><td style="padding: 12px; border: 1px solid #ddd;">{{.ID}}</td></tr>
        <tr><td style="padding: 12px; border: 1px solid #ddd; font-weight: bold;">Name</td><td style="padding: 12px; border: 1px solid #ddd;">{{.Name}}</td></tr>
        <tr><td style="padding: 12px; border: 1px solid #ddd; font-weight: bold;">Salary</td><td style="padding: 12px; border: 1px solid #ddd; color: {{.Color}};">&#8377;{{.Salary}}</td></tr>
      </table>
      <p style="color: #666; font-size: 12px; border-top: 1px solid #ddd; padding-top: 10px;">{{.Timestamp}}</p>
    </div>
  </body>
</html>
`))

type changeMail struct {
	Title     string
	Color     string
	ID        string
	Name      string
	Salary    string
	Timestamp string
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// MailNotifier emails the configured recipient about employee changes.
type MailNotifier struct {
	cfg  config.MailConfig
	send SendFunc
}

func NewMailNotifier(cfg config.MailConfig) *MailNotifier {
	return &MailNotifier{cfg: cfg, send: smtp.SendMail}
}

// WithSender replaces the SMTP transport, for tests.
func (n *MailNotifier) WithSender(send SendFunc) *MailNotifier {
	n.send = send
	return n
}

func (n *MailNotifier) NotifyChange(action models.ChangeAction, data map[string]interface{}) error {
	if !n.cfg.Enabled() {
		return nil
	}

	msg, err := n.buildMessage(action, data, time.Now())
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if n.cfg.SenderPassword != "" {
		auth = smtp.PlainAuth("", n.cfg.SenderEmail, n.cfg.SenderPassword, n.cfg.SMTPServer)
	}

	addr := net.JoinHostPort(n.cfg.SMTPServer, n.cfg.SMTPPort)
	if err := n.send(addr, auth, n.cfg.SenderEmail, []string{n.cfg.RecipientEmail}, msg); err != nil {
		return fmt.Errorf("smtp %s: %w", addr, err)
	}
	return nil
}

func (n *MailNotifier) buildMessage(action models.ChangeAction, data map[string]interface{}, now time.Time) ([]byte, error) {
	mail := changeMail{
		ID:        valueOr(data["id"], "N/A"),
		Name:      valueOr(data["name"], "N/A"),
		Salary:    valueOr(data["salary"], "0"),
		Timestamp: now.Format("2006-01-02 15:04:05 MST"),
	}
	switch action {
	case models.ActionAdd:
		mail.Title, mail.Color = "New Employee Added", "#28a745"
	case models.ActionUpdate:
		mail.Title, mail.Color = "Employee Record Updated", "#ffc107"
	default:
		mail.Title, mail.Color = "Employee Record Deleted", "#dc3545"
	}

	var body bytes.Buffer
	if err := changeMailTemplate.Execute(&body, mail); err != nil {
		return nil, fmt.Errorf("failed to render mail: %w", err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", n.cfg.SenderEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", n.cfg.RecipientEmail)
	fmt.Fprintf(&msg, "Subject: Database Alert: Employee %s\r\n", action)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}

func valueOr(v interface{}, fallback string) string {
	if v == nil {
		return fallback
	}
	return formatCell(v)
}
