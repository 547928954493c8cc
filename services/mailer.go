package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/kitchify/kitchify-server/config"
	"github.com/kitchify/kitchify-server/models"
)

// Mailer delivers a rendered alert. Kept as an interface so tests can record
// sends without an SMTP server.
type Mailer interface {
	Send(subject, htmlBody string) error
}

type SMTPMailer struct {
	cfg config.AlertConfig
}

func NewSMTPMailer(cfg config.AlertConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(subject, htmlBody string) error {
	auth := smtp.PlainAuth("", m.cfg.EmailUser, m.cfg.EmailPass, m.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)

	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n%s%s",
		m.cfg.EmailTo, subject, mime, htmlBody))

	return smtp.SendMail(addr, auth, m.cfg.EmailUser, []string{m.cfg.EmailTo}, msg)
}

var alertTemplate = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="font-size: 22px;">Kitchify &mdash; Low Stock Alert</h1>
  <p>{{.Count}} ingredient(s) are at or below their minimum as of {{.Date}}.</p>
  <table style="width: 100%; border-collapse: collapse;">
    <thead>
      <tr style="background: #f3f4f6;">
        <th style="padding: 8px; text-align: left;">Ingredient</th>
        <th style="padding: 8px; text-align: center;">Current</th>
        <th style="padding: 8px; text-align: center;">Minimum</th>
        <th style="padding: 8px; text-align: center;">Status</th>
      </tr>
    </thead>
    <tbody>
      {{range .Items}}
      <tr style="border-bottom: 1px solid #e5e7eb;">
        <td style="padding: 8px;">{{.Name}}</td>
        <td style="padding: 8px; text-align: center; color: #dc2626;">{{.Quantity}} {{.Unit}}</td>
        <td style="padding: 8px; text-align: center;">{{.Minimum}} {{.Unit}}</td>
        <td style="padding: 8px; text-align: center;">{{.Status}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <p style="color: #9ca3af; font-size: 12px;">Automatic message from the Kitchify inventory system.</p>
</body>
</html>`))

type alertRow struct {
	Name     string
	Quantity float64
	Minimum  float64
	Unit     string
	Status   string
}

func buildAlertEmail(low []models.Ingredient, now time.Time) (subject, body string, err error) {
	rows := make([]alertRow, 0, len(low))
	for _, ing := range low {
		status := "LOW"
		if ing.Quantity < ing.Minimum {
			status = "CRITICAL"
		}
		rows = append(rows, alertRow{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Minimum:  ing.Minimum,
			Unit:     ing.Unit,
			Status:   status,
		})
	}

	data := struct {
		Count int
		Date  string
		Items []alertRow
	}{
		Count: len(rows),
		Date:  now.Format("2006-01-02 15:04"),
		Items: rows,
	}

	var buf bytes.Buffer
	if err := alertTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}

	subject = fmt.Sprintf("Inventory alert - %d ingredient(s) low on stock", len(rows))
	return subject, buf.String(), nil
}
