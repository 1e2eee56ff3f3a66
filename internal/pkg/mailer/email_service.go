package mailer

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"anilab-chat-be/pkg/b2b"

	"gopkg.in/gomail.v2"
)

// ErrDisabled is returned by every send when SMTP is not fully configured.
var ErrDisabled = errors.New("mailer disabled: incomplete SMTP configuration")

type ILeadMailer interface {
	SendLead(lead b2b.Lead, excerpt []string) error
	Enabled() bool
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

func (c Config) complete() bool {
	return c.Host != "" && c.Port > 0 && c.Username != "" && c.Password != "" && c.From != "" && c.To != ""
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type leadMailer struct {
	dialer dialer
	from   string
	to     string
}

// NewLeadMailer returns a mailer that always fails with ErrDisabled unless
// every SMTP field is present.
func NewLeadMailer(cfg Config) ILeadMailer {
	if !cfg.complete() {
		return disabledMailer{}
	}
	return &leadMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}
}

func (s *leadMailer) Enabled() bool { return true }

func (s *leadMailer) SendLead(lead b2b.Lead, excerpt []string) error {
	if lead.Email == "" {
		return fmt.Errorf("lead %s has no contact email", lead.ID)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Reply-To", lead.Email)
	m.SetHeader("Subject", Subject(lead))
	m.SetBody("text/html", RenderLead(lead, excerpt))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send lead %s: %w", lead.ID, err)
	}
	return nil
}

type disabledMailer struct{}

func (disabledMailer) Enabled() bool { return false }

func (disabledMailer) SendLead(b2b.Lead, []string) error { return ErrDisabled }

func Subject(lead b2b.Lead) string {
	who := lead.Company
	if who == "" {
		who = lead.Name
	}
	if who == "" {
		who = lead.Email
	}
	if lead.Type != "" {
		return fmt.Sprintf("B2B dopyt: %s (%s)", who, lead.Type)
	}
	return "B2B dopyt: " + who
}

// RenderLead builds the HTML notification body. Every user supplied value is escaped.
func RenderLead(lead b2b.Lead, excerpt []string) string {
	rows := [][2]string{
		{"Typ", lead.Type},
		{"Krajina", lead.Country},
		{"Produkty", lead.Products},
		{"Objem", lead.Volume},
		{"Meno", lead.Name},
		{"Firma", lead.Company},
		{"E-mail", lead.Email},
		{"Web / sociálne siete", lead.Web},
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">`)
	b.WriteString("<h2>Nový B2B dopyt z chatu</h2>")
	b.WriteString(`<table cellpadding="4">`)
	for _, r := range rows {
		v := r[1]
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(&b, "<tr><td><b>%s</b></td><td>%s</td></tr>", r[0], html.EscapeString(v))
	}
	b.WriteString("</table>")

	if len(excerpt) > 0 {
		b.WriteString("<h3>Posledné správy</h3><ol>")
		for _, line := range excerpt {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(line))
		}
		b.WriteString("</ol>")
	}

	fmt.Fprintf(&b, "<p style=\"color:#888\">ID: %s, %s</p></div>", html.EscapeString(lead.ID), lead.CreatedAt.Format("2006-01-02 15:04 MST"))
	return b.String()
}
