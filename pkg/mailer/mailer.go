package mailer

import (
	"fmt"
	"os"
	"strconv"

	"vedang.dev/models"

	"gopkg.in/gomail.v2"
)

// Notifier delivers owner notifications. Callers treat delivery as
// best-effort; a failed notification never fails the owning write.
type Notifier interface {
	NotifyContact(msg models.ContactMessage) error
}

// SMTPNotifier sends notifications over SMTP to the owner's own address.
type SMTPNotifier struct {
	host     string
	port     int
	username string
	password string
	to       string
}

// NewSMTPNotifier builds a notifier from SMTP_* environment variables.
// Returns a disabled no-op notifier when SMTP_HOST is unset.
func NewSMTPNotifier() Notifier {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return disabledNotifier{}
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	username := os.Getenv("SMTP_USER")
	to := os.Getenv("CONTACT_NOTIFY_TO")
	if to == "" {
		to = username
	}
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: os.Getenv("SMTP_PASSWORD"),
		to:       to,
	}
}

func (n *SMTPNotifier) NotifyContact(msg models.ContactMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.username)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", "Portfolio Contact: "+msg.Subject)
	m.SetBody("text/plain", fmt.Sprintf(
		"New message from your portfolio:\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	))

	d := gomail.NewDialer(n.host, n.port, n.username, n.password)
	return d.DialAndSend(m)
}

type disabledNotifier struct{}

func (disabledNotifier) NotifyContact(models.ContactMessage) error { return nil }
