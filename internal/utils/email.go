package utils

import (
	"bytes"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// SendMail envoie un e-mail HTML, avec une pièce jointe optionnelle.
// La configuration SMTP vient de l'environnement.
func SendMail(to, subject, htmlBody string, attachment []byte, attachmentName string) error {
	msg := mail.NewMsg()

	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "noreply@triplebarrelracing.com"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if attachment != nil {
		msg.AttachReader(attachmentName, bytes.NewReader(attachment))
	}

	host := os.Getenv("SMTP_HOST")
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// AdminEmail retourne l'adresse de notification des demandes de contact
func AdminEmail() string {
	addr := os.Getenv("ADMIN_EMAIL")
	if addr == "" {
		addr = "admin@triplebarrelracing.com"
	}
	return addr
}
