package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendOTP(userEmail string, otp string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth: auth,
		mail: mail,
		host: host,
		addr: fmt.Sprintf("%s:%s", host, port),
	}
}

func (s *smtp) SendOTP(userEmail string, otp string) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: BlogSpace password reset\r\n\r\nYour BlogSpace password reset code is: %s\r\nThe code expires in 5 minutes.",
		userEmail, otp))

	return smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message)
}
