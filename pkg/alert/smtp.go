package alert

import (
	"context"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/atelier-lab/atelier/pkg/config"
	"github.com/atelier-lab/atelier/pkg/logutils"
)

type SMTPAlerter struct {
	host string
	port int
	user string
	pass string
}

func newSMTPAlerter() (alertHandlerInterface, error) {
	smtpConfig := config.GetConfig().SMTP
	port, err := strconv.Atoi(smtpConfig.Port)
	if err != nil {
		return nil, err
	}
	return &SMTPAlerter{
		host: smtpConfig.Host,
		port: port,
		user: smtpConfig.User,
		pass: smtpConfig.Password,
	}, nil
}

func (sa *SMTPAlerter) SendMessageTo(_ context.Context, receiver, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", sa.user)
	m.SetHeader("To", receiver)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(sa.host, sa.port, sa.user, sa.pass)
	if err := d.DialAndSend(m); err != nil {
		logutils.Log.Errorf("Failed to send email to %s: %v", receiver, err)
		return err
	}
	logutils.Log.Infof("Sent email to %s", receiver)
	return nil
}
