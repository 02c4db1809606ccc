package notifier

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	AppURL   string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTP struct {
	cfg  SMTPConfig
	send sendFunc
}

func NewSMTP(cfg SMTPConfig) ports.Notifier {
	return &SMTP{cfg: cfg, send: smtp.SendMail}
}

func (n *SMTP) SendActivation(ctx context.Context, user *domain.User, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))
	msg := activationMessage(n.cfg.From, user, ActivationURL(n.cfg.AppURL, token), time.Now())
	if err := n.send(addr, auth, n.cfg.From, []string{user.Email}, msg); err != nil {
		return fmt.Errorf("failed to send activation mail to %s: %w", user.Email, err)
	}
	return nil
}

func activationMessage(from string, user *domain.User, link string, now time.Time) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", user.Email)
	fmt.Fprintf(&b, "Subject: Confirm your account\r\n")
	fmt.Fprintf(&b, "Date: %s\r\n", now.Format(time.RFC1123Z))
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: text/plain; charset=UTF-8\r\n")
	fmt.Fprintf(&b, "\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", user.Name)
	fmt.Fprintf(&b, "Thanks for signing up. Confirm your account before logging in:\r\n\r\n")
	fmt.Fprintf(&b, "%s\r\n", link)
	return b.Bytes()
}
