package notifier

import (
	"context"
	"log/slog"

	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

// Log writes activation links to the structured log instead of sending mail.
type Log struct {
	logger *slog.Logger
	appURL string
}

func NewLog(logger *slog.Logger, appURL string) ports.Notifier {
	return &Log{logger: logger, appURL: appURL}
}

func (n *Log) SendActivation(ctx context.Context, user *domain.User, token string) error {
	n.logger.InfoContext(ctx, "activation link",
		"user_id", user.ID,
		"email", user.Email,
		"url", ActivationURL(n.appURL, token),
	)
	return nil
}
