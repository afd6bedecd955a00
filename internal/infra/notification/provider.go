package notification

import (
	"context"
	"log/slog"

	"connkeeper/config"
	"connkeeper/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// logAlertService is the fallback when Firebase is not configured. It writes
// the alert to the log so development environments still show emissions.
type logAlertService struct {
	logger *slog.Logger
}

func (s *logAlertService) EmitLocalAlert(_ context.Context, userID uuid.UUID, title, body string, _ map[string]string) error {
	s.logger.Info("[LocalAlert] Alert emitted",
		slog.String("user_id", userID.String()),
		slog.String("title", title),
		slog.String("body", body),
	)

	return nil
}

// AlertParams holds dependencies for AlertService, injected by Fx
type AlertParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAlertService creates an AlertService based on configuration
func NewAlertService(params AlertParams) (service.AlertService, error) {
	cfg := params.Config.Firebase

	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using log alert service")

		return &logAlertService{logger: params.Logger}, nil
	}

	return NewFirebaseAlertService(params.Ctx, cfg.CredentialsPath)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAlertService),
)
