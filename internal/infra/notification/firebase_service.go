// Package notification delivers zone transition alerts to user devices
// through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"connkeeper/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type firebaseAlertService struct {
	client *messaging.Client
}

// NewFirebaseAlertService creates a new Firebase alert service instance
func NewFirebaseAlertService(ctx context.Context, credentialsPath string) (service.AlertService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseAlertService{
		client: client,
	}, nil
}

// EmitLocalAlert sends a push notification to the user's per-user topic.
// Every device the user owns subscribes to "user-<uuid>" on login, so topic
// routing spares the engine from tracking individual device tokens.
func (s *firebaseAlertService) EmitLocalAlert(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: userTopic(userID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send alert: %w", err)
	}

	return nil
}

func userTopic(userID uuid.UUID) string {
	return "user-" + userID.String()
}
