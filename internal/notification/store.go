package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"intrahub.io/portal/ent"
	apperrors "intrahub.io/portal/internal/pkg/errors"
	"intrahub.io/portal/internal/pkg/logger"
)

// SendInput holds the fields of a broadcast request after validation.
type SendInput struct {
	Title       string
	Message     string
	Type        string // wire value, defaults to general
	Priority    string // wire value, defaults to normal
	SenderID    string
	SectorID    string
	SubsectorID string
	ActionURL   string
	ExpiresAt   *time.Time
}

// Store persists notification broadcasts.
//
// The notification row and its delivery rows are written in one transaction:
// a partial failure can never leave a persisted notification with no
// recipients, nor delivery rows pointing at a missing notification.
type Store struct {
	client *ent.Client
}

// NewStore creates a new notification store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Send inserts the notification plus one delivery row per recipient and
// returns the created notification with the delivery count. The recipient
// slice is expected to be deduplicated already (see Resolver); the unique
// (notification_id, user_id) key backstops that assumption.
func (s *Store) Send(ctx context.Context, input SendInput, recipients []string) (*ent.Notification, int, error) {
	if err := validateSendInput(input); err != nil {
		return nil, 0, err
	}

	entType, err := ToEntType(input.Type)
	if err != nil {
		return nil, 0, apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error())
	}
	entPriority, err := ToEntPriority(input.Priority)
	if err != nil {
		return nil, 0, apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error())
	}

	var created *ent.Notification
	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		builder := tx.Notification.Create().
			SetID(generateID()).
			SetTitle(input.Title).
			SetMessage(input.Message).
			SetType(entType).
			SetPriority(entPriority).
			SetSenderID(input.SenderID)
		if input.SectorID != "" {
			builder = builder.SetSectorID(input.SectorID)
		}
		if input.SubsectorID != "" {
			builder = builder.SetSubsectorID(input.SubsectorID)
		}
		if input.ActionURL != "" {
			builder = builder.SetActionURL(input.ActionURL)
		}
		if input.ExpiresAt != nil {
			builder = builder.SetExpiresAt(*input.ExpiresAt)
		}

		n, err := builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		if len(recipients) > 0 {
			bulk := make([]*ent.RecipientCreate, 0, len(recipients))
			for _, userID := range recipients {
				bulk = append(bulk, tx.Recipient.Create().
					SetID(generateID()).
					SetNotificationID(n.ID).
					SetUserID(userID))
			}
			if _, err := tx.Recipient.CreateBulk(bulk...).Save(ctx); err != nil {
				return fmt.Errorf("create %d delivery records: %w", len(recipients), err)
			}
		}

		created = n
		return nil
	})
	if txErr != nil {
		return nil, 0, fmt.Errorf("send notification: %w", txErr)
	}

	logger.Info("notification sent",
		zap.String("notification_id", created.ID),
		zap.String("sender", input.SenderID),
		zap.Int("recipient_count", len(recipients)),
	)

	return created, len(recipients), nil
}

func validateSendInput(input SendInput) error {
	if input.Title == "" {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "title is required")
	}
	if input.Message == "" {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "message is required")
	}
	if input.SenderID == "" {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "sender_id is required")
	}
	return nil
}

// withTx executes a function within a transaction.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

// generateID generates a unique UUID v7 (time-ordered, K-sortable).
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (should never happen)
		return uuid.New().String()
	}
	return id.String()
}
