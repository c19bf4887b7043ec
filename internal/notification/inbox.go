package notification

import (
	"context"
	"fmt"
	"time"

	"intrahub.io/portal/ent"
	entnotification "intrahub.io/portal/ent/notification"
	entrecipient "intrahub.io/portal/ent/recipient"
	apperrors "intrahub.io/portal/internal/pkg/errors"
)

// Read-state filter values.
const (
	FilterAll    = "all"
	FilterRead   = "read"
	FilterUnread = "unread"
)

const (
	defaultInboxLimit = 20
	maxInboxLimit     = 100
)

// InboxFilter narrows an inbox listing.
type InboxFilter struct {
	// ReadState is one of all/read/unread. Empty means all.
	ReadState string
	// Type is a wire-level notification type. Empty or "all" means all.
	Type string
}

// InboxPage selects an offset/limit window.
type InboxPage struct {
	Limit  int
	Offset int
}

// InboxItem is one inbox entry: the notification joined with the caller's
// read state and the sender display name.
type InboxItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Type        string     `json:"type"`
	Priority    string     `json:"priority"`
	SenderID    string     `json:"senderId"`
	SenderName  string     `json:"senderName"`
	SectorID    string     `json:"sectorId,omitempty"`
	SubsectorID string     `json:"subsectorId,omitempty"`
	ActionURL   string     `json:"actionUrl,omitempty"`
	Read        bool       `json:"read"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// InboxResult is one page of a user's inbox.
type InboxResult struct {
	Items   []InboxItem
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

// Inbox answers paginated, filterable queries over a user's delivery records.
type Inbox struct {
	client *ent.Client
}

// NewInbox creates a new inbox query service.
func NewInbox(client *ent.Client) *Inbox {
	return &Inbox{client: client}
}

// List returns one page of the user's inbox, newest first. The total is
// computed with the same predicate as the page, so hasMore and the item
// count stay consistent with the applied filter.
func (i *Inbox) List(ctx context.Context, userID string, filter InboxFilter, page InboxPage) (*InboxResult, error) {
	limit := page.Limit
	if limit <= 0 {
		limit = defaultInboxLimit
	}
	if limit > maxInboxLimit {
		limit = maxInboxLimit
	}
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}

	query := i.client.Recipient.Query().
		Where(entrecipient.UserIDEQ(userID))

	switch filter.ReadState {
	case "", FilterAll:
	case FilterRead:
		query = query.Where(entrecipient.ReadAtNotNil())
	case FilterUnread:
		query = query.Where(entrecipient.ReadAtIsNil())
	default:
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest,
			fmt.Sprintf("unknown read-state filter: %s", filter.ReadState))
	}

	if filter.Type != "" && filter.Type != FilterAll {
		entType, err := ToEntType(filter.Type)
		if err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, err.Error())
		}
		query = query.Where(
			entrecipient.HasNotificationWith(entnotification.TypeEQ(entType)),
		)
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count inbox: %w", err)
	}

	// Delivery rows are created at send time, so ordering by the delivery
	// row's created_at matches notification recency.
	records, err := query.
		Offset(offset).
		Limit(limit).
		Order(ent.Desc(entrecipient.FieldCreatedAt), ent.Desc(entrecipient.FieldID)).
		WithNotification(func(q *ent.NotificationQuery) {
			q.WithSender()
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}

	items := make([]InboxItem, 0, len(records))
	for _, rec := range records {
		n := rec.Edges.Notification
		if n == nil {
			// Delivery rows cascade with their notification; a nil edge here
			// means a concurrent delete raced the query. Skip the row.
			continue
		}

		senderName := SystemSenderName
		if sender := n.Edges.Sender; sender != nil {
			if sender.DisplayName != "" {
				senderName = sender.DisplayName
			} else {
				senderName = sender.Username
			}
		}

		items = append(items, InboxItem{
			ID:          n.ID,
			Title:       n.Title,
			Message:     n.Message,
			Type:        FromEntType(n.Type),
			Priority:    FromEntPriority(n.Priority),
			SenderID:    n.SenderID,
			SenderName:  senderName,
			SectorID:    n.SectorID,
			SubsectorID: n.SubsectorID,
			ActionURL:   n.ActionURL,
			Read:        rec.ReadAt != nil,
			ReadAt:      rec.ReadAt,
			ExpiresAt:   n.ExpiresAt,
			CreatedAt:   n.CreatedAt,
		})
	}

	return &InboxResult{
		Items:   items,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: total > offset+limit,
	}, nil
}

// UnreadCount returns the number of unread delivery records for the user.
func (i *Inbox) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := i.client.Recipient.Query().
		Where(
			entrecipient.UserIDEQ(userID),
			entrecipient.ReadAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return count, nil
}
