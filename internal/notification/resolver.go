package notification

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"intrahub.io/portal/ent"
	entgroup "intrahub.io/portal/ent/group"
	entgroupmember "intrahub.io/portal/ent/groupmember"
	"intrahub.io/portal/internal/pkg/logger"
)

// Resolver expands a mixed user/group send target into a flat, deduplicated
// user-ID set.
//
// Policy:
//   - Nonexistent group IDs contribute zero members (silent-empty, no error).
//   - Only is_active groups contribute members, matching the listing behavior.
//   - Membership is read once at resolve time; later group changes never
//     retroactively alter deliveries.
type Resolver struct {
	client *ent.Client
}

// NewResolver creates a new recipient resolver.
func NewResolver(client *ent.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve returns the deduplicated union of the explicit user IDs and the
// members of the named active groups. The result is sorted for deterministic
// delivery-row insertion order.
func (r *Resolver) Resolve(ctx context.Context, userIDs, groupIDs []string) ([]string, error) {
	seen := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		seen[id] = struct{}{}
	}

	if len(groupIDs) > 0 {
		activeIDs, err := r.client.Group.Query().
			Where(
				entgroup.IDIn(groupIDs...),
				entgroup.IsActive(true),
			).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("query active groups: %w", err)
		}

		if len(activeIDs) < len(groupIDs) {
			logger.Debug("some groups contributed no members",
				zap.Int("requested", len(groupIDs)),
				zap.Int("active", len(activeIDs)),
			)
		}

		if len(activeIDs) > 0 {
			members, err := r.client.GroupMember.Query().
				Where(entgroupmember.GroupIDIn(activeIDs...)).
				All(ctx)
			if err != nil {
				return nil, fmt.Errorf("query group members: %w", err)
			}
			for _, m := range members {
				seen[m.UserID] = struct{}{}
			}
		}
	}

	recipients := make([]string, 0, len(seen))
	for id := range seen {
		recipients = append(recipients, id)
	}
	sort.Strings(recipients)
	return recipients, nil
}
