package notification

import (
	"context"
	"fmt"
	"time"

	"intrahub.io/portal/ent"
	entgroup "intrahub.io/portal/ent/group"
	entgroupmember "intrahub.io/portal/ent/groupmember"
	entsector "intrahub.io/portal/ent/sector"
	entsubsector "intrahub.io/portal/ent/subsector"
	entuser "intrahub.io/portal/ent/user"
	apperrors "intrahub.io/portal/internal/pkg/errors"
)

// CreateGroupInput holds the fields of a group creation request.
type CreateGroupInput struct {
	Name        string
	Description string
	Type        string
	SectorID    string
	SubsectorID string
	CreatedBy   string
	MemberIDs   []string
}

// GroupSummary is one group in the enriched listing.
type GroupSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Type          string    `json:"type"`
	IsActive      bool      `json:"isActive"`
	CreatedBy     string    `json:"createdBy"`
	CreatorName   string    `json:"creatorName"`
	SectorID      string    `json:"sectorId,omitempty"`
	SectorName    string    `json:"sectorName,omitempty"`
	SubsectorID   string    `json:"subsectorId,omitempty"`
	SubsectorName string    `json:"subsectorName,omitempty"`
	MemberCount   int       `json:"memberCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Registry manages notification groups and their static membership lists.
type Registry struct {
	client *ent.Client
}

// NewRegistry creates a new group registry.
func NewRegistry(client *ent.Client) *Registry {
	return &Registry{client: client}
}

// CreateGroup creates a group with its initial members in one transaction.
// The member list is deduplicated at write time; the composite unique key on
// (group_id, user_id) backstops races.
func (r *Registry) CreateGroup(ctx context.Context, input CreateGroupInput) (*ent.Group, error) {
	if input.Name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "name is required")
	}
	if input.CreatedBy == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "created_by is required")
	}
	groupType := input.Type
	if groupType == "" {
		groupType = "custom"
	}

	var created *ent.Group
	txErr := withTx(ctx, r.client, func(tx *ent.Tx) error {
		builder := tx.Group.Create().
			SetID(generateID()).
			SetName(input.Name).
			SetType(groupType).
			SetCreatedBy(input.CreatedBy)
		if input.Description != "" {
			builder = builder.SetDescription(input.Description)
		}
		if input.SectorID != "" {
			builder = builder.SetSectorID(input.SectorID)
		}
		if input.SubsectorID != "" {
			builder = builder.SetSubsectorID(input.SubsectorID)
		}

		g, err := builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("create group: %w", err)
		}

		seen := make(map[string]struct{}, len(input.MemberIDs))
		bulk := make([]*ent.GroupMemberCreate, 0, len(input.MemberIDs))
		for _, userID := range input.MemberIDs {
			if userID == "" {
				continue
			}
			if _, ok := seen[userID]; ok {
				continue
			}
			seen[userID] = struct{}{}
			bulk = append(bulk, tx.GroupMember.Create().
				SetID(generateID()).
				SetGroupID(g.ID).
				SetUserID(userID).
				SetAddedBy(input.CreatedBy))
		}
		if len(bulk) > 0 {
			if _, err := tx.GroupMember.CreateBulk(bulk...).Save(ctx); err != nil {
				return fmt.Errorf("create %d group members: %w", len(bulk), err)
			}
		}

		created = g
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return created, nil
}

// AddMember adds one user to a group, idempotently: adding an existing
// member is a no-op rather than an error.
func (r *Registry) AddMember(ctx context.Context, groupID, userID, addedBy string) error {
	exists, err := r.client.GroupMember.Query().
		Where(
			entgroupmember.GroupIDEQ(groupID),
			entgroupmember.UserIDEQ(userID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if exists {
		return nil
	}

	_, err = r.client.GroupMember.Create().
		SetID(generateID()).
		SetGroupID(groupID).
		SetUserID(userID).
		SetAddedBy(addedBy).
		Save(ctx)
	if err != nil {
		// The unique key may reject a concurrent duplicate; treat as no-op.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

// ListGroups returns all active groups enriched with creator display name,
// scope names, and live member counts. All lookups are batched: one query
// per referenced entity type plus one grouped count, never one per group.
func (r *Registry) ListGroups(ctx context.Context) ([]GroupSummary, error) {
	groups, err := r.client.Group.Query().
		Where(entgroup.IsActive(true)).
		Order(ent.Desc(entgroup.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	if len(groups) == 0 {
		return []GroupSummary{}, nil
	}

	groupIDs := make([]string, 0, len(groups))
	creatorIDs := make(map[string]struct{})
	sectorIDs := make(map[string]struct{})
	subsectorIDs := make(map[string]struct{})
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
		creatorIDs[g.CreatedBy] = struct{}{}
		if g.SectorID != "" {
			sectorIDs[g.SectorID] = struct{}{}
		}
		if g.SubsectorID != "" {
			subsectorIDs[g.SubsectorID] = struct{}{}
		}
	}

	creatorNames, err := r.lookupCreatorNames(ctx, keys(creatorIDs))
	if err != nil {
		return nil, err
	}
	sectorNames, err := r.lookupSectorNames(ctx, keys(sectorIDs))
	if err != nil {
		return nil, err
	}
	subsectorNames, err := r.lookupSubsectorNames(ctx, keys(subsectorIDs))
	if err != nil {
		return nil, err
	}

	var counts []struct {
		GroupID string `json:"group_id"`
		Count   int    `json:"count"`
	}
	err = r.client.GroupMember.Query().
		Where(entgroupmember.GroupIDIn(groupIDs...)).
		GroupBy(entgroupmember.FieldGroupID).
		Aggregate(ent.Count()).
		Scan(ctx, &counts)
	if err != nil {
		return nil, fmt.Errorf("count group members: %w", err)
	}
	memberCounts := make(map[string]int, len(counts))
	for _, row := range counts {
		memberCounts[row.GroupID] = row.Count
	}

	summaries := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, GroupSummary{
			ID:            g.ID,
			Name:          g.Name,
			Description:   g.Description,
			Type:          g.Type,
			IsActive:      g.IsActive,
			CreatedBy:     g.CreatedBy,
			CreatorName:   creatorNames[g.CreatedBy],
			SectorID:      g.SectorID,
			SectorName:    sectorNames[g.SectorID],
			SubsectorID:   g.SubsectorID,
			SubsectorName: subsectorNames[g.SubsectorID],
			MemberCount:   memberCounts[g.ID],
			CreatedAt:     g.CreatedAt,
		})
	}
	return summaries, nil
}

func (r *Registry) lookupCreatorNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	users, err := r.client.User.Query().
		Where(entuser.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup creators: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		if u.DisplayName != "" {
			names[u.ID] = u.DisplayName
		} else {
			names[u.ID] = u.Username
		}
	}
	return names, nil
}

func (r *Registry) lookupSectorNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	sectors, err := r.client.Sector.Query().
		Where(entsector.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup sectors: %w", err)
	}
	names := make(map[string]string, len(sectors))
	for _, s := range sectors {
		names[s.ID] = s.Name
	}
	return names, nil
}

func (r *Registry) lookupSubsectorNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	subsectors, err := r.client.Subsector.Query().
		Where(entsubsector.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup subsectors: %w", err)
	}
	names := make(map[string]string, len(subsectors))
	for _, s := range subsectors {
		names[s.ID] = s.Name
	}
	return names, nil
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
