package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAtLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    Role
		min  Role
		want bool
	}{
		{"admin outranks user", RoleAdmin, RoleUser, true},
		{"admin outranks sector_admin", RoleAdmin, RoleSectorAdmin, true},
		{"sector_admin outranks subsector_admin", RoleSectorAdmin, RoleSubsectorAdmin, true},
		{"subsector_admin equals itself", RoleSubsectorAdmin, RoleSubsectorAdmin, true},
		{"user does not outrank subsector_admin", RoleUser, RoleSubsectorAdmin, false},
		{"unknown role fails closed", Role("superuser"), RoleUser, false},
		{"unknown requirement fails closed", RoleAdmin, Role("owner"), false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.r.AtLeast(tc.min))
		})
	}
}

func TestCanSend(t *testing.T) {
	t.Parallel()

	assert.True(t, CanSend(Actor{Role: RoleAdmin}))
	assert.True(t, CanSend(Actor{Role: RoleSectorAdmin}))
	assert.True(t, CanSend(Actor{Role: RoleSubsectorAdmin}))
	assert.False(t, CanSend(Actor{Role: RoleUser}))
	assert.False(t, CanSend(Actor{Role: Role("")}))
}

func TestCanTargetScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		actor       Actor
		sectorID    string
		subsectorID string
		want        bool
	}{
		{
			name:  "admin targets global scope",
			actor: Actor{Role: RoleAdmin},
			want:  true,
		},
		{
			name:     "admin targets any sector",
			actor:    Actor{Role: RoleAdmin, SectorID: "s-1"},
			sectorID: "s-other",
			want:     true,
		},
		{
			name:     "sector_admin targets own sector",
			actor:    Actor{Role: RoleSectorAdmin, SectorID: "s-1"},
			sectorID: "s-1",
			want:     true,
		},
		{
			name:        "sector_admin targets subsector inside own sector",
			actor:       Actor{Role: RoleSectorAdmin, SectorID: "s-1"},
			sectorID:    "s-1",
			subsectorID: "ss-9",
			want:        true,
		},
		{
			name:     "sector_admin denied on foreign sector",
			actor:    Actor{Role: RoleSectorAdmin, SectorID: "s-1"},
			sectorID: "s-2",
			want:     false,
		},
		{
			name:  "sector_admin denied on global scope",
			actor: Actor{Role: RoleSectorAdmin, SectorID: "s-1"},
			want:  false,
		},
		{
			name:        "subsector_admin targets own subsector",
			actor:       Actor{Role: RoleSubsectorAdmin, SectorID: "s-1", SubsectorID: "ss-1"},
			sectorID:    "s-1",
			subsectorID: "ss-1",
			want:        true,
		},
		{
			name:        "subsector_admin denied on sibling subsector",
			actor:       Actor{Role: RoleSubsectorAdmin, SectorID: "s-1", SubsectorID: "ss-1"},
			sectorID:    "s-1",
			subsectorID: "ss-2",
			want:        false,
		},
		{
			name:        "subsector_admin denied on foreign sector",
			actor:       Actor{Role: RoleSubsectorAdmin, SectorID: "s-1", SubsectorID: "ss-1"},
			sectorID:    "s-2",
			subsectorID: "ss-1",
			want:        false,
		},
		{
			name:     "subsector_admin denied on sector-wide target",
			actor:    Actor{Role: RoleSubsectorAdmin, SectorID: "s-1", SubsectorID: "ss-1"},
			sectorID: "s-1",
			want:     false,
		},
		{
			name:     "plain user denied everywhere",
			actor:    Actor{Role: RoleUser, SectorID: "s-1"},
			sectorID: "s-1",
			want:     false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := CanTargetScope(tc.actor, tc.sectorID, tc.subsectorID)
			assert.Equal(t, tc.want, got)
		})
	}
}
