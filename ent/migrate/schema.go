// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeString, Default: "custom"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "sector_id", Type: field.TypeString, Nullable: true},
		{Name: "subsector_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "groups_users_created_groups",
				Columns:    []*schema.Column{GroupsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "group_is_active",
				Unique:  false,
				Columns: []*schema.Column{GroupsColumns[6]},
			},
			{
				Name:    "group_sector_id",
				Unique:  false,
				Columns: []*schema.Column{GroupsColumns[7]},
			},
		},
	}
	// GroupMembersColumns holds the columns for the "group_members" table.
	GroupMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "added_by", Type: field.TypeString},
		{Name: "group_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// GroupMembersTable holds the schema information for the "group_members" table.
	GroupMembersTable = &schema.Table{
		Name:       "group_members",
		Columns:    GroupMembersColumns,
		PrimaryKey: []*schema.Column{GroupMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "group_members_groups_members",
				Columns:    []*schema.Column{GroupMembersColumns[3]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "group_members_users_group_memberships",
				Columns:    []*schema.Column{GroupMembersColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "groupmember_group_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{GroupMembersColumns[3], GroupMembersColumns[4]},
			},
			{
				Name:    "groupmember_user_id",
				Unique:  false,
				Columns: []*schema.Column{GroupMembersColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"GENERAL", "INFO", "SUCCESS", "WARNING", "ERROR", "SYSTEM"}, Default: "GENERAL"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"LOW", "NORMAL", "HIGH", "URGENT"}, Default: "NORMAL"},
		{Name: "sector_id", Type: field.TypeString, Nullable: true},
		{Name: "subsector_id", Type: field.TypeString, Nullable: true},
		{Name: "action_url", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "sender_id", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_sent_notifications",
				Columns:    []*schema.Column{NotificationsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
			{
				Name:    "notification_expires_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[9]},
			},
		},
	}
	// RecipientsColumns holds the columns for the "recipients" table.
	RecipientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "notification_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// RecipientsTable holds the schema information for the "recipients" table.
	RecipientsTable = &schema.Table{
		Name:       "recipients",
		Columns:    RecipientsColumns,
		PrimaryKey: []*schema.Column{RecipientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recipients_notifications_recipients",
				Columns:    []*schema.Column{RecipientsColumns[3]},
				RefColumns: []*schema.Column{NotificationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "recipients_users_deliveries",
				Columns:    []*schema.Column{RecipientsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recipient_notification_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{RecipientsColumns[3], RecipientsColumns[4]},
			},
			{
				Name:    "recipient_user_id_read_at",
				Unique:  false,
				Columns: []*schema.Column{RecipientsColumns[4], RecipientsColumns[2]},
			},
			{
				Name:    "recipient_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RecipientsColumns[4], RecipientsColumns[1]},
			},
		},
	}
	// SectorsColumns holds the columns for the "sectors" table.
	SectorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// SectorsTable holds the schema information for the "sectors" table.
	SectorsTable = &schema.Table{
		Name:       "sectors",
		Columns:    SectorsColumns,
		PrimaryKey: []*schema.Column{SectorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sector_name",
				Unique:  true,
				Columns: []*schema.Column{SectorsColumns[3]},
			},
		},
	}
	// SubsectorsColumns holds the columns for the "subsectors" table.
	SubsectorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "sector_id", Type: field.TypeString},
	}
	// SubsectorsTable holds the schema information for the "subsectors" table.
	SubsectorsTable = &schema.Table{
		Name:       "subsectors",
		Columns:    SubsectorsColumns,
		PrimaryKey: []*schema.Column{SubsectorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subsectors_sectors_subsectors",
				Columns:    []*schema.Column{SubsectorsColumns[5]},
				RefColumns: []*schema.Column{SectorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subsector_sector_id_name",
				Unique:  true,
				Columns: []*schema.Column{SubsectorsColumns[5], SubsectorsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"ADMIN", "SECTOR_ADMIN", "SUBSECTOR_ADMIN", "USER"}, Default: "USER"},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "approved", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "sector_id", Type: field.TypeString, Nullable: true},
		{Name: "subsector_id", Type: field.TypeString, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_sectors_users",
				Columns:    []*schema.Column{UsersColumns[11]},
				RefColumns: []*schema.Column{SectorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "users_subsectors_users",
				Columns:    []*schema.Column{UsersColumns[12]},
				RefColumns: []*schema.Column{SubsectorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_sector_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		GroupsTable,
		GroupMembersTable,
		NotificationsTable,
		RecipientsTable,
		SectorsTable,
		SubsectorsTable,
		UsersTable,
	}
)

func init() {
	GroupsTable.ForeignKeys[0].RefTable = UsersTable
	GroupMembersTable.ForeignKeys[0].RefTable = GroupsTable
	GroupMembersTable.ForeignKeys[1].RefTable = UsersTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	RecipientsTable.ForeignKeys[0].RefTable = NotificationsTable
	RecipientsTable.ForeignKeys[1].RefTable = UsersTable
	SubsectorsTable.ForeignKeys[0].RefTable = SectorsTable
	UsersTable.ForeignKeys[0].RefTable = SectorsTable
	UsersTable.ForeignKeys[1].RefTable = SubsectorsTable
}
