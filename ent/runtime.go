// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"intrahub.io/portal/ent/auditlog"
	"intrahub.io/portal/ent/group"
	"intrahub.io/portal/ent/groupmember"
	"intrahub.io/portal/ent/notification"
	"intrahub.io/portal/ent/recipient"
	"intrahub.io/portal/ent/schema"
	"intrahub.io/portal/ent/sector"
	"intrahub.io/portal/ent/subsector"
	"intrahub.io/portal/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	groupMixin := schema.Group{}.Mixin()
	groupMixinFields0 := groupMixin[0].Fields()
	_ = groupMixinFields0
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupMixinFields0[0].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	// groupDescUpdatedAt is the schema descriptor for updated_at field.
	groupDescUpdatedAt := groupMixinFields0[1].Descriptor()
	// group.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	group.DefaultUpdatedAt = groupDescUpdatedAt.Default.(func() time.Time)
	// group.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	group.UpdateDefaultUpdatedAt = groupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// groupDescName is the schema descriptor for name field.
	groupDescName := groupFields[1].Descriptor()
	// group.NameValidator is a validator for the "name" field. It is called by the builders before save.
	group.NameValidator = func() func(string) error {
		validators := groupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// groupDescType is the schema descriptor for type field.
	groupDescType := groupFields[3].Descriptor()
	// group.DefaultType holds the default value on creation for the type field.
	group.DefaultType = groupDescType.Default.(string)
	// groupDescIsActive is the schema descriptor for is_active field.
	groupDescIsActive := groupFields[4].Descriptor()
	// group.DefaultIsActive holds the default value on creation for the is_active field.
	group.DefaultIsActive = groupDescIsActive.Default.(bool)
	// groupDescCreatedBy is the schema descriptor for created_by field.
	groupDescCreatedBy := groupFields[5].Descriptor()
	// group.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	group.CreatedByValidator = groupDescCreatedBy.Validators[0].(func(string) error)
	groupmemberMixin := schema.GroupMember{}.Mixin()
	groupmemberMixinFields0 := groupmemberMixin[0].Fields()
	_ = groupmemberMixinFields0
	groupmemberFields := schema.GroupMember{}.Fields()
	_ = groupmemberFields
	// groupmemberDescCreatedAt is the schema descriptor for created_at field.
	groupmemberDescCreatedAt := groupmemberMixinFields0[0].Descriptor()
	// groupmember.DefaultCreatedAt holds the default value on creation for the created_at field.
	groupmember.DefaultCreatedAt = groupmemberDescCreatedAt.Default.(func() time.Time)
	// groupmemberDescGroupID is the schema descriptor for group_id field.
	groupmemberDescGroupID := groupmemberFields[1].Descriptor()
	// groupmember.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	groupmember.GroupIDValidator = groupmemberDescGroupID.Validators[0].(func(string) error)
	// groupmemberDescUserID is the schema descriptor for user_id field.
	groupmemberDescUserID := groupmemberFields[2].Descriptor()
	// groupmember.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	groupmember.UserIDValidator = groupmemberDescUserID.Validators[0].(func(string) error)
	// groupmemberDescAddedBy is the schema descriptor for added_by field.
	groupmemberDescAddedBy := groupmemberFields[3].Descriptor()
	// groupmember.AddedByValidator is a validator for the "added_by" field. It is called by the builders before save.
	groupmember.AddedByValidator = groupmemberDescAddedBy.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[1].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[2].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescSenderID is the schema descriptor for sender_id field.
	notificationDescSenderID := notificationFields[5].Descriptor()
	// notification.SenderIDValidator is a validator for the "sender_id" field. It is called by the builders before save.
	notification.SenderIDValidator = notificationDescSenderID.Validators[0].(func(string) error)
	recipientMixin := schema.Recipient{}.Mixin()
	recipientMixinFields0 := recipientMixin[0].Fields()
	_ = recipientMixinFields0
	recipientFields := schema.Recipient{}.Fields()
	_ = recipientFields
	// recipientDescCreatedAt is the schema descriptor for created_at field.
	recipientDescCreatedAt := recipientMixinFields0[0].Descriptor()
	// recipient.DefaultCreatedAt holds the default value on creation for the created_at field.
	recipient.DefaultCreatedAt = recipientDescCreatedAt.Default.(func() time.Time)
	// recipientDescNotificationID is the schema descriptor for notification_id field.
	recipientDescNotificationID := recipientFields[1].Descriptor()
	// recipient.NotificationIDValidator is a validator for the "notification_id" field. It is called by the builders before save.
	recipient.NotificationIDValidator = recipientDescNotificationID.Validators[0].(func(string) error)
	// recipientDescUserID is the schema descriptor for user_id field.
	recipientDescUserID := recipientFields[2].Descriptor()
	// recipient.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	recipient.UserIDValidator = recipientDescUserID.Validators[0].(func(string) error)
	sectorMixin := schema.Sector{}.Mixin()
	sectorMixinFields0 := sectorMixin[0].Fields()
	_ = sectorMixinFields0
	sectorFields := schema.Sector{}.Fields()
	_ = sectorFields
	// sectorDescCreatedAt is the schema descriptor for created_at field.
	sectorDescCreatedAt := sectorMixinFields0[0].Descriptor()
	// sector.DefaultCreatedAt holds the default value on creation for the created_at field.
	sector.DefaultCreatedAt = sectorDescCreatedAt.Default.(func() time.Time)
	// sectorDescUpdatedAt is the schema descriptor for updated_at field.
	sectorDescUpdatedAt := sectorMixinFields0[1].Descriptor()
	// sector.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sector.DefaultUpdatedAt = sectorDescUpdatedAt.Default.(func() time.Time)
	// sector.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sector.UpdateDefaultUpdatedAt = sectorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sectorDescName is the schema descriptor for name field.
	sectorDescName := sectorFields[1].Descriptor()
	// sector.NameValidator is a validator for the "name" field. It is called by the builders before save.
	sector.NameValidator = func() func(string) error {
		validators := sectorDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	subsectorMixin := schema.Subsector{}.Mixin()
	subsectorMixinFields0 := subsectorMixin[0].Fields()
	_ = subsectorMixinFields0
	subsectorFields := schema.Subsector{}.Fields()
	_ = subsectorFields
	// subsectorDescCreatedAt is the schema descriptor for created_at field.
	subsectorDescCreatedAt := subsectorMixinFields0[0].Descriptor()
	// subsector.DefaultCreatedAt holds the default value on creation for the created_at field.
	subsector.DefaultCreatedAt = subsectorDescCreatedAt.Default.(func() time.Time)
	// subsectorDescUpdatedAt is the schema descriptor for updated_at field.
	subsectorDescUpdatedAt := subsectorMixinFields0[1].Descriptor()
	// subsector.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subsector.DefaultUpdatedAt = subsectorDescUpdatedAt.Default.(func() time.Time)
	// subsector.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subsector.UpdateDefaultUpdatedAt = subsectorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subsectorDescName is the schema descriptor for name field.
	subsectorDescName := subsectorFields[1].Descriptor()
	// subsector.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subsector.NameValidator = func() func(string) error {
		validators := subsectorDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// subsectorDescSectorID is the schema descriptor for sector_id field.
	subsectorDescSectorID := subsectorFields[3].Descriptor()
	// subsector.SectorIDValidator is a validator for the "sector_id" field. It is called by the builders before save.
	subsector.SectorIDValidator = subsectorDescSectorID.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[8].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
	// userDescApproved is the schema descriptor for approved field.
	userDescApproved := userFields[9].Descriptor()
	// user.DefaultApproved holds the default value on creation for the approved field.
	user.DefaultApproved = userDescApproved.Default.(bool)
}
