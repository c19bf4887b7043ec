package errors

// Error code constants. Errors carry code + message; backend logs stay in
// English while user-facing messages follow the portal's locale.

// Notification error codes.
const (
	CodeNotificationNotFound = "NOTIFICATION_NOT_FOUND"
	CodeSendFailed           = "NOTIFICATION_SEND_FAILED"
	CodeInvalidBulkAction    = "INVALID_BULK_ACTION"
)

// Group error codes.
const (
	CodeGroupNotFound = "GROUP_NOT_FOUND"
	CodeGroupExists   = "GROUP_ALREADY_EXISTS"
)

// Scope/authorization error codes.
const (
	CodeScopeDenied    = "SCOPE_PERMISSION_DENIED"
	CodeSectorNotFound = "SECTOR_NOT_FOUND"
)

// Auth error codes.
const (
	CodeAuthFailed         = "AUTH_FAILED"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeUserNotApproved    = "USER_NOT_APPROVED"
	CodeUsernameTaken      = "USERNAME_ALREADY_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
)

// Validation error codes.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
)

// Generic error codes.
const (
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeInternalError = "INTERNAL_ERROR"
)
