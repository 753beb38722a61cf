package constant

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type contextKey string

const RequestIDKey contextKey = "request_id"
