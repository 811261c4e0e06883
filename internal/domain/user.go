package domain

// User is the authenticated member of a realm on whose behalf a command runs.
type User struct {
	ID       int64
	RealmID  int64
	FullName string
	Role     UserRole
	IsActive bool
}
