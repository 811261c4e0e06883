package domain

import "fmt"

// VisibilityPolicy is a user's override of a topic's default behavior.
// The integer values are part of the wire format.
type VisibilityPolicy int

const (
	// VisibilityPolicyInherit means no override: the stream-level default
	// applies. It is never stored; it is the absence of a record.
	VisibilityPolicyInherit  VisibilityPolicy = 0
	VisibilityPolicyMuted    VisibilityPolicy = 1
	VisibilityPolicyUnmuted  VisibilityPolicy = 2
	VisibilityPolicyFollowed VisibilityPolicy = 3
)

func (p VisibilityPolicy) String() string {
	switch p {
	case VisibilityPolicyInherit:
		return "INHERIT"
	case VisibilityPolicyMuted:
		return "MUTED"
	case VisibilityPolicyUnmuted:
		return "UNMUTED"
	case VisibilityPolicyFollowed:
		return "FOLLOWED"
	}
	return fmt.Sprintf("VisibilityPolicy(%d)", int(p))
}

func (p VisibilityPolicy) IsValid() bool {
	switch p {
	case VisibilityPolicyInherit, VisibilityPolicyMuted, VisibilityPolicyUnmuted, VisibilityPolicyFollowed:
		return true
	}
	return false
}

// IsStored reports whether a record with this policy may exist in the store.
func (p VisibilityPolicy) IsStored() bool {
	return p.IsValid() && p != VisibilityPolicyInherit
}

// ParseVisibilityPolicy converts a wire value into a VisibilityPolicy.
func ParseVisibilityPolicy(v int) (VisibilityPolicy, error) {
	p := VisibilityPolicy(v)
	if !p.IsValid() {
		return 0, fmt.Errorf("visibility_policy %d: %w", v, ErrInvalidPolicy)
	}
	return p, nil
}

// UserRole represents the authorization level of a user within a realm.
type UserRole string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
	UserRoleGuest  UserRole = "guest"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleAdmin, UserRoleMember, UserRoleGuest:
		return true
	}
	return false
}

func (r UserRole) IsGuest() bool {
	return r == UserRoleGuest
}

// MuteOp is the operation of the combined mute/unmute command.
type MuteOp string

const (
	MuteOpAdd    MuteOp = "add"
	MuteOpRemove MuteOp = "remove"
)

func (o MuteOp) IsValid() bool {
	return o == MuteOpAdd || o == MuteOpRemove
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
