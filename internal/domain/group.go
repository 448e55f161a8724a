// internal/domain/group.go
package domain

import "time"

// Group represents a named collection of users for shared splitting context.
// Membership is held in an explicit join table and is append-only.
type Group struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// MemberIDs holds the user IDs belonging to this group.
	// Loaded from the group_members join table.
	MemberIDs []int64 `db:"-" json:"member_ids,omitempty"`
}

// NewGroup creates a new Group instance.
func NewGroup(name string, memberIDs []int64) *Group {
	return &Group{
		Name:      name,
		MemberIDs: memberIDs,
		CreatedAt: time.Now().UTC(),
	}
}
