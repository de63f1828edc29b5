package models

import (
	"time"
)

// Follow is one edge of the following graph: FollowerID follows FolloweeID.
// The pair is unique and the check constraint keeps self-follow rows out of
// the table regardless of what the service layer lets through.
type Follow struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follows_pair;check:chk_follows_no_self,follower_id <> followee_id" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;index;uniqueIndex:idx_follows_pair" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName keeps the join table name explicit.
func (Follow) TableName() string {
	return "follows"
}
