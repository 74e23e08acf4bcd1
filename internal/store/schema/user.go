package schema

import (
	"time"

	"github.com/feral-file/farmtrace/internal/domain"
)

// User represents the users table - the directory of supply-chain participants
type User struct {
	// ID is the user's UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// Username is the unique login handle shown on ownership blocks
	Username string `gorm:"column:username;not null;uniqueIndex;type:varchar(64)"`
	// Name is the display name of the user
	Name string `gorm:"column:name;not null;type:text"`
	// Email is the unique contact address of the user
	Email string `gorm:"column:email;not null;uniqueIndex;type:varchar(255)"`
	// Role is the supply-chain role (farmer, distributor, retailer, consumer)
	Role domain.Role `gorm:"column:role;not null;type:varchar(32);index"`
	// CreatedAt is the timestamp when the user registered
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
