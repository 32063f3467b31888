package domain

type UserStatus int8

const (
	UserStatusActive             UserStatus = 1
	UserStatusInactive           UserStatus = 2
	UserStatusWaitChangePassword UserStatus = 3
)

type User struct {
	BaseEntity `bson:",inline"`
	UserName   string            `bson:"username,omitempty"`
	Password   EncryptedPassword `bson:"password,omitempty"`
	Status     UserStatus        `bson:"status,omitempty"`
}
