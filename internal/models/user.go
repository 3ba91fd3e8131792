package models

// Role describes the access level of a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an identity record. The same shape is used in the Local Mirror,
// on the wire and in the authoritative store. CreatedAt is Unix milliseconds.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}
