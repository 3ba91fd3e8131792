package common

const (
	// AdminID is the fixed id of the root admin account. The record is
	// seeded by the backend at startup and can never be deleted there.
	AdminID = "admin-root-id"

	// AdminUsername is the root admin's username.
	AdminUsername = "admin"

	// TransientUserID marks the locally-scoped identity granted when login
	// cannot reach the backend. It is never persisted to the authoritative
	// store.
	TransientUserID = "temp-id"
)
