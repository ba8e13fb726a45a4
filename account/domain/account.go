package domain

// Account lifecycle event types carried on the lifecycle topic and its push
// subscription.
const (
	EventUserCreated = "user.created"
	EventUserDeleted = "user.deleted"
)

// Account is the identity-provider view of a registry user.
type Account struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Disabled bool   `json:"disabled"`
	Created  int64  `json:"created"`
}
