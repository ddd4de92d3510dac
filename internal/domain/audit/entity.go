package audit

import "time"

// Record is one append-only activity log entry. Writes are fire-and-forget:
// a failed append never blocks or rolls back the action it describes.
type Record struct {
	ID          string    `json:"id"`
	ActorID     string    `json:"actor_id"`
	ActorRole   string    `json:"actor_role"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined fields
	ActorName *string `json:"actor_name,omitempty"`
}

const (
	ActionApprove    = "APPROVE"
	ActionReject     = "REJECT"
	ActionSubmit     = "SUBMIT"
	ActionEncash     = "ENCASH"
	ActionReset      = "RESET"
	ActionCreateUser = "CREATE_USER"
	ActionUpdateUser = "UPDATE_USER"
	ActionDeleteUser = "DELETE_USER"
)
