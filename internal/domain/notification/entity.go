package notification

import "time"

type NotificationType string

const (
	TypeLeaveSubmitted NotificationType = "leave_submitted"
	TypeLeaveAdvanced  NotificationType = "leave_advanced"
	TypeLeaveApproved  NotificationType = "leave_approved"
	TypeLeaveRejected  NotificationType = "leave_rejected"
	TypeEncashmentPaid NotificationType = "encashment_paid"
	TypeBalanceReset   NotificationType = "balance_reset"
)

type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	IsRead      bool             `json:"is_read"`
	ReadAt      *time.Time       `json:"read_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
