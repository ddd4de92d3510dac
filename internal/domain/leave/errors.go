package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	// ErrStageMismatch means the request's stage or status no longer matches
	// what the caller saw; the caller must refetch before retrying.
	ErrStageMismatch      = errors.New("leave request stage changed, refetch and retry")
	ErrNotCurrentApprover = errors.New("request is not waiting on your approval stage")
	ErrAttachmentRequired = errors.New("this leave type requires a supporting document")
)
