package modqueue

import "errors"

// Queue state violations. These are always surfaced as hard errors and never
// retried automatically: a retry would either be a no-op or corrupt state.
var (
	ErrItemNotFound    = errors.New("moderation item not found")
	ErrAlreadyAssigned = errors.New("moderation item already assigned")
	ErrAlreadyResolved = errors.New("moderation item already resolved")
	ErrNotAssignee     = errors.New("moderation item not assigned to this moderator")
	ErrUnknownAction   = errors.New("unknown moderation action")
)
