package audit

import "time"

// Action describes what was done.
type Action string

const (
	ActionLoginSucceeded     Action = "login_succeeded"
	ActionLoginFailed        Action = "login_failed"
	ActionGalleryItemAdded   Action = "gallery_item_added"
	ActionGalleryItemRemoved Action = "gallery_item_removed"
	ActionGalleryReset       Action = "gallery_reset"
	ActionGalleryExported    Action = "gallery_exported"
	ActionContactReceived    Action = "contact_received"
)

// Well-known actors.
const (
	ActorAdmin   = "admin"
	ActorVisitor = "visitor"
	ActorCLI     = "cli"
)

// Entry is a single audit trail record.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}
