package models

// PlainItem is the decrypted, client-side view of a vault item. It exists
// only in client process memory: it carries no JSON tags and is never
// persisted or sent over the wire.
type PlainItem struct {
	ClientSideID string
	Name         string
	Type         ItemType
	Secret       string
	Notes        *string
	Version      int64
}
