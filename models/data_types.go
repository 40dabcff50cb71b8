package models

// ItemType is the semantic type of a vault item. It is stored in plaintext:
// knowing that an item is a password tells an attacker nothing about its value.
type ItemType string

const (
	LoginPassword ItemType = "login_password"
	SecureNote    ItemType = "secure_note"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case LoginPassword, SecureNote:
		return true
	}
	return false
}
