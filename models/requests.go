package models

// RegisterRequest is the payload for POST /api/auth/register.
// AuthHash is the hex-encoded client-side auth hash, never the master secret.
type RegisterRequest struct {
	Login    string `json:"login"`
	AuthHash string `json:"auth_hash"`
	KDFSalt  string `json:"kdf_salt"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Login    string `json:"login"`
	AuthHash string `json:"auth_hash"`
}

// LoginResponse carries the issued bearer token back to the client.
type LoginResponse struct {
	Token string `json:"token"`
}

// SaltResponse returns the account KDF salt for a login, so the client can
// compute its auth hash before authenticating.
type SaltResponse struct {
	KDFSalt string `json:"kdf_salt"`
}

// ListFilters narrows a vault listing. Zero values mean "no filter".
type ListFilters struct {
	Type ItemType `json:"type,omitempty"`
	// NamePrefix matches item names case-insensitively by prefix.
	NamePrefix string `json:"name_prefix,omitempty"`
}

// SaveItemResponse acknowledges a stored item with its server-side id.
type SaveItemResponse struct {
	ID           int64  `json:"id"`
	ClientSideID string `json:"client_side_id"`
	Version      int64  `json:"version"`
}

// ErrorResponse is the uniform error body returned by the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}
