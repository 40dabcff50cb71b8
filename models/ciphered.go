package models

type (
	// CipheredSecret is a string alias holding one envelope blob produced by
	// the envelope cipher. The server and both stores treat it as opaque text;
	// only a client holding the master secret can open it.
	CipheredSecret string

	// CipheredNotes is an optional second envelope blob attached to a vault
	// item for free-form notes. Same opacity guarantee as [CipheredSecret].
	CipheredNotes string
)
