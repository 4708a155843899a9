package models

// User is a stored account record, keyed by email in the users table.
// Password holds the bcrypt hash of the submitted password.
type User struct {
	Password string `json:"password"`
	Verified bool   `json:"verified"`
}

// Usage tracks per-user chat consumption, keyed by the client-supplied
// user id in the usage table. Both counters only ever go up.
type Usage struct {
	Messages int `json:"messages"`
	Tokens   int `json:"tokens"`
}
