package entities

// User is a site account. Password holds the one-way digest, never the
// plaintext.
type User struct {
	ID       int64
	Email    string
	Password string
	Role     string
}
