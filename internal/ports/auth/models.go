package auth

// Claims is the identity extracted from a verified token.
type Claims struct {
	UserID string
	Email  string
}
