package dto

// UserClaims is the authenticated caller claim forwarded by the API gateway.
type UserClaims struct {
	Subject  string
	ClientID string
	Role     string
	Audience string
}
