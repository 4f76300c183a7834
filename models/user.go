package models

// Credentials are the sign-in inputs sent to the remote auth endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token is a signed bearer token with the user id extracted from its claims.
type Token struct {
	SignedString string `json:"token"`
	UserID       int64  `json:"-"`
}
