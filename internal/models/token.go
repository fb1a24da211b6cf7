package models

// AccessToken is returned by a successful login.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}

// LoginResult pairs the issued token with the signed-in user.
type LoginResult struct {
	Token AccessToken `json:"token"`
	User  UserProfile `json:"user"`
}
