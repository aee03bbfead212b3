package payload

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginData is the success payload of /login. Token carries the account's
// role tag; authentication itself rides on the session cookie.
type LoginData struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// MeData is the success payload of /me.
type MeData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
