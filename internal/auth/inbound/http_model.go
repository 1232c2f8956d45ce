package inbound

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	SecondFactor string `json:"second_factor"`
	TOTPURI      string `json:"totp_uri,omitempty"`
	Detail       string `json:"detail,omitempty"`
}

type VerifyRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type StaffResponse struct {
	Username string `json:"username"`
}
