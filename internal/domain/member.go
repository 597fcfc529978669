package domain

// TokenPair is returned by the login endpoint and persisted on device.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginRequest carries the member login credentials.
type LoginRequest struct {
	NickName string `json:"nickName"`
	Password string `json:"password"`
}

// RegisterRequest carries the member signup form.
type RegisterRequest struct {
	NickName    string `json:"nickName"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Genre       string `json:"genre"`
	Job         string `json:"job"`
	Birth       string `json:"birth"`
}
