package response

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
