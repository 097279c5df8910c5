package request

type TokenRequest struct {
	OwnerID string `json:"owner_id" binding:"required,uuid"`
}
