package request

type CreatePetRequest struct {
	Name    string `json:"name" binding:"required"`
	Species string `json:"species" binding:"required"`
}

type InteractRequest struct {
	Type string `json:"type" binding:"required"`
}
