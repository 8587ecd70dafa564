package request

type GenreRequest struct {
	Description string `json:"description" validate:"required,min=1,max=100"`
}
