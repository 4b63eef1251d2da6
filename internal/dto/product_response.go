package dto

type ProductResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Info  string `json:"info"`
	Image string `json:"image"`
}

// GeneratedCopy is the JSON object the model is instructed to return for an
// uploaded product photo.
type GeneratedCopy struct {
	Name string `json:"name"`
	Info string `json:"info"`
}
