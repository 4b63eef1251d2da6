package domain

type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Info  string `json:"info"`
	Image string `json:"image"`
}
