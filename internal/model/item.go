package model

type Item struct {
	Title string `json:"title"`
	Price int    `json:"price"`
}

// ShoppingItem is one search result. The provider calls the lowest price "lprice".
type ShoppingItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	LowestPrice int    `json:"lprice"`
}

// Credentials is the request body of the create call.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func DefaultCredentials() Credentials {
	return Credentials{Username: "Robbie", Password: "1234"}
}
