package models

// Client represents a campaign recipient
type Client struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Surname *string `json:"surname,omitempty"`
	Email   string  `json:"email"`
}

// CreateClientRequest represents a request to add a client
type CreateClientRequest struct {
	Name    string  `json:"name"`
	Surname *string `json:"surname,omitempty"`
	Email   string  `json:"email"`
}
