package domain

// Client is a person who can register for trips.
// Clients are created once and never modified by this API.
type Client struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Pesel     string `json:"pesel"`
}

// ClientInput carries the fields needed to create a Client.
// The validate tags are enforced by the service layer before anything reaches the repo.
type ClientInput struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=32"`
	LastName  string `json:"lastName" validate:"required,min=1,max=32"`
	Email     string `json:"email" validate:"required,client_email"`
	Telephone string `json:"telephone" validate:"required,telephone"`
	Pesel     string `json:"pesel" validate:"required,pesel"`
}
