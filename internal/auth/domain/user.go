package domain

// User is the mock account persisted for an authenticated session. There is
// no server-side user database; whatever the login or signup form submits
// becomes the user.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
}
