package models

// Person represents someone involved in one or more projects.
//
// Role is a free-form tag ("customer", "architect", "contractor",
// "engineer", "manager") used for filtering and for the delete-safety
// checks. It is not an enum in storage, but the rest of the system
// treats it as one.
type Person struct {
	// ID is the surrogate database identifier, assigned on creation.
	ID int64 `json:"id"`

	// Name is the person's full name.
	Name string `json:"name"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
}
