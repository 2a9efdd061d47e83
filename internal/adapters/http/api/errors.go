package api

// Detail messages surfaced to clients. Wording matches the responses the
// frontend expects.
const (
	detailActivityNotFound = "Activity not found"
	detailAlreadySignedUp  = "Student is already signed up"
	detailNotSignedUp      = "Student is not signed up for this activity"
	detailEmailRequired    = "email is required"
)
