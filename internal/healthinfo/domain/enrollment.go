package domain

// Enrollment links one client to one program. The pair is unique.
type Enrollment struct {
	ClientID  string
	ProgramID string
}
