package domain

// Program is a health program clients can be enrolled in.
type Program struct {
	ID   string
	Name string
}
