package domain

// Client is a person registered with the system. DOB is kept as the
// ISO-8601 string the caller submitted.
type Client struct {
	ID   string
	Name string
	DOB  string
}

// ClientDetail is a client together with every program it is enrolled in.
type ClientDetail struct {
	Client
	Programs []Program
}
