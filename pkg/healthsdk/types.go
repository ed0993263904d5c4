package healthsdk

// ============================================================================
// Error Responses
// ============================================================================

// ErrorResponse is the JSON envelope returned for every failed request.
type ErrorResponse struct {
	// Error is a short machine readable code (e.g. "invalid_request")
	Error string `json:"error" example:"invalid_request"`

	// ErrorDescription is a human readable explanation
	ErrorDescription string `json:"error_description" example:"\"id\" is required"`
}

// ============================================================================
// Programs
// ============================================================================

// Program is a health program clients can be enrolled in.
type Program struct {
	ID   string `json:"id" example:"p1"`
	Name string `json:"name" example:"Diabetes Care"`
}

// CreateProgramRequest is the body of POST /programs.
type CreateProgramRequest struct {
	ID   string `json:"id" example:"p1"`
	Name string `json:"name" example:"Diabetes Care"`
}

// ============================================================================
// Clients
// ============================================================================

// Client is a person registered with the system.
type Client struct {
	ID   string `json:"id" example:"c1"`
	Name string `json:"name" example:"Jane Doe"`

	// DOB is an ISO 8601 date or date-time
	DOB string `json:"dob" example:"1990-01-01"`
}

// ClientDetail is a client together with the programs it is enrolled in.
type ClientDetail struct {
	ID       string    `json:"id" example:"c1"`
	Name     string    `json:"name" example:"Jane Doe"`
	DOB      string    `json:"dob" example:"1990-01-01"`
	Programs []Program `json:"programs"`
}

// CreateClientRequest is the body of POST /clients.
type CreateClientRequest struct {
	ID   string `json:"id" example:"c1"`
	Name string `json:"name" example:"Jane Doe"`
	DOB  string `json:"dob" example:"1990-01-01"`
}

// ============================================================================
// Enrollments
// ============================================================================

// EnrollRequest is the body of POST /clients/{clientId}/enroll.
type EnrollRequest struct {
	ProgramID string `json:"programId" example:"p1"`
}

// Enrollment links a client to a program.
type Enrollment struct {
	ClientID  string `json:"clientId" example:"c1"`
	ProgramID string `json:"programId" example:"p1"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of each dependency in /readyz.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
