/*
Package healthsdk provides a client SDK for the Health Information System API.

# Overview

The API manages health programs, the clients registered with the service and
the enrollments linking the two. Every endpoint except the liveness and
readiness probes requires HTTP Basic credentials.

	client := healthsdk.NewSDKClient("http://localhost:3000", "admin", "secret")

	program, err := client.CreateProgram(ctx, healthsdk.CreateProgramRequest{
		ID:   "p1",
		Name: "Diabetes Care",
	})

	_, err = client.CreateClient(ctx, healthsdk.CreateClientRequest{
		ID:   "c1",
		Name: "Jane Doe",
		DOB:  "1990-01-01",
	})

	_, err = client.Enroll(ctx, "c1", healthsdk.EnrollRequest{ProgramID: "p1"})

	detail, err := client.GetClient(ctx, "c1")
	fmt.Println(detail.Programs[0].Name) // Diabetes Care

# Error Handling

Non-2xx responses are returned as *APIError carrying the status code and the
error envelope sent by the server:

	_, err := client.GetClient(ctx, "missing")
	var apiErr *healthsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// handle unknown client
	}

The server HTML-escapes every string it stores, so values read back may differ
from what was submitted when they contain & < > " or '.

# Thread Safety

SDKClient holds no mutable state and is safe for concurrent use.
*/
package healthsdk
