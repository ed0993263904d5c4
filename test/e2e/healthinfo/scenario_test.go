package healthinfo_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/stretchr/testify/require"
)

// TestEnrollmentScenario walks through registering a program and a client,
// enrolling the client and reading the enrollment back from both sides.
func TestEnrollmentScenario(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := newClient(baseURL)
	ctx := t.Context()

	program, err := client.CreateProgram(ctx, healthsdk.CreateProgramRequest{ID: "p1", Name: "Diabetes Care"})
	require.NoError(t, err)
	require.Equal(t, healthsdk.Program{ID: "p1", Name: "Diabetes Care"}, *program)

	created, err := client.CreateClient(ctx, healthsdk.CreateClientRequest{ID: "c1", Name: "Jane Doe", DOB: "1990-01-01"})
	require.NoError(t, err)
	require.Equal(t, healthsdk.Client{ID: "c1", Name: "Jane Doe", DOB: "1990-01-01"}, *created)

	enrollment, err := client.Enroll(ctx, "c1", healthsdk.EnrollRequest{ProgramID: "p1"})
	require.NoError(t, err)
	require.Equal(t, healthsdk.Enrollment{ClientID: "c1", ProgramID: "p1"}, *enrollment)

	t.Run("client detail lists programs", func(t *testing.T) {
		detail, err := client.GetClient(ctx, "c1")
		require.NoError(t, err)
		require.Equal(t, "Jane Doe", detail.Name)
		require.Equal(t, []healthsdk.Program{{ID: "p1", Name: "Diabetes Care"}}, detail.Programs)
	})

	t.Run("program lists clients", func(t *testing.T) {
		clients, err := client.ListProgramClients(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, []healthsdk.Client{{ID: "c1", Name: "Jane Doe", DOB: "1990-01-01"}}, clients)
	})

	t.Run("search is case sensitive", func(t *testing.T) {
		clients, err := client.ListClients(ctx, "Jane")
		require.NoError(t, err)
		require.Len(t, clients, 1)

		clients, err = client.ListClients(ctx, "jane")
		require.NoError(t, err)
		require.Empty(t, clients)
	})

	t.Run("duplicate enrollment is a server error", func(t *testing.T) {
		_, err := client.Enroll(ctx, "c1", healthsdk.EnrollRequest{ProgramID: "p1"})
		assertAPIError(t, err, http.StatusInternalServerError, healthsdk.ErrorCodeServerError)
	})

	t.Run("duplicate program is a server error", func(t *testing.T) {
		_, err := client.CreateProgram(ctx, healthsdk.CreateProgramRequest{ID: "p1", Name: "Again"})
		assertAPIError(t, err, http.StatusInternalServerError, healthsdk.ErrorCodeServerError)
	})
}

func TestValidationAndLookups(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := newClient(baseURL)
	ctx := t.Context()

	t.Run("bad dob", func(t *testing.T) {
		_, err := client.CreateClient(ctx, healthsdk.CreateClientRequest{ID: "c9", Name: "X", DOB: "not-a-date"})
		apiErr := assertAPIError(t, err, http.StatusBadRequest, healthsdk.ErrorCodeInvalidRequest)
		require.Equal(t, `"dob" must be in ISO 8601 date format`, apiErr.Description)
	})

	t.Run("empty program id", func(t *testing.T) {
		_, err := client.CreateProgram(ctx, healthsdk.CreateProgramRequest{ID: "", Name: "X"})
		apiErr := assertAPIError(t, err, http.StatusBadRequest, healthsdk.ErrorCodeInvalidRequest)
		require.Equal(t, `"id" is not allowed to be empty`, apiErr.Description)
	})

	t.Run("markup is escaped", func(t *testing.T) {
		program, err := client.CreateProgram(ctx, healthsdk.CreateProgramRequest{ID: "p2", Name: "<b>TB</b>"})
		require.NoError(t, err)
		require.Equal(t, "&lt;b&gt;TB&lt;/b&gt;", program.Name)
	})

	t.Run("missing program", func(t *testing.T) {
		_, err := client.GetProgram(ctx, "nope")
		assertAPIError(t, err, http.StatusNotFound, healthsdk.ErrorCodeProgramNotFound)
	})

	t.Run("missing client", func(t *testing.T) {
		_, err := client.GetClient(ctx, "nope")
		assertAPIError(t, err, http.StatusNotFound, healthsdk.ErrorCodeClientNotFound)
	})

	t.Run("enroll into missing program", func(t *testing.T) {
		_, err := client.CreateClient(ctx, healthsdk.CreateClientRequest{ID: "c2", Name: "Sam", DOB: "2001-02-03"})
		require.NoError(t, err)

		_, err = client.Enroll(ctx, "c2", healthsdk.EnrollRequest{ProgramID: "nope"})
		assertAPIError(t, err, http.StatusNotFound, healthsdk.ErrorCodeProgramNotFound)
	})
}
