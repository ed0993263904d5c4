package healthsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateProgram registers a new program.
func (c *SDKClient) CreateProgram(ctx context.Context, req CreateProgramRequest) (*Program, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/programs", req)
	if err != nil {
		return nil, err
	}

	var program Program
	if err := decodeJSON(resp, &program, http.StatusCreated); err != nil {
		return nil, err
	}
	return &program, nil
}

// ListPrograms returns every program ordered by id.
func (c *SDKClient) ListPrograms(ctx context.Context) ([]Program, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/programs", nil, true)
	if err != nil {
		return nil, err
	}

	var programs []Program
	if err := decodeJSON(resp, &programs, http.StatusOK); err != nil {
		return nil, err
	}
	return programs, nil
}

// GetProgram fetches a single program.
func (c *SDKClient) GetProgram(ctx context.Context, programID string) (*Program, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/programs/"+url.PathEscape(programID), nil, true)
	if err != nil {
		return nil, err
	}

	var program Program
	if err := decodeJSON(resp, &program, http.StatusOK); err != nil {
		return nil, err
	}
	return &program, nil
}

// ListProgramClients returns the clients enrolled in a program.
func (c *SDKClient) ListProgramClients(ctx context.Context, programID string) ([]Client, error) {
	path := "/programs/" + url.PathEscape(programID) + "/clients"
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}

	var clients []Client
	if err := decodeJSON(resp, &clients, http.StatusOK); err != nil {
		return nil, err
	}
	return clients, nil
}
