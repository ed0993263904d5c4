package healthsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateClient registers a new client.
func (c *SDKClient) CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/clients", req)
	if err != nil {
		return nil, err
	}

	var client Client
	if err := decodeJSON(resp, &client, http.StatusCreated); err != nil {
		return nil, err
	}
	return &client, nil
}

// ListClients returns all clients, or those whose name contains query when
// it is non-empty. Matching is case-sensitive.
func (c *SDKClient) ListClients(ctx context.Context, query string) ([]Client, error) {
	path := "/clients"
	if query != "" {
		path += "?" + url.Values{"query": {query}}.Encode()
	}

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

// GetClient fetches a client and the programs it is enrolled in.
func (c *SDKClient) GetClient(ctx context.Context, clientID string) (*ClientDetail, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/clients/"+url.PathEscape(clientID), nil, true)
	if err != nil {
		return nil, err
	}

	var detail ClientDetail
	if err := decodeJSON(resp, &detail, http.StatusOK); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Enroll adds a client to a program.
func (c *SDKClient) Enroll(ctx context.Context, clientID string, req EnrollRequest) (*Enrollment, error) {
	path := "/clients/" + url.PathEscape(clientID) + "/enroll"
	resp, err := c.doJSON(ctx, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}

	var enrollment Enrollment
	if err := decodeJSON(resp, &enrollment, http.StatusCreated); err != nil {
		return nil, err
	}
	return &enrollment, nil
}
