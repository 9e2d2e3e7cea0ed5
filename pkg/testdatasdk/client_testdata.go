package testdatasdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListRoles returns the roles the service can fetch test data for.
func (c *SDKClient) ListRoles(ctx context.Context) ([]Role, error) {
	resp, err := c.doRequest(ctx, "/v1/roles", nil)
	if err != nil {
		return nil, err
	}

	var out ListRolesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return out.Roles, nil
}

// FetchForRole runs the pipeline for one role.
func (c *SDKClient) FetchForRole(ctx context.Context, role string, opts FetchOptions) (*TestDataResult, error) {
	resp, err := c.doRequest(ctx, "/v1/testdata/"+url.PathEscape(role), opts.query())
	if err != nil {
		return nil, err
	}

	var result TestDataResult
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}

	return &result, nil
}

// FetchDashboard runs the pipeline for every role. Per-role failures are
// reported inside the entries, not as an error.
func (c *SDKClient) FetchDashboard(ctx context.Context, opts FetchOptions) (*DashboardResponse, error) {
	resp, err := c.doRequest(ctx, "/v1/testdata", opts.query())
	if err != nil {
		return nil, err
	}

	var out DashboardResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

func (o FetchOptions) query() url.Values {
	q := url.Values{}
	if o.Count != 0 {
		q.Set("antall", strconv.Itoa(o.Count))
	}
	if o.OrganizationForm != "" {
		q.Set("organisasjonsform", o.OrganizationForm)
	}
	return q
}
