/*
Package testdatasdk is a small client for the test data service.

Create an SDKClient against a running service and call its endpoints:

	client := testdatasdk.NewSDKClient("http://localhost:8080")

	// Check service health
	health, err := client.GetReadiness(ctx)

	// Fetch data for one role, with up to ten client organisations
	result, err := client.FetchForRole(ctx, "revisor", testdatasdk.FetchOptions{Count: 10})

	// Fetch data for every role at once
	dashboard, err := client.FetchDashboard(ctx, testdatasdk.FetchOptions{})

Non-2xx answers are returned as *APIError carrying the HTTP status and the
service's error code:

	var apiErr *testdatasdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == testdatasdk.ErrorCodeNoOrganizationFound {
		// try another organisation form
	}
*/
package testdatasdk
