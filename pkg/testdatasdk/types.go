package testdatasdk

import "github.com/Nyeng/tenor-testdata/internal/testdata/domain"

type (
	Role                = domain.Role
	TestDataResult      = domain.TestDataResult
	ResponsibleParty    = domain.ResponsibleParty
	RelatedOrganization = domain.RelatedOrganization
)

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Signer  string `json:"signer"`
	Catalog string `json:"catalog"`
}

type ListRolesResponse struct {
	Roles []Role `json:"roles"`
}

// DashboardEntry holds either a result or the error that role failed with.
type DashboardEntry struct {
	Role   string          `json:"role"`
	Result *TestDataResult `json:"result,omitempty"`
	Error  *APIError       `json:"error,omitempty"`
}

type DashboardResponse struct {
	Results []DashboardEntry `json:"results"`
}

// FetchOptions narrows a test data request. Zero values leave the service
// defaults in place.
type FetchOptions struct {
	// Count is the number of related organisations to ask for (antall).
	Count int
	// OrganizationForm filters on organisation form, e.g. "AS".
	OrganizationForm string
}
