package domain

// ResponsibleParty is the natural person acting for an organisation.
type ResponsibleParty struct {
	NationalID         string `json:"nationalId" example:"01019012345"`
	OrganizationNumber string `json:"organizationNumber" example:"987654321"`
	OrganizationName   string `json:"organizationName,omitempty" example:"Eksempel AS"`
	// MatchedRole is DAGL, or INNH when no managing director was registered.
	MatchedRole string `json:"matchedRole" example:"DAGL"`
}

type RelatedOrganization struct {
	Name               string `json:"name" example:"Kunde AS"`
	OrganizationNumber string `json:"organizationNumber" example:"912345678"`
}

// TestDataResult is assembled once at the end of a pipeline run.
type TestDataResult struct {
	Role                 string                `json:"role" example:"revisor"`
	OrganizationNumber   string                `json:"organizationNumber" example:"987654321"`
	ResponsibleParty     ResponsibleParty      `json:"responsibleParty"`
	RelatedOrganizations []RelatedOrganization `json:"relatedOrganizations"`
	Synthetic            bool                  `json:"synthetic"` // generated locally, not from the registry
}
