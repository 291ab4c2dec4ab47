package resource

import (
	"context"

	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/pkg/api"
)

// Universities exposes the university collection.
type Universities struct {
	*Collection[models.University]
}

// NewUniversities binds the university endpoints.
func NewUniversities(client *api.Client) *Universities {
	return &Universities{Collection: NewCollection[models.University](client, "/universities")}
}

// CreateOrganizationRequest is the payload for registering an organization.
type CreateOrganizationRequest struct {
	UniversityID string `json:"university_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Kind         string `json:"kind" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Active       bool   `json:"active"`
}

// Organizations exposes the organization collection.
type Organizations struct {
	*Collection[models.Organization]
}

// NewOrganizations binds the organization endpoints.
func NewOrganizations(client *api.Client) *Organizations {
	return &Organizations{Collection: NewCollection[models.Organization](client, "/organizations")}
}

// Create validates and registers an organization.
func (r *Organizations) Create(ctx context.Context, req CreateOrganizationRequest) (*models.Organization, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	return r.Collection.Create(ctx, req)
}

// Colleges exposes the college collection.
type Colleges struct {
	*Collection[models.College]
}

// NewColleges binds the college endpoints.
func NewColleges(client *api.Client) *Colleges {
	return &Colleges{Collection: NewCollection[models.College](client, "/colleges")}
}

// Companies exposes the company collection.
type Companies struct {
	*Collection[models.Company]
}

// NewCompanies binds the company endpoints.
func NewCompanies(client *api.Client) *Companies {
	return &Companies{Collection: NewCollection[models.Company](client, "/companies")}
}

// CreateJobRequest is the payload for publishing a job listing.
type CreateJobRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Remote    bool   `json:"remote"`
}

// Jobs exposes the job-listing collection.
type Jobs struct {
	*Collection[models.Job]
}

// NewJobs binds the job-listing endpoints.
func NewJobs(client *api.Client) *Jobs {
	return &Jobs{Collection: NewCollection[models.Job](client, "/jobs")}
}

// Create validates and publishes a job listing.
func (r *Jobs) Create(ctx context.Context, req CreateJobRequest) (*models.Job, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	return r.Collection.Create(ctx, req)
}
