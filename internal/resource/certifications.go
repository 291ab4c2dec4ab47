package resource

import (
	"context"

	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/pkg/api"
)

// CreateCertificationRequest is the payload for authoring a certification.
// Overview carries editor-produced HTML.
type CreateCertificationRequest struct {
	Name         string `json:"name" validate:"required"`
	Overview     string `json:"overview"`
	PassingScore int    `json:"passing_score" validate:"min=0,max=100"`
	Active       bool   `json:"active"`
}

// Certifications exposes the certification collection.
type Certifications struct {
	*Collection[models.Certification]
}

// NewCertifications binds the certification endpoints.
func NewCertifications(client *api.Client) *Certifications {
	return &Certifications{Collection: NewCollection[models.Certification](client, "/certifications")}
}

// Create validates and creates a certification.
func (r *Certifications) Create(ctx context.Context, req CreateCertificationRequest) (*models.Certification, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	return r.Collection.Create(ctx, req)
}

// CreateQuestionRequest is the payload for adding a question-bank entry.
// Body carries editor-produced HTML.
type CreateQuestionRequest struct {
	CertificationID string   `json:"certification_id" validate:"required"`
	Body            string   `json:"body" validate:"required"`
	Choices         []string `json:"choices" validate:"required,min=2"`
	CorrectIndex    int      `json:"correct_index" validate:"min=0"`
	Difficulty      string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

// Questions exposes the question-bank collection.
type Questions struct {
	*Collection[models.Question]
}

// NewQuestions binds the question-bank endpoints.
func NewQuestions(client *api.Client) *Questions {
	return &Questions{Collection: NewCollection[models.Question](client, "/questions")}
}

// Create validates and creates a question.
func (r *Questions) Create(ctx context.Context, req CreateQuestionRequest) (*models.Question, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	return r.Collection.Create(ctx, req)
}
