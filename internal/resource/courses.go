package resource

import (
	"context"

	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/pkg/api"
)

// CreateCourseRequest is the payload for creating a course. Description
// carries editor-produced HTML verbatim; sanitisation happens on render.
type CreateCourseRequest struct {
	Title         string `json:"title" validate:"required"`
	Code          string `json:"code" validate:"required"`
	Description   string `json:"description"`
	CategoryID    string `json:"category_id" validate:"required"`
	Level         string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	DurationWeeks int    `json:"duration_weeks" validate:"min=0"`
	Published     bool   `json:"published"`
}

// UpdateCourseRequest is the payload for replacing a course.
type UpdateCourseRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	Level         string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	DurationWeeks int    `json:"duration_weeks" validate:"min=0"`
	Published     bool   `json:"published"`
}

// Courses exposes the course collection with typed payloads.
type Courses struct {
	*Collection[models.Course]
}

// NewCourses binds the course endpoints.
func NewCourses(client *api.Client) *Courses {
	return &Courses{Collection: NewCollection[models.Course](client, "/courses")}
}

// Create validates and creates a course.
func (r *Courses) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	return r.Collection.Create(ctx, req)
}

// Update validates and replaces a course.
func (r *Courses) Update(ctx context.Context, id string, req UpdateCourseRequest) (*models.Course, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	return r.Collection.Update(ctx, id, req)
}

// Topics exposes the topic collection.
type Topics struct {
	*Collection[models.Topic]
}

// CreateTopicRequest is the payload for creating a topic.
type CreateTopicRequest struct {
	CourseID string `json:"course_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Category string `json:"category"`
	Sequence int    `json:"sequence" validate:"min=0"`
}

// NewTopics binds the topic endpoints.
func NewTopics(client *api.Client) *Topics {
	return &Topics{Collection: NewCollection[models.Topic](client, "/topics")}
}

// Create validates and creates a topic.
func (r *Topics) Create(ctx context.Context, req CreateTopicRequest) (*models.Topic, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	return r.Collection.Create(ctx, req)
}

// Syllabuses exposes the syllabus collection.
type Syllabuses struct {
	*Collection[models.Syllabus]
}

// NewSyllabuses binds the syllabus endpoints.
func NewSyllabuses(client *api.Client) *Syllabuses {
	return &Syllabuses{Collection: NewCollection[models.Syllabus](client, "/syllabus")}
}

// Tasks exposes the administrative task collection.
type Tasks struct {
	*Collection[models.Task]
}

// NewTasks binds the task endpoints.
func NewTasks(client *api.Client) *Tasks {
	return &Tasks{Collection: NewCollection[models.Task](client, "/tasks")}
}
