package models

import "time"

// Course represents one course record as listed by the admin backend.
// Description carries editor-produced HTML.
type Course struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Code          string    `json:"code"`
	Description   string    `json:"description"`
	CategoryID    string    `json:"category_id"`
	Category      string    `json:"category"`
	Level         string    `json:"level"`
	DurationWeeks int       `json:"duration_weeks"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RowID implements the list row contract.
func (c Course) RowID() string { return c.ID }

// Topic is a unit of course content.
type Topic struct {
	ID         string `json:"id"`
	CourseID   string `json:"course_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Sequence   int    `json:"sequence"`
	Published  bool   `json:"published"`
	ContentURL string `json:"content_url"`
}

func (t Topic) RowID() string { return t.ID }

// Syllabus maps a course to its ordered outline.
type Syllabus struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	Course   string `json:"course"`
	Title    string `json:"title"`
	Outline  string `json:"outline"`
	Version  int    `json:"version"`
}

func (s Syllabus) RowID() string { return s.ID }

// Task is an administrative work item tracked in the console.
type Task struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	AssignedTo string     `json:"assigned_to"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

func (t Task) RowID() string { return t.ID }
