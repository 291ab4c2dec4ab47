package models

import "time"

// Certification describes an authored certification track. Overview carries
// editor-produced HTML.
type Certification struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	PassingScore int       `json:"passing_score"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c Certification) RowID() string { return c.ID }

// Question is one question-bank entry. Body carries editor-produced HTML.
type Question struct {
	ID              string   `json:"id"`
	CertificationID string   `json:"certification_id"`
	Body            string   `json:"body"`
	Choices         []string `json:"choices"`
	CorrectIndex    int      `json:"correct_index"`
	Difficulty      string   `json:"difficulty"`
}

func (q Question) RowID() string { return q.ID }
