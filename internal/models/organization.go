package models

import "time"

// University is a top-level institution in the organizational hierarchy.
type University struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
	Active  bool   `json:"active"`
}

func (u University) RowID() string { return u.ID }

// Organization is a partner organization under a university.
type Organization struct {
	ID           string `json:"id"`
	UniversityID string `json:"university_id"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	ContactEmail string `json:"contact_email"`
	Active       bool   `json:"active"`
}

func (o Organization) RowID() string { return o.ID }

// College is a school or faculty belonging to a university.
type College struct {
	ID           string `json:"id"`
	UniversityID string `json:"university_id"`
	Name         string `json:"name"`
	Dean         string `json:"dean"`
}

func (c College) RowID() string { return c.ID }

// Company is an employer with published job listings.
type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Verified bool   `json:"verified"`
}

func (c Company) RowID() string { return c.ID }

// Job is one job listing managed through the console.
type Job struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Company   string     `json:"company"`
	Title     string     `json:"title"`
	Location  string     `json:"location"`
	Remote    bool       `json:"remote"`
	PostedAt  time.Time  `json:"posted_at"`
	ClosesAt  *time.Time `json:"closes_at,omitempty"`
}

func (j Job) RowID() string { return j.ID }
