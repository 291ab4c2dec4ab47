package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/internal/richtext"
	"github.com/openlearn-labs/lms-console/pkg/export"
)

// Column specs shared by the table renderer and the exporters, one set per
// resource. HTML-bearing fields go through the rich text parser so tables
// and CSV files show readable text instead of markup.

var courseColumns = []export.Column[models.Course]{
	{Header: "ID", Value: func(c models.Course) string { return c.ID }},
	{Header: "Title", Value: func(c models.Course) string { return c.Title }},
	{Header: "Code", Value: func(c models.Course) string { return c.Code }},
	{Header: "Category", Value: func(c models.Course) string { return c.Category }},
	{Header: "Level", Value: func(c models.Course) string { return c.Level }},
	{Header: "Weeks", Value: func(c models.Course) string { return strconv.Itoa(c.DurationWeeks) }},
	{Header: "Published", Value: func(c models.Course) string { return yesNo(c.Published) }},
	{Header: "Description", Value: func(c models.Course) string { return htmlPreview(c.Description) }},
}

var topicColumns = []export.Column[models.Topic]{
	{Header: "ID", Value: func(t models.Topic) string { return t.ID }},
	{Header: "Course", Value: func(t models.Topic) string { return t.CourseID }},
	{Header: "Title", Value: func(t models.Topic) string { return t.Title }},
	{Header: "Category", Value: func(t models.Topic) string { return t.Category }},
	{Header: "Seq", Value: func(t models.Topic) string { return strconv.Itoa(t.Sequence) }},
	{Header: "Published", Value: func(t models.Topic) string { return yesNo(t.Published) }},
}

var syllabusColumns = []export.Column[models.Syllabus]{
	{Header: "ID", Value: func(s models.Syllabus) string { return s.ID }},
	{Header: "Course", Value: func(s models.Syllabus) string { return s.Course }},
	{Header: "Title", Value: func(s models.Syllabus) string { return s.Title }},
	{Header: "Version", Value: func(s models.Syllabus) string { return strconv.Itoa(s.Version) }},
}

var taskColumns = []export.Column[models.Task]{
	{Header: "ID", Value: func(t models.Task) string { return t.ID }},
	{Header: "Title", Value: func(t models.Task) string { return t.Title }},
	{Header: "Status", Value: func(t models.Task) string { return t.Status }},
	{Header: "Assigned To", Value: func(t models.Task) string { return t.AssignedTo }},
	{Header: "Due", Value: func(t models.Task) string { return optionalDate(t.DueDate) }},
}

var certificationColumns = []export.Column[models.Certification]{
	{Header: "ID", Value: func(c models.Certification) string { return c.ID }},
	{Header: "Name", Value: func(c models.Certification) string { return c.Name }},
	{Header: "Passing Score", Value: func(c models.Certification) string { return strconv.Itoa(c.PassingScore) }},
	{Header: "Active", Value: func(c models.Certification) string { return yesNo(c.Active) }},
	{Header: "Overview", Value: func(c models.Certification) string { return htmlPreview(c.Overview) }},
}

var questionColumns = []export.Column[models.Question]{
	{Header: "ID", Value: func(q models.Question) string { return q.ID }},
	{Header: "Certification", Value: func(q models.Question) string { return q.CertificationID }},
	{Header: "Question", Value: func(q models.Question) string { return htmlPreview(q.Body) }},
	{Header: "Choices", Value: func(q models.Question) string { return strconv.Itoa(len(q.Choices)) }},
	{Header: "Difficulty", Value: func(q models.Question) string { return q.Difficulty }},
}

var universityColumns = []export.Column[models.University]{
	{Header: "ID", Value: func(u models.University) string { return u.ID }},
	{Header: "Name", Value: func(u models.University) string { return u.Name }},
	{Header: "Country", Value: func(u models.University) string { return u.Country }},
	{Header: "City", Value: func(u models.University) string { return u.City }},
	{Header: "Active", Value: func(u models.University) string { return yesNo(u.Active) }},
}

var organizationColumns = []export.Column[models.Organization]{
	{Header: "ID", Value: func(o models.Organization) string { return o.ID }},
	{Header: "Name", Value: func(o models.Organization) string { return o.Name }},
	{Header: "Kind", Value: func(o models.Organization) string { return o.Kind }},
	{Header: "Contact", Value: func(o models.Organization) string { return o.ContactEmail }},
	{Header: "Active", Value: func(o models.Organization) string { return yesNo(o.Active) }},
}

var collegeColumns = []export.Column[models.College]{
	{Header: "ID", Value: func(c models.College) string { return c.ID }},
	{Header: "Name", Value: func(c models.College) string { return c.Name }},
	{Header: "Dean", Value: func(c models.College) string { return c.Dean }},
}

var companyColumns = []export.Column[models.Company]{
	{Header: "ID", Value: func(c models.Company) string { return c.ID }},
	{Header: "Name", Value: func(c models.Company) string { return c.Name }},
	{Header: "Industry", Value: func(c models.Company) string { return c.Industry }},
	{Header: "Website", Value: func(c models.Company) string { return c.Website }},
	{Header: "Verified", Value: func(c models.Company) string { return yesNo(c.Verified) }},
}

var jobColumns = []export.Column[models.Job]{
	{Header: "ID", Value: func(j models.Job) string { return j.ID }},
	{Header: "Title", Value: func(j models.Job) string { return j.Title }},
	{Header: "Company", Value: func(j models.Job) string { return j.Company }},
	{Header: "Location", Value: func(j models.Job) string { return j.Location }},
	{Header: "Remote", Value: func(j models.Job) string { return yesNo(j.Remote) }},
	{Header: "Posted", Value: func(j models.Job) string { return j.PostedAt.Format("2006-01-02") }},
	{Header: "Closes", Value: func(j models.Job) string { return optionalDate(j.ClosesAt) }},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// htmlPreview flattens editor-produced HTML into a short plain-text cell.
func htmlPreview(raw string) string {
	const max = 48
	text := raw
	if doc, err := richtext.Parse(richtext.Sanitize(raw)); err == nil {
		text = doc.PlainText()
	}
	text = strings.Join(strings.Fields(text), " ")
	if runes := []rune(text); len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return text
}
