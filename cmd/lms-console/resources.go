package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/openlearn-labs/lms-console/internal/controller"
	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/internal/resource"
	"github.com/openlearn-labs/lms-console/pkg/export"
)

// collectionAPI is what a resource binding must expose to the commands. The
// typed wrappers in internal/resource satisfy it through their embedded
// collection.
type collectionAPI[T controller.Row] interface {
	controller.Source[T]
	controller.Deleter
	Get(ctx context.Context, id string) (*T, error)
}

// listFlags carries the list-page query options common to list and export.
type listFlags struct {
	page    int
	search  string
	filters []string
	sortBy  string
	order   string
}

// binding is one resource's entry in the command registry. The closures hide
// the row type so the registry can stay a plain map.
type binding struct {
	title  string
	list   func(ctx context.Context, a *app, f listFlags, out io.Writer) error
	get    func(ctx context.Context, a *app, id string, out io.Writer) error
	remove func(ctx context.Context, a *app, ids []string, confirm controller.Confirmer) error
	export func(ctx context.Context, a *app, f listFlags, format string) (string, error)
}

func bind[T controller.Row](title string, cols []export.Column[T], open func(*app) collectionAPI[T]) binding {
	return binding{
		title: title,
		list: func(ctx context.Context, a *app, f listFlags, out io.Writer) error {
			return runList(ctx, a, open(a), cols, f, out)
		},
		get: func(ctx context.Context, a *app, id string, out io.Writer) error {
			return runGet(ctx, open(a), id, out)
		},
		remove: func(ctx context.Context, a *app, ids []string, confirm controller.Confirmer) error {
			return runDelete(ctx, a, open(a), ids, confirm)
		},
		export: func(ctx context.Context, a *app, f listFlags, format string) (string, error) {
			return runExport(ctx, a, open(a), title, cols, f, format)
		},
	}
}

func resourceBindings() map[string]binding {
	return map[string]binding{
		"courses": bind("Courses", courseColumns, func(a *app) collectionAPI[models.Course] {
			return resource.NewCourses(a.client)
		}),
		"topics": bind("Topics", topicColumns, func(a *app) collectionAPI[models.Topic] {
			return resource.NewTopics(a.client)
		}),
		"syllabuses": bind("Syllabuses", syllabusColumns, func(a *app) collectionAPI[models.Syllabus] {
			return resource.NewSyllabuses(a.client)
		}),
		"tasks": bind("Tasks", taskColumns, func(a *app) collectionAPI[models.Task] {
			return resource.NewTasks(a.client)
		}),
		"certifications": bind("Certifications", certificationColumns, func(a *app) collectionAPI[models.Certification] {
			return resource.NewCertifications(a.client)
		}),
		"questions": bind("Questions", questionColumns, func(a *app) collectionAPI[models.Question] {
			return resource.NewQuestions(a.client)
		}),
		"universities": bind("Universities", universityColumns, func(a *app) collectionAPI[models.University] {
			return resource.NewUniversities(a.client)
		}),
		"organizations": bind("Organizations", organizationColumns, func(a *app) collectionAPI[models.Organization] {
			return resource.NewOrganizations(a.client)
		}),
		"colleges": bind("Colleges", collegeColumns, func(a *app) collectionAPI[models.College] {
			return resource.NewColleges(a.client)
		}),
		"companies": bind("Companies", companyColumns, func(a *app) collectionAPI[models.Company] {
			return resource.NewCompanies(a.client)
		}),
		"jobs": bind("Jobs", jobColumns, func(a *app) collectionAPI[models.Job] {
			return resource.NewJobs(a.client)
		}),
	}
}

func resourceNames() []string {
	bindings := resourceBindings()
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupBinding(name string) (binding, error) {
	b, ok := resourceBindings()[strings.ToLower(name)]
	if !ok {
		return binding{}, fmt.Errorf("unknown resource %q (one of: %s)", name, strings.Join(resourceNames(), ", "))
	}
	return b, nil
}

// fetchPage drives one controller through the requested query and returns
// the resulting snapshot.
func fetchPage[T controller.Row](ctx context.Context, a *app, src controller.Source[T], f listFlags) (controller.ListResult[T], error) {
	ctl := controller.NewList[T](src, controller.ListOptions[T]{
		PageSize: a.cfg.List.PageSize,
		Logger:   a.logger,
	})
	defer ctl.Close()

	fetched := false
	if f.search != "" {
		if err := ctl.SetSearchText(ctx, f.search); err != nil {
			return ctl.Snapshot(), err
		}
		fetched = true
	}
	for _, pair := range f.filters {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return ctl.Snapshot(), fmt.Errorf("filter must be key=value, got %q", pair)
		}
		if err := ctl.SetFilter(ctx, key, value); err != nil {
			return ctl.Snapshot(), err
		}
		fetched = true
	}
	if f.sortBy != "" {
		if err := ctl.SetSort(ctx, f.sortBy, f.order); err != nil {
			return ctl.Snapshot(), err
		}
		fetched = true
	}
	if f.page > 1 || !fetched {
		if err := ctl.GoToPage(ctx, f.page); err != nil {
			return ctl.Snapshot(), err
		}
	}
	return ctl.Snapshot(), nil
}

func runList[T controller.Row](ctx context.Context, a *app, src collectionAPI[T], cols []export.Column[T], f listFlags, out io.Writer) error {
	snap, err := fetchPage[T](ctx, a, src, f)
	if err != nil {
		return err
	}
	renderPage(out, cols, snap)
	return nil
}

func renderPage[T controller.Row](out io.Writer, cols []export.Column[T], snap controller.ListResult[T]) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, col := range cols {
		header[i] = col.Header
	}
	t.AppendHeader(header)

	for _, item := range snap.Items {
		row := make(table.Row, len(cols))
		for i, col := range cols {
			row[i] = col.Value(item)
		}
		t.AppendRow(row)
	}
	t.Render()

	total := strconv.Itoa(snap.TotalCount)
	if snap.Approximate {
		total = "~" + total
	}
	fmt.Fprintf(out, "Page %d of %d (%s records)\n", snap.Query.Page, snap.TotalPages(), total)
}

func runGet[T controller.Row](ctx context.Context, src collectionAPI[T], id string, out io.Writer) error {
	record, err := src.Get(ctx, id)
	if err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	fmt.Fprintln(out, string(encoded))
	return nil
}

func runDelete[T controller.Row](ctx context.Context, a *app, src collectionAPI[T], ids []string, confirm controller.Confirmer) error {
	ctl := controller.NewList[T](src, controller.ListOptions[T]{
		PageSize: a.cfg.List.PageSize,
		Deleter:  src,
		Confirm:  confirm,
		Logger:   a.logger,
	})
	defer ctl.Close()

	if len(ids) == 1 {
		return ctl.DeleteRow(ctx, ids[0])
	}
	for _, id := range ids {
		ctl.ToggleSelect(id)
	}
	return ctl.DeleteSelected(ctx)
}

func runExport[T controller.Row](ctx context.Context, a *app, src collectionAPI[T], title string, cols []export.Column[T], f listFlags, format string) (string, error) {
	snap, err := fetchPage[T](ctx, a, src, f)
	if err != nil {
		return "", err
	}

	data := export.BuildDataset(cols, snap.Items)

	var rendered []byte
	switch format {
	case "csv":
		rendered, err = export.NewCSVExporter().Render(data)
	case "pdf":
		rendered, err = export.NewPDFExporter().Render(data, title)
	default:
		return "", fmt.Errorf("unknown format %q (csv or pdf)", format)
	}
	if err != nil {
		return "", err
	}

	store, err := newArtifactStore(a)
	if err != nil {
		return "", err
	}
	return store.Save(title, format, rendered)
}
