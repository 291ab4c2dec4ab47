package resource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/pkg/api"
	"github.com/openlearn-labs/lms-console/pkg/config"
	apperrors "github.com/openlearn-labs/lms-console/pkg/errors"
)

type noTokens struct{}

func (noTokens) AccessToken() string { return "" }

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, noTokens{}, nil)
}

func TestCollectionListSerialisesQuery(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/courses/", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":"c1","title":"Intro"}],"pagination":{"total":1}}`)) //nolint:errcheck
	}))

	courses := NewCollection[models.Course](client, "/courses")
	items, total, err := courses.List(context.Background(), models.ListQuery{
		Page:      3,
		PageSize:  10,
		Search:    "intro",
		Filters:   map[string]string{"level": "beginner"},
		SortBy:    "title",
		SortOrder: "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].ID)

	assert.Equal(t, "3", gotQuery.Get("page"))
	assert.Equal(t, "10", gotQuery.Get("per_page"))
	assert.Equal(t, "intro", gotQuery.Get("search"))
	assert.Equal(t, "beginner", gotQuery.Get("level"))
	assert.Equal(t, "title", gotQuery.Get("sort"))
	assert.Equal(t, "desc", gotQuery.Get("order"))
}

func TestCollectionGetUnwrapsDataEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/c1/", r.URL.Path)
		w.Write([]byte(`{"data":{"id":"c1","title":"Intro"}}`)) //nolint:errcheck
	}))

	courses := NewCollection[models.Course](client, "/courses")
	course, err := courses.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Intro", course.Title)
}

func TestCollectionGetAcceptsBareRecord(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"c2","title":"Bare"}`)) //nolint:errcheck
	}))

	courses := NewCollection[models.Course](client, "/courses")
	course, err := courses.Get(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, "Bare", course.Title)
}

func TestCreateValidationFailsBeforeNetwork(t *testing.T) {
	var calls int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	courses := NewCourses(client)
	_, err := courses.Create(context.Background(), CreateCourseRequest{Title: "missing the rest"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, atomic.LoadInt32(&calls), "invalid payloads never reach the server")
}

func TestCreateCoursePostsPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/courses/", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"c9","title":"New"}}`)) //nolint:errcheck
	}))

	courses := NewCourses(client)
	course, err := courses.Create(context.Background(), CreateCourseRequest{
		Title:      "New",
		Code:       "NEW-101",
		CategoryID: "cat-1",
		Level:      "beginner",
	})
	require.NoError(t, err)
	assert.Equal(t, "c9", course.ID)
}

func TestCollectionDelete(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/courses/c1/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	courses := NewCollection[models.Course](client, "/courses")
	assert.NoError(t, courses.Delete(context.Background(), "c1"))
}
