package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeItems(t *testing.T, raw json.RawMessage) []map[string]interface{} {
	t.Helper()
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &items))
	return items
}

func TestUnwrapCollectionDataEnvelope(t *testing.T) {
	body := []byte(`{"data":[{"id":"a"},{"id":"b"}],"pagination":{"total":47}}`)

	items, total, err := UnwrapCollection(body)
	require.NoError(t, err)
	assert.Equal(t, 47, total)
	assert.Len(t, decodeItems(t, items), 2)
}

func TestUnwrapCollectionResultsEnvelope(t *testing.T) {
	body := []byte(`{"results":[{"id":"a"}],"count":12}`)

	items, total, err := UnwrapCollection(body)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Len(t, decodeItems(t, items), 1)
}

func TestUnwrapCollectionBareArray(t *testing.T) {
	body := []byte(`[{"id":"a"},{"id":"b"},{"id":"c"}]`)

	items, total, err := UnwrapCollection(body)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, decodeItems(t, items), 3)
}

func TestUnwrapCollectionDataWinsOverResults(t *testing.T) {
	body := []byte(`{"data":[{"id":"a"}],"results":[{"id":"x"},{"id":"y"}]}`)

	items, total, err := UnwrapCollection(body)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "a", decodeItems(t, items)[0]["id"])
}

func TestUnwrapCollectionTotalFallsBackToLength(t *testing.T) {
	body := []byte(`{"data":[{"id":"a"},{"id":"b"}]}`)

	_, total, err := UnwrapCollection(body)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestUnwrapCollectionRejectsNonCollection(t *testing.T) {
	_, _, err := UnwrapCollection([]byte(`{"id":"a"}`))
	assert.Error(t, err)
}
