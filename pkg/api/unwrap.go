package api

import (
	"encoding/json"

	apperrors "github.com/openlearn-labs/lms-console/pkg/errors"
)

// UnwrapCollection normalises the three envelope shapes list endpoints are
// known to answer with: {"data": [...]}, {"results": [...]} and a bare array.
// The priority order is fixed: data, then results, then the raw body. The
// total comes from pagination.total, then count, then the item count itself.
func UnwrapCollection(body []byte) (json.RawMessage, int, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		items := itemsFromEnvelope(envelope)
		if items == nil {
			return nil, 0, apperrors.New(apperrors.ErrAPI.Code, 0, "response carries no collection")
		}
		n, err := arrayLen(items)
		if err != nil {
			return nil, 0, err
		}
		return items, totalFromEnvelope(envelope, n), nil
	}

	// Bare array body.
	n, err := arrayLen(body)
	if err != nil {
		return nil, 0, err
	}
	return body, n, nil
}

func itemsFromEnvelope(envelope map[string]json.RawMessage) json.RawMessage {
	if items, ok := envelope["data"]; ok {
		return items
	}
	if items, ok := envelope["results"]; ok {
		return items
	}
	return nil
}

func totalFromEnvelope(envelope map[string]json.RawMessage, fallback int) int {
	if raw, ok := envelope["pagination"]; ok {
		var p struct {
			Total      *int `json:"total"`
			TotalCount *int `json:"total_count"`
		}
		if err := json.Unmarshal(raw, &p); err == nil {
			if p.Total != nil {
				return *p.Total
			}
			if p.TotalCount != nil {
				return *p.TotalCount
			}
		}
	}
	if raw, ok := envelope["count"]; ok {
		var count int
		if err := json.Unmarshal(raw, &count); err == nil {
			return count
		}
	}
	return fallback
}

func arrayLen(raw json.RawMessage) (int, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrAPI.Code, 0, "response collection is not an array")
	}
	return len(elems), nil
}
