package dashboard

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/pkg/api"
)

// State is a render snapshot of the dashboard. A non-nil Err means the
// summary failed to load and the view shows a retry affordance in place of
// content, not a blocking dialog.
type State struct {
	Summary   *models.DashboardSummary
	Activity  []models.DashboardActivity
	IsLoading bool
	Err       error
}

// Controller loads the analytics dashboard. The summary and the activity
// feed are independent, eventually-consistent reads; no ordering between
// them is guaranteed or required.
type Controller struct {
	client *api.Client
	logger *zap.Logger

	mu       sync.Mutex
	summary  *models.DashboardSummary
	activity []models.DashboardActivity
	loading  bool
	err      error
}

// New builds a dashboard controller.
func New(client *api.Client, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{client: client, logger: logger}
}

// Load fetches the summary and the recent-activity feed. A summary failure
// is the page failure; an activity failure only logs, leaving the headline
// numbers usable.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.err = nil
	c.mu.Unlock()

	var summary models.DashboardSummary
	err := c.client.Get(ctx, "/dashboard/summary/", nil, &summary)

	var activity []models.DashboardActivity
	var actErr error
	if err == nil {
		activity, actErr = c.fetchActivity(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = err
		return err
	}
	c.summary = &summary
	if actErr != nil {
		c.logger.Warn("dashboard activity feed failed", zap.Error(actErr))
	} else {
		c.activity = activity
	}
	return nil
}

// Reload is the retry affordance shown in the failure banner.
func (c *Controller) Reload(ctx context.Context) error {
	return c.Load(ctx)
}

// Snapshot returns the current dashboard state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	activity := make([]models.DashboardActivity, len(c.activity))
	copy(activity, c.activity)
	return State{
		Summary:   c.summary,
		Activity:  activity,
		IsLoading: c.loading,
		Err:       c.err,
	}
}

func (c *Controller) fetchActivity(ctx context.Context) ([]models.DashboardActivity, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(10))
	raw, _, err := c.client.GetCollection(ctx, "/dashboard/activity/", query)
	if err != nil {
		return nil, err
	}
	var activity []models.DashboardActivity
	if err := json.Unmarshal(raw, &activity); err != nil {
		return nil, err
	}
	return activity, nil
}
