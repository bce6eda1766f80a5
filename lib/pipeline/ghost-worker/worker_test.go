package ghostworker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	baseworker "chef-karigar-backend/lib/utils/base-worker"
	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

type fakeStore struct {
	records []dbmodels.MatchBundle
}

func (f *fakeStore) Create(rec dbmodels.MatchBundle) (string, error) { return rec.ID, nil }

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeStore) GetByID(id string) (*dbmodels.MatchBundle, error) { return nil, nil }

func (f *fakeStore) List(status models.BundleStatus) ([]dbmodels.MatchBundle, error) {
	return f.records, nil
}

func (f *fakeStore) ListGhosted(now time.Time) ([]dbmodels.MatchBundle, error) {
	result := []dbmodels.MatchBundle{}
	for _, rec := range f.records {
		if rec.IsGhosted(now) {
			result = append(result, rec)
		}
	}
	return result, nil
}

type fakeAlerter struct {
	seen map[string]bool
	sent []string
}

func (f *fakeAlerter) NotifyOnce(alertKey string, code models.NotificationCode, title, message string) bool {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[alertKey] {
		return false
	}
	f.seen[alertKey] = true
	f.sent = append(f.sent, message)
	return true
}

func newTestWorker(store *fakeStore, alerter *fakeAlerter) impl {
	return impl{
		BaseImpl: *baseworker.NewInstance(workerName, firstRunDelay, handlePeriod),
		store:    store,
		alerter:  alerter,
	}
}

func ghostedBundle(id string, age time.Duration) dbmodels.MatchBundle {
	rec := dbmodels.MatchBundle{
		BusinessName: "Spice Villa",
		Role:         "Tandoor Chef",
		Status:       models.BundleStatusInterviewing,
		DateCreated:  time.Now().Add(-age),
	}
	rec.ID = id
	return rec
}

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run(`alert per stuck bundle`, func(t *testing.T) {
		store := &fakeStore{records: []dbmodels.MatchBundle{
			ghostedBundle("b1", 25*time.Hour),
			ghostedBundle("b2", 48*time.Hour),
		}}
		alerter := &fakeAlerter{}
		newTestWorker(store, alerter).handle(ctx)

		require.Len(t, alerter.sent, 2)
		require.Contains(t, alerter.sent[0], "Spice Villa (Tandoor Chef)")
		require.Contains(t, alerter.sent[0], "Follow up now!")
	})

	t.Run(`fresh bundles stay silent`, func(t *testing.T) {
		store := &fakeStore{records: []dbmodels.MatchBundle{
			ghostedBundle("b1", 23*time.Hour),
		}}
		alerter := &fakeAlerter{}
		newTestWorker(store, alerter).handle(ctx)

		require.Empty(t, alerter.sent)
	})

	t.Run(`repeated sweeps do not duplicate`, func(t *testing.T) {
		store := &fakeStore{records: []dbmodels.MatchBundle{
			ghostedBundle("b1", 25*time.Hour),
		}}
		alerter := &fakeAlerter{}
		worker := newTestWorker(store, alerter)
		worker.handle(ctx)
		worker.handle(ctx)
		worker.handle(ctx)

		require.Len(t, alerter.sent, 1)
	})

	t.Run(`cancelled context stops the sweep`, func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		store := &fakeStore{records: []dbmodels.MatchBundle{
			ghostedBundle("b1", 25*time.Hour),
		}}
		alerter := &fakeAlerter{}
		newTestWorker(store, alerter).handle(cancelled)

		require.Empty(t, alerter.sent)
	})
}

func TestAlertKey(t *testing.T) {
	rec := dbmodels.MatchBundle{}
	rec.ID = "b1"
	require.Equal(t, "ghost-b1", AlertKey(rec))
}
