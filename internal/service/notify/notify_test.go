package notify

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"agrimarket-delivery/internal/apperr"
	"agrimarket-delivery/internal/domain"
	testlog "agrimarket-delivery/internal/testutil"
)

type publisherStub struct {
	publishFn func(context.Context, domain.NotificationTask) error
	got       []domain.NotificationTask
}

func (p *publisherStub) Publish(ctx context.Context, t domain.NotificationTask) error {
	p.got = append(p.got, t)
	if p.publishFn == nil {
		return nil
	}
	return p.publishFn(ctx, t)
}

type storeStub struct {
	insertFn func(context.Context, domain.NotificationTask) (bool, error)
	calls    int
}

func (s *storeStub) Insert(ctx context.Context, t domain.NotificationTask) (bool, error) {
	s.calls++
	return s.insertFn(ctx, t)
}

type counterStub struct{ n int64 }

func (c *counterStub) Inc() { atomic.AddInt64(&c.n, 1) }

var fixedNow = time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC)

func newTestDispatcher(pub publisher, failures counter, rec *testlog.Recorder) *Dispatcher {
	d := NewDispatcher(pub, failures, rec.Logger())
	var seq int
	d.newID = func() string {
		seq++
		return "id-" + string(rune('0'+seq))
	}
	d.now = func() time.Time { return fixedNow }
	return d
}

func sampleEvent(t domain.NotificationType, actor int64) domain.ScheduleEvent {
	return domain.ScheduleEvent{
		Type:    t,
		ActorID: actor,
		Order:   domain.Order{ID: 5, BuyerID: 1, SellerID: 2},
		Schedule: domain.DeliverySchedule{
			ID:            9,
			OrderID:       5,
			ScheduledDate: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			ScheduledTime: "22:30",
		},
	}
}

func TestDispatcher_OneTaskPerRecipient(t *testing.T) {
	t.Parallel()

	pub := &publisherStub{}
	d := newTestDispatcher(pub, nil, testlog.New())

	d.Notify(context.Background(), []int64{1, 2}, sampleEvent(domain.NotificationScheduleProposed, 99))

	require.Len(t, pub.got, 2)
	require.Equal(t, int64(1), pub.got[0].UserID)
	require.Equal(t, int64(2), pub.got[1].UserID)
	require.NotEqual(t, pub.got[0].ID, pub.got[1].ID)
	for _, task := range pub.got {
		require.Equal(t, domain.NotificationScheduleProposed, task.Type)
		require.Equal(t, "New delivery schedule proposed", task.Title)
		require.Contains(t, task.Message, "2025-03-04 at 10:30 PM")
		require.Contains(t, task.Message, "order #5")
		require.Equal(t, "/orders/5", task.Link)
		require.Equal(t, int64(9), task.ScheduleID)
		require.Equal(t, fixedNow, task.CreatedAt)
	}
}

func TestDispatcher_SkipsActorAndBlankRecipients(t *testing.T) {
	t.Parallel()

	pub := &publisherStub{}
	d := newTestDispatcher(pub, nil, testlog.New())

	d.Notify(context.Background(), []int64{1, 0, 2}, sampleEvent(domain.NotificationScheduleConfirmed, 1))

	require.Len(t, pub.got, 1)
	require.Equal(t, int64(2), pub.got[0].UserID)
	require.Equal(t, "Delivery schedule confirmed", pub.got[0].Title)
}

func TestDispatcher_FailureIsLoggedAndCounted(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	pub := &publisherStub{publishFn: func(context.Context, domain.NotificationTask) error {
		return errors.New("broker down")
	}}
	failures := &counterStub{}
	d := newTestDispatcher(pub, failures, rec)

	d.Notify(context.Background(), []int64{1, 2}, sampleEvent(domain.NotificationScheduleRejected, 99))

	require.Len(t, pub.got, 2)
	require.EqualValues(t, 2, atomic.LoadInt64(&failures.n))
	require.Len(t, rec.Events("notification_publish_failed"), 2)
}

func TestDispatcher_NilPublisherIsNoop(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(nil, nil, nil)
	d.Notify(context.Background(), []int64{1}, sampleEvent(domain.NotificationScheduleProposed, 2))

	var nilD *Dispatcher
	nilD.Notify(context.Background(), []int64{1}, sampleEvent(domain.NotificationScheduleProposed, 2))
}

func TestCompose_RejectedIncludesNotes(t *testing.T) {
	t.Parallel()

	ev := sampleEvent(domain.NotificationScheduleRejected, 1)
	notes := "please deliver in the morning"
	ev.Schedule.Notes = &notes

	title, msg := compose(ev)
	require.Equal(t, "Delivery schedule rejected", title)
	require.True(t, strings.HasSuffix(msg, "Notes: please deliver in the morning"))
}

func TestStorePublisher_Inserts(t *testing.T) {
	t.Parallel()

	st := &storeStub{insertFn: func(context.Context, domain.NotificationTask) (bool, error) {
		return false, nil
	}}
	require.NoError(t, NewStorePublisher(st).Publish(context.Background(), domain.NotificationTask{ID: "x"}))
	require.Equal(t, 1, st.calls)

	boom := errors.New("db down")
	st.insertFn = func(context.Context, domain.NotificationTask) (bool, error) { return false, boom }
	require.ErrorIs(t, NewStorePublisher(st).Publish(context.Background(), domain.NotificationTask{}), boom)
}

func validTask() domain.NotificationTask {
	return domain.NotificationTask{
		ID:        "5f0c8a3e-1f7d-4d8e-9a0b-2c3d4e5f6a7b",
		UserID:    3,
		Type:      domain.NotificationScheduleProposed,
		Title:     "New delivery schedule proposed",
		CreatedAt: fixedNow,
	}
}

func TestProcessor_Handle(t *testing.T) {
	t.Parallel()

	t.Run("stores new task", func(t *testing.T) {
		t.Parallel()
		rec := testlog.New()
		st := &storeStub{insertFn: func(context.Context, domain.NotificationTask) (bool, error) { return true, nil }}
		require.NoError(t, NewProcessor(st, rec.Logger()).Handle(context.Background(), validTask()))
		require.Len(t, rec.Events("notification_stored"), 1)
	})

	t.Run("duplicate is not an error", func(t *testing.T) {
		t.Parallel()
		rec := testlog.New()
		st := &storeStub{insertFn: func(context.Context, domain.NotificationTask) (bool, error) { return false, nil }}
		require.NoError(t, NewProcessor(st, rec.Logger()).Handle(context.Background(), validTask()))
		require.Len(t, rec.Events("notification_duplicate"), 1)
	})

	t.Run("store error is returned", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("db down")
		st := &storeStub{insertFn: func(context.Context, domain.NotificationTask) (bool, error) { return false, boom }}
		require.ErrorIs(t, NewProcessor(st, nil).Handle(context.Background(), validTask()), boom)
	})
}

func TestProcessor_RejectsMalformedTasks(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*domain.NotificationTask){
		"bad id":       func(t *domain.NotificationTask) { t.ID = "n-1" },
		"no recipient": func(t *domain.NotificationTask) { t.UserID = 0 },
		"no type":      func(t *domain.NotificationTask) { t.Type = "" },
		"no title":     func(t *domain.NotificationTask) { t.Title = " " },
		"no timestamp": func(t *domain.NotificationTask) { t.CreatedAt = time.Time{} },
	}
	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			st := &storeStub{}
			task := validTask()
			mutate(&task)
			err := NewProcessor(st, nil).Handle(context.Background(), task)
			require.ErrorIs(t, err, apperr.ErrInvalid)
			require.Zero(t, st.calls)
		})
	}
}
