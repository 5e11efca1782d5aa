package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sessionlab/sessiond/core/session"
)

// mockStore implements session.Store for testing
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Insert(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *mockStore) GetByID(ctx context.Context, id string) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *mockStore) ListByStatus(ctx context.Context, status session.Status) ([]session.Session, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]session.Session), args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *mockStore) EndInactive(ctx context.Context, olderThan time.Time, to session.Status) (int64, error) {
	args := m.Called(ctx, olderThan, to)
	return args.Get(0).(int64), args.Error(1)
}

// Helpers

func fakeParams() session.LoginParams {
	return session.LoginParams{
		Email:     gofakeit.Email(),
		Nickname:  gofakeit.Username(),
		ClientIP:  gofakeit.IPv4Address(),
		ClientMAC: gofakeit.MacAddress(),
	}
}

func fixedResolver() session.Option {
	return session.WithIdentityResolver(func() session.ServerData {
		return session.ServerData{IP: "10.0.0.1", MAC: "02:42:ac:11:00:01"}
	})
}

func storedSession(status session.Status, idle time.Duration) *session.Session {
	sess := session.New(fakeParams(), session.ServerData{IP: "10.0.0.1"})
	sess.Status = status
	sess.CreatedAt = time.Now().UTC().Add(-idle - time.Minute)
	sess.LastAccessed = time.Now().UTC().Add(-idle)
	return &sess
}

// Tests

func TestManagerLogin(t *testing.T) {
	t.Parallel()

	t.Run("creates active session with server identity", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()
		params := fakeParams()

		store.On("Insert", ctx, mock.AnythingOfType("*session.Session")).Return(nil)

		sess, err := mgr.Login(ctx, params)

		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, session.StatusActive, sess.Status)
		assert.Equal(t, params.Email, sess.Email)
		assert.Equal(t, params.ClientIP, sess.Client.IP)
		assert.Equal(t, "10.0.0.1", sess.Server.IP)
		assert.Equal(t, sess.CreatedAt, sess.LastAccessed)
		store.AssertExpectations(t)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()

		for _, params := range []session.LoginParams{
			{Nickname: "user", ClientMAC: "02:42:ac:11:00:02"},
			{Email: "user@example.com", ClientMAC: "02:42:ac:11:00:02"},
			{Email: "user@example.com", Nickname: "user"},
			{Email: "   ", Nickname: "user", ClientMAC: "02:42:ac:11:00:02"},
		} {
			sess, err := mgr.Login(ctx, params)
			assert.ErrorIs(t, err, session.ErrInvalidInput)
			assert.Nil(t, sess)
		}
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("regenerates id on duplicate key", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()

		store.On("Insert", ctx, mock.AnythingOfType("*session.Session")).
			Return(session.ErrDuplicateID).Once()
		store.On("Insert", ctx, mock.AnythingOfType("*session.Session")).
			Return(nil).Once()

		sess, err := mgr.Login(ctx, fakeParams())

		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		store.AssertExpectations(t)
	})

	t.Run("gives up after persistent duplicates", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()

		store.On("Insert", ctx, mock.AnythingOfType("*session.Session")).
			Return(session.ErrDuplicateID)

		sess, err := mgr.Login(ctx, fakeParams())

		assert.ErrorIs(t, err, session.ErrDuplicateID)
		assert.Nil(t, sess)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()

		store.On("Insert", ctx, mock.AnythingOfType("*session.Session")).
			Return(session.ErrStoreUnavailable)

		_, err := mgr.Login(ctx, fakeParams())
		assert.ErrorIs(t, err, session.ErrStoreUnavailable)
	})
}

func TestManagerLogout(t *testing.T) {
	t.Parallel()

	t.Run("ends active session", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()
		active := storedSession(session.StatusActive, time.Minute)

		store.On("GetByID", ctx, active.ID).Return(active, nil)
		store.On("Save", ctx, mock.MatchedBy(func(s *session.Session) bool {
			return s.ID == active.ID && s.Status == session.StatusEndedByUser
		})).Return(nil)

		sess, err := mgr.Logout(ctx, active.ID)

		require.NoError(t, err)
		assert.Equal(t, session.StatusEndedByUser, sess.Status)
		store.AssertExpectations(t)
	})

	t.Run("requires session id", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())

		_, err := mgr.Logout(context.Background(), "  ")
		assert.ErrorIs(t, err, session.ErrMissingSessionID)
		store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown id mutates nothing", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()

		store.On("GetByID", ctx, "missing").Return(nil, session.ErrNotFound)

		_, err := mgr.Logout(ctx, "missing")
		assert.ErrorIs(t, err, session.ErrNotFound)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("terminal session is not ended twice", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()
		ended := storedSession(session.StatusEndedBySystem, time.Hour)

		store.On("GetByID", ctx, ended.ID).Return(ended, nil)

		_, err := mgr.Logout(ctx, ended.ID)
		assert.ErrorIs(t, err, session.ErrAlreadyTerminated)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestManagerHeartbeat(t *testing.T) {
	t.Parallel()

	t.Run("advances last accessed without touching status", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()
		active := storedSession(session.StatusActive, time.Minute)
		before := active.LastAccessed

		store.On("GetByID", ctx, active.ID).Return(active, nil)
		store.On("Save", ctx, mock.AnythingOfType("*session.Session")).Return(nil)

		sess, err := mgr.Heartbeat(ctx, active.ID)

		require.NoError(t, err)
		assert.True(t, sess.LastAccessed.After(before))
		assert.Equal(t, session.StatusActive, sess.Status)
		store.AssertExpectations(t)
	})

	t.Run("rejected on terminal session", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()
		ended := storedSession(session.StatusEndedByUser, time.Hour)

		store.On("GetByID", ctx, ended.ID).Return(ended, nil)

		_, err := mgr.Heartbeat(ctx, ended.ID)
		assert.ErrorIs(t, err, session.ErrAlreadyTerminated)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("requires session id", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())

		_, err := mgr.Heartbeat(context.Background(), "")
		assert.ErrorIs(t, err, session.ErrMissingSessionID)
	})
}

func TestManagerStatus(t *testing.T) {
	t.Parallel()

	t.Run("reports decomposed inactivity without mutating", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()
		active := storedSession(session.StatusActive, 3661*time.Second)

		store.On("GetByID", ctx, active.ID).Return(active, nil)

		sess, idle, err := mgr.Status(ctx, active.ID)

		require.NoError(t, err)
		assert.Equal(t, active.ID, sess.ID)
		assert.Equal(t, 1, idle.Hours)
		assert.Equal(t, 1, idle.Minutes)
		// The seconds component may tick over while the test runs.
		assert.InDelta(t, 1, idle.Seconds, 2)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()

		store.On("GetByID", ctx, "missing").Return(nil, session.ErrNotFound)

		_, _, err := mgr.Status(ctx, "missing")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestManagerListActive(t *testing.T) {
	t.Parallel()

	t.Run("returns active sessions", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()
		active := []session.Session{
			*storedSession(session.StatusActive, time.Second),
			*storedSession(session.StatusActive, time.Minute),
		}

		store.On("ListByStatus", ctx, session.StatusActive).Return(active, nil)

		got, err := mgr.ListActive(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty set is a distinct signal", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()

		store.On("ListByStatus", ctx, session.StatusActive).Return([]session.Session{}, nil)

		_, err := mgr.ListActive(ctx)
		assert.ErrorIs(t, err, session.ErrNoActiveSessions)
	})

	t.Run("store failure is not an empty set", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()

		store.On("ListByStatus", ctx, session.StatusActive).Return(nil, session.ErrStoreUnavailable)

		_, err := mgr.ListActive(ctx)
		assert.ErrorIs(t, err, session.ErrStoreUnavailable)
		assert.NotErrorIs(t, err, session.ErrNoActiveSessions)
	})
}

func TestManagerSweepExpired(t *testing.T) {
	t.Parallel()

	t.Run("passes threshold cutoff to the store", func(t *testing.T) {
		t.Parallel()

		threshold := 2 * time.Minute
		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver(),
			session.WithInactivityThreshold(threshold))
		ctx := context.Background()

		store.On("EndInactive", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
			expected := time.Now().UTC().Add(-threshold)
			return cutoff.Sub(expected).Abs() < time.Second
		}), session.StatusEndedBySystem).Return(int64(3), nil)

		count, err := mgr.SweepExpired(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		store.AssertExpectations(t)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, fixedResolver())
		ctx := context.Background()

		store.On("EndInactive", ctx, mock.Anything, session.StatusEndedBySystem).
			Return(int64(0), errors.New("primary stepped down"))

		_, err := mgr.SweepExpired(ctx)
		assert.Error(t, err)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	mgr := session.NewFromConfig(session.Config{InactivityThreshold: 5 * time.Minute},
		session.NewMemoryStore())
	assert.Equal(t, 5*time.Minute, mgr.InactivityThreshold())

	t.Run("zero threshold keeps default", func(t *testing.T) {
		t.Parallel()

		mgr := session.NewFromConfig(session.Config{}, session.NewMemoryStore())
		assert.Equal(t, session.DefaultInactivityThreshold, mgr.InactivityThreshold())
	})
}
