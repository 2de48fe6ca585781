package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCampaignStore is a mock implementation of CampaignStore
type mockCampaignStore struct {
	mu          sync.Mutex
	campaigns   []models.Campaign
	fetchErr    error
	markSentErr error
	markedSent  []int
	fetchCalls  int
}

func (m *mockCampaignStore) FetchDue(ctx context.Context, now time.Time) ([]models.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.campaigns, nil
}

func (m *mockCampaignStore) MarkSent(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.markSentErr != nil {
		return m.markSentErr
	}
	m.markedSent = append(m.markedSent, id)
	return nil
}

// mockTemplateStore is a mock implementation of TemplateStore
type mockTemplateStore struct {
	templates map[int]*models.EmailTemplate
}

func (m *mockTemplateStore) GetByID(ctx context.Context, id int) (*models.EmailTemplate, error) {
	tmpl, ok := m.templates[id]
	if !ok {
		return nil, repositories.ErrTemplateNotFound
	}
	return tmpl, nil
}

// mockClientStore is a mock implementation of ClientStore
type mockClientStore struct {
	clients []models.Client
	err     error
}

func (m *mockClientStore) ListAll(ctx context.Context) ([]models.Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.clients, nil
}

// mockDispatcher records dispatched template IDs and can block to
// simulate a slow pass
type mockDispatcher struct {
	mu         sync.Mutex
	dispatched []int
	report     *models.DispatchReport
	block      chan struct{}
}

func (m *mockDispatcher) Dispatch(ctx context.Context, tmpl *models.EmailTemplate, clients []models.Client) *models.DispatchReport {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatched = append(m.dispatched, tmpl.ID)
	if m.report != nil {
		return m.report
	}
	return &models.DispatchReport{Attempted: len(clients), Succeeded: len(clients)}
}

func pendingCampaign(id, templateID int) models.Campaign {
	return models.Campaign{
		ID:          id,
		TemplateID:  templateID,
		UserID:      100,
		ScheduledAt: time.Now().Add(-time.Minute),
		Status:      models.CampaignStatusPending,
	}
}

func newTestScheduler(campaigns *mockCampaignStore, templates *mockTemplateStore, clients *mockClientStore, dispatcher *mockDispatcher) *Scheduler {
	return NewScheduler(campaigns, templates, clients, dispatcher, "* * * * *", zap.NewNop())
}

func TestScheduler_RunTick(t *testing.T) {
	tmpl := &models.EmailTemplate{ID: 1, Title: "News", BodyHTML: "Hi {name}"}
	clientList := []models.Client{
		{ID: 1, Name: "Ana", Email: "ana@example.com"},
	}

	t.Run("dispatches due campaigns in order and marks them sent", func(t *testing.T) {
		campaigns := &mockCampaignStore{
			campaigns: []models.Campaign{
				pendingCampaign(3, 1),
				pendingCampaign(5, 1),
			},
		}
		dispatcher := &mockDispatcher{}
		s := newTestScheduler(campaigns, &mockTemplateStore{templates: map[int]*models.EmailTemplate{1: tmpl}}, &mockClientStore{clients: clientList}, dispatcher)

		s.RunTick(context.Background())

		assert.Equal(t, []int{1, 1}, dispatcher.dispatched)
		assert.Equal(t, []int{3, 5}, campaigns.markedSent)
	})

	t.Run("marks sent even when some sends fail", func(t *testing.T) {
		campaigns := &mockCampaignStore{
			campaigns: []models.Campaign{pendingCampaign(1, 1)},
		}
		dispatcher := &mockDispatcher{
			report: &models.DispatchReport{
				Attempted: 3,
				Succeeded: 1,
				Failed:    2,
				Failures: []models.SendFailure{
					{ClientID: 2, Email: "bruno@example.com", Error: "timeout"},
					{ClientID: 3, Email: "carla@example.com", Error: "timeout"},
				},
			},
		}
		s := newTestScheduler(campaigns, &mockTemplateStore{templates: map[int]*models.EmailTemplate{1: tmpl}}, &mockClientStore{clients: clientList}, dispatcher)

		s.RunTick(context.Background())

		assert.Equal(t, []int{1}, campaigns.markedSent)
	})

	t.Run("missing template leaves campaign pending and continues", func(t *testing.T) {
		campaigns := &mockCampaignStore{
			campaigns: []models.Campaign{
				pendingCampaign(1, 99), // template deleted
				pendingCampaign(2, 1),
			},
		}
		dispatcher := &mockDispatcher{}
		s := newTestScheduler(campaigns, &mockTemplateStore{templates: map[int]*models.EmailTemplate{1: tmpl}}, &mockClientStore{clients: clientList}, dispatcher)

		s.RunTick(context.Background())

		assert.Equal(t, []int{1}, dispatcher.dispatched)
		assert.Equal(t, []int{2}, campaigns.markedSent)
	})

	t.Run("fetch error aborts the tick", func(t *testing.T) {
		campaigns := &mockCampaignStore{fetchErr: errors.New("database error")}
		dispatcher := &mockDispatcher{}
		s := newTestScheduler(campaigns, &mockTemplateStore{}, &mockClientStore{}, dispatcher)

		s.RunTick(context.Background())

		assert.Empty(t, dispatcher.dispatched)
		assert.Empty(t, campaigns.markedSent)
	})

	t.Run("client listing error leaves campaign pending", func(t *testing.T) {
		campaigns := &mockCampaignStore{
			campaigns: []models.Campaign{pendingCampaign(1, 1)},
		}
		dispatcher := &mockDispatcher{}
		s := newTestScheduler(campaigns, &mockTemplateStore{templates: map[int]*models.EmailTemplate{1: tmpl}}, &mockClientStore{err: errors.New("database error")}, dispatcher)

		s.RunTick(context.Background())

		assert.Empty(t, dispatcher.dispatched)
		assert.Empty(t, campaigns.markedSent)
	})

	t.Run("overlapping tick is skipped", func(t *testing.T) {
		campaigns := &mockCampaignStore{
			campaigns: []models.Campaign{pendingCampaign(1, 1)},
		}
		block := make(chan struct{})
		dispatcher := &mockDispatcher{block: block}
		s := newTestScheduler(campaigns, &mockTemplateStore{templates: map[int]*models.EmailTemplate{1: tmpl}}, &mockClientStore{clients: clientList}, dispatcher)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RunTick(context.Background())
		}()

		// Wait for the first tick to be inside Dispatch
		require.Eventually(t, func() bool {
			campaigns.mu.Lock()
			defer campaigns.mu.Unlock()
			return campaigns.fetchCalls == 1
		}, time.Second, 5*time.Millisecond)

		// Second tick must bail out instead of dispatching again
		s.RunTick(context.Background())

		campaigns.mu.Lock()
		assert.Equal(t, 1, campaigns.fetchCalls)
		campaigns.mu.Unlock()

		close(block)
		wg.Wait()

		assert.Equal(t, []int{1}, dispatcher.dispatched)
		assert.Equal(t, []int{1}, campaigns.markedSent)
	})
}
