package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/broker"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/client"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/handler"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/partner"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/repository/redisstore"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryGradingRepo struct {
	mu      sync.Mutex
	records map[string]models.GradingRecord
}

func newMemoryGradingRepo() *memoryGradingRepo {
	return &memoryGradingRepo{records: map[string]models.GradingRecord{}}
}

func (r *memoryGradingRepo) Create(_ context.Context, record *models.GradingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.GradingID] = *record
	return nil
}

func (r *memoryGradingRepo) GetBy(_ context.Context, _ string, value interface{}) (*[]models.GradingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.GradingRecord
	for _, record := range r.records {
		if record.UserID == value {
			out = append(out, record)
		}
	}
	return &out, nil
}

func (r *memoryGradingRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return 0, nil
	}
	for column, value := range fields {
		switch column {
		case "status":
			record.Status = value.(models.GradingStatus)
		case "result":
			record.Result = value.(string)
		case "delivery_id":
			record.DeliveryID = value.(string)
		}
	}
	r.records[id] = record
	return 1, nil
}

func (r *memoryGradingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func (r *memoryGradingRepo) only() (models.GradingRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		return record, len(r.records) == 1
	}
	return models.GradingRecord{}, false
}

// inlineEnqueuer fires partner callbacks immediately instead of going through Redis.
type inlineEnqueuer struct {
	mux *asynq.ServeMux
}

func (e inlineEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if err := e.mux.ProcessTask(ctx, task); err != nil {
		return nil, err
	}
	return &asynq.TaskInfo{ID: "inline", Type: task.Type()}, nil
}

type notificationSink struct {
	mu       sync.Mutex
	services []string
}

func (s *notificationSink) handler(w http.ResponseWriter, r *http.Request) {
	var envelope models.NotificationEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err == nil {
		s.mu.Lock()
		s.services = append(s.services, envelope.Service)
		s.mu.Unlock()
	}
	w.WriteHeader(http.StatusOK)
}

func (s *notificationSink) received() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.services...)
}

// failingPublisher fails the first publish on failKey and forwards everything else.
type failingPublisher struct {
	*broker.MemoryBroker
	failKey string

	mu     sync.Mutex
	failed bool
}

func (p *failingPublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	p.mu.Lock()
	fail := routingKey == p.failKey && !p.failed
	if fail {
		p.failed = true
	}
	p.mu.Unlock()
	if fail {
		return errors.New("connection reset by peer")
	}
	return p.MemoryBroker.Publish(ctx, routingKey, message)
}

func testConfig(carrierURL, notifierURL string) *config.Config {
	cfg := &config.Config{}
	cfg.APP.PORT = "0"
	cfg.Broker.RetryMaxAttempts = 2
	cfg.Broker.RetryBaseDelay = time.Millisecond
	cfg.Broker.RetryMaxDelay = 5 * time.Millisecond
	cfg.Broker.DeadLetter = true
	cfg.Collaborators = config.Collaborators{
		CarrierURL:      carrierURL,
		CarrierAPIKey:   "key",
		ToAddressLine1:  "90 Stamford Rd",
		ToAddressLine2:  "#03-01",
		ToZipCode:       "178903",
		NotificationURL: notifierURL,
		HTTPTimeout:     2 * time.Second,
	}
	cfg.Partner.AsynqQueue = "partner"
	return cfg
}

func startApp(t *testing.T, a *App) {
	t.Helper()
	// Declared up front so nothing published before the consumers start is lost.
	for _, sub := range a.subscriptions {
		require.NoError(t, a.Broker.Declare(context.Background(), sub.consumer.Binding))
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("app did not stop")
		}
	})
}

func submitGrading(t *testing.T, a *App, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/gradings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func TestGradingSaga_EndToEnd(t *testing.T) {
	var carrierCalls int
	var carrierMu sync.Mutex
	carrier := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		carrierMu.Lock()
		carrierCalls++
		carrierMu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"order":{"id":42}}`))
	}))
	defer carrier.Close()
	sink := &notificationSink{}
	notifier := httptest.NewServer(http.HandlerFunc(sink.handler))
	defer notifier.Close()

	cfg := testConfig(carrier.URL, notifier.URL)
	memory := broker.NewMemoryBroker()
	a := New("grading-saga", cfg)
	a.use(memory)

	repo := newMemoryGradingRepo()
	rdb := redis.NewClient(&redis.Options{Addr: miniredis.RunT(t).Addr()})
	scheduler := partner.NewScheduler(inlineEnqueuer{mux: partner.NewServeMux(memory)}, cfg.Partner)

	a.mountGrading(repo)
	a.mountDelivery(client.NewCarrierClient(cfg.Collaborators))
	a.mountExternalGrading(redisstore.NewGradingStore(rdb), scheduler)
	a.mountNotification(client.NewNotifierClient(cfg.Collaborators))
	startApp(t, a)

	w := submitGrading(t, a, `{"userID":"U1","cardID":"C1","cardName":"Charizard","address":"1 Main St #02-03","postalCode":"123456"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		record, ok := repo.only()
		return ok && record.Status == models.GradingStatusGraded
	}, 5*time.Second, 10*time.Millisecond)

	record, _ := repo.only()
	assert.NotEmpty(t, record.GradingID)
	assert.Equal(t, "42", record.DeliveryID)
	assert.Regexp(t, `^PSA ([1-9]|10)$`, record.Result)

	carrierMu.Lock()
	assert.Equal(t, 1, carrierCalls)
	carrierMu.Unlock()

	require.Eventually(t, func() bool { return len(sink.received()) == 4 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{
		models.GradingServiceName,
		models.DeliveryServiceName,
		models.GradingServiceName,
		models.GradingServiceName,
	}, sink.received())
}

func TestGradingSaga_CarrierFailureIsDeadLettered(t *testing.T) {
	carrier := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer carrier.Close()

	cfg := testConfig(carrier.URL, "http://127.0.0.1:0")
	memory := broker.NewMemoryBroker()
	a := New("grading-saga", cfg)
	a.use(memory)

	repo := newMemoryGradingRepo()
	a.mountGrading(repo)
	a.mountDelivery(client.NewCarrierClient(cfg.Collaborators))
	startApp(t, a)

	w := submitGrading(t, a, `{"userID":"U1","cardID":"C1","address":"1 Main St","postalCode":"123456"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		return len(memory.PublishedTo(models.DeadLetterKey(models.CreateDeliveryKey))) == 1
	}, 5*time.Second, 10*time.Millisecond)

	var deadLetter models.DeadLetter
	require.NoError(t, json.Unmarshal(memory.PublishedTo("create.deadletter")[0], &deadLetter))
	assert.Equal(t, models.CreateDeliveryKey, deadLetter.OriginalRoutingKey)
	assert.Equal(t, models.DeliveryQueue, deadLetter.Queue)

	record, ok := repo.only()
	require.True(t, ok)
	assert.Equal(t, models.GradingStatusCreated, record.Status)
	assert.Empty(t, memory.PublishedTo(models.DeliveryUpdateKey))
}

func TestHealthz(t *testing.T) {
	memory := broker.NewMemoryBroker()
	a := New("test", testConfig("", ""))
	a.use(memory)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	require.NoError(t, memory.Connect(context.Background()))
	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	a := New("test", testConfig("", ""))
	a.use(broker.NewMemoryBroker())

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestCreateGrading_FailedDeliveryPublishCreatesOneRecord(t *testing.T) {
	memory := broker.NewMemoryBroker()
	publisher := &failingPublisher{MemoryBroker: memory, failKey: models.CreateDeliveryKey}
	repo := newMemoryGradingRepo()
	dispatch := handler.Grading(service.NewGradingService(repo, publisher)).Routes().Dispatch

	consumer := broker.NewConsumer(memory, models.GradingBinding, config.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}, true)
	body := []byte(`{"userID":"U1","cardID":"C1","address":"1 Main St","postalCode":"123456"}`)

	consumer.ProcessMessage(context.Background(), models.CreateGradingKey, body, dispatch)

	assert.Equal(t, 1, repo.count())
	record, ok := repo.only()
	require.True(t, ok)
	assert.Equal(t, models.GradingStatusCreated, record.Status)
	assert.Empty(t, memory.PublishedTo(models.CreateDeliveryKey))
	assert.Empty(t, memory.PublishedTo(models.DeadLetterKey(models.CreateGradingKey)))
}

func seededGradingDispatch(t *testing.T) (*memoryGradingRepo, func(routingKey string, message interface{})) {
	t.Helper()
	repo := newMemoryGradingRepo()
	require.NoError(t, repo.Create(context.Background(), &models.GradingRecord{
		GradingID:  "G1",
		UserID:     "U1",
		CardID:     "C1",
		Status:     models.GradingStatusPendingGrading,
		DeliveryID: "42",
	}))
	dispatch := handler.Grading(service.NewGradingService(repo, broker.NewMemoryBroker())).Routes().Dispatch

	return repo, func(routingKey string, message interface{}) {
		body, err := json.Marshal(message)
		require.NoError(t, err)
		require.NoError(t, dispatch(context.Background(), routingKey, body))
	}
}

func TestResultUpdate_ReplayLeavesRecordUnchanged(t *testing.T) {
	repo, dispatch := seededGradingDispatch(t)
	update := models.GradingRecord{GradingID: "G1", Status: models.GradingStatusGraded, Result: "PSA 9"}

	dispatch(models.ResultUpdateKey, update)
	first, ok := repo.only()
	require.True(t, ok)

	dispatch(models.ResultUpdateKey, update)
	second, ok := repo.only()
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, models.GradingStatusGraded, second.Status)
	assert.Equal(t, "PSA 9", second.Result)
	assert.Equal(t, "42", second.DeliveryID)
}

func TestResultUpdate_BeforeStatusUpdateKeepsBothFields(t *testing.T) {
	repo, dispatch := seededGradingDispatch(t)

	dispatch(models.ResultUpdateKey, models.GradingRecord{GradingID: "G1", Status: models.GradingStatusGraded, Result: "PSA 9"})
	dispatch(models.StatusUpdateKey, models.GradingRecord{GradingID: "G1", Status: models.GradingStatusInProgress})

	record, ok := repo.only()
	require.True(t, ok)
	assert.Equal(t, models.GradingStatusInProgress, record.Status)
	assert.Equal(t, "PSA 9", record.Result)
	assert.Equal(t, "42", record.DeliveryID)
}
