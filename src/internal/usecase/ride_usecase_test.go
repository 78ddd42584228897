package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"ride-service/src/internal/entity"
	"ride-service/src/internal/model"
	"ride-service/src/internal/pricing"
	"ride-service/src/internal/repository"
	httpError "ride-service/src/pkg/http-error"
	"ride-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() log.Log {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return log.Log{
		AppName:  "ride-service-test",
		LogLevel: 2,
		Logger:   l,
	}
}

type paymentRecord struct {
	rideID uint64
	amount float64
	status string
}

// fakeRideStore mimics the transactional lifecycle guards in memory.
type fakeRideStore struct {
	mu          sync.Mutex
	nextID      uint64
	rides       map[uint64]*entity.Ride
	riderByRide map[uint64]uint64
	assignments map[uint64]entity.RideAssignment
	pairings    map[[2]uint64]bool
	payments    []paymentRecord
	failWith    error
}

func newFakeRideStore() *fakeRideStore {
	return &fakeRideStore{
		rides:       map[uint64]*entity.Ride{},
		riderByRide: map[uint64]uint64{},
		assignments: map[uint64]entity.RideAssignment{},
		pairings:    map[[2]uint64]bool{},
	}
}

func (s *fakeRideStore) CreateWithRider(ctx context.Context, riderID uint64, pickup, dropoff string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}
	s.nextID++
	s.rides[s.nextID] = &entity.Ride{
		RideID:          s.nextID,
		PickupLocation:  pickup,
		DropoffLocation: dropoff,
	}
	s.riderByRide[s.nextID] = riderID
	return s.nextID, nil
}

func (s *fakeRideStore) Accept(ctx context.Context, rideID, driverID, vehicleID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	ride, ok := s.rides[rideID]
	if !ok {
		return repository.ErrRideNotFound
	}
	if !s.pairings[[2]uint64{driverID, vehicleID}] {
		return repository.ErrInvalidAssignment
	}
	if ride.StartTime != nil {
		return repository.ErrRideAlreadyAccepted
	}
	now := time.Now()
	ride.StartTime = &now
	s.assignments[rideID] = entity.RideAssignment{
		RideID:    rideID,
		DriverID:  driverID,
		VehicleID: vehicleID,
	}
	return nil
}

func (s *fakeRideStore) Complete(ctx context.Context, rideID uint64, amount float64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	ride, ok := s.rides[rideID]
	if !ok {
		return repository.ErrRideNotFound
	}
	if ride.StartTime == nil || ride.EndTime != nil {
		return repository.ErrRideNotInProgress
	}
	now := time.Now()
	ride.EndTime = &now
	s.payments = append(s.payments, paymentRecord{rideID: rideID, amount: amount, status: status})
	return nil
}

type fakeDetailStore struct {
	detail *entity.RideDetail
	err    error
	calls  int
}

func (s *fakeDetailStore) Detail(ctx context.Context, rideID uint64) (*entity.RideDetail, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[uint64]*model.RideDetailResponse
	invalidated []uint64
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[uint64]*model.RideDetailResponse{}}
}

func (c *fakeCache) GetDetail(ctx context.Context, rideID uint64) (*model.RideDetailResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	detail, ok := c.entries[rideID]
	return detail, ok
}

func (c *fakeCache) SetDetail(ctx context.Context, rideID uint64, detail *model.RideDetailResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[rideID] = detail
}

func (c *fakeCache) Invalidate(ctx context.Context, rideID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, rideID)
	c.invalidated = append(c.invalidated, rideID)
}

type fakePublisher struct {
	mu        sync.Mutex
	requested []*model.RideEvent
	accepted  []*model.RideEvent
	completed []*model.RideEvent
}

func (p *fakePublisher) SendRideRequested(event *model.RideEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requested = append(p.requested, event)
	return nil
}

func (p *fakePublisher) SendRideAccepted(event *model.RideEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accepted = append(p.accepted, event)
	return nil
}

func (p *fakePublisher) SendRideCompleted(event *model.RideEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed = append(p.completed, event)
	return nil
}

type stubGenerator struct {
	outcome pricing.Outcome
}

func (g *stubGenerator) Generate() pricing.Outcome {
	return g.outcome
}

type fixture struct {
	useCase   *RideUseCase
	store     *fakeRideStore
	details   *fakeDetailStore
	cache     *fakeCache
	publisher *fakePublisher
}

func newFixture() *fixture {
	store := newFakeRideStore()
	details := &fakeDetailStore{}
	rideCache := newFakeCache()
	publisher := &fakePublisher{}

	useCase := NewRideUseCase(
		newTestLogger(),
		validator.New(),
		store,
		details,
		nil,
		rideCache,
		publisher,
		&stubGenerator{outcome: pricing.Outcome{Amount: 42.50, Status: pricing.StatusSuccess}},
	)

	return &fixture{
		useCase:   useCase,
		store:     store,
		details:   details,
		cache:     rideCache,
		publisher: publisher,
	}
}

func requireErrorCode(t *testing.T, err error, code int) {
	t.Helper()
	var commonErr *httpError.CommonError
	require.ErrorAs(t, err, &commonErr)
	assert.Equal(t, code, commonErr.Code)
}

func TestRequestRide(t *testing.T) {
	f := newFixture()

	result := f.useCase.RequestRide(context.Background(), &model.RequestRideRequest{
		RiderID:         7,
		PickupLocation:  "A St",
		DropoffLocation: "B Ave",
	})

	require.NoError(t, result.Error)
	response, ok := result.Data.(model.RequestRideResponse)
	require.True(t, ok)
	assert.Equal(t, uint64(1), response.RideID)

	ride := f.store.rides[response.RideID]
	require.NotNil(t, ride)
	assert.Equal(t, "A St", ride.PickupLocation)
	assert.Equal(t, "B Ave", ride.DropoffLocation)
	assert.Nil(t, ride.StartTime)
	assert.Nil(t, ride.EndTime)
	assert.Equal(t, uint64(7), f.store.riderByRide[response.RideID])

	require.Len(t, f.publisher.requested, 1)
	assert.Equal(t, response.RideID, f.publisher.requested[0].RideID)
	assert.NotEmpty(t, f.publisher.requested[0].EventID)
}

func TestRequestRideValidation(t *testing.T) {
	f := newFixture()

	result := f.useCase.RequestRide(context.Background(), &model.RequestRideRequest{
		RiderID:        7,
		PickupLocation: "A St",
	})

	requireErrorCode(t, result.Error, 400)
	assert.Empty(t, f.store.rides)
}

func TestRequestRideStorageFailure(t *testing.T) {
	f := newFixture()
	f.store.failWith = errors.New("connection reset")

	result := f.useCase.RequestRide(context.Background(), &model.RequestRideRequest{
		RiderID:         7,
		PickupLocation:  "A St",
		DropoffLocation: "B Ave",
	})

	requireErrorCode(t, result.Error, 500)
	assert.Empty(t, f.publisher.requested)
}

func TestAcceptRideNotFound(t *testing.T) {
	f := newFixture()

	result := f.useCase.AcceptRide(context.Background(), &model.AcceptRideRequest{
		RideID:    99,
		DriverID:  3,
		VehicleID: 9,
	})

	requireErrorCode(t, result.Error, 404)
	assert.Empty(t, f.store.assignments)
}

func TestAcceptRideInvalidAssignment(t *testing.T) {
	f := newFixture()
	f.useCase.RequestRide(context.Background(), &model.RequestRideRequest{
		RiderID:         7,
		PickupLocation:  "A St",
		DropoffLocation: "B Ave",
	})

	result := f.useCase.AcceptRide(context.Background(), &model.AcceptRideRequest{
		RideID:    1,
		DriverID:  3,
		VehicleID: 9,
	})

	requireErrorCode(t, result.Error, 400)
	assert.Nil(t, f.store.rides[1].StartTime)
}

func TestAcceptRide(t *testing.T) {
	f := newFixture()
	f.store.pairings[[2]uint64{3, 9}] = true
	f.useCase.RequestRide(context.Background(), &model.RequestRideRequest{
		RiderID:         7,
		PickupLocation:  "A St",
		DropoffLocation: "B Ave",
	})

	result := f.useCase.AcceptRide(context.Background(), &model.AcceptRideRequest{
		RideID:    1,
		DriverID:  3,
		VehicleID: 9,
	})

	require.NoError(t, result.Error)
	require.NotNil(t, f.store.rides[1].StartTime)
	assert.Equal(t, entity.RideAssignment{RideID: 1, DriverID: 3, VehicleID: 9}, f.store.assignments[1])
	assert.Contains(t, f.cache.invalidated, uint64(1))
	require.Len(t, f.publisher.accepted, 1)
}

func TestAcceptRideTwice(t *testing.T) {
	f := newFixture()
	f.store.pairings[[2]uint64{3, 9}] = true
	f.store.pairings[[2]uint64{4, 10}] = true
	f.useCase.RequestRide(context.Background(), &model.RequestRideRequest{
		RiderID:         7,
		PickupLocation:  "A St",
		DropoffLocation: "B Ave",
	})

	first := f.useCase.AcceptRide(context.Background(), &model.AcceptRideRequest{RideID: 1, DriverID: 3, VehicleID: 9})
	second := f.useCase.AcceptRide(context.Background(), &model.AcceptRideRequest{RideID: 1, DriverID: 4, VehicleID: 10})

	require.NoError(t, first.Error)
	requireErrorCode(t, second.Error, 409)
	// The winner's assignment stays.
	assert.Equal(t, uint64(3), f.store.assignments[1].DriverID)
}

func TestAcceptRideConcurrent(t *testing.T) {
	f := newFixture()
	f.store.pairings[[2]uint64{3, 9}] = true
	f.store.pairings[[2]uint64{4, 10}] = true
	f.useCase.RequestRide(context.Background(), &model.RequestRideRequest{
		RiderID:         7,
		PickupLocation:  "A St",
		DropoffLocation: "B Ave",
	})

	requests := []*model.AcceptRideRequest{
		{RideID: 1, DriverID: 3, VehicleID: 9},
		{RideID: 1, DriverID: 4, VehicleID: 10},
	}

	results := make([]error, len(requests))
	var wg sync.WaitGroup
	for i, request := range requests {
		wg.Add(1)
		go func(i int, request *model.AcceptRideRequest) {
			defer wg.Done()
			results[i] = f.useCase.AcceptRide(context.Background(), request).Error
		}(i, request)
	}
	wg.Wait()

	var won, lost int
	for _, err := range results {
		if err == nil {
			won++
		} else {
			requireErrorCode(t, err, 409)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)
}

func TestCompleteRideBeforeAccept(t *testing.T) {
	f := newFixture()
	f.useCase.RequestRide(context.Background(), &model.RequestRideRequest{
		RiderID:         7,
		PickupLocation:  "A St",
		DropoffLocation: "B Ave",
	})

	result := f.useCase.CompleteRide(context.Background(), &model.CompleteRideRequest{RideID: 1})

	requireErrorCode(t, result.Error, 409)
	assert.Empty(t, f.store.payments)
}

func TestCompleteRide(t *testing.T) {
	f := newFixture()
	f.store.pairings[[2]uint64{3, 9}] = true
	f.useCase.RequestRide(context.Background(), &model.RequestRideRequest{
		RiderID:         7,
		PickupLocation:  "A St",
		DropoffLocation: "B Ave",
	})
	f.useCase.AcceptRide(context.Background(), &model.AcceptRideRequest{RideID: 1, DriverID: 3, VehicleID: 9})

	result := f.useCase.CompleteRide(context.Background(), &model.CompleteRideRequest{RideID: 1})

	require.NoError(t, result.Error)
	response, ok := result.Data.(model.CompleteRideResponse)
	require.True(t, ok)
	assert.Equal(t, pricing.StatusSuccess, response.PaymentStatus)

	require.Len(t, f.store.payments, 1)
	assert.Equal(t, 42.50, f.store.payments[0].amount)
	assert.Equal(t, pricing.StatusSuccess, f.store.payments[0].status)

	ride := f.store.rides[1]
	require.NotNil(t, ride.StartTime)
	require.NotNil(t, ride.EndTime)
	assert.False(t, ride.EndTime.Before(*ride.StartTime))

	require.Len(t, f.publisher.completed, 1)
	assert.Equal(t, pricing.StatusSuccess, f.publisher.completed[0].PaymentStatus)
}

func TestCompleteRideTwice(t *testing.T) {
	f := newFixture()
	f.store.pairings[[2]uint64{3, 9}] = true
	f.useCase.RequestRide(context.Background(), &model.RequestRideRequest{
		RiderID:         7,
		PickupLocation:  "A St",
		DropoffLocation: "B Ave",
	})
	f.useCase.AcceptRide(context.Background(), &model.AcceptRideRequest{RideID: 1, DriverID: 3, VehicleID: 9})

	first := f.useCase.CompleteRide(context.Background(), &model.CompleteRideRequest{RideID: 1})
	second := f.useCase.CompleteRide(context.Background(), &model.CompleteRideRequest{RideID: 1})

	require.NoError(t, first.Error)
	requireErrorCode(t, second.Error, 409)
	assert.Len(t, f.store.payments, 1)
}

func TestGetRideDetailNotFound(t *testing.T) {
	f := newFixture()
	f.details.err = repository.ErrRideNotFound

	result := f.useCase.GetRideDetail(context.Background(), &model.GetRideDetailRequest{RideID: 42})

	requireErrorCode(t, result.Error, 404)
}

func TestGetRideDetailOptionalFieldsStayNil(t *testing.T) {
	f := newFixture()
	f.details.detail = &entity.RideDetail{
		RiderID:         7,
		RiderName:       "Rita",
		RideID:          42,
		PickupLocation:  "A St",
		DropoffLocation: "B Ave",
	}

	result := f.useCase.GetRideDetail(context.Background(), &model.GetRideDetailRequest{RideID: 42})

	require.NoError(t, result.Error)
	response, ok := result.Data.(*model.RideDetailResponse)
	require.True(t, ok)
	assert.Nil(t, response.DriverName)
	assert.Nil(t, response.PaymentAmount)
	assert.Nil(t, response.PaymentStatus)
	assert.Nil(t, response.RiderRating)
	assert.Equal(t, "A St", response.PickupLocation)
}

func TestGetRideDetailUsesCache(t *testing.T) {
	f := newFixture()
	f.details.detail = &entity.RideDetail{
		RiderID:   7,
		RiderName: "Rita",
		RideID:    42,
	}

	first := f.useCase.GetRideDetail(context.Background(), &model.GetRideDetailRequest{RideID: 42})
	second := f.useCase.GetRideDetail(context.Background(), &model.GetRideDetailRequest{RideID: 42})

	require.NoError(t, first.Error)
	require.NoError(t, second.Error)
	assert.Equal(t, 1, f.details.calls)
}
