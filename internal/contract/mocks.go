package contract

import (
	"context"
	"time"

	"github.com/huangsam/rollcast/schema"
	"github.com/stretchr/testify/mock"
)

// MockPredictor is a mock implementation of Predictor for testing.
type MockPredictor struct {
	mock.Mock
}

var _ Predictor = &MockPredictor{} // Compile-time check

// Predict implements the Predictor interface.
func (m *MockPredictor) Predict(ctx context.Context, windows [][]float64) ([]float64, error) {
	args := m.Called(ctx, windows)
	preds, _ := args.Get(0).([]float64)
	return preds, args.Error(1)
}

// MockSeriesProvider is a mock implementation of SeriesProvider for testing.
type MockSeriesProvider struct {
	mock.Mock
}

var _ SeriesProvider = &MockSeriesProvider{} // Compile-time check

// Load implements the SeriesProvider interface.
func (m *MockSeriesProvider) Load(ctx context.Context, path string) (schema.Series, error) {
	args := m.Called(ctx, path)
	series, _ := args.Get(0).(schema.Series)
	return series, args.Error(1)
}

// MockRunManager is a mock implementation of RunManager for testing.
type MockRunManager struct {
	mock.Mock
}

var _ RunManager = &MockRunManager{} // Compile-time check

// GetRunStore implements the RunManager interface.
func (m *MockRunManager) GetRunStore() RunStore {
	args := m.Called()
	store, _ := args.Get(0).(RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, totalPoints int) error {
	args := m.Called(runID, endTime, totalPoints)
	return args.Error(0)
}

// RecordPoints implements the RunStore interface.
func (m *MockRunStore) RecordPoints(runID int64, result schema.ForecastResult) error {
	args := m.Called(runID, result)
	return args.Error(0)
}

// RecordScores implements the RunStore interface.
func (m *MockRunStore) RecordScores(runID int64, scores schema.ForecastScores) error {
	args := m.Called(runID, scores)
	return args.Error(0)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetAllPoints implements the RunStore interface.
func (m *MockRunStore) GetAllPoints() ([]schema.PointRecord, error) {
	args := m.Called()
	points, _ := args.Get(0).([]schema.PointRecord)
	return points, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStatus, error) {
	args := m.Called()
	status, _ := args.Get(0).(schema.RunStatus)
	return status, args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
