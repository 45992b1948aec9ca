package services_test

import (
	"context"
	"testing"

	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/core/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockBackupRepository is a mock type for the BackupRepository interface
type MockBackupRepository struct {
	mock.Mock
}

func (m *MockBackupRepository) ExportTable(ctx context.Context, table string) ([]map[string]any, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockBackupRepository) ImportTables(ctx context.Context, tables map[string][]map[string]any) error {
	args := m.Called(ctx, tables)
	return args.Error(0)
}

type BackupServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBackupRepository
	service  portssvc.BackupSvcFacade
}

func (suite *BackupServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBackupRepository)
	suite.service = services.NewBackupService(suite.mockRepo)
}

func (suite *BackupServiceTestSuite) TestExport_ReadsEveryTable() {
	ctx := context.Background()

	for _, table := range portsrepo.BackupTables {
		rows := []map[string]any{}
		if table == "vehicles" {
			rows = []map[string]any{{"vehicle_id": "v1", "plate": "ABC1D23"}}
		}
		suite.mockRepo.On("ExportTable", ctx, table).Return(rows, nil).Once()
	}

	doc, err := suite.service.Export(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(doc.Vehicles, 1)
	suite.Equal("ABC1D23", doc.Vehicles[0]["plate"])
	suite.Empty(doc.Transactions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BackupServiceTestSuite) TestImport_NormalizesRowsAndSummarizes() {
	ctx := context.Background()
	doc := &dto.BackupDocument{
		Vehicles: []map[string]any{
			{"vehicle_id": "v1", "plate": "ABC1D23", "created_at": "2024-01-01T00:00:00Z", "created_by": "someone-else"},
		},
		Transactions: []map[string]any{
			{"transaction_id": "tx1", "amount": "100.00", "created_by": "someone-else"},
			{"transaction_id": "tx2", "amount": "50.00"},
		},
	}

	var captured map[string][]map[string]any
	suite.mockRepo.On("ImportTables", ctx, mock.AnythingOfType("map[string][]map[string]interface {}")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(map[string][]map[string]any)
		}).Return(nil).Once()

	summary, err := suite.service.Import(ctx, doc, "importing-user")

	suite.Require().NoError(err)
	suite.Equal(3, summary.TotalRows)
	suite.Equal(1, summary.RowsByTable["vehicles"])
	suite.Equal(2, summary.RowsByTable["transactions"])

	// Empty tables are skipped entirely.
	suite.NotContains(summary.RowsByTable, "drivers")
	suite.NotContains(captured, "drivers")

	vehicle := captured["vehicles"][0]
	suite.NotContains(vehicle, "created_at")
	suite.Equal("importing-user", vehicle["created_by"])
	suite.Equal("ABC1D23", vehicle["plate"])
	for _, row := range captured["transactions"] {
		suite.Equal("importing-user", row["created_by"])
	}
}

func (suite *BackupServiceTestSuite) TestImport_EmptyDocument() {
	ctx := context.Background()

	suite.mockRepo.On("ImportTables", ctx, mock.AnythingOfType("map[string][]map[string]interface {}")).Return(nil).Once()

	summary, err := suite.service.Import(ctx, &dto.BackupDocument{}, "importing-user")

	suite.Require().NoError(err)
	suite.Zero(summary.TotalRows)
	suite.Empty(summary.RowsByTable)
}

func TestBackupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BackupServiceTestSuite))
}
