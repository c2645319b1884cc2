package employee_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"staff-admin/core/database"
	"staff-admin/core/storage"
	"staff-admin/core/storage/mocks"
	"staff-admin/feature/employee"
	"staff-admin/feature/employee/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const importCSV = `First Name,Last Name,Email
Jo,Smith,jo@corp.test
New,Person,new@corp.test
`

func newTestService(t *testing.T, client storage.Client, archive bool, sheetURL string) *employee.Service {
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	assert.NoError(t, err)

	repo := employee.NewRepository(db)
	assert.NoError(t, repo.Migrate())

	return employee.NewService(repo, employee.NewStore(), client, "staff-admin", archive, "roster-archive", sheetURL, zap.NewNop())
}

func seedService(t *testing.T, svc *employee.Service) {
	err := svc.ReplaceAll(context.Background(), []models.Employee{
		{EmployeeID: "JS1001", FirstName: "Jo", LastName: "Smith", Email: "jo@corp.test", Terminated: "No"},
		{EmployeeID: "AL1002", FirstName: "Ann", LastName: "Lee", Email: "ann@corp.test", Terminated: "No"},
	})
	assert.NoError(t, err)
}

func activeCount(records []models.Employee) (active, terminated int) {
	for _, e := range records {
		if e.IsTerminated() {
			terminated++
		} else {
			active++
		}
	}
	return active, terminated
}

func TestImportCSVDryRun(t *testing.T) {
	svc := newTestService(t, nil, false, "")
	seedService(t, svc)

	result, err := svc.ImportCSV(context.Background(), "roster.csv", []byte(importCSV), true)
	assert.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.False(t, result.Persisted)
	assert.Equal(t, 1, result.Summary.Added)
	assert.Equal(t, 1, result.Summary.Terminated)
	assert.Equal(t, 1, result.Summary.Unchanged)

	// Dry run leaves the roster untouched.
	assert.Len(t, svc.All(), 2)
	active, terminated := activeCount(svc.All())
	assert.Equal(t, 2, active)
	assert.Zero(t, terminated)
}

func TestImportCSVApplyAndUndo(t *testing.T) {
	svc := newTestService(t, nil, false, "")
	seedService(t, svc)
	ctx := context.Background()

	result, err := svc.ImportCSV(ctx, "roster.csv", []byte(importCSV), false)
	assert.NoError(t, err)
	assert.True(t, result.Persisted)
	assert.NoError(t, result.PersistErr)

	// Jo stays, New Person is added, Ann is terminated.
	assert.Len(t, svc.All(), 3)
	active, terminated := activeCount(svc.All())
	assert.Equal(t, 2, active)
	assert.Equal(t, 1, terminated)

	// The applied roster survives a reload from the database.
	assert.NoError(t, svc.Load(ctx))
	assert.Len(t, svc.All(), 3)

	// Undo restores the pre-import roster and persists it.
	undoResult, err := svc.Undo(ctx)
	assert.NoError(t, err)
	assert.True(t, undoResult.Persisted)
	assert.Len(t, svc.All(), 2)

	assert.NoError(t, svc.Load(ctx))
	assert.Len(t, svc.All(), 2)

	// Only one undo level.
	_, err = svc.Undo(ctx)
	assert.Error(t, err)
}

func TestImportCSVRejectsExcel(t *testing.T) {
	svc := newTestService(t, nil, false, "")

	_, err := svc.ImportCSV(context.Background(), "roster.xlsx", []byte(importCSV), false)
	assert.ErrorIs(t, err, employee.ErrExcelUpload)
}

func TestImportCSVParseErrorLeavesRosterAlone(t *testing.T) {
	svc := newTestService(t, nil, false, "")
	seedService(t, svc)

	_, err := svc.ImportCSV(context.Background(), "roster.csv", []byte("First Name,Last Name\n"), false)
	assert.Error(t, err)
	assert.Len(t, svc.All(), 2)
}

func TestImportFromSheet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, importCSV)
	}))
	defer server.Close()

	svc := newTestService(t, nil, false, server.URL)
	seedService(t, svc)

	result, err := svc.ImportFromSheet(context.Background(), false)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Summary.Added)
	assert.Len(t, svc.All(), 3)
}

func TestImportFromSheetWithoutURL(t *testing.T) {
	svc := newTestService(t, nil, false, "")

	_, err := svc.ImportFromSheet(context.Background(), false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no sheet URL configured")
}

func TestImportArchivesUpload(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "staff-admin").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "staff-admin", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "roster-archive/") && strings.HasSuffix(name, ".csv")
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	svc := newTestService(t, mockClient, true, "")
	seedService(t, svc)

	_, err := svc.ImportCSV(context.Background(), "roster.csv", []byte(importCSV), false)
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestImportArchiveCreatesMissingBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "staff-admin").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "staff-admin", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "staff-admin", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := newTestService(t, mockClient, true, "")
	seedService(t, svc)

	_, err := svc.ImportCSV(context.Background(), "roster.csv", []byte(importCSV), false)
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestImportArchiveFailureIsBestEffort(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "staff-admin").Return(false, assert.AnError)

	svc := newTestService(t, mockClient, true, "")
	seedService(t, svc)

	// The import itself still succeeds.
	result, err := svc.ImportCSV(context.Background(), "roster.csv", []byte(importCSV), false)
	assert.NoError(t, err)
	assert.True(t, result.Persisted)
}

func TestListAndFetchArchives(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "roster-archive/20240601-120000.csv"}
	ch <- minio.ObjectInfo{Key: "roster-archive/20240602-090000.csv"}
	close(ch)

	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "staff-admin", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))
	mockClient.On("GetObject", mock.Anything, "staff-admin", "roster-archive/20240601-120000.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader(importCSV)), nil)

	svc := newTestService(t, mockClient, true, "")

	names, err := svc.ListArchives(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"roster-archive/20240601-120000.csv",
		"roster-archive/20240602-090000.csv",
	}, names)

	data, err := svc.FetchArchive(context.Background(), "roster-archive/20240601-120000.csv")
	assert.NoError(t, err)
	assert.Equal(t, importCSV, string(data))
}

func TestArchiveEndpointsWithoutStorage(t *testing.T) {
	svc := newTestService(t, nil, false, "")

	_, err := svc.ListArchives(context.Background())
	assert.Error(t, err)
	_, err = svc.FetchArchive(context.Background(), "roster-archive/x.csv")
	assert.Error(t, err)
}

func TestMergeGroupRequiresTwoRecords(t *testing.T) {
	svc := newTestService(t, nil, false, "")

	_, _, err := svc.MergeGroup(context.Background(), []models.Employee{{FirstName: "Jo"}})
	assert.Error(t, err)
}

func TestMergeGroupCollapsesAndPersists(t *testing.T) {
	svc := newTestService(t, nil, false, "")
	ctx := context.Background()
	assert.NoError(t, svc.ReplaceAll(ctx, []models.Employee{
		{FirstName: "Jo", LastName: "Smith", Email: "jo@corp.test", Phone: "555-0100", Terminated: "No"},
		{FirstName: "Joanne", LastName: "Smith", Email: "jo@corp.test", Department: "Engineering", Terminated: "No"},
		{FirstName: "Ann", LastName: "Lee", Email: "ann@corp.test", Terminated: "No"},
	}))

	group := []models.Employee{
		{FirstName: "Jo", LastName: "Smith", Email: "jo@corp.test", Phone: "555-0100"},
		{FirstName: "Joanne", LastName: "Smith", Email: "jo@corp.test", Department: "Engineering"},
	}
	merged, result, err := svc.MergeGroup(ctx, group)
	assert.NoError(t, err)
	assert.True(t, result.Persisted)
	assert.Equal(t, "Joanne", merged.FirstName)
	assert.Equal(t, "555-0100", merged.Phone)
	assert.Equal(t, "Engineering", merged.Department)

	assert.Len(t, svc.All(), 2)
	assert.NoError(t, svc.Load(ctx))
	assert.Len(t, svc.All(), 2)
}

func TestTerminateAndReactivateService(t *testing.T) {
	svc := newTestService(t, nil, false, "")
	seedService(t, svc)
	ctx := context.Background()
	today := time.Now().UTC().Format("2006-01-02")

	result, err := svc.Terminate(ctx, 0)
	assert.NoError(t, err)
	assert.True(t, result.Persisted)

	active, terminated := activeCount(svc.All())
	assert.Equal(t, 1, active)
	assert.Equal(t, 1, terminated)

	var stamped models.Employee
	for _, e := range svc.All() {
		if e.IsTerminated() {
			stamped = e
		}
	}
	assert.Equal(t, today, stamped.TerminationDate)

	_, err = svc.Reactivate(ctx, 0)
	assert.NoError(t, err)
	active, terminated = activeCount(svc.All())
	assert.Equal(t, 2, active)
	assert.Zero(t, terminated)

	_, err = svc.Terminate(ctx, 42)
	assert.Error(t, err)
}

func TestImportPersistFailureKeepsMemory(t *testing.T) {
	gormDB, sqlMock := setupMockDB(t)
	repo := employee.NewRepository(gormDB)
	store := employee.NewStore()
	store.SetAll([]models.Employee{
		{EmployeeID: "JS1001", FirstName: "Jo", LastName: "Smith", Email: "jo@corp.test", Terminated: "No"},
	})
	svc := employee.NewService(repo, store, nil, "staff-admin", false, "roster-archive", "", zap.NewNop())

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("DELETE FROM `employees`").WillReturnError(assert.AnError)
	sqlMock.ExpectRollback()

	result, err := svc.ImportCSV(context.Background(), "roster.csv", []byte(importCSV), false)
	assert.NoError(t, err)
	assert.False(t, result.Persisted)
	assert.ErrorIs(t, result.PersistErr, assert.AnError)

	// The reconciled roster stays live in memory.
	assert.Len(t, svc.All(), 2)
}
