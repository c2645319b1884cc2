package employee

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"staff-admin/core/storage"
	"staff-admin/feature/employee/models"
	"staff-admin/feature/employee/reconcile"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service orchestrates roster operations: loading and saving the stored
// collection, running smart imports, merges, and the per-record actions.
type Service struct {
	repo          *Repository
	store         *Store
	client        storage.Client // nil disables the import archive
	bucket        string
	archive       bool
	archivePrefix string
	sheetURL      string
	logger        *zap.Logger
	ids           *reconcile.IDGenerator
	now           func() time.Time
}

// NewService creates a new roster service.
func NewService(repo *Repository, store *Store, client storage.Client, bucket string, archive bool, archivePrefix, sheetURL string, logger *zap.Logger) *Service {
	return &Service{
		repo:          repo,
		store:         store,
		client:        client,
		bucket:        bucket,
		archive:       archive,
		archivePrefix: archivePrefix,
		sheetURL:      sheetURL,
		logger:        logger,
		ids:           reconcile.NewIDGenerator(),
		now:           time.Now,
	}
}

// ImportResult reports what an import did. PersistErr is carried separately
// from the function error: a failed save leaves the reconciled roster live
// in memory, and the caller reports the two outcomes distinctly so memory
// and storage never diverge silently.
type ImportResult struct {
	Summary   reconcile.Summary `json:"summary"`
	DryRun    bool              `json:"dryRun"`
	Persisted bool              `json:"persisted"`

	PersistErr error `json:"-"`
}

// today formats the service clock as an ISO date.
func (s *Service) today() string {
	return s.now().UTC().Format("2006-01-02")
}

// Load reads the stored roster into the in-memory store, re-deriving the
// active/terminated split.
func (s *Service) Load(ctx context.Context) error {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	s.store.SetAll(records)
	return nil
}

// Save persists the current in-memory roster, replacing the stored collection.
func (s *Service) Save(ctx context.Context) error {
	return s.repo.ReplaceAll(ctx, s.store.All())
}

// All returns the full roster, active then terminated.
func (s *Service) All() []models.Employee {
	return s.store.All()
}

// ReplaceAll swaps in a caller-provided collection and persists it.
// This is the POST /employees replace-collection contract.
func (s *Service) ReplaceAll(ctx context.Context, records []models.Employee) error {
	s.store.Snapshot()
	s.store.SetAll(records)
	return s.Save(ctx)
}

// ImportCSV parses a roster CSV and reconciles it against the current
// roster. A snapshot is taken before anything mutates so the import can be
// undone. With dryRun the plan is computed and reported but not applied.
func (s *Service) ImportCSV(ctx context.Context, filename string, data []byte, dryRun bool) (*ImportResult, error) {
	if filename != "" {
		if err := CheckFilename(filename); err != nil {
			return nil, err
		}
	}

	imported, err := ParseRosterCSV(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return s.importRoster(ctx, imported, data, dryRun)
}

// ImportFromSheet downloads the configured sheet CSV export and imports it.
func (s *Service) ImportFromSheet(ctx context.Context, dryRun bool) (*ImportResult, error) {
	data, err := FetchSheetCSV(ctx, s.sheetURL)
	if err != nil {
		return nil, err
	}
	return s.ImportCSV(ctx, "", data, dryRun)
}

func (s *Service) importRoster(ctx context.Context, imported []models.Employee, raw []byte, dryRun bool) (*ImportResult, error) {
	plan := s.store.PlanImport(imported, s.today(), s.ids)

	result := &ImportResult{Summary: plan.Summary, DryRun: dryRun}
	if dryRun {
		return result, nil
	}

	// Snapshot before mutating so the caller can undo the whole import.
	s.store.Snapshot()
	s.store.ApplyImport(plan)

	s.logger.Info("Roster import applied",
		zap.Int("added", plan.Summary.Added),
		zap.Int("terminated", plan.Summary.Terminated),
		zap.Int("unchanged", plan.Summary.Unchanged),
	)

	// Persistence failure is reported distinctly; memory keeps the result.
	if err := s.Save(ctx); err != nil {
		s.logger.Error("Roster import persisted in memory only", zap.Error(err))
		result.PersistErr = err
	} else {
		result.Persisted = true
	}

	s.archiveImport(ctx, raw)

	return result, nil
}

// archiveImport uploads the raw import file for audit, best effort.
func (s *Service) archiveImport(ctx context.Context, raw []byte) {
	if !s.archive || s.client == nil || len(raw) == 0 {
		return
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Warn("Import archive skipped: bucket check failed", zap.Error(err))
		return
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			s.logger.Warn("Import archive skipped: bucket creation failed", zap.Error(err))
			return
		}
	}

	name := fmt.Sprintf("%s/%s.csv", s.archivePrefix, s.now().UTC().Format("20060102-150405"))
	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		s.logger.Warn("Import archive upload failed", zap.Error(err))
		return
	}

	s.logger.Info("Import archived", zap.String("object", name))
}

// ListArchives returns the object names of archived imports, newest last.
func (s *Service) ListArchives(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var names []string
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.archivePrefix + "/",
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list archives: %w", info.Err)
		}
		names = append(names, info.Key)
	}
	return names, nil
}

// FetchArchive streams back an archived import file.
func (s *Service) FetchArchive(ctx context.Context, name string) ([]byte, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch archive %s: %w", name, err)
	}
	defer obj.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(obj); err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Undo restores the roster to the snapshot taken before the last import or
// replace and persists the restored state.
func (s *Service) Undo(ctx context.Context) (*ImportResult, error) {
	if !s.store.Undo() {
		return nil, fmt.Errorf("nothing to undo")
	}

	result := &ImportResult{}
	if err := s.Save(ctx); err != nil {
		result.PersistErr = err
	} else {
		result.Persisted = true
	}
	return result, nil
}

// Duplicates reports duplicate sightings across the full roster.
func (s *Service) Duplicates() []reconcile.Duplicate {
	return s.store.Duplicates()
}

// MergeGroup merges the given records into one, removes every roster record
// matching one of them, inserts the merged record, and persists.
func (s *Service) MergeGroup(ctx context.Context, group []models.Employee) (models.Employee, *ImportResult, error) {
	if len(group) < 2 {
		return models.Employee{}, nil, fmt.Errorf("merge requires at least two records")
	}

	merged := reconcile.Merge(group)

	s.store.Snapshot()
	removed := s.store.ReplaceMatching(group, merged)
	s.logger.Info("Merged duplicate records",
		zap.Int("removed", removed),
		zap.String("employeeId", merged.EmployeeID),
	)

	result := &ImportResult{}
	if err := s.Save(ctx); err != nil {
		result.PersistErr = err
	} else {
		result.Persisted = true
	}
	return merged, result, nil
}

// Terminate moves the active record at index to the terminated partition
// and persists.
func (s *Service) Terminate(ctx context.Context, index int) (*ImportResult, error) {
	if err := s.store.Terminate(index, s.today()); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	if err := s.Save(ctx); err != nil {
		result.PersistErr = err
	} else {
		result.Persisted = true
	}
	return result, nil
}

// Reactivate moves the terminated record at index back to active and persists.
func (s *Service) Reactivate(ctx context.Context, index int) (*ImportResult, error) {
	if err := s.store.Reactivate(index); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	if err := s.Save(ctx); err != nil {
		result.PersistErr = err
	} else {
		result.Persisted = true
	}
	return result, nil
}
