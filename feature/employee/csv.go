package employee

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"staff-admin/feature/employee/models"
)

// ErrExcelUpload is returned for .xlsx/.xls files; the portal only ingests
// CSV, so the user is pointed at the sheet's CSV export instead.
var ErrExcelUpload = fmt.Errorf("excel files are not supported: open the sheet and use File > Download > Comma Separated Values (.csv), then upload the CSV")

// CheckFilename validates an upload filename by extension.
func CheckFilename(name string) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return nil
	case ".xlsx", ".xls":
		return ErrExcelUpload
	default:
		return fmt.Errorf("unsupported file type %q: please upload a CSV file", filepath.Ext(name))
	}
}

// ParseRosterCSV reads a header-row CSV into employee records.
//
// Headers are matched case- and whitespace-insensitively ("First Name",
// "firstName" and "first_name" are equivalent). A Name column, when present,
// is split on whitespace: first token becomes the first name, the remaining
// tokens join into the last name. Unknown columns are ignored. Quoted fields
// with embedded commas are handled by the reader.
func ParseRosterCSV(r io.Reader) ([]models.Employee, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv is empty: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	setters := make([]func(*models.Employee, string), len(header))
	for i, col := range header {
		setters[i] = columnSetter(col)
	}

	var records []models.Employee
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv line %d: %w", line, err)
		}

		var emp models.Employee
		empty := true
		for i, value := range row {
			if i >= len(setters) || setters[i] == nil {
				continue
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			setters[i](&emp, value)
			empty = false
		}
		if !empty {
			records = append(records, emp)
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv contains no employee rows")
	}
	return records, nil
}

// SplitName splits a combined name into first and last name.
// The first whitespace token is the first name; everything else joins
// into the last name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(strings.ReplaceAll(full, `"`, ""))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// columnSetter maps a header cell to the employee field it fills,
// or nil for columns this importer does not know.
func columnSetter(header string) func(*models.Employee, string) {
	switch normalizeHeader(header) {
	case "name":
		return func(e *models.Employee, v string) {
			e.FirstName, e.LastName = SplitName(v)
		}
	case "firstname":
		return func(e *models.Employee, v string) { e.FirstName = v }
	case "lastname":
		return func(e *models.Employee, v string) { e.LastName = v }
	case "email":
		return func(e *models.Employee, v string) { e.Email = v }
	case "phone":
		return func(e *models.Employee, v string) { e.Phone = v }
	case "department":
		return func(e *models.Employee, v string) { e.Department = v }
	case "position":
		return func(e *models.Employee, v string) { e.Position = v }
	case "employmentdate":
		return func(e *models.Employee, v string) { e.EmploymentDate = v }
	case "yearsofservice":
		return func(e *models.Employee, v string) { e.YearsOfService = v }
	case "merchrequested":
		return func(e *models.Employee, v string) { e.MerchRequested = v }
	case "merchsent":
		return func(e *models.Employee, v string) { e.MerchSent = v }
	case "merchsentdate":
		return func(e *models.Employee, v string) { e.MerchSentDate = v }
	case "terminated":
		return func(e *models.Employee, v string) { e.Terminated = v }
	case "terminationdate":
		return func(e *models.Employee, v string) { e.TerminationDate = v }
	case "employeeid":
		return func(e *models.Employee, v string) { e.EmployeeID = v }
	default:
		return nil
	}
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "")
	h = strings.ReplaceAll(h, "_", "")
	return h
}

// FetchSheetCSV downloads the roster CSV from a published-sheet export URL.
func FetchSheetCSV(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("no sheet URL configured (set IMPORTER_SHEET_URL)")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet response: %w", err)
	}
	return data, nil
}
