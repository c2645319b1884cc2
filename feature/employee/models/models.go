package models

// Employee is a single roster record. All descriptive fields are strings,
// absent-as-empty, mirroring the spreadsheet the roster is imported from.
// Yes/no flags are the literal strings "Yes" and "No".
type Employee struct {
	ID uint `gorm:"primaryKey" json:"-" swaggerignore:"true"`

	// EmployeeID is a derived identifier (initials + numeric suffix).
	// It is optional but, once assigned, is never reassigned to another person.
	EmployeeID      string `gorm:"column:employee_id;index" json:"employeeId,omitempty"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Department      string `json:"department"`
	Position        string `json:"position"`
	EmploymentDate  string `json:"employmentDate"`
	YearsOfService  string `json:"yearsOfService"`
	MerchRequested  string `json:"merchRequested"`
	MerchSent       string `json:"merchSent"`
	MerchSentDate   string `json:"merchSentDate"`
	Terminated      string `json:"terminated"`
	TerminationDate string `json:"terminationDate"`
}

// TableName sets the table name for GORM.
func (Employee) TableName() string {
	return "employees"
}

// IsTerminated reports whether the record is in the terminated partition.
func (e Employee) IsTerminated() bool {
	return e.Terminated == "Yes"
}
