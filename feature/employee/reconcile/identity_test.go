package reconcile_test

import (
	"testing"

	"staff-admin/feature/employee/models"
	"staff-admin/feature/employee/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestSameEmployee(t *testing.T) {
	tests := []struct {
		name string
		a    models.Employee
		b    models.Employee
		want bool
	}{
		{
			name: "Matching Ids",
			a:    models.Employee{EmployeeID: "JS1001", Email: "a@x.com"},
			b:    models.Employee{EmployeeID: "JS1001", Email: "b@y.com"},
			want: true,
		},
		{
			name: "Different Ids Ignore Email",
			a:    models.Employee{EmployeeID: "JS1001", Email: "same@x.com"},
			b:    models.Employee{EmployeeID: "AL2002", Email: "same@x.com"},
			want: false,
		},
		{
			name: "Email Case And Whitespace Insensitive",
			a:    models.Employee{Email: " Jo.Smith@X.com "},
			b:    models.Employee{Email: "jo.smith@x.com"},
			want: true,
		},
		{
			name: "Full Name Fallback",
			a:    models.Employee{FirstName: "Jo", LastName: "Smith"},
			b:    models.Employee{FirstName: "jo", LastName: "SMITH"},
			want: true,
		},
		{
			name: "One Side Has Id Falls Back To Email",
			a:    models.Employee{EmployeeID: "JS1001", Email: "j@x.com"},
			b:    models.Employee{Email: "j@x.com"},
			want: true,
		},
		{
			name: "First Name Only Collision Is Accepted",
			a:    models.Employee{FirstName: "Ann"},
			b:    models.Employee{FirstName: "ann"},
			want: true,
		},
		{
			name: "No Shared Identifier",
			a:    models.Employee{Phone: "555"},
			b:    models.Employee{Phone: "555"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.SameEmployee(tt.a, tt.b))
		})
	}
}

func TestIDGenerator(t *testing.T) {
	g := reconcile.NewIDGeneratorAt(1001)

	assert.Equal(t, "JS1001", g.Generate("Jo", "Smith"))
	assert.Equal(t, "AL1002", g.Generate("Ann", "Lee"))

	t.Run("Requires Both Names", func(t *testing.T) {
		assert.Equal(t, "", g.Generate("Ann", ""))
		assert.Equal(t, "", g.Generate("", "Lee"))
	})

	t.Run("Unique In Sequence", func(t *testing.T) {
		a := g.Generate("Jo", "Smith")
		b := g.Generate("Jo", "Smith")
		assert.NotEqual(t, a, b)
	})
}
