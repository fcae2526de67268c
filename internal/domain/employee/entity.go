package employee

import "time"

// Employee is the profile record consulted during payroll upsert to enrich
// the denormalized employee snapshot.
type Employee struct {
	ID          string
	UserID      string
	FirstName   string
	LastName    string
	Email       string
	JobPosition string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName joins the name parts, tolerating either being empty.
func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	default:
		return e.FirstName + " " + e.LastName
	}
}
