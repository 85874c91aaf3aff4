package entity

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Patient struct {
	ID            int    `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Age           int
	Gender        Gender `gorm:"size:6"`
	Contact       string
	Address       string
	IsBlacklisted bool `gorm:"not null;default:false"`
}

type PatientUpdate struct {
	Name    *string
	Age     *int
	Gender  *Gender
	Contact *string
	Address *string
}

func (u PatientUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Age != nil {
		cols["age"] = *u.Age
	}
	if u.Gender != nil {
		cols["gender"] = *u.Gender
	}
	if u.Contact != nil {
		cols["contact"] = *u.Contact
	}
	if u.Address != nil {
		cols["address"] = *u.Address
	}
	return cols
}

type Doctor struct {
	ID             int    `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Specialization string
	DepartmentID   *int `gorm:"index"` // References: departments(id)
	Contact        string
	Email          string
	IsBlacklisted  bool `gorm:"not null;default:false"`
}

type DoctorUpdate struct {
	Name           *string
	Specialization *string
	DepartmentID   *int
	Contact        *string
	Email          *string
}

func (u DoctorUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Specialization != nil {
		cols["specialization"] = *u.Specialization
	}
	if u.DepartmentID != nil {
		cols["department_id"] = *u.DepartmentID
	}
	if u.Contact != nil {
		cols["contact"] = *u.Contact
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	return cols
}

type Department struct {
	ID       int    `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Location string
}

type DepartmentUpdate struct {
	Name     *string
	Location *string
}

func (u DepartmentUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Location != nil {
		cols["location"] = *u.Location
	}
	return cols
}
