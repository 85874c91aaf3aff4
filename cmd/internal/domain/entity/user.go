package entity

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
)

// User is a login credential. ReferenceID points at a Doctor or a Patient
// depending on Role and is nil for admins.
type User struct {
	ID          int    `gorm:"primaryKey"`
	Username    string `gorm:"size:191;uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	Role        Role   `gorm:"size:7;not null"`
	ReferenceID *int
}
