package database

import (
	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

// Seed inserts the demo departments, doctors, patients and logins. It is a
// no-op once any credential exists.
func Seed(db *gorm.DB) (bool, error) {
	var users int64
	if err := db.Model(&entity.User{}).Count(&users).Error; err != nil {
		return false, err
	}
	if users > 0 {
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		departments := []*entity.Department{
			{Name: "Cardiology", Location: "Block A"},
			{Name: "Neurology", Location: "Block B"},
			{Name: "Orthopedics", Location: "Block C"},
		}
		if err := tx.Create(&departments).Error; err != nil {
			return err
		}

		doctors := []*entity.Doctor{
			{Name: "Dr. Ravi Kumar", Specialization: "Cardiologist", DepartmentID: &departments[0].ID, Contact: "9876543210", Email: "ravi.kumar@hospital.com"},
			{Name: "Dr. Neha Sharma", Specialization: "Neurologist", DepartmentID: &departments[1].ID, Contact: "9988776655", Email: "neha.sharma@hospital.com"},
		}
		if err := tx.Create(&doctors).Error; err != nil {
			return err
		}

		patients := []*entity.Patient{
			{Name: "Arjun Mehta", Age: 28, Gender: entity.GenderMale, Contact: "9998887776", Address: "Hyderabad"},
			{Name: "Priya Verma", Age: 34, Gender: entity.GenderFemale, Contact: "8887776665", Address: "Chennai"},
		}
		if err := tx.Create(&patients).Error; err != nil {
			return err
		}

		users := []*entity.User{
			{Username: "admin", Password: "admin123", Role: entity.RoleAdmin},
			{Username: "aksheth", Password: "doctor123", Role: entity.RoleDoctor, ReferenceID: &doctors[0].ID},
			{Username: "neha", Password: "doctor123", Role: entity.RoleDoctor, ReferenceID: &doctors[1].ID},
			{Username: "arjun", Password: "patient123", Role: entity.RolePatient, ReferenceID: &patients[0].ID},
			{Username: "priya", Password: "patient123", Role: entity.RolePatient, ReferenceID: &patients[1].ID},
		}
		return tx.Create(&users).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
