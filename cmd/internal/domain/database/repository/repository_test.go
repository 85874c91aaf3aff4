package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Gyan0205/hospital-management/cmd/internal/config"
	"github.com/Gyan0205/hospital-management/cmd/internal/domain/database"
	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          filepath.Join(t.TempDir(), "repo.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	return db
}

func ptr[T any](v T) *T { return &v }

func TestAvailabilityRepository_DayQueryOrderedByStart(t *testing.T) {
	ctx := context.Background()
	repo := NewAvailabilityRepository(newTestDB(t))

	for _, row := range []*entity.DoctorAvailability{
		{DoctorID: 1, Day: "Monday", StartTime: "14:00", EndTime: "16:00"},
		{DoctorID: 1, Day: "Monday", StartTime: "09:00", EndTime: "12:00"},
		{DoctorID: 1, Day: "Tuesday", StartTime: "08:00", EndTime: "10:00"},
		{DoctorID: 2, Day: "Monday", StartTime: "07:00", EndTime: "08:00"},
	} {
		if err := repo.Save(ctx, row); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	rows, err := repo.FindByDoctorAndDay(ctx, 1, "Monday")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(rows) != 2 || rows[0].StartTime != "09:00" || rows[1].StartTime != "14:00" {
		t.Fatalf("unexpected rows %+v", rows)
	}

	all, _ := repo.FindByDoctor(ctx, 1)
	if len(all) != 3 {
		t.Errorf("expected 3 windows for doctor 1, got %d", len(all))
	}
}

func TestAvailabilityRepository_PartialUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAvailabilityRepository(newTestDB(t))

	row := &entity.DoctorAvailability{DoctorID: 1, Day: "Monday", StartTime: "09:00", EndTime: "12:00"}
	_ = repo.Save(ctx, row)

	if err := repo.Update(ctx, row.ID, entity.AvailabilityUpdate{EndTime: ptr("13:00")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := repo.FindByID(ctx, row.ID)
	if got.Day != "Monday" || got.StartTime != "09:00" || got.EndTime != "13:00" {
		t.Errorf("unexpected row after update %+v", got)
	}

	if err := repo.Delete(ctx, row.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := repo.FindByID(ctx, row.ID); got != nil {
		t.Error("expected row to be gone")
	}
}

func TestAppointmentRepository_CountsAreConsistent(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(newTestDB(t))

	statuses := []entity.AppointmentStatus{
		entity.StatusScheduled, entity.StatusScheduled, entity.StatusCompleted, entity.StatusCancelled,
	}
	for i, s := range statuses {
		appt := &entity.Appointment{AppointmentDate: "2025-06-09 10:00", PatientID: 1 + i%2, DoctorID: 1, Status: s}
		if err := repo.Save(ctx, appt); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	_ = repo.Save(ctx, &entity.Appointment{AppointmentDate: "2025-06-09 10:00", PatientID: 1, DoctorID: 2, Status: entity.StatusScheduled})

	counts, err := repo.CountByDoctor(ctx, 1)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts.Total != 4 || counts.Scheduled != 2 || counts.Completed != 1 || counts.Cancelled != 1 {
		t.Errorf("unexpected doctor counts %+v", counts)
	}

	counts, _ = repo.CountByPatient(ctx, 1)
	if counts.Total != 3 || counts.Total != counts.Scheduled+counts.Completed+counts.Cancelled {
		t.Errorf("unexpected patient counts %+v", counts)
	}

	counts, _ = repo.CountByDoctor(ctx, 99)
	if counts.Total != 0 || counts.Completed != 0 {
		t.Errorf("expected zero counts, got %+v", counts)
	}

	counts, _ = repo.CountAll(ctx)
	if counts.Total != 5 {
		t.Errorf("expected 5 appointments overall, got %d", counts.Total)
	}
}

func TestAppointmentRepository_UpdateStatusUnknownIDIsNotAnError(t *testing.T) {
	repo := NewAppointmentRepository(newTestDB(t))
	if err := repo.UpdateStatus(context.Background(), 42, entity.StatusCancelled); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJoinedListings(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	patient := &entity.Patient{Name: "Arjun", Age: 28, Gender: entity.GenderMale, Contact: "999"}
	doctor := &entity.Doctor{Name: "Dr. Ravi", Specialization: "Cardiologist", Email: "ravi@h.com"}
	_ = NewPatientRepository(db).Save(ctx, patient)
	_ = NewDoctorRepository(db).Save(ctx, doctor)

	appts := NewAppointmentRepository(db)
	older := &entity.Appointment{AppointmentDate: "2025-06-09 10:00", PatientID: patient.ID, DoctorID: doctor.ID, Status: entity.StatusCompleted}
	newer := &entity.Appointment{AppointmentDate: "2025-06-16 10:00", PatientID: patient.ID, DoctorID: doctor.ID, Status: entity.StatusScheduled}
	_ = appts.Save(ctx, older)
	_ = appts.Save(ctx, newer)

	byPatient, err := appts.ListByPatient(ctx, patient.ID)
	if err != nil {
		t.Fatalf("list by patient: %v", err)
	}
	if len(byPatient) != 2 || byPatient[0].AppointmentID != newer.ID || byPatient[0].DoctorName != "Dr. Ravi" {
		t.Errorf("unexpected patient listing %+v", byPatient)
	}

	byDoctor, _ := appts.ListByDoctor(ctx, doctor.ID)
	if len(byDoctor) != 2 || byDoctor[0].AppointmentID != older.ID || byDoctor[0].PatientName != "Arjun" || byDoctor[0].Gender != entity.GenderMale {
		t.Errorf("unexpected doctor listing %+v", byDoctor)
	}

	all, _ := appts.ListAll(ctx)
	if len(all) != 2 || all[0].PatientContact != "999" {
		t.Errorf("unexpected overview %+v", all)
	}

	histories := NewHistoryRepository(db)
	_ = histories.Save(ctx, &entity.History{AppointmentID: older.ID, PatientID: patient.ID, MedicineName: ptr("Aspirin")})

	records, err := histories.ListByPatient(ctx, patient.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 1 || *records[0].MedicineName != "Aspirin" || records[0].Tests != nil || records[0].Status != entity.StatusCompleted {
		t.Errorf("unexpected history %+v", records)
	}
}

func TestDoctorRepository_ListedDetailsHidesBlacklisted(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	dep := &entity.Department{Name: "Cardiology"}
	_ = NewDepartmentRepository(db).Save(ctx, dep)

	doctors := NewDoctorRepository(db)
	withDep := &entity.Doctor{Name: "A", DepartmentID: &dep.ID}
	noDep := &entity.Doctor{Name: "B"}
	_ = doctors.Save(ctx, withDep)
	_ = doctors.Save(ctx, noDep)

	details, err := doctors.FindListedDetails(ctx, withDep.ID)
	if err != nil || details == nil || details.DepartmentName == nil || *details.DepartmentName != "Cardiology" {
		t.Fatalf("unexpected details %+v %v", details, err)
	}

	details, _ = doctors.FindListedDetails(ctx, noDep.ID)
	if details == nil || details.DepartmentName != nil {
		t.Errorf("expected doctor without department, got %+v", details)
	}

	_ = doctors.SetBlacklisted(ctx, withDep.ID, true)
	if details, _ := doctors.FindListedDetails(ctx, withDep.ID); details != nil {
		t.Error("expected blacklisted doctor to be hidden")
	}

	n, _ := doctors.CountByDepartment(ctx, dep.ID)
	if n != 1 {
		t.Errorf("expected 1 doctor in department, got %d", n)
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	patients := NewPatientRepository(db)
	_ = patients.Save(ctx, &entity.Patient{Name: "Arjun Mehta", Address: "Hyderabad"})
	_ = patients.Save(ctx, &entity.Patient{Name: "Priya Verma", Address: "Chennai"})

	found, err := patients.Search(ctx, "hyder")
	if err != nil || len(found) != 1 || found[0].Name != "Arjun Mehta" {
		t.Errorf("unexpected patient search %+v %v", found, err)
	}

	doctors := NewDoctorRepository(db)
	_ = doctors.Save(ctx, &entity.Doctor{Name: "Dr. Neha", Specialization: "Neurologist", Email: "neha@h.com"})
	found2, _ := doctors.Search(ctx, "NEURO")
	if len(found2) != 1 {
		t.Errorf("expected one doctor, got %d", len(found2))
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	ref := 5
	_ = repo.Save(ctx, &entity.User{Username: "arjun", Password: "patient123", Role: entity.RolePatient, ReferenceID: &ref})

	if u, _ := repo.FindByCredentials(ctx, "arjun", "wrong"); u != nil {
		t.Error("expected no match with wrong password")
	}
	u, err := repo.FindByCredentials(ctx, "arjun", "patient123")
	if err != nil || u == nil || *u.ReferenceID != 5 {
		t.Fatalf("expected match, got %+v %v", u, err)
	}

	if err := repo.Save(ctx, &entity.User{Username: "arjun", Password: "x", Role: entity.RolePatient}); err == nil {
		t.Error("expected unique username violation")
	}

	_ = repo.DeleteByReference(ctx, entity.RoleDoctor, 5)
	if ok, _ := repo.ExistsByUsername(ctx, "arjun"); !ok {
		t.Error("role mismatch must not delete the credential")
	}
	_ = repo.DeleteByReference(ctx, entity.RolePatient, 5)
	if ok, _ := repo.ExistsByUsername(ctx, "arjun"); ok {
		t.Error("expected credential to be deleted")
	}
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tx := NewTransactor(db)
	patients := NewPatientRepository(db)

	boom := errors.New("boom")
	err := tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := patients.Save(ctx, &entity.Patient{Name: "Ghost"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	n, _ := patients.Count(ctx)
	if n != 0 {
		t.Errorf("expected rollback, found %d patients", n)
	}

	err = tx.InTransaction(ctx, func(ctx context.Context) error {
		return tx.InTransaction(ctx, func(ctx context.Context) error {
			return patients.Save(ctx, &entity.Patient{Name: "Kept"})
		})
	})
	if err != nil {
		t.Fatalf("nested: %v", err)
	}
	if n, _ := patients.Count(ctx); n != 1 {
		t.Errorf("expected 1 patient, got %d", n)
	}
}
