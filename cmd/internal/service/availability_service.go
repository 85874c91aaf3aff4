package service

import (
	"context"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"github.com/Gyan0205/hospital-management/cmd/internal/scheduling"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AvailabilityRepository interface {
	FindByID(ctx context.Context, id int) (*entity.DoctorAvailability, error)
	FindByDoctor(ctx context.Context, doctorID int) ([]*entity.DoctorAvailability, error)
	FindByDoctorAndDay(ctx context.Context, doctorID int, day string) ([]*entity.DoctorAvailability, error)
	Save(ctx context.Context, row *entity.DoctorAvailability) error
	Update(ctx context.Context, id int, update entity.AvailabilityUpdate) error
	Delete(ctx context.Context, id int) error
}

// AvailabilityCache holds display-ordered listings per doctor. A nil cache
// disables caching.
type AvailabilityCache interface {
	Get(ctx context.Context, doctorID int) ([]*entity.DoctorAvailability, bool, error)
	Set(ctx context.Context, doctorID int, rows []*entity.DoctorAvailability) error
	Invalidate(ctx context.Context, doctorID int) error
}

type AvailabilityRequest struct {
	Day       string `json:"day" validate:"required,weekday"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
}

type AvailabilityUpdateRequest struct {
	Day       *string `json:"day" validate:"omitempty,weekday"`
	StartTime *string `json:"start_time" validate:"omitempty,clock"`
	EndTime   *string `json:"end_time" validate:"omitempty,clock"`
}

type AvailabilityResponse struct {
	AvailabilityID int    `json:"availability_id"`
	DoctorID       int    `json:"doctor_id"`
	Day            string `json:"day"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

type AvailabilityCreatedResponse struct {
	Message        string `json:"message"`
	AvailabilityID int    `json:"availability_id"`
}

type DefaultAvailabilityService struct {
	AvailabilityRepo AvailabilityRepository
	Cache            AvailabilityCache
	Validate         *validator.Validate
}

func NewAvailabilityService(availRepo AvailabilityRepository, cache AvailabilityCache, validate *validator.Validate) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{AvailabilityRepo: availRepo, Cache: cache, Validate: validate}
}

// GetAvailability lists the doctor's windows Monday first, then by start time.
func (a *DefaultAvailabilityService) GetAvailability(ctx context.Context, doctorID int) ([]*AvailabilityResponse, apierror.ErrorResponse) {
	if rows, ok := a.cached(ctx, doctorID); ok {
		return toAvailabilityResponses(rows), nil
	}

	rows, err := a.AvailabilityRepo.FindByDoctor(ctx, doctorID)
	if err != nil {
		log.Errorf("failed to list availability of doctor %d: %v", doctorID, err)
		return nil, apierror.InternalServerError
	}
	scheduling.SortForDisplay(rows)

	if a.Cache != nil {
		if err := a.Cache.Set(ctx, doctorID, rows); err != nil {
			log.Warnf("failed to cache availability of doctor %d: %v", doctorID, err)
		}
	}
	return toAvailabilityResponses(rows), nil
}

// AddAvailability stores a new window. Overlaps and duplicates are accepted,
// and the doctor id is not checked.
func (a *DefaultAvailabilityService) AddAvailability(ctx context.Context, doctorID int, req *AvailabilityRequest) (*AvailabilityCreatedResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err, "Missing required fields")
	}

	row := &entity.DoctorAvailability{
		DoctorID:  doctorID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := a.AvailabilityRepo.Save(ctx, row); err != nil {
		log.Errorf("failed to add availability for doctor %d: %v", doctorID, err)
		return nil, apierror.InternalServerError
	}

	a.invalidate(ctx, doctorID)
	return &AvailabilityCreatedResponse{Message: "Availability added successfully", AvailabilityID: row.ID}, nil
}

// UpdateAvailability changes only the fields present in req. An unknown id
// is a silent success.
func (a *DefaultAvailabilityService) UpdateAvailability(ctx context.Context, id int, req *AvailabilityUpdateRequest) (*MessageResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err, "Missing required fields")
	}

	update := entity.AvailabilityUpdate{Day: req.Day, StartTime: req.StartTime, EndTime: req.EndTime}
	if len(update.Columns()) == 0 {
		return nil, apierror.NoValidFieldsError
	}

	row, err := a.AvailabilityRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch availability %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if row != nil {
		if err := a.AvailabilityRepo.Update(ctx, id, update); err != nil {
			log.Errorf("failed to update availability %d: %v", id, err)
			return nil, apierror.InternalServerError
		}
		a.invalidate(ctx, row.DoctorID)
	}
	return &MessageResponse{Message: "Availability updated successfully"}, nil
}

func (a *DefaultAvailabilityService) DeleteAvailability(ctx context.Context, id int) (*MessageResponse, apierror.ErrorResponse) {
	row, err := a.AvailabilityRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch availability %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if row != nil {
		if err := a.AvailabilityRepo.Delete(ctx, id); err != nil {
			log.Errorf("failed to delete availability %d: %v", id, err)
			return nil, apierror.InternalServerError
		}
		a.invalidate(ctx, row.DoctorID)
	}
	return &MessageResponse{Message: "Availability deleted successfully"}, nil
}

func (a *DefaultAvailabilityService) cached(ctx context.Context, doctorID int) ([]*entity.DoctorAvailability, bool) {
	if a.Cache == nil {
		return nil, false
	}

	rows, ok, err := a.Cache.Get(ctx, doctorID)
	if err != nil {
		log.Warnf("failed to read cached availability of doctor %d: %v", doctorID, err)
		return nil, false
	}
	return rows, ok
}

func (a *DefaultAvailabilityService) invalidate(ctx context.Context, doctorID int) {
	if a.Cache == nil {
		return
	}
	if err := a.Cache.Invalidate(ctx, doctorID); err != nil {
		log.Warnf("failed to invalidate cached availability of doctor %d: %v", doctorID, err)
	}
}

func toAvailabilityResponses(rows []*entity.DoctorAvailability) []*AvailabilityResponse {
	resp := make([]*AvailabilityResponse, len(rows))
	for i, row := range rows {
		resp[i] = &AvailabilityResponse{
			AvailabilityID: row.ID,
			DoctorID:       row.DoctorID,
			Day:            row.Day,
			StartTime:      row.StartTime,
			EndTime:        row.EndTime,
		}
	}
	return resp
}
