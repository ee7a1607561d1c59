package booking

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
)

var errAvailabilityStore = errors.New("connection refused")

// fakeRepo is an in-memory Repository. CreateBookingIfFree mirrors the
// database transaction: the conflict re-check and the insert happen under
// one mutex, so the concurrency tests exercise the same guarantee the
// postgres implementation gives.
type fakeRepo struct {
	mu sync.Mutex

	salon         models.Salon
	services      map[uint]models.Service
	professionals []models.Professional
	customers     map[string]models.Customer
	workingHours  map[uint]map[int]models.WorkingHours
	bookings      []models.Booking

	nextBookingID  uint
	nextCustomerID uint

	// When no working-hours grid is configured for a professional,
	// IsWithinWorkingHours answers this.
	defaultOnShift bool

	failListBookings bool
	failGetService   error
	failCreate       error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon: models.Salon{
			ID:                1,
			Name:              "Studio One",
			Slug:              "studio-one",
			Timezone:          "UTC",
			MinAdvanceMinutes: 120,
		},
		services: map[uint]models.Service{
			10: {ID: 10, SalonID: 1, Name: "Haircut", DurationMin: 30, Active: true},
			11: {ID: 11, SalonID: 1, Name: "Consultation", DurationMin: 0, Active: true},
			12: {ID: 12, SalonID: 1, Name: "Coloring", DurationMin: 90, Active: true},
		},
		professionals: []models.Professional{
			{ID: 1, SalonID: 1, Name: "Aylin", Active: true},
			{ID: 2, SalonID: 1, Name: "Burak", Active: true},
			{ID: 3, SalonID: 1, Name: "Ceren", Active: true},
		},
		customers:      make(map[string]models.Customer),
		workingHours:   make(map[uint]map[int]models.WorkingHours),
		defaultOnShift: true,
		nextBookingID:  100,
		nextCustomerID: 500,
	}
}

func workingHoursFor(weekday int, start, end, breakStart, breakEnd string) models.WorkingHours {
	return models.WorkingHours{
		Weekday:    weekday,
		StartTime:  start,
		EndTime:    end,
		BreakStart: breakStart,
		BreakEnd:   breakEnd,
		Active:     true,
	}
}

func (f *fakeRepo) setWorkingHours(professionalID uint, wh models.WorkingHours) {
	f.mu.Lock()
	defer f.mu.Unlock()

	wh.ProfessionalID = professionalID
	if f.workingHours[professionalID] == nil {
		f.workingHours[professionalID] = make(map[int]models.WorkingHours)
	}
	f.workingHours[professionalID][wh.Weekday] = wh
}

// seedBooking inserts bypassing the conflict check, for test setup.
func (f *fakeRepo) seedBooking(professionalID uint, start time.Time, durationMin int, status string) models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextBookingID++
	b := models.Booking{
		ID:             f.nextBookingID,
		SalonID:        f.salon.ID,
		ProfessionalID: professionalID,
		StartTime:      start,
		DurationMin:    durationMin,
		EndTime:        start.Add(time.Duration(durationMin) * time.Minute),
		Status:         status,
	}
	f.bookings = append(f.bookings, b)
	return b
}

// -------- Salon --------

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if id != f.salon.ID {
		return nil, gorm.ErrRecordNotFound
	}
	salon := f.salon
	return &salon, nil
}

func (f *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	if slug != f.salon.Slug {
		return nil, gorm.ErrRecordNotFound
	}
	salon := f.salon
	return &salon, nil
}

// -------- Service --------

func (f *fakeRepo) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	if f.failGetService != nil {
		return nil, f.failGetService
	}
	s, ok := f.services[serviceID]
	if !ok || s.SalonID != salonID {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (f *fakeRepo) ListActiveServices(_ context.Context, salonID uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.SalonID == salonID && s.Active {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// -------- Professional --------

func (f *fakeRepo) GetProfessional(_ context.Context, salonID, professionalID uint) (*models.Professional, error) {
	for i := range f.professionals {
		p := f.professionals[i]
		if p.ID == professionalID && p.SalonID == salonID {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListActiveProfessionals(_ context.Context, salonID uint) ([]models.Professional, error) {
	var out []models.Professional
	for _, p := range f.professionals {
		if p.SalonID == salonID && p.Active {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// -------- Customer --------

func (f *fakeRepo) GetOrCreateCustomer(_ context.Context, salonID uint, name, phone, email string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.customers[phone]; ok {
		return &c, nil
	}

	f.nextCustomerID++
	c := models.Customer{
		ID:      f.nextCustomerID,
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}
	f.customers[phone] = c
	return &c, nil
}

// -------- Booking (create / conflict) --------

func (f *fakeRepo) CreateBookingIfFree(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreate != nil {
		return f.failCreate
	}

	for _, existing := range f.bookings {
		if existing.ProfessionalID != b.ProfessionalID {
			continue
		}
		if !domain.BlocksSlot(domain.Status(existing.Status)) {
			continue
		}
		if existing.StartTime.Before(b.EndTime) && existing.EndTime.After(b.StartTime) {
			return httperr.ErrBusiness(httperr.CodeTimeConflict)
		}
	}

	f.nextBookingID++
	b.ID = f.nextBookingID
	f.bookings = append(f.bookings, *b)
	return nil
}

// -------- Booking (state change) --------

func (f *fakeRepo) GetBookingForSalon(_ context.Context, bookingID, salonID uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.bookings {
		b := f.bookings[i]
		if b.ID == bookingID && b.SalonID == salonID {
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// -------- Availability --------

func (f *fakeRepo) GetWorkingHours(_ context.Context, professionalID uint, weekday int) (*models.WorkingHours, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	grid, ok := f.workingHours[professionalID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	wh, ok := grid[weekday]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &wh, nil
}

func (f *fakeRepo) IsWithinWorkingHours(_ context.Context, professionalID uint, start, end time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	grid, ok := f.workingHours[professionalID]
	if !ok {
		return f.defaultOnShift, nil
	}
	wh, ok := grid[int(start.Weekday())]
	if !ok || !wh.Active {
		return false, nil
	}

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse(domain.TimeFormat, hm)
		return time.Date(start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0, start.Location())
	}

	shiftStart := parseHM(wh.StartTime)
	shiftEnd := parseHM(wh.EndTime)

	if start.Before(shiftStart) || end.After(shiftEnd) {
		return false, nil
	}

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		breakStart := parseHM(wh.BreakStart)
		breakEnd := parseHM(wh.BreakEnd)
		if start.Before(breakEnd) && end.After(breakStart) {
			return false, nil
		}
	}

	return true, nil
}

func (f *fakeRepo) ListBookingsForDay(_ context.Context, professionalID uint, start, end time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failListBookings {
		return nil, errAvailabilityStore
	}

	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProfessionalID != professionalID {
			continue
		}
		if !domain.BlocksSlot(domain.Status(b.Status)) {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) ListSalonBookingsForDay(_ context.Context, salonID uint, start, end time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	byID := make(map[uint]models.Professional, len(f.professionals))
	for _, p := range f.professionals {
		byID[p.ID] = p
	}

	var out []models.Booking
	for _, b := range f.bookings {
		if b.SalonID != salonID {
			continue
		}
		if !domain.BlocksSlot(domain.Status(b.Status)) {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		b.Professional = byID[b.ProfessionalID]
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) ListBookingsForPeriod(_ context.Context, professionalID uint, start, end time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProfessionalID != professionalID {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
