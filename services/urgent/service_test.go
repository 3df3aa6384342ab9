package urgent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"medibook/models"
	"medibook/services/appointment"
)

// fakeAvailability serves windows keyed by doctor and ISO weekday.
type fakeAvailability struct {
	windows map[string]map[int]*models.AvailabilityWindow
	err     error
}

func (f *fakeAvailability) GetActiveWindow(_ context.Context, doctorID string, weekday int) (*models.AvailabilityWindow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.windows[doctorID][weekday], nil
}

func (f *fakeAvailability) UpsertWindow(context.Context, *models.AvailabilityWindow) error {
	return nil
}

func (f *fakeAvailability) ListWindows(context.Context, string) ([]models.AvailabilityWindow, error) {
	return nil, nil
}

// fakeLedger is an in-memory booking ledger.
type fakeLedger struct {
	counts   map[string]int // doctorID|dayKey|block -> active bookings
	countErr error
	created  []*models.Appointment
	tickets  map[string]int
}

func countKey(doctorID string, day time.Time, block string) string {
	return fmt.Sprintf("%s|%s|%s", doctorID, models.DayKey(day), block)
}

func (f *fakeLedger) Insert(_ context.Context, appt *models.Appointment) error {
	f.created = append(f.created, appt)
	return nil
}

func (f *fakeLedger) GetByID(context.Context, string) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeLedger) CountActiveBookings(_ context.Context, doctorID string, day time.Time, block string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[countKey(doctorID, day, block)], nil
}

func (f *fakeLedger) NextTicketNumber(_ context.Context, doctorID string, day time.Time) (int, error) {
	if f.tickets == nil {
		f.tickets = map[string]int{}
	}
	key := doctorID + "|" + models.DayKey(day)
	f.tickets[key]++
	return f.tickets[key], nil
}

func (f *fakeLedger) UpdateStatus(context.Context, string, string) error { return nil }

func (f *fakeLedger) ListByPatient(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeLedger) ListByDoctor(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}

// fakeDoctors serves consultation fees.
type fakeDoctors struct {
	fees map[string]float64
}

func (f *fakeDoctors) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	fee, ok := f.fees[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s not found", id)
	}
	return &models.Doctor{ID: id, ConsultationFee: fee}, nil
}

func (f *fakeDoctors) FindBySpecialty(context.Context, string) ([]models.Doctor, error) {
	return nil, nil
}

// fakeNotifier records pushes and optionally fails them.
type fakeNotifier struct {
	patientPushes []string
	doctorPushes  []string
	fail          bool
}

func (f *fakeNotifier) SendPatientPush(_ context.Context, patientID, _, _ string, _ map[string]string) error {
	if f.fail {
		return errors.New("push failed")
	}
	f.patientPushes = append(f.patientPushes, patientID)
	return nil
}

func (f *fakeNotifier) SendDoctorPush(_ context.Context, doctorID, _, _ string, _ map[string]string) error {
	if f.fail {
		return errors.New("push failed")
	}
	f.doctorPushes = append(f.doctorPushes, doctorID)
	return nil
}

func newTestService(avail *fakeAvailability, ledger *fakeLedger, notifier *fakeNotifier, now time.Time) *DefaultUrgentBookingService {
	return &DefaultUrgentBookingService{
		AvailabilityRepo: avail,
		AppointmentRepo:  ledger,
		Appointments: &appointment.DefaultAppointmentService{
			Repo:       ledger,
			DoctorRepo: &fakeDoctors{fees: map[string]float64{"d1": 500, "d2": 350}},
		},
		Notifier: notifier,
		Now:      func() time.Time { return now },
	}
}

// monday is 2025-03-03, a Monday.
var monday = time.Date(2025, 3, 3, 10, 30, 0, 0, time.UTC)

func mondayWindow(doctorID, start, end string) map[int]*models.AvailabilityWindow {
	return map[int]*models.AvailabilityWindow{
		1: {DoctorID: doctorID, Weekday: 1, IsActive: true, StartTime: start, EndTime: end},
	}
}

func TestFindBestUrgentSlot_SingleDoctorMonday(t *testing.T) {
	avail := &fakeAvailability{windows: map[string]map[int]*models.AvailabilityWindow{
		"d1": mondayWindow("d1", "09:00", "17:00"),
	}}
	ledger := &fakeLedger{counts: map[string]int{}}
	svc := newTestService(avail, ledger, &fakeNotifier{}, monday)

	res := svc.FindBestUrgentSlot(context.Background(), []models.Doctor{{ID: "d1", Name: "Dr. Rahman", Specialty: "Cardiologist"}}, "Cardiologist", "chest pain")

	if !res.Success || !res.NeedsConfirmation {
		t.Fatalf("expected a confirmable proposal, got %+v", res)
	}
	if res.Block != "Morning" {
		t.Errorf("block = %s, want Morning", res.Block)
	}
	if res.TimeRange != "9:00 AM - 12:00 PM" {
		t.Errorf("range = %q, want \"9:00 AM - 12:00 PM\"", res.TimeRange)
	}
	if res.OverlapHours != 3 || res.Capacity != 12 || res.BookedCount != 0 {
		t.Errorf("hours/capacity/load = %d/%d/%d, want 3/12/0", res.OverlapHours, res.Capacity, res.BookedCount)
	}
	if res.Date != "03/03/2025" {
		t.Errorf("date = %s, want 03/03/2025", res.Date)
	}
}

func TestFindBestUrgentSlot_FullDoctorLosesToFreeDoctor(t *testing.T) {
	avail := &fakeAvailability{windows: map[string]map[int]*models.AvailabilityWindow{
		"d1": mondayWindow("d1", "09:00", "12:00"),
		"d2": mondayWindow("d2", "09:00", "12:00"),
	}}
	// Morning capacity for a 3h window is 12. d1 is full, d2 has one unit left.
	ledger := &fakeLedger{counts: map[string]int{
		countKey("d1", monday, "Morning"): 12,
		countKey("d2", monday, "Morning"): 11,
	}}
	svc := newTestService(avail, ledger, &fakeNotifier{}, monday)

	res := svc.FindBestUrgentSlot(context.Background(),
		[]models.Doctor{{ID: "d1"}, {ID: "d2"}}, "Cardiologist", "")

	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.DoctorID != "d2" || res.Block != "Morning" || res.Date != "03/03/2025" {
		t.Errorf("picked %s %s %s, want d2 Morning 03/03/2025", res.DoctorID, res.Block, res.Date)
	}
}

func TestFindBestUrgentSlot_FallbackSchedule(t *testing.T) {
	// Saturday 2025-03-01; nobody has stored availability. The default
	// Mon-Fri 09:00-17:00 schedule should surface Monday's Morning block.
	saturday := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	avail := &fakeAvailability{windows: map[string]map[int]*models.AvailabilityWindow{}}
	ledger := &fakeLedger{counts: map[string]int{}}
	svc := newTestService(avail, ledger, &fakeNotifier{}, saturday)

	res := svc.FindBestUrgentSlot(context.Background(), []models.Doctor{{ID: "d1"}}, "Dermatologist", "")

	if !res.Success {
		t.Fatalf("expected fallback to find a slot, got %+v", res)
	}
	if res.Date != "03/03/2025" || res.Block != "Morning" {
		t.Errorf("got %s %s, want Monday 03/03/2025 Morning", res.Date, res.Block)
	}
}

func TestFindBestUrgentSlot_NoSlotsVersusDataError(t *testing.T) {
	// All blocks at capacity: a clean empty result.
	avail := &fakeAvailability{windows: map[string]map[int]*models.AvailabilityWindow{
		"d1": mondayWindow("d1", "11:30", "12:00"),
	}}
	ledger := &fakeLedger{counts: map[string]int{
		countKey("d1", monday, "Morning"): 4,
	}}
	svc := newTestService(avail, ledger, &fakeNotifier{}, monday)

	res := svc.FindBestUrgentSlot(context.Background(), []models.Doctor{{ID: "d1"}}, "ENT Specialist", "")
	if res.Success || res.IsDataAccessError {
		t.Fatalf("expected clean no-slots result, got %+v", res)
	}
	if !strings.Contains(res.Message, "no appointment slots") {
		t.Errorf("message = %q", res.Message)
	}

	// Broken availability reads: a data-access error, not "no slots".
	broken := &fakeAvailability{err: errors.New("connection reset")}
	svc = newTestService(broken, &fakeLedger{}, &fakeNotifier{}, monday)

	res = svc.FindBestUrgentSlot(context.Background(), []models.Doctor{{ID: "d1"}}, "ENT Specialist", "")
	if res.Success || !res.IsDataAccessError {
		t.Fatalf("expected data-access error, got %+v", res)
	}
}

func TestFindBestUrgentSlot_EmptyDoctorPool(t *testing.T) {
	svc := newTestService(&fakeAvailability{}, &fakeLedger{}, &fakeNotifier{}, monday)
	res := svc.FindBestUrgentSlot(context.Background(), nil, "Cardiologist", "")
	if res.Success || res.IsDataAccessError {
		t.Fatalf("expected plain failure, got %+v", res)
	}
}

func TestConfirmUrgentBooking_PersistsAndNotifies(t *testing.T) {
	ledger := &fakeLedger{}
	notifier := &fakeNotifier{}
	svc := newTestService(&fakeAvailability{}, ledger, notifier, monday)

	res := svc.ConfirmUrgentBooking(context.Background(), models.UrgentConfirmRequest{
		PatientID:   "p1",
		PatientName: "Ayesha",
		DoctorID:    "d1",
		DoctorName:  "Dr. Rahman",
		Specialty:   "Cardiologist",
		Date:        "05/03/2025",
		Block:       "Morning",
		Symptoms:    "chest pain",
	})

	if !res.Success {
		t.Fatalf("confirm failed: %+v", res)
	}
	if res.NeedsConfirmation {
		t.Error("confirmed booking must not ask for confirmation again")
	}
	if len(ledger.created) != 1 {
		t.Fatalf("expected one persisted appointment, got %d", len(ledger.created))
	}

	appt := ledger.created[0]
	if appt.Date != "2025-03-05" {
		t.Errorf("stored day key = %s, want 2025-03-05", appt.Date)
	}
	if appt.ScheduledAt.Day() != 5 || appt.ScheduledAt.Month() != time.March || appt.ScheduledAt.Year() != 2025 {
		t.Errorf("stored date %v does not round-trip 05/03/2025", appt.ScheduledAt)
	}
	if appt.Status != models.AppointmentScheduled {
		t.Errorf("status = %s, want scheduled", appt.Status)
	}
	if appt.TicketNumber != 1 || res.TicketNumber != 1 {
		t.Errorf("ticket = %d/%d, want 1", appt.TicketNumber, res.TicketNumber)
	}
	if appt.Fee != 500 {
		t.Errorf("fee = %v, want 500", appt.Fee)
	}

	if len(notifier.patientPushes) != 1 || len(notifier.doctorPushes) != 1 {
		t.Errorf("pushes = %d patient / %d doctor, want 1/1",
			len(notifier.patientPushes), len(notifier.doctorPushes))
	}
}

func TestConfirmUrgentBooking_NoCapacityRecheck(t *testing.T) {
	// The block is already at capacity, but confirm does not re-count
	// before writing. The write still happens; overbooking under races is
	// accepted behavior.
	ledger := &fakeLedger{counts: map[string]int{
		countKey("d1", time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local), "Morning"): 12,
	}}
	svc := newTestService(&fakeAvailability{}, ledger, &fakeNotifier{}, monday)

	res := svc.ConfirmUrgentBooking(context.Background(), models.UrgentConfirmRequest{
		PatientID: "p1", PatientName: "Ayesha",
		DoctorID: "d1", DoctorName: "Dr. Rahman",
		Date: "05/03/2025", Block: "Morning",
	})

	if !res.Success {
		t.Fatalf("confirm should not re-validate capacity, got %+v", res)
	}
	if len(ledger.created) != 1 {
		t.Fatalf("expected the write to proceed, got %d appointments", len(ledger.created))
	}
}

func TestConfirmUrgentBooking_NotificationFailureDoesNotFailBooking(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestService(&fakeAvailability{}, ledger, &fakeNotifier{fail: true}, monday)

	res := svc.ConfirmUrgentBooking(context.Background(), models.UrgentConfirmRequest{
		PatientID: "p1", PatientName: "Ayesha",
		DoctorID: "d1", DoctorName: "Dr. Rahman",
		Date: "05/03/2025", Block: "Morning",
	})

	if !res.Success {
		t.Fatalf("booking must succeed despite push failures, got %+v", res)
	}
	if len(ledger.created) != 1 {
		t.Fatalf("expected persisted appointment, got %d", len(ledger.created))
	}
}

func TestConfirmUrgentBooking_BadInput(t *testing.T) {
	svc := newTestService(&fakeAvailability{}, &fakeLedger{}, &fakeNotifier{}, monday)

	res := svc.ConfirmUrgentBooking(context.Background(), models.UrgentConfirmRequest{
		PatientID: "p1", PatientName: "A", DoctorID: "d1",
		Date: "2025-03-05", Block: "Morning",
	})
	if res.Success {
		t.Fatal("expected failure on non-wire date format")
	}

	res = svc.ConfirmUrgentBooking(context.Background(), models.UrgentConfirmRequest{
		PatientID: "p1", PatientName: "A", DoctorID: "d1",
		Date: "05/03/2025", Block: "Midnight",
	})
	if res.Success {
		t.Fatal("expected failure on unknown block")
	}
}

func TestIsoWeekday(t *testing.T) {
	if got := isoWeekday(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)); got != 1 {
		t.Errorf("Monday = %d, want 1", got)
	}
	if got := isoWeekday(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)); got != 7 {
		t.Errorf("Sunday = %d, want 7", got)
	}
}
