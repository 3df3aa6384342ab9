package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"medibook/models"
)

type memoryLedger struct {
	created   []*models.Appointment
	tickets   map[string]int
	statuses  map[string]string
	insertErr error
}

func (m *memoryLedger) Insert(_ context.Context, appt *models.Appointment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.created = append(m.created, appt)
	return nil
}

func (m *memoryLedger) GetByID(context.Context, string) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (m *memoryLedger) CountActiveBookings(context.Context, string, time.Time, string) (int, error) {
	return 0, nil
}

func (m *memoryLedger) NextTicketNumber(_ context.Context, doctorID string, day time.Time) (int, error) {
	if m.tickets == nil {
		m.tickets = map[string]int{}
	}
	key := doctorID + "|" + models.DayKey(day)
	m.tickets[key]++
	return m.tickets[key], nil
}

func (m *memoryLedger) UpdateStatus(_ context.Context, id, status string) error {
	if m.statuses == nil {
		m.statuses = map[string]string{}
	}
	m.statuses[id] = status
	return nil
}

func (m *memoryLedger) ListByPatient(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}

func (m *memoryLedger) ListByDoctor(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}

type staticDoctors struct {
	fees map[string]float64
}

func (s *staticDoctors) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	fee, ok := s.fees[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s not found", id)
	}
	return &models.Doctor{ID: id, ConsultationFee: fee}, nil
}

func (s *staticDoctors) FindBySpecialty(context.Context, string) ([]models.Doctor, error) {
	return nil, nil
}

func newService(ledger *memoryLedger) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:       ledger,
		DoctorRepo: &staticDoctors{fees: map[string]float64{"d1": 750}},
	}
}

func TestCreate(t *testing.T) {
	ledger := &memoryLedger{}
	svc := newService(ledger)
	date := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)

	appt, err := svc.Create(context.Background(), CreateInput{
		PatientID:   "p1",
		PatientName: "Ayesha",
		DoctorID:    "d1",
		DoctorName:  "Dr. Rahman",
		Specialty:   "Cardiologist",
		Date:        date,
		Block:       "Morning",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if appt.ID == "" {
		t.Error("expected generated id")
	}
	if appt.Status != models.AppointmentScheduled {
		t.Errorf("status = %s, want scheduled", appt.Status)
	}
	if appt.Date != "2025-03-05" {
		t.Errorf("day key = %s, want 2025-03-05", appt.Date)
	}
	if appt.Fee != 750 {
		t.Errorf("fee = %v, want 750", appt.Fee)
	}
	if appt.TicketNumber != 1 {
		t.Errorf("ticket = %d, want 1", appt.TicketNumber)
	}
	if len(ledger.created) != 1 {
		t.Fatalf("persisted %d appointments, want 1", len(ledger.created))
	}
}

func TestCreateTicketsAreSequentialPerDoctorDay(t *testing.T) {
	ledger := &memoryLedger{}
	svc := newService(ledger)
	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	for want := 1; want <= 3; want++ {
		appt, err := svc.Create(context.Background(), CreateInput{
			PatientID: fmt.Sprintf("p%d", want), PatientName: "x",
			DoctorID: "d1", Date: day, Block: "Afternoon",
		})
		if err != nil {
			t.Fatalf("create %d: %v", want, err)
		}
		if appt.TicketNumber != want {
			t.Errorf("ticket = %d, want %d", appt.TicketNumber, want)
		}
	}

	// A different day restarts the sequence.
	appt, err := svc.Create(context.Background(), CreateInput{
		PatientID: "p4", PatientName: "x",
		DoctorID: "d1", Date: day.AddDate(0, 0, 1), Block: "Morning",
	})
	if err != nil {
		t.Fatalf("create next day: %v", err)
	}
	if appt.TicketNumber != 1 {
		t.Errorf("next-day ticket = %d, want 1", appt.TicketNumber)
	}
}

func TestCreateUnknownDoctorDefaultsFeeToZero(t *testing.T) {
	ledger := &memoryLedger{}
	svc := newService(ledger)

	appt, err := svc.Create(context.Background(), CreateInput{
		PatientID: "p1", PatientName: "x",
		DoctorID: "ghost", Date: time.Now(), Block: "Evening",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if appt.Fee != 0 {
		t.Errorf("fee = %v, want 0 when the doctor lookup fails", appt.Fee)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newService(&memoryLedger{})

	if _, err := svc.Create(context.Background(), CreateInput{
		DoctorID: "d1", Date: time.Now(), Block: "Morning",
	}); err == nil {
		t.Error("expected error for missing patient")
	}

	if _, err := svc.Create(context.Background(), CreateInput{
		PatientID: "p1", DoctorID: "d1", Date: time.Now(), Block: "Teatime",
	}); err == nil {
		t.Error("expected error for unknown block")
	}
}

func TestUpdateStatus(t *testing.T) {
	ledger := &memoryLedger{}
	svc := newService(ledger)

	if err := svc.UpdateStatus(context.Background(), "a1", models.AppointmentConfirmed); err != nil {
		t.Fatalf("update: %v", err)
	}
	if ledger.statuses["a1"] != models.AppointmentConfirmed {
		t.Errorf("stored status = %s", ledger.statuses["a1"])
	}

	if err := svc.UpdateStatus(context.Background(), "a1", "archived"); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestCancel(t *testing.T) {
	ledger := &memoryLedger{}
	svc := newService(ledger)

	if err := svc.Cancel(context.Background(), "a1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ledger.statuses["a1"] != models.AppointmentCancelled {
		t.Errorf("stored status = %s, want cancelled", ledger.statuses["a1"])
	}
}
