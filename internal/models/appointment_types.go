package models

import "time"

// Appointment status lifecycle. The customer can only cancel while Pending;
// Approved and Rejected are set by clinic staff.
const (
	AppointmentStatusPending   = "Pending"
	AppointmentStatusApproved  = "Approved"
	AppointmentStatusRejected  = "Rejected"
	AppointmentStatusCancelled = "Cancelled"
)

// PetTypes are the pet choices on the booking form. "Others" requires a
// free-text pet name which replaces the type on the record.
var PetTypes = []string{"Cats", "Dogs", "Birds", "Rabbits", "Hamsters", "Others"}

// Services offered by the clinic.
var Services = []string{
	"Consultation",
	"Vaccination",
	"Surgery",
	"Blood Test",
	"Confinement",
	"Ultrasound",
	"Home Service",
	"Pet Grooming",
	"Fecalysis",
	"Microchip",
	"Titer",
	"Health Certificate",
	"Tick & Flea Prevention",
	"Deworming",
}

// TimeSlots are the only bookable windows; appointments are not scheduled at
// arbitrary times.
var TimeSlots = []string{"8:00 AM - 12:00 PM", "1:00 PM - 6:00 PM"}

// AppointmentDateLayout is the wire format for appointment dates.
const AppointmentDateLayout = "2006-01-02"

// Appointment is the model for the 'appointments' table.
type Appointment struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"userId" db:"user_id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	ContactNumber   string    `json:"contactNumber" db:"contact_number"`
	TypeOfPet       string    `json:"typeOfPet" db:"type_of_pet"`
	Service         string    `json:"service" db:"service"`
	Condition       string    `json:"condition" db:"pet_condition"`
	AppointmentDate string    `json:"appointmentDate" db:"appointment_date"`
	AppointmentTime string    `json:"appointmentTime" db:"appointment_time"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

func ValidPetType(pet string) bool {
	return contains(PetTypes, pet)
}

func ValidService(service string) bool {
	return contains(Services, service)
}

func ValidTimeSlot(slot string) bool {
	return contains(TimeSlots, slot)
}

// ValidAppointmentDate accepts a correctly formatted date that is today or
// later; the booking calendar never offers past dates.
func ValidAppointmentDate(date string, now time.Time) bool {
	d, err := time.ParseInLocation(AppointmentDateLayout, date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

// CanCancelAppointment gates user-initiated cancellation.
func CanCancelAppointment(status string) bool {
	return status == AppointmentStatusPending
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
