package entities

// BookingRequest is the payload posted by the booking form. All fields are
// plain text; dates are YYYY-MM-DD and times HH:MM, no timezone handling.
type BookingRequest struct {
	Locale             string   `json:"locale"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	Company            string   `json:"company"`
	City               string   `json:"city"`
	PostalCode         string   `json:"postalCode"`
	Address            string   `json:"address"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Reason             []string `json:"reason"`
	NumberOfSpots      string   `json:"numberOfSpots"`
	RequiredLength     string   `json:"requiredLength"`
	StartDate          string   `json:"startDate"`
	StartTime          string   `json:"startTime"`
	EndDate            string   `json:"endDate"`
	EndTime            string   `json:"endTime"`
	VehicleDescription string   `json:"vehicleDescription"`
}

// BookingEmailData feeds the staff notification template.
type BookingEmailData struct {
	FirstName          string
	LastName           string
	Company            string
	City               string
	PostalCode         string
	Address            string
	Email              string
	Phone              string
	ReasonLine         string
	NumberOfSpots      string
	RequiredLength     string
	StartDate          string
	StartTime          string
	EndDate            string
	EndTime            string
	VehicleDescription string
}
