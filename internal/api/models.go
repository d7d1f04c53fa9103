package api

// BookingResponse is the JSON body of every /api/booking response.
type BookingResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
