package dto

// ContactFormRequest is the fixed rental-contact schema appended to the
// spreadsheet. Field order is the column order.
type ContactFormRequest struct {
	FullName    string  `json:"fullName" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	ZipCode     string  `json:"zipCode" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	RentalDays  float64 `json:"rentalDays" binding:"required"`
	CurrentDate string  `json:"currentDate" binding:"required"`
}

// Row returns the values in column order.
func (r *ContactFormRequest) Row() []interface{} {
	return []interface{}{r.FullName, r.Address, r.City, r.ZipCode, r.Quantity, r.RentalDays, r.CurrentDate}
}
