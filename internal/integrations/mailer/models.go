package mailer

// BookingMailParams параметры шаблона письма-подтверждения.
// Имена полей совпадают с плейсхолдерами почтового шаблона.
type BookingMailParams struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	ServiceName string `json:"service_name"`
	BookingDate string `json:"booking_date"` // DD/MM/YYYY
	BookingTime string `json:"booking_time"` // HH:MM
	Notes       string `json:"notes"`
}

// sendRequest тело запроса EmailJS-совместимого API
type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams BookingMailParams `json:"template_params"`
}
