package dto

// LoginRequest - mock-логин: креденшелы не проверяются по базе, но обязаны
// быть непустыми
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

type SessionResponse struct {
	IsAuthenticated bool `json:"is_authenticated"`
}
