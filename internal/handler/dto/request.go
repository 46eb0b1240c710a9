package dto

type CreateBookingRequest struct {
	CarID     string  `json:"car_id" binding:"required,uuid"`
	DriverID  *string `json:"driver_id" binding:"omitempty,uuid"`
	AccountID *string `json:"account_id" binding:"omitempty,uuid"`
	GuestName *string `json:"guest_name"`
	StartAt   string  `json:"start_at" binding:"required"`
	EndAt     *string `json:"end_at"`
	Note      string  `json:"note" binding:"max=500"`
}

type CreateCarRequest struct {
	Name     string `json:"name" binding:"required"`
	Model    string `json:"model"`
	Plate    string `json:"plate" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type CreateDriverRequest struct {
	Name     string `json:"name" binding:"required"`
	License  string `json:"license"`
	IsActive *bool  `json:"is_active"`
}

type CreateAccountRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
