package entity

// LinkStatus is the linking service's answer for a customer. It is
// never cached locally: the link can change from inside the bot without
// this service being told.
type LinkStatus struct {
	IsLinked bool   `json:"isLinked"`
	ChatID   string `json:"chatId,omitempty"`
}

type LinkAccountRequest struct {
	VerificationCode string `json:"verificationCode"`
}

type LinkAccountResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ChatID  string `json:"chatId,omitempty"`
}

// TelegramNotification is forwarded to the linking service, which
// resolves the customer's chat id before delivering.
type TelegramNotification struct {
	UserID  string `json:"userId"`
	OrderID string `json:"orderId,omitempty"`
	Message string `json:"message"`
}
