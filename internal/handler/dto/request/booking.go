package request

type CreateBookingRequest struct {
	FlightNumber string `json:"flightNumber" binding:"required"`
}

type BotBookingRequest struct {
	FlightNumber string `json:"flightNumber" binding:"required"`
	DiscordID    string `json:"discordId" binding:"required"`
	Username     string `json:"username" binding:"required"`
	BotToken     string `json:"botToken" binding:"required"`
}
