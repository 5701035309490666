package handlers

import (
	userRepo "courtside/database/repository/user"
)

// HandlerBundle groups the handlers and the repositories route registration
// needs for middleware wiring.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Booking *BookingHandler
	User    *UserHandler
	Sport   *SportHandler
	Admin   *AdminHandler
}
