package integration_test

const (
	// User related constants
	TestUserId            = 1
	TestSecondUserId      = 2
	TestUserLoyaltyPoints = 1000

	// Screening related constants
	TestPastScreeningId    = 1
	TestEveningScreeningId = 3
	TestMatineeScreeningId = 4
	TestUnknownScreeningId = 999

	// Seat related constants, hall 1 seats are numbered row by row
	TestStandardSeatId    = 1
	TestVipSeatId         = 33
	TestConcurrentSeatRow = 3
	TestConcurrentSeatCol = 4
	TestConcurrentSeatId  = 20

	TestConcurrentBookings = 10
)
