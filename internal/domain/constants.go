package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinPhoneLength    = 10
	MaxPhoneLength    = 20
	MaxNameLength     = 100
	MaxNumberLength   = 10
	MaxIDNumberLength = 50
)
