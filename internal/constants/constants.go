package constants

const (
	AppName          = "property-manager"
	OrganizationName = "Property Manager"
)

// Rent Reminder Scheduling
const (
	// 08:00 UTC daily
	RentReminderCronSpec = "0 8 * * *"
)
