package domain

// Size band thresholds in centimetres (withers height)
const (
	SmallMaxHeightCm  = 35.0 // < 35 cm → small
	MediumMaxHeightCm = 55.0 // < 55 cm → medium, otherwise large
)

// Business validation constants
const (
	MaxStayNights               = 365
	MaxReportWindowDays         = 366
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxPolicyDescriptionLength  = 1000
	MaxCancellationTiers        = 10
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, при которых бронирование не занимает комнату
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCheckedOut,
}

// ActiveStatuses список статусов активных бронирований
// Используется при проверке пересечения по комнате
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}
