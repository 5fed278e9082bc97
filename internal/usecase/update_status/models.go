package update_status

// Request модель запроса на смену статуса бронирования
type Request struct {
	BookingID int64
	UserID    int64  // Сотрудник организации
	Status    string // Новый статус: confirmed, checked_in, checked_out
}
