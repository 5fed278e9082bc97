package create_booking

import (
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64      // ID владельца собаки (из X-User-ID)
	OrgID     int64      // ID пансионата
	DogID     int64      // ID собаки в реестре
	RoomID    *int64     // Комната (опционально, без неё бронирование ждёт подтверждения)
	Tier      string     // budget, standard, premium
	StartDate types.Date // Дата заезда
	EndDate   types.Date // Дата выезда
	Notes     *string    // Пожелания (опционально)
}
