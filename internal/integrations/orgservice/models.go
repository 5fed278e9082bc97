package orgservice

// Organization модель организации (пансионата)
type Organization struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	StaffUserIDs []int64 `json:"staffUserIds"`
}

// IsStaff проверяет, является ли пользователь сотрудником организации
func (o *Organization) IsStaff(userID int64) bool {
	for _, id := range o.StaffUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
