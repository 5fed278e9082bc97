package dogregistry

// Dog модель собаки из реестра
type Dog struct {
	ID          int64    `json:"id"`
	OwnerUserID int64    `json:"ownerUserId"`
	Name        string   `json:"name"`
	Breed       string   `json:"breed"`
	HeightCm    *float64 `json:"heightCm,omitempty"` // рост в холке, может быть не указан
}
