package repo

// PharmacyContextStore хранит имя активной аптеки (аналог последнего логина).
type PharmacyContextStore interface {
	SavePharmacy(name string) error
	LoadPharmacy() (string, error)
	ClearPharmacy() error
}
