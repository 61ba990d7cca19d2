package entity

// MedioTransporte medio por el que viaja la mercancía (marítimo, aéreo, terrestre).
type MedioTransporte struct {
	ID      int64
	Tipo    string
	Empresa *string
}
