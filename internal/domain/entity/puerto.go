package entity

// Puerto terminal marítima, aérea o terrestre. Siempre pertenece a un país;
// una operación que lo referencia como origen/destino debe declarar ese mismo país.
type Puerto struct {
	ID     int64
	Nombre string
	Tipo   *string
	PaisID int64
}
