package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/agrocomercio-api/pkg/validate"
)

type dtoDePrueba struct {
	Nombre string `validate:"required,min=2,max=10"`
	Tipo   string `validate:"required,oneof=fruta verdura"`
	Email  string `validate:"omitempty,email"`
}

func TestStruct_Valido(t *testing.T) {
	msg := validate.Struct(dtoDePrueba{Nombre: "Plátano", Tipo: "fruta"})
	assert.Empty(t, msg)
}

func TestStruct_CamposRequeridos(t *testing.T) {
	msg := validate.Struct(dtoDePrueba{})

	assert.Contains(t, msg, "Nombre es requerido")
	assert.Contains(t, msg, "Tipo es requerido")
}

func TestStruct_OneOf(t *testing.T) {
	msg := validate.Struct(dtoDePrueba{Nombre: "Plátano", Tipo: "lácteo"})

	assert.Contains(t, msg, "Tipo debe ser uno de: fruta verdura")
}

func TestStruct_EmailInvalido(t *testing.T) {
	msg := validate.Struct(dtoDePrueba{Nombre: "Plátano", Tipo: "fruta", Email: "no-es-email"})

	assert.Contains(t, msg, "Email no es un email válido")
}

func TestStruct_MinYMax(t *testing.T) {
	assert.Contains(t, validate.Struct(dtoDePrueba{Nombre: "P", Tipo: "fruta"}), "demasiado corto")
	assert.Contains(t, validate.Struct(dtoDePrueba{Nombre: "nombre demasiado largo", Tipo: "fruta"}), "demasiado largo")
}
