package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		entrada, esperado string
	}{
		{entrada: "Plátano", esperado: "platano"},
		{entrada: "BRÓCOLI", esperado: "brocoli"},
		{entrada: "Maracuyá", esperado: "maracuya"},
		{entrada: "sandía", esperado: "sandia"},
		{entrada: "kiwi", esperado: "kiwi"},
		// en NFD la virgulilla de la eñe es una marca combinante y también se quita
		{entrada: "Ñame", esperado: "name"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, normalizar(c.entrada), "normalizar(%q)", c.entrada)
	}
}

func TestCoincide(t *testing.T) {
	// la búsqueda no distingue mayúsculas ni tildes, en ninguna dirección
	assert.True(t, coincide("Plátano", "platano"))
	assert.True(t, coincide("Platano", "plátano"))
	assert.True(t, coincide("Brócoli verde", "BROCOLI"))
	assert.True(t, coincide("Mango", ""), "filtro vacío coincide con todo")

	assert.False(t, coincide("Mango", "mangosta"))
	assert.False(t, coincide("Pera", "manzana"))
}
