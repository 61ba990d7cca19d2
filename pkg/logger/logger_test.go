package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/agrocomercio-api/pkg/logger"
)

func TestNew_NivelExplicito(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "error"})

	assert.Equal(t, zerolog.ErrorLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	// Caso 1: nivel desconocido
	l := logger.New(logger.Config{Env: "production", Level: "gritando"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())

	// Caso 2: nivel vacío
	l = logger.New(logger.Config{Env: "production"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNew_EstampaElServicio(t *testing.T) {
	l := logger.New(logger.Config{
		Service: "agrocomercio-api",
		Env:     "production",
		Level:   "info",
	})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("iniciando")

	assert.Contains(t, buf.String(), `"service":"agrocomercio-api"`)
	assert.Contains(t, buf.String(), `"message":"iniciando"`)
}

func TestNew_SinServicioNoEstampaCampo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("hola")

	assert.NotContains(t, buf.String(), `"service"`)
}
