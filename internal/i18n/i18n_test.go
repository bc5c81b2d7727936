package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, language.English, tr.Match(""))
	assert.Equal(t, language.Spanish, tr.Match("es-CL,es;q=0.9,en;q=0.8"))
	assert.Equal(t, language.English, tr.Match("fr-FR"))
	assert.Equal(t, language.English, tr.Match(";;garbage"))
}

func TestLocalizer_T(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	en := tr.Localizer("")
	assert.Equal(t, "client not found with id: 7",
		en.T("NotFound", map[string]any{"Resource": en.T("ResourceClient", nil), "ID": 7}))

	es := tr.Localizer("es")
	assert.Equal(t, "cliente no encontrado con id: 7",
		es.T("NotFound", map[string]any{"Resource": es.T("ResourceClient", nil), "ID": 7}))
	assert.Equal(t, "nombre no puede estar vacío", es.T("RuleNotBlank", map[string]any{"Field": "nombre"}))

	assert.Equal(t, "NoSuchMessage", en.T("NoSuchMessage", nil))
}

func TestNew_SpanishDefault(t *testing.T) {
	tr, err := New("es")
	require.NoError(t, err)
	assert.Equal(t, "error interno del servidor", tr.Localizer("de").T("InternalError", nil))
}

func TestNew_BadLanguage(t *testing.T) {
	_, err := New("not a tag!")
	assert.Error(t, err)
}
