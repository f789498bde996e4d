package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSupportedTags(t *testing.T) {
	for _, lang := range Langs {
		assert.Equal(t, lang, Resolve(string(lang)))
	}
}

func TestResolveDefaults(t *testing.T) {
	assert.Equal(t, DefaultLang, Resolve(""))
	assert.Equal(t, DefaultLang, Resolve("xx"))
	assert.Equal(t, DefaultLang, Resolve("EN"))
}

func TestDictionaryFallsBackToEnglish(t *testing.T) {
	// Untranslated languages serve the English dictionary.
	assert.Equal(t, Dictionary(LangEN), Dictionary(LangFR))
	assert.Equal(t, Dictionary(LangEN), Dictionary(LangJA))
}

func TestDictionaryTranslated(t *testing.T) {
	es := Dictionary(LangES)
	assert.Equal(t, LangES, es.Lang)
	assert.Equal(t, "Panel médico", es.Doctor.Title)
	assert.NotEqual(t, Dictionary(LangEN).Doctor.Title, es.Doctor.Title)
}

func TestDictionaryIsDeterministic(t *testing.T) {
	assert.Same(t, Dictionary(LangES), Dictionary(LangES))
	assert.Same(t, Dictionary(LangEN), Dictionary("nope"))
}
