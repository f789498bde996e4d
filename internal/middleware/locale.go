package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/dermaconnect/derma-api/internal/i18n"
)

const (
	// LangCookie carries the visitor's language preference.
	LangCookie = "lang"
	// ContextLang is the gin context key for the resolved language.
	ContextLang = "lang"
)

// Locale resolves the request language from the lang cookie, falling
// back to a query parameter and then to English.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag, err := c.Cookie(LangCookie)
		if err != nil || tag == "" {
			tag = c.Query("lang")
		}

		c.Set(ContextLang, i18n.Resolve(tag))
		c.Next()
	}
}

// LangFrom extracts the resolved language from the gin context.
func LangFrom(c *gin.Context) i18n.Lang {
	if v, exists := c.Get(ContextLang); exists {
		if lang, ok := v.(i18n.Lang); ok {
			return lang
		}
	}
	return i18n.DefaultLang
}
