package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"taskboard/pkg/translator"
)

func TestLanguageMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	cases := map[string]string{
		"":                  translator.LanguageEn,
		"fr-FR,fr;q=0.9":    translator.LanguageFr,
		"de-DE":             translator.LanguageEn,
		"en-US,en;q=0.8,fr": translator.LanguageEn,
	}

	for header, want := range cases {
		r := gin.New()
		r.Use(LanguageMiddleware())
		var got string
		r.GET("/", func(c *gin.Context) {
			got = GetLang(c)
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, want, got, header)
	}
}

func TestGetLang_DefaultsToEnglish(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, translator.LanguageEn, GetLang(c))
}
