package tests

import (
	"os"
	"testing"

	"taskboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const translationFolder = "../../../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	zap.ReplaceGlobals(zap.NewNop())
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}
