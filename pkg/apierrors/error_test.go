package apierrors_test

import (
	"os"
	"taskboard/pkg/apierrors"
	"taskboard/pkg/translator"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		return
	}
	err = translator.Translator.AddMessages(language.French, &i18n.Message{
		ID:    "test_key",
		Other: "Message de test",
	})
	if err != nil {
		return
	}
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en")
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
	assert.Nil(t, err.ErrDetails.Fields)
}

func TestCreateError_Translates(t *testing.T) {
	err := apierrors.CreateError(404, "test_key", "fr")
	assert.Equal(t, "Message de test", err.ErrDetails.Message)
}

func TestCreateFieldError_CarriesFields(t *testing.T) {
	err := apierrors.CreateFieldError(400, "test_key", "en", map[string]string{"title": "Title is required"})
	assert.Equal(t, "Title is required", err.ErrDetails.Fields["title"])

	err = apierrors.CreateFieldError(400, "test_key", "en", nil)
	assert.Nil(t, err.ErrDetails.Fields)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en")
	assert.Equal(t, "Code: 500, Message: Test message", err.Error())
}
