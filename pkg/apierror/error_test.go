package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponse_DecodesBackendEnvelope(t *testing.T) {
	body := []byte(`{"statusCode":404,"message":"time não encontrado","traceId":"abc-123"}`)

	err := FromResponse(http.StatusNotFound, body)

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "time não encontrado", err.Message)
	assert.Equal(t, "abc-123", err.TraceID)
	assert.Equal(t, "time não encontrado", err.Error())
}

func TestFromResponse_FallsBackToStatusText(t *testing.T) {
	err := FromResponse(http.StatusBadGateway, []byte("<html>not json</html>"))

	assert.Equal(t, http.StatusBadGateway, err.Status)
	assert.Equal(t, "Bad Gateway", err.Message)
}

func TestFromResponse_BodyStatusNeverWins(t *testing.T) {
	// Some proxies rewrite the body but not the status line.
	err := FromResponse(http.StatusServiceUnavailable, []byte(`{"statusCode":200,"message":"ok"}`))

	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
}

func TestClassHelpers(t *testing.T) {
	httpErr := FromResponse(http.StatusForbidden, nil)
	netErr := Network(errors.New("connection refused"))
	timeoutErr := Timeout(errors.New("deadline"))

	assert.True(t, IsStatus(httpErr, http.StatusForbidden))
	assert.False(t, IsStatus(netErr, http.StatusForbidden))

	assert.True(t, IsNetwork(netErr))
	assert.False(t, IsNetwork(httpErr))

	assert.True(t, IsTimeout(timeoutErr))
	assert.False(t, IsTimeout(netErr))

	got, ok := AsHTTP(httpErr)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, got.Status)
}

func TestValidationCarriesFields(t *testing.T) {
	err := Validation("dados inválidos",
		FieldError{Field: "email", Message: "obrigatório"},
		FieldError{Field: "senha", Message: "obrigatório"},
	)

	assert.Equal(t, "dados inválidos", err.Error())
	assert.Len(t, err.Fields, 2)
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "Invalid credentials", UserMessage(FromResponse(401, []byte(`{"message":"Invalid credentials"}`))))
	assert.Equal(t, "request timed out", UserMessage(Timeout(errors.New("deadline"))))
}
