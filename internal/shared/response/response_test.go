package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca-api/internal/shared/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/authors/1", nil)
	Error(c, err)
	return w
}

func TestErrorMapping(t *testing.T) {
	testCases := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedBody       map[string]string
	}{
		{
			name: "validation",
			err: validation.Errors{
				"name":      errors.New("O nome é obrigatório"),
				"last_name": errors.New("O sobrenome é obrigatório"),
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody: map[string]string{
				"name":      "O nome é obrigatório",
				"last_name": "O sobrenome é obrigatório",
			},
		},
		{
			name:               "not_found",
			err:                fmt.Errorf("get: %w", apperror.NotFound("AUTHOR_NOT_FOUND", "Autor não encontrado")),
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       map[string]string{"message": "Autor não encontrado"},
		},
		{
			name:               "domain_rule",
			err:                apperror.DomainRule("AUTHOR_NOT_REGISTERED", "Autor não cadastrado"),
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]string{"message": "Autor não cadastrado"},
		},
		{
			name:               "internal",
			err:                errors.New("pq: connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       map[string]string{"message": MsgInternalError},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := perform(tc.err)
			assert.Equal(t, tc.expectedStatusCode, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedBody, body)
		})
	}
}

func TestInternalErrorDoesNotLeak(t *testing.T) {
	w := perform(errors.New("dial tcp 10.0.0.3:5432: secret-host"))
	assert.NotContains(t, w.Body.String(), "secret-host")
}

func TestMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	NotFound(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Recurso não encontrado"}`, w.Body.String())
}
