package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/service"
)

func TestIntField(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    int
		wantErr bool
	}{
		{"whole number", 4.0, 4, false},
		{"negative", -3.0, -3, false},
		{"numeric string", " 5 ", 5, false},
		{"fraction", 4.5, 0, true},
		{"above int range", 1e19, 0, true},
		{"far above int range", 1e300, 0, true},
		{"far below int range", -1e300, 0, true},
		{"string overflow", "99999999999999999999", 0, true},
		{"not a number", "five", 0, true},
		{"bool", true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := intField(map[string]interface{}{"rating": tt.value}, "rating")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntField_Missing(t *testing.T) {
	_, err := intField(map[string]interface{}{}, "rating")
	assert.ErrorIs(t, err, service.ErrMissingField)
}

func TestBindObject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"object", `{"review":"ok","extra":null}`, false},
		{"empty object", `{}`, false},
		{"null", `null`, true},
		{"array", `["review"]`, true},
		{"truncated", `{"review":`, true},
		{"empty body", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			body, err := bindObject(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, body)
		})
	}
}
