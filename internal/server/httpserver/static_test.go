package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeStatic(t *testing.T) {
	h := newTestServer(&fakeAccounts{}).Router()

	tests := []struct {
		path string
		want string
	}{
		{"/", "<html>index</html>"},
		{"/app.js", "console.log(1)"},
		{"/css/a.css", "body{}"},
		{"/login", "<html>index</html>"},
		{"/some/deep/route", "<html>index</html>"},
		{"/css", "<html>index</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}
