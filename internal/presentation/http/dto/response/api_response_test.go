package response

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFileEncodesFilename(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		attachment bool
		header     string
	}{
		{"plain", "Receipt_1_Ramesh_Patel.png", true, "attachment; filename=Receipt_1_Ramesh_Patel.png"},
		{"inline", "Receipt_2_Ramesh_Patel.jpg", false, "inline; filename=Receipt_2_Ramesh_Patel.jpg"},
		{"quote and semicolon", `Receipt_3_A"B;C.pdf`, true, ""},
		{"gujarati", "Receipt_4_રમેશ_પટેલ.png", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			File(c, tt.filename, "image/png", []byte("x"), tt.attachment)

			got := w.Header().Get("Content-Disposition")
			if tt.header != "" && got != tt.header {
				t.Errorf("Content-Disposition = %q, want %q", got, tt.header)
			}
			disposition, params, err := mime.ParseMediaType(got)
			if err != nil {
				t.Fatalf("parse %q: %v", got, err)
			}
			want := "inline"
			if tt.attachment {
				want = "attachment"
			}
			if disposition != want {
				t.Errorf("disposition = %q, want %q", disposition, want)
			}
			if params["filename"] != tt.filename {
				t.Errorf("filename = %q, want %q", params["filename"], tt.filename)
			}
			if w.Code != http.StatusOK || w.Body.String() != "x" {
				t.Errorf("response = %d %q", w.Code, w.Body.String())
			}
		})
	}
}

func TestMetaUsesLoggedRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Request-ID", "from-header")
	c.Set(RequestIDKey, "from-logger")

	OK(c, "ok", nil)

	var body APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Meta == nil || body.Meta.RequestID != "from-logger" {
		t.Errorf("meta = %+v, want request ID from-logger", body.Meta)
	}
}
