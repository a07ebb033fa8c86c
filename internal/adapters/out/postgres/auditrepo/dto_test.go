package auditrepo

import (
	"encoding/json"
	"testing"
	"time"

	"shipment/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

func TestFromEntry(t *testing.T) {
	t.Run("should keep a known role in its canonical spelling", func(t *testing.T) {
		dto := fromEntry(ports.AuditEntry{ActorRole: "farmer", At: time.Now()})

		assert.Equal(t, "Farmer", dto.ActorRole)
	})

	t.Run("should store an unknown role as Unknown", func(t *testing.T) {
		dto := fromEntry(ports.AuditEntry{ActorRole: "SuperUserWithAVeryLongRoleNameFromTheToken"})

		assert.Equal(t, "Unknown", dto.ActorRole)
	})

	t.Run("should replace NUL escapes in request and response", func(t *testing.T) {
		request, _ := json.Marshal(map[string]string{"reason": "bad\x00reason"})

		dto := fromEntry(ports.AuditEntry{Request: request, Response: json.RawMessage(`["\u0000"]`)})

		assert.NotContains(t, dto.Request, `\u0000`)
		assert.JSONEq(t, `{"reason":"bad�reason"}`, dto.Request)
		assert.JSONEq(t, `["�"]`, dto.Response)
	})
}

func TestStorableJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty becomes null", ``, `null`},
		{"valid document is kept", `{"a":1}`, `{"a":1}`},
		{"escaped backslash before u0000 is kept", `"\\u0000"`, `"\\u0000"`},
		{"NUL after an escaped backslash is replaced", `"\\\u0000"`, `"\\\ufffd"`},
		{"invalid document is stored as a string", `{"a":`, `"{\"a\":"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storableJSON([]byte(tt.raw)))
		})
	}
}
