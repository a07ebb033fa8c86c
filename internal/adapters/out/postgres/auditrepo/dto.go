// Package auditrepo stores the API call log in the api_logs table.
package auditrepo

import (
	"bytes"
	"encoding/json"
	"time"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/ports"

	"github.com/google/uuid"
)

// APILogDTO is one row of api_logs.
type APILogDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Method    string
	ActorID   *uuid.UUID `gorm:"type:uuid"`
	ActorRole string
	Request   string `gorm:"type:jsonb"`
	Response  string `gorm:"type:jsonb"`
	Outcome   string
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (APILogDTO) TableName() string {
	return "api_logs"
}

func fromEntry(e ports.AuditEntry) APILogDTO {
	dto := APILogDTO{
		Method:    e.Method,
		ActorRole: roleName(e.ActorRole),
		Request:   storableJSON(e.Request),
		Response:  storableJSON(e.Response),
		Outcome:   e.Outcome,
		CreatedAt: e.At,
	}
	if id, err := uuid.Parse(e.ActorID); err == nil {
		dto.ActorID = &id
	}
	return dto
}

// roleName maps anything that is not a known role to "Unknown".
func roleName(s string) string {
	r, err := actor.RoleFromString(s)
	if err != nil {
		return actor.UnknownRole.String()
	}
	return r.String()
}

// storableJSON returns raw as text PostgreSQL accepts in a jsonb column.
// Invalid documents are stored as a JSON string and \u0000 escapes are
// replaced with U+FFFD.
func storableJSON(raw []byte) string {
	if len(raw) == 0 {
		return "null"
	}
	if !json.Valid(raw) {
		quoted, _ := json.Marshal(string(raw))
		raw = quoted
	}
	return string(replaceNULEscapes(raw))
}

var nulEscape = []byte(`\u0000`)

func replaceNULEscapes(raw []byte) []byte {
	if !bytes.Contains(raw, nulEscape) {
		return raw
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			out = append(out, raw[i])
			continue
		}
		if bytes.HasPrefix(raw[i:], nulEscape) {
			out = append(out, `\ufffd`...)
			i += len(nulEscape) - 1
			continue
		}
		out = append(out, raw[i], raw[i+1])
		i++
	}
	return out
}
