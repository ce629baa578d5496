// Package auditapi holds the wire contract for the Audit Log service (C6),
// shared by every other service that calls it through internal/trustplane.Client
// — in practice just the Ingress Gateway (C7), which is the only caller
// allowed to assert a subject's admin flag. Mirrors services/audit/internal/types
// field-for-field for the same reason internal/persistenceapi, internal/cardsapi,
// internal/gameapi, and internal/leaderboardapi do.
package auditapi

import "github.com/arenaforge/duel-server/internal/domain"

const (
	BasePath = "/internal/audit"

	PathAppend = BasePath + "/append"
	PathList   = BasePath + "/list"
)

type AppendReq struct {
	Action  string                 `json:"action"`
	Actor   *string                `json:"actor,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type ListReq struct {
	Subject string `json:"subject"`
	Actor   string `json:"actor,omitempty"`
	Limit   int    `json:"limit,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

type ListResp struct {
	Entries []domain.LogEntry `json:"entries"`
}
