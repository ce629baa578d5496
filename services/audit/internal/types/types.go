package types

import "github.com/arenaforge/duel-server/internal/domain"

// AppendReq mirrors persistenceapi.AppendLogReq. Any service in the mesh
// may append an entry; the write path is best-effort per §4.6 — a logging
// failure must never abort the caller's enclosing operation, so Append
// never returns an error a caller is expected to act on beyond logging it.
type AppendReq struct {
	Action  string                 `json:"action"`
	Actor   *string                `json:"actor,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ListReq is the paginated read. Subject is the admin account doing the
// reading — the gateway has already confirmed Subject.Admin is true before
// routing here (the same division of responsibility as identity's
// ListAccounts); audit records Subject itself as the actor of a reflexive
// "admin_viewed_logs" entry.
type ListReq struct {
	Subject string `json:"subject"`
	Actor   string `json:"actor,omitempty"`
	Limit   int    `json:"limit,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

type ListResp struct {
	Entries []domain.LogEntry `json:"entries"`
}
