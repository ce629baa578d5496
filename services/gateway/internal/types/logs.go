package types

import "github.com/arenaforge/duel-server/internal/domain"

type ListLogsReq struct {
	Actor  string `form:"actor,optional"`
	Limit  int    `form:"limit,optional"`
	Offset int    `form:"offset,optional"`
}

type ListLogsResp struct {
	Entries []domain.LogEntry `json:"entries"`
}
