package logic

import (
	"context"
	"encoding/json"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/services/persistence/internal/svc"
	"github.com/arenaforge/duel-server/services/persistence/internal/types"
)

type LogLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewLogLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LogLogic {
	return &LogLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// Append writes one audit entry. Per §4.6, logging is best-effort: callers
// (notably the gateway and game coordinator) fire-and-forget this call and
// never fail their own operation on its error, so this method's only job is
// to make the write itself correct.
func (l *LogLogic) Append(req *types.AppendLogReq) error {
	details, err := json.Marshal(req.Details)
	if err != nil {
		return apierr.Invalidf("details must be JSON-serializable: %v", err)
	}
	entry := &domain.LogEntry{Action: req.Action, Actor: req.Actor, Details: string(details)}
	if err := l.svcCtx.Store.AppendLog(l.ctx, entry); err != nil {
		l.Logger.Errorf("append log failed: %v", err)
		return apierr.Internalf("append log: %v", err)
	}
	return nil
}

func (l *LogLogic) List(req *types.ListLogsReq) (*types.ListLogsResp, error) {
	limit := req.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	entries, err := l.svcCtx.Store.ListLogs(l.ctx, req.Actor, limit, req.Offset)
	if err != nil {
		return nil, apierr.Internalf("list logs: %v", err)
	}
	return &types.ListLogsResp{Entries: entries}, nil
}
