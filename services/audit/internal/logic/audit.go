package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/services/audit/internal/svc"
	"github.com/arenaforge/duel-server/services/audit/internal/types"
)

// AuditLogic fronts the append-only log table C1 already stores, the same
// way the rest of this mesh treats persistence as the single owner of
// durable state. Identity and the Game Coordinator hold their own
// persistence client and append entries directly as part of the same
// request that triggered them (login, invitation, game completion, ...) —
// going through this service for every one of those writes would add a hop
// with no benefit. What this service owns is the admin-gated read, and an
// Append entry point for any caller that does not already hold a
// persistence client of its own.
type AuditLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewAuditLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AuditLogic {
	return &AuditLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// Append records a log entry. The write path is best-effort per §4.6: a
// failure is logged here and swallowed rather than surfaced, since the
// caller's own operation has already completed by the time it reaches the
// audit trail.
func (l *AuditLogic) Append(req *types.AppendReq) {
	if err := l.svcCtx.Persistence.AppendLog(l.ctx, &persistenceapi.AppendLogReq{
		Action: req.Action, Actor: req.Actor, Details: req.Details,
	}); err != nil {
		l.Logger.Errorf("audit: append %q failed: %v", req.Action, err)
	}
}

// List implements the paginated read. The gateway has already confirmed
// req.Subject is an admin before routing the call here; List itself
// records the read as an "admin_viewed_logs" entry, so an admin browsing
// the trail leaves a trail of their own.
func (l *AuditLogic) List(req *types.ListReq) (*types.ListResp, error) {
	resp, err := l.svcCtx.Persistence.ListLogs(l.ctx, &persistenceapi.ListLogsReq{
		Actor: req.Actor, Limit: req.Limit, Offset: req.Offset,
	})
	if err != nil {
		return nil, err
	}

	subject := req.Subject
	l.Append(&types.AppendReq{
		Action: "admin_viewed_logs",
		Actor:  &subject,
		Details: map[string]interface{}{
			"actor_filter": req.Actor,
			"limit":        req.Limit,
			"offset":       req.Offset,
		},
	})

	return &types.ListResp{Entries: resp.Entries}, nil
}
