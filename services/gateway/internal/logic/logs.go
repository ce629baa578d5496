package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/auditapi"
	"github.com/arenaforge/duel-server/services/gateway/internal/middleware"
	"github.com/arenaforge/duel-server/services/gateway/internal/svc"
	"github.com/arenaforge/duel-server/services/gateway/internal/types"
)

type LogsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewLogsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LogsLogic {
	return &LogsLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// List is only reachable once RequireAdmin has passed (wired in routes.go),
// so every caller here is already confirmed admin; Subject is carried
// through so the audit service can record who looked.
func (l *LogsLogic) List(req *types.ListLogsReq) (*types.ListLogsResp, error) {
	resp, err := l.svcCtx.Audit.List(l.ctx, &auditapi.ListReq{
		Subject: middleware.Subject(l.ctx), Actor: req.Actor,
		Limit: req.Limit, Offset: req.Offset,
	})
	if err != nil {
		return nil, err
	}
	return &types.ListLogsResp{Entries: resp.Entries}, nil
}
