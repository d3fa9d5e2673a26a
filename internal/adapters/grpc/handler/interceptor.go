package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dashboardv1 "github.com/ogurasousui/codex-employee-dashboard/internal/adapters/grpc/gen/dashboard/v1"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/auth"
)

var publicMethods = map[string]struct{}{
	dashboardv1.DashboardService_Login_FullMethodName:      {},
	dashboardv1.DashboardService_GetSession_FullMethodName: {},
}

// AuthInterceptor はログイン済みでない場合に Login と GetSession 以外の呼び出しを拒否します。
func AuthInterceptor(authUC auth.UseCase) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (interface{}, error) {
		if _, ok := publicMethods[info.FullMethod]; ok {
			return next(ctx, req)
		}
		if !authUC.IsAuthenticated() {
			return nil, status.Error(codes.Unauthenticated, "login required")
		}
		return next(ctx, req)
	}
}
