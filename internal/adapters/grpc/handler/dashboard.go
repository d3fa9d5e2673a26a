package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	dashboardv1 "github.com/ogurasousui/codex-employee-dashboard/internal/adapters/grpc/gen/dashboard/v1"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/auth"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/employee"
)

// DashboardGrpcHandler は DashboardService の gRPC 実装です。
type DashboardGrpcHandler struct {
	employees employee.UseCase
	auth      auth.UseCase
	dashboardv1.UnimplementedDashboardServiceServer
}

var _ dashboardv1.DashboardServiceServer = (*DashboardGrpcHandler)(nil)

// NewDashboardGrpcHandler は DashboardGrpcHandler を生成します。
func NewDashboardGrpcHandler(employees employee.UseCase, authUC auth.UseCase) *DashboardGrpcHandler {
	return &DashboardGrpcHandler{employees: employees, auth: authUC}
}

// Login は認証情報を検証します。不一致は success=false として返します。
func (h *DashboardGrpcHandler) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	email, _, err := stringField(req, "email")
	if err != nil {
		return nil, err
	}
	password, _, err := stringField(req, "password")
	if err != nil {
		return nil, err
	}

	res, err := h.auth.Login(ctx, email, password)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := map[string]interface{}{"success": res.Success}
	if res.Success {
		out["user"] = userValue(h.auth.User())
	} else {
		out["error"] = res.Error
	}
	return newResponse(out)
}

// Logout はセッションを破棄します。
func (h *DashboardGrpcHandler) Logout(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := h.auth.Logout(ctx); err != nil {
		return nil, toStatusError(err)
	}
	return newResponse(map[string]interface{}{})
}

// GetSession は現在の認証状態を返します。
func (h *DashboardGrpcHandler) GetSession(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return newResponse(map[string]interface{}{
		"state": h.auth.State().String(),
		"user":  userValue(h.auth.User()),
	})
}

// ListEmployees は条件に一致する社員と、絞り込み前の件数・集計を返します。
func (h *DashboardGrpcHandler) ListEmployees(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f, err := toFilters(req)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, toStatusError(err)
	}

	shown := h.employees.Filtered(f)
	return newResponse(map[string]interface{}{
		"employees": employeeList(shown),
		"shown":     len(shown),
		"total":     len(h.employees.AllEmployees()),
		"stats":     statsValue(h.employees.Stats()),
	})
}

// GetEmployee は ID で社員を取得します。
func (h *DashboardGrpcHandler) GetEmployee(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requiredID(req)
	if err != nil {
		return nil, err
	}
	found, err := h.employees.Get(id)
	if err != nil {
		return nil, toStatusError(err)
	}
	return newResponse(map[string]interface{}{"employee": employeeValue(found)})
}

// CreateEmployee は社員を追加します。isActive 省略時は在籍として扱います。
func (h *DashboardGrpcHandler) CreateEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields, err := toFields(req)
	if err != nil {
		return nil, err
	}
	created, err := h.employees.Add(ctx, fields)
	if err != nil {
		return nil, toStatusError(err)
	}
	return newResponse(map[string]interface{}{"employee": employeeValue(created)})
}

// UpdateEmployee はリクエストに含まれる項目のみ更新します。
func (h *DashboardGrpcHandler) UpdateEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requiredID(req)
	if err != nil {
		return nil, err
	}
	patch, err := toPatch(req)
	if err != nil {
		return nil, err
	}
	updated, err := h.employees.Update(ctx, id, patch)
	if err != nil {
		return nil, toStatusError(err)
	}
	return newResponse(map[string]interface{}{"employee": employeeValue(updated)})
}

// DeleteEmployee は社員を削除します。存在しない場合は deleted=false を返します。
func (h *DashboardGrpcHandler) DeleteEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requiredID(req)
	if err != nil {
		return nil, err
	}
	deleted, err := h.employees.Delete(ctx, id)
	if err != nil {
		return nil, toStatusError(err)
	}
	return newResponse(map[string]interface{}{"deleted": deleted})
}

// ToggleEmployeeStatus は在籍状態を反転します。
func (h *DashboardGrpcHandler) ToggleEmployeeStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requiredID(req)
	if err != nil {
		return nil, err
	}
	toggled, err := h.employees.ToggleStatus(ctx, id)
	if err != nil {
		return nil, toStatusError(err)
	}
	return newResponse(map[string]interface{}{"employee": employeeValue(toggled)})
}

// GetDashboard は集計値と最近追加された社員を返します。
func (h *DashboardGrpcHandler) GetDashboard(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	limit, set, err := intField(req, "limit")
	if err != nil {
		return nil, err
	}
	if !set {
		limit = employee.DefaultRecentLimit
	}
	if limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	}

	return newResponse(map[string]interface{}{
		"stats":  statsValue(h.employees.Stats()),
		"recent": employeeList(h.employees.Recent(limit)),
	})
}
