// Package dashboardv1 は dashboard.v1.DashboardService のサービス定義です。
// リクエストとレスポンスは google.protobuf.Struct で表現し、.proto からのコード生成を行いません。
package dashboardv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName は gRPC のサービス名です。
const ServiceName = "dashboard.v1.DashboardService"

// メソッドのフルネームです。
const (
	DashboardService_Login_FullMethodName                = "/" + ServiceName + "/Login"
	DashboardService_Logout_FullMethodName               = "/" + ServiceName + "/Logout"
	DashboardService_GetSession_FullMethodName           = "/" + ServiceName + "/GetSession"
	DashboardService_ListEmployees_FullMethodName        = "/" + ServiceName + "/ListEmployees"
	DashboardService_GetEmployee_FullMethodName          = "/" + ServiceName + "/GetEmployee"
	DashboardService_CreateEmployee_FullMethodName       = "/" + ServiceName + "/CreateEmployee"
	DashboardService_UpdateEmployee_FullMethodName       = "/" + ServiceName + "/UpdateEmployee"
	DashboardService_DeleteEmployee_FullMethodName       = "/" + ServiceName + "/DeleteEmployee"
	DashboardService_ToggleEmployeeStatus_FullMethodName = "/" + ServiceName + "/ToggleEmployeeStatus"
	DashboardService_GetDashboard_FullMethodName         = "/" + ServiceName + "/GetDashboard"
)

// DashboardServiceServer はサーバー側の実装が満たすインターフェースです。
type DashboardServiceServer interface {
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Logout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListEmployees(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleEmployeeStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDashboard(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedDashboardServiceServer は未実装メソッドに Unimplemented を返します。
type UnimplementedDashboardServiceServer struct{}

func (UnimplementedDashboardServiceServer) Login(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedDashboardServiceServer) Logout(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedDashboardServiceServer) GetSession(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedDashboardServiceServer) ListEmployees(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmployees not implemented")
}
func (UnimplementedDashboardServiceServer) GetEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmployee not implemented")
}
func (UnimplementedDashboardServiceServer) CreateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateEmployee not implemented")
}
func (UnimplementedDashboardServiceServer) UpdateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEmployee not implemented")
}
func (UnimplementedDashboardServiceServer) DeleteEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteEmployee not implemented")
}
func (UnimplementedDashboardServiceServer) ToggleEmployeeStatus(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleEmployeeStatus not implemented")
}
func (UnimplementedDashboardServiceServer) GetDashboard(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDashboard not implemented")
}

type unaryMethod func(DashboardServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DashboardServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(DashboardServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// DashboardService_ServiceDesc は grpc.ServiceDesc です。
var DashboardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DashboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: unaryHandler(DashboardService_Login_FullMethodName, DashboardServiceServer.Login)},
		{MethodName: "Logout", Handler: unaryHandler(DashboardService_Logout_FullMethodName, DashboardServiceServer.Logout)},
		{MethodName: "GetSession", Handler: unaryHandler(DashboardService_GetSession_FullMethodName, DashboardServiceServer.GetSession)},
		{MethodName: "ListEmployees", Handler: unaryHandler(DashboardService_ListEmployees_FullMethodName, DashboardServiceServer.ListEmployees)},
		{MethodName: "GetEmployee", Handler: unaryHandler(DashboardService_GetEmployee_FullMethodName, DashboardServiceServer.GetEmployee)},
		{MethodName: "CreateEmployee", Handler: unaryHandler(DashboardService_CreateEmployee_FullMethodName, DashboardServiceServer.CreateEmployee)},
		{MethodName: "UpdateEmployee", Handler: unaryHandler(DashboardService_UpdateEmployee_FullMethodName, DashboardServiceServer.UpdateEmployee)},
		{MethodName: "DeleteEmployee", Handler: unaryHandler(DashboardService_DeleteEmployee_FullMethodName, DashboardServiceServer.DeleteEmployee)},
		{MethodName: "ToggleEmployeeStatus", Handler: unaryHandler(DashboardService_ToggleEmployeeStatus_FullMethodName, DashboardServiceServer.ToggleEmployeeStatus)},
		{MethodName: "GetDashboard", Handler: unaryHandler(DashboardService_GetDashboard_FullMethodName, DashboardServiceServer.GetDashboard)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dashboard/v1/dashboard.proto",
}

// RegisterDashboardServiceServer は srv をサービスとして登録します。
func RegisterDashboardServiceServer(s grpc.ServiceRegistrar, srv DashboardServiceServer) {
	s.RegisterService(&DashboardService_ServiceDesc, srv)
}

// DashboardServiceClient はクライアント側のインターフェースです。
type DashboardServiceClient interface {
	Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Logout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListEmployees(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ToggleEmployeeStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetDashboard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type dashboardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDashboardServiceClient はクライアントを生成します。
func NewDashboardServiceClient(cc grpc.ClientConnInterface) DashboardServiceClient {
	return &dashboardServiceClient{cc: cc}
}

func (c *dashboardServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DashboardService_Login_FullMethodName, in, opts...)
}

func (c *dashboardServiceClient) Logout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DashboardService_Logout_FullMethodName, in, opts...)
}

func (c *dashboardServiceClient) GetSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DashboardService_GetSession_FullMethodName, in, opts...)
}

func (c *dashboardServiceClient) ListEmployees(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DashboardService_ListEmployees_FullMethodName, in, opts...)
}

func (c *dashboardServiceClient) GetEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DashboardService_GetEmployee_FullMethodName, in, opts...)
}

func (c *dashboardServiceClient) CreateEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DashboardService_CreateEmployee_FullMethodName, in, opts...)
}

func (c *dashboardServiceClient) UpdateEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DashboardService_UpdateEmployee_FullMethodName, in, opts...)
}

func (c *dashboardServiceClient) DeleteEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DashboardService_DeleteEmployee_FullMethodName, in, opts...)
}

func (c *dashboardServiceClient) ToggleEmployeeStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DashboardService_ToggleEmployeeStatus_FullMethodName, in, opts...)
}

func (c *dashboardServiceClient) GetDashboard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DashboardService_GetDashboard_FullMethodName, in, opts...)
}
