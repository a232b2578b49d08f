// Package tasklistv1 holds the tasklist.v1.TaskListService contract. The
// service is defined over protobuf well-known types, see
// api/tasklist/v1/tasklist.proto.
package tasklistv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	TaskListService_AddTask_FullMethodName    = "/tasklist.v1.TaskListService/AddTask"
	TaskListService_ToggleTask_FullMethodName = "/tasklist.v1.TaskListService/ToggleTask"
	TaskListService_DeleteTask_FullMethodName = "/tasklist.v1.TaskListService/DeleteTask"
	TaskListService_SetFilter_FullMethodName  = "/tasklist.v1.TaskListService/SetFilter"
	TaskListService_GetView_FullMethodName    = "/tasklist.v1.TaskListService/GetView"
	TaskListService_WatchView_FullMethodName  = "/tasklist.v1.TaskListService/WatchView"
)

type TaskListServiceClient interface {
	AddTask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ToggleTask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteTask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SetFilter(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetView(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	WatchView(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (TaskListService_WatchViewClient, error)
}

type taskListServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTaskListServiceClient(cc grpc.ClientConnInterface) TaskListServiceClient {
	return &taskListServiceClient{cc}
}

func (c *taskListServiceClient) AddTask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TaskListService_AddTask_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskListServiceClient) ToggleTask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, TaskListService_ToggleTask_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskListServiceClient) DeleteTask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, TaskListService_DeleteTask_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskListServiceClient) SetFilter(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, TaskListService_SetFilter_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskListServiceClient) GetView(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TaskListService_GetView_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskListServiceClient) WatchView(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (TaskListService_WatchViewClient, error) {
	stream, err := c.cc.NewStream(ctx, &TaskListService_ServiceDesc.Streams[0], TaskListService_WatchView_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &taskListServiceWatchViewClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type TaskListService_WatchViewClient interface {
	Recv() (*structpb.Struct, error)
	grpc.ClientStream
}

type taskListServiceWatchViewClient struct {
	grpc.ClientStream
}

func (x *taskListServiceWatchViewClient) Recv() (*structpb.Struct, error) {
	m := new(structpb.Struct)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// TaskListServiceServer must embed UnimplementedTaskListServiceServer.
type TaskListServiceServer interface {
	AddTask(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ToggleTask(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	DeleteTask(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	SetFilter(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	GetView(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	WatchView(*emptypb.Empty, TaskListService_WatchViewServer) error
	mustEmbedUnimplementedTaskListServiceServer()
}

type UnimplementedTaskListServiceServer struct{}

func (UnimplementedTaskListServiceServer) AddTask(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddTask not implemented")
}
func (UnimplementedTaskListServiceServer) ToggleTask(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleTask not implemented")
}
func (UnimplementedTaskListServiceServer) DeleteTask(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteTask not implemented")
}
func (UnimplementedTaskListServiceServer) SetFilter(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SetFilter not implemented")
}
func (UnimplementedTaskListServiceServer) GetView(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetView not implemented")
}
func (UnimplementedTaskListServiceServer) WatchView(*emptypb.Empty, TaskListService_WatchViewServer) error {
	return status.Error(codes.Unimplemented, "method WatchView not implemented")
}
func (UnimplementedTaskListServiceServer) mustEmbedUnimplementedTaskListServiceServer() {}

func RegisterTaskListServiceServer(s grpc.ServiceRegistrar, srv TaskListServiceServer) {
	s.RegisterService(&TaskListService_ServiceDesc, srv)
}

func _TaskListService_AddTask_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskListServiceServer).AddTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TaskListService_AddTask_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TaskListServiceServer).AddTask(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaskListService_ToggleTask_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskListServiceServer).ToggleTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TaskListService_ToggleTask_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TaskListServiceServer).ToggleTask(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaskListService_DeleteTask_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskListServiceServer).DeleteTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TaskListService_DeleteTask_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TaskListServiceServer).DeleteTask(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaskListService_SetFilter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskListServiceServer).SetFilter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TaskListService_SetFilter_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TaskListServiceServer).SetFilter(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaskListService_GetView_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskListServiceServer).GetView(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TaskListService_GetView_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TaskListServiceServer).GetView(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaskListService_WatchView_Handler(srv any, stream grpc.ServerStream) error {
	m := new(emptypb.Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(TaskListServiceServer).WatchView(m, &taskListServiceWatchViewServer{stream})
}

type TaskListService_WatchViewServer interface {
	Send(*structpb.Struct) error
	grpc.ServerStream
}

type taskListServiceWatchViewServer struct {
	grpc.ServerStream
}

func (x *taskListServiceWatchViewServer) Send(m *structpb.Struct) error {
	return x.ServerStream.SendMsg(m)
}

var TaskListService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tasklist.v1.TaskListService",
	HandlerType: (*TaskListServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddTask", Handler: _TaskListService_AddTask_Handler},
		{MethodName: "ToggleTask", Handler: _TaskListService_ToggleTask_Handler},
		{MethodName: "DeleteTask", Handler: _TaskListService_DeleteTask_Handler},
		{MethodName: "SetFilter", Handler: _TaskListService_SetFilter_Handler},
		{MethodName: "GetView", Handler: _TaskListService_GetView_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchView",
			Handler:       _TaskListService_WatchView_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "tasklist/v1/tasklist.proto",
}
