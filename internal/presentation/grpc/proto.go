package grpc

// proto.go defines the gRPC server interface derived from gatewise/router/v1/router.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/gatewise/payment-router/api/gen/go/gatewise/router/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RouterServiceServer is the server API for RouterService.
// It mirrors the proto-generated interface from gatewise.router.v1.RouterService.
type RouterServiceServer interface {
	RouteTransaction(context.Context, *RouteTransactionRequest) (*RouteTransactionResponse, error)
	ProcessPayment(context.Context, *ProcessPaymentRequest) (*ProcessPaymentResponse, error)
	ListProcessors(context.Context, *ListProcessorsRequestMsg) (*ListProcessorsResponseMsg, error)
	RemoveProcessor(context.Context, *RemoveProcessorRequestMsg) (*RemoveProcessorResponseMsg, error)
	mustEmbedUnimplementedRouterServiceServer()
}

// UnimplementedRouterServiceServer provides forward-compatible default implementations.
type UnimplementedRouterServiceServer struct{}

func (UnimplementedRouterServiceServer) RouteTransaction(context.Context, *RouteTransactionRequest) (*RouteTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RouteTransaction not implemented")
}
func (UnimplementedRouterServiceServer) ProcessPayment(context.Context, *ProcessPaymentRequest) (*ProcessPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessPayment not implemented")
}
func (UnimplementedRouterServiceServer) ListProcessors(context.Context, *ListProcessorsRequestMsg) (*ListProcessorsResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProcessors not implemented")
}
func (UnimplementedRouterServiceServer) RemoveProcessor(context.Context, *RemoveProcessorRequestMsg) (*RemoveProcessorResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveProcessor not implemented")
}
func (UnimplementedRouterServiceServer) mustEmbedUnimplementedRouterServiceServer() {}

// RegisterRouterServiceServer registers the RouterServiceServer with the gRPC server.
func RegisterRouterServiceServer(s *grpclib.Server, srv RouterServiceServer) {
	s.RegisterService(&_RouterService_serviceDesc, srv)
}

var _RouterService_serviceDesc = grpclib.ServiceDesc{ //nolint:revive
	ServiceName: "gatewise.router.v1.RouterService",
	HandlerType: (*RouterServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "RouteTransaction", Handler: _RouterService_RouteTransaction_Handler},
		{MethodName: "ProcessPayment", Handler: _RouterService_ProcessPayment_Handler},
		{MethodName: "ListProcessors", Handler: _RouterService_ListProcessors_Handler},
		{MethodName: "RemoveProcessor", Handler: _RouterService_RemoveProcessor_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _RouterService_RouteTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(RouteTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RouterServiceServer).RouteTransaction(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gatewise.router.v1.RouterService/RouteTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RouterServiceServer).RouteTransaction(ctx, req.(*RouteTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RouterService_ProcessPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ProcessPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RouterServiceServer).ProcessPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gatewise.router.v1.RouterService/ProcessPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RouterServiceServer).ProcessPayment(ctx, req.(*ProcessPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RouterService_ListProcessors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ListProcessorsRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RouterServiceServer).ListProcessors(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gatewise.router.v1.RouterService/ListProcessors",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RouterServiceServer).ListProcessors(ctx, req.(*ListProcessorsRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

func _RouterService_RemoveProcessor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(RemoveProcessorRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RouterServiceServer).RemoveProcessor(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gatewise.router.v1.RouterService/RemoveProcessor",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RouterServiceServer).RemoveProcessor(ctx, req.(*RemoveProcessorRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}
