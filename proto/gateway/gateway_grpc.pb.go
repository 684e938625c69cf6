// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: gateway.proto

package gateway

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	BridgeGatewayService_PrepareAdminRegisterProfile_FullMethodName = "/bridge.gateway.v1.BridgeGatewayService/PrepareAdminRegisterProfile"
	BridgeGatewayService_PrepareUserCreateProfile_FullMethodName    = "/bridge.gateway.v1.BridgeGatewayService/PrepareUserCreateProfile"
	BridgeGatewayService_PrepareUserDeposit_FullMethodName          = "/bridge.gateway.v1.BridgeGatewayService/PrepareUserDeposit"
	BridgeGatewayService_PrepareUserDispatchCommand_FullMethodName  = "/bridge.gateway.v1.BridgeGatewayService/PrepareUserDispatchCommand"
	BridgeGatewayService_PrepareLogAction_FullMethodName            = "/bridge.gateway.v1.BridgeGatewayService/PrepareLogAction"
	BridgeGatewayService_PrepareAdminBanUser_FullMethodName         = "/bridge.gateway.v1.BridgeGatewayService/PrepareAdminBanUser"
	BridgeGatewayService_ListenAsUser_FullMethodName                = "/bridge.gateway.v1.BridgeGatewayService/ListenAsUser"
)

// BridgeGatewayServiceClient is the client API for BridgeGatewayService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BridgeGatewayService prepares unsigned ledger transactions for typed
// operations and streams ledger events back to subscribed profiles.
// The gateway never holds keys: every prepared transaction is returned
// unsigned and must be signed and submitted by the caller.
type BridgeGatewayServiceClient interface {
	PrepareAdminRegisterProfile(ctx context.Context, in *PrepareAdminRegisterProfileRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error)
	PrepareUserCreateProfile(ctx context.Context, in *PrepareUserCreateProfileRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error)
	PrepareUserDeposit(ctx context.Context, in *PrepareUserDepositRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error)
	PrepareUserDispatchCommand(ctx context.Context, in *PrepareUserDispatchCommandRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error)
	PrepareLogAction(ctx context.Context, in *PrepareLogActionRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error)
	PrepareAdminBanUser(ctx context.Context, in *PrepareAdminBanUserRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error)
	// ListenAsUser streams every event concerning the given profile address,
	// in ledger order. The stream ends only on transport failure; clients are
	// expected to resubscribe.
	ListenAsUser(ctx context.Context, in *ListenRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EventStreamItem], error)
}

type bridgeGatewayServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBridgeGatewayServiceClient(cc grpc.ClientConnInterface) BridgeGatewayServiceClient {
	return &bridgeGatewayServiceClient{cc}
}

func (c *bridgeGatewayServiceClient) PrepareAdminRegisterProfile(ctx context.Context, in *PrepareAdminRegisterProfileRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnsignedTransactionResponse)
	err := c.cc.Invoke(ctx, BridgeGatewayService_PrepareAdminRegisterProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bridgeGatewayServiceClient) PrepareUserCreateProfile(ctx context.Context, in *PrepareUserCreateProfileRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnsignedTransactionResponse)
	err := c.cc.Invoke(ctx, BridgeGatewayService_PrepareUserCreateProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bridgeGatewayServiceClient) PrepareUserDeposit(ctx context.Context, in *PrepareUserDepositRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnsignedTransactionResponse)
	err := c.cc.Invoke(ctx, BridgeGatewayService_PrepareUserDeposit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bridgeGatewayServiceClient) PrepareUserDispatchCommand(ctx context.Context, in *PrepareUserDispatchCommandRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnsignedTransactionResponse)
	err := c.cc.Invoke(ctx, BridgeGatewayService_PrepareUserDispatchCommand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bridgeGatewayServiceClient) PrepareLogAction(ctx context.Context, in *PrepareLogActionRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnsignedTransactionResponse)
	err := c.cc.Invoke(ctx, BridgeGatewayService_PrepareLogAction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bridgeGatewayServiceClient) PrepareAdminBanUser(ctx context.Context, in *PrepareAdminBanUserRequest, opts ...grpc.CallOption) (*UnsignedTransactionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnsignedTransactionResponse)
	err := c.cc.Invoke(ctx, BridgeGatewayService_PrepareAdminBanUser_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bridgeGatewayServiceClient) ListenAsUser(ctx context.Context, in *ListenRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EventStreamItem], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &BridgeGatewayService_ServiceDesc.Streams[0], BridgeGatewayService_ListenAsUser_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[ListenRequest, EventStreamItem]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type BridgeGatewayService_ListenAsUserClient = grpc.ServerStreamingClient[EventStreamItem]

// BridgeGatewayServiceServer is the server API for BridgeGatewayService service.
// All implementations must embed UnimplementedBridgeGatewayServiceServer
// for forward compatibility.
//
// BridgeGatewayService prepares unsigned ledger transactions for typed
// operations and streams ledger events back to subscribed profiles.
// The gateway never holds keys: every prepared transaction is returned
// unsigned and must be signed and submitted by the caller.
type BridgeGatewayServiceServer interface {
	PrepareAdminRegisterProfile(context.Context, *PrepareAdminRegisterProfileRequest) (*UnsignedTransactionResponse, error)
	PrepareUserCreateProfile(context.Context, *PrepareUserCreateProfileRequest) (*UnsignedTransactionResponse, error)
	PrepareUserDeposit(context.Context, *PrepareUserDepositRequest) (*UnsignedTransactionResponse, error)
	PrepareUserDispatchCommand(context.Context, *PrepareUserDispatchCommandRequest) (*UnsignedTransactionResponse, error)
	PrepareLogAction(context.Context, *PrepareLogActionRequest) (*UnsignedTransactionResponse, error)
	PrepareAdminBanUser(context.Context, *PrepareAdminBanUserRequest) (*UnsignedTransactionResponse, error)
	// ListenAsUser streams every event concerning the given profile address,
	// in ledger order. The stream ends only on transport failure; clients are
	// expected to resubscribe.
	ListenAsUser(*ListenRequest, grpc.ServerStreamingServer[EventStreamItem]) error
	mustEmbedUnimplementedBridgeGatewayServiceServer()
}

// UnimplementedBridgeGatewayServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBridgeGatewayServiceServer struct{}

func (UnimplementedBridgeGatewayServiceServer) PrepareAdminRegisterProfile(context.Context, *PrepareAdminRegisterProfileRequest) (*UnsignedTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PrepareAdminRegisterProfile not implemented")
}
func (UnimplementedBridgeGatewayServiceServer) PrepareUserCreateProfile(context.Context, *PrepareUserCreateProfileRequest) (*UnsignedTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PrepareUserCreateProfile not implemented")
}
func (UnimplementedBridgeGatewayServiceServer) PrepareUserDeposit(context.Context, *PrepareUserDepositRequest) (*UnsignedTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PrepareUserDeposit not implemented")
}
func (UnimplementedBridgeGatewayServiceServer) PrepareUserDispatchCommand(context.Context, *PrepareUserDispatchCommandRequest) (*UnsignedTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PrepareUserDispatchCommand not implemented")
}
func (UnimplementedBridgeGatewayServiceServer) PrepareLogAction(context.Context, *PrepareLogActionRequest) (*UnsignedTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PrepareLogAction not implemented")
}
func (UnimplementedBridgeGatewayServiceServer) PrepareAdminBanUser(context.Context, *PrepareAdminBanUserRequest) (*UnsignedTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PrepareAdminBanUser not implemented")
}
func (UnimplementedBridgeGatewayServiceServer) ListenAsUser(*ListenRequest, grpc.ServerStreamingServer[EventStreamItem]) error {
	return status.Errorf(codes.Unimplemented, "method ListenAsUser not implemented")
}
func (UnimplementedBridgeGatewayServiceServer) mustEmbedUnimplementedBridgeGatewayServiceServer() {}
func (UnimplementedBridgeGatewayServiceServer) testEmbeddedByValue()                              {}

// UnsafeBridgeGatewayServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BridgeGatewayServiceServer will
// result in compilation errors.
type UnsafeBridgeGatewayServiceServer interface {
	mustEmbedUnimplementedBridgeGatewayServiceServer()
}

func RegisterBridgeGatewayServiceServer(s grpc.ServiceRegistrar, srv BridgeGatewayServiceServer) {
	// If the following call pancis, it indicates UnimplementedBridgeGatewayServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BridgeGatewayService_ServiceDesc, srv)
}

func _BridgeGatewayService_PrepareAdminRegisterProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PrepareAdminRegisterProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeGatewayServiceServer).PrepareAdminRegisterProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BridgeGatewayService_PrepareAdminRegisterProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BridgeGatewayServiceServer).PrepareAdminRegisterProfile(ctx, req.(*PrepareAdminRegisterProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BridgeGatewayService_PrepareUserCreateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PrepareUserCreateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeGatewayServiceServer).PrepareUserCreateProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BridgeGatewayService_PrepareUserCreateProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BridgeGatewayServiceServer).PrepareUserCreateProfile(ctx, req.(*PrepareUserCreateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BridgeGatewayService_PrepareUserDeposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PrepareUserDepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeGatewayServiceServer).PrepareUserDeposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BridgeGatewayService_PrepareUserDeposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BridgeGatewayServiceServer).PrepareUserDeposit(ctx, req.(*PrepareUserDepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BridgeGatewayService_PrepareUserDispatchCommand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PrepareUserDispatchCommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeGatewayServiceServer).PrepareUserDispatchCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BridgeGatewayService_PrepareUserDispatchCommand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BridgeGatewayServiceServer).PrepareUserDispatchCommand(ctx, req.(*PrepareUserDispatchCommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BridgeGatewayService_PrepareLogAction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PrepareLogActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeGatewayServiceServer).PrepareLogAction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BridgeGatewayService_PrepareLogAction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BridgeGatewayServiceServer).PrepareLogAction(ctx, req.(*PrepareLogActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BridgeGatewayService_PrepareAdminBanUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PrepareAdminBanUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeGatewayServiceServer).PrepareAdminBanUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BridgeGatewayService_PrepareAdminBanUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BridgeGatewayServiceServer).PrepareAdminBanUser(ctx, req.(*PrepareAdminBanUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BridgeGatewayService_ListenAsUser_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ListenRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(BridgeGatewayServiceServer).ListenAsUser(m, &grpc.GenericServerStream[ListenRequest, EventStreamItem]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type BridgeGatewayService_ListenAsUserServer = grpc.ServerStreamingServer[EventStreamItem]

// BridgeGatewayService_ServiceDesc is the grpc.ServiceDesc for BridgeGatewayService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BridgeGatewayService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bridge.gateway.v1.BridgeGatewayService",
	HandlerType: (*BridgeGatewayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PrepareAdminRegisterProfile",
			Handler:    _BridgeGatewayService_PrepareAdminRegisterProfile_Handler,
		},
		{
			MethodName: "PrepareUserCreateProfile",
			Handler:    _BridgeGatewayService_PrepareUserCreateProfile_Handler,
		},
		{
			MethodName: "PrepareUserDeposit",
			Handler:    _BridgeGatewayService_PrepareUserDeposit_Handler,
		},
		{
			MethodName: "PrepareUserDispatchCommand",
			Handler:    _BridgeGatewayService_PrepareUserDispatchCommand_Handler,
		},
		{
			MethodName: "PrepareLogAction",
			Handler:    _BridgeGatewayService_PrepareLogAction_Handler,
		},
		{
			MethodName: "PrepareAdminBanUser",
			Handler:    _BridgeGatewayService_PrepareAdminBanUser_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ListenAsUser",
			Handler:       _BridgeGatewayService_ListenAsUser_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "gateway.proto",
}
