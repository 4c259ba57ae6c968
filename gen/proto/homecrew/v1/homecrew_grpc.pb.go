// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: homecrew/v1/homecrew.proto

package homecrewpb

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
	HouseholdsService_CreateHousehold_FullMethodName = "/homecrew.v1.HouseholdsService/CreateHousehold"
	HouseholdsService_ListHouseholds_FullMethodName  = "/homecrew.v1.HouseholdsService/ListHouseholds"
)

// HouseholdsServiceClient is the client API for HouseholdsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type HouseholdsServiceClient interface {
	CreateHousehold(ctx context.Context, in *CreateHouseholdRequest, opts ...grpc.CallOption) (*CreateHouseholdResponse, error)
	ListHouseholds(ctx context.Context, in *ListHouseholdsRequest, opts ...grpc.CallOption) (*ListHouseholdsResponse, error)
}

type householdsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewHouseholdsServiceClient(cc grpc.ClientConnInterface) HouseholdsServiceClient {
	return &householdsServiceClient{cc}
}

func (c *householdsServiceClient) CreateHousehold(ctx context.Context, in *CreateHouseholdRequest, opts ...grpc.CallOption) (*CreateHouseholdResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateHouseholdResponse)
	err := c.cc.Invoke(ctx, HouseholdsService_CreateHousehold_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *householdsServiceClient) ListHouseholds(ctx context.Context, in *ListHouseholdsRequest, opts ...grpc.CallOption) (*ListHouseholdsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListHouseholdsResponse)
	err := c.cc.Invoke(ctx, HouseholdsService_ListHouseholds_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HouseholdsServiceServer is the server API for HouseholdsService service.
// All implementations must embed UnimplementedHouseholdsServiceServer
// for forward compatibility.
type HouseholdsServiceServer interface {
	CreateHousehold(context.Context, *CreateHouseholdRequest) (*CreateHouseholdResponse, error)
	ListHouseholds(context.Context, *ListHouseholdsRequest) (*ListHouseholdsResponse, error)
	mustEmbedUnimplementedHouseholdsServiceServer()
}

// UnimplementedHouseholdsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedHouseholdsServiceServer struct{}

func (UnimplementedHouseholdsServiceServer) CreateHousehold(context.Context, *CreateHouseholdRequest) (*CreateHouseholdResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateHousehold not implemented")
}
func (UnimplementedHouseholdsServiceServer) ListHouseholds(context.Context, *ListHouseholdsRequest) (*ListHouseholdsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListHouseholds not implemented")
}
func (UnimplementedHouseholdsServiceServer) mustEmbedUnimplementedHouseholdsServiceServer() {}
func (UnimplementedHouseholdsServiceServer) testEmbeddedByValue()                           {}

// UnsafeHouseholdsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to HouseholdsServiceServer will
// result in compilation errors.
type UnsafeHouseholdsServiceServer interface {
	mustEmbedUnimplementedHouseholdsServiceServer()
}

func RegisterHouseholdsServiceServer(s grpc.ServiceRegistrar, srv HouseholdsServiceServer) {
	// If the following call pancis, it indicates UnimplementedHouseholdsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&HouseholdsService_ServiceDesc, srv)
}

func _HouseholdsService_CreateHousehold_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateHouseholdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HouseholdsServiceServer).CreateHousehold(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HouseholdsService_CreateHousehold_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HouseholdsServiceServer).CreateHousehold(ctx, req.(*CreateHouseholdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HouseholdsService_ListHouseholds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListHouseholdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HouseholdsServiceServer).ListHouseholds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HouseholdsService_ListHouseholds_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HouseholdsServiceServer).ListHouseholds(ctx, req.(*ListHouseholdsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// HouseholdsService_ServiceDesc is the grpc.ServiceDesc for HouseholdsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var HouseholdsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "homecrew.v1.HouseholdsService",
	HandlerType: (*HouseholdsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateHousehold",
			Handler:    _HouseholdsService_CreateHousehold_Handler,
		},
		{
			MethodName: "ListHouseholds",
			Handler:    _HouseholdsService_ListHouseholds_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "homecrew/v1/homecrew.proto",
}

const (
	MerchantsService_ListMerchants_FullMethodName   = "/homecrew.v1.MerchantsService/ListMerchants"
	MerchantsService_ConfirmMerchant_FullMethodName = "/homecrew.v1.MerchantsService/ConfirmMerchant"
)

// MerchantsServiceClient is the client API for MerchantsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MerchantsServiceClient interface {
	ListMerchants(ctx context.Context, in *ListMerchantsRequest, opts ...grpc.CallOption) (*ListMerchantsResponse, error)
	ConfirmMerchant(ctx context.Context, in *ConfirmMerchantRequest, opts ...grpc.CallOption) (*ConfirmMerchantResponse, error)
}

type merchantsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMerchantsServiceClient(cc grpc.ClientConnInterface) MerchantsServiceClient {
	return &merchantsServiceClient{cc}
}

func (c *merchantsServiceClient) ListMerchants(ctx context.Context, in *ListMerchantsRequest, opts ...grpc.CallOption) (*ListMerchantsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMerchantsResponse)
	err := c.cc.Invoke(ctx, MerchantsService_ListMerchants_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *merchantsServiceClient) ConfirmMerchant(ctx context.Context, in *ConfirmMerchantRequest, opts ...grpc.CallOption) (*ConfirmMerchantResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmMerchantResponse)
	err := c.cc.Invoke(ctx, MerchantsService_ConfirmMerchant_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MerchantsServiceServer is the server API for MerchantsService service.
// All implementations must embed UnimplementedMerchantsServiceServer
// for forward compatibility.
type MerchantsServiceServer interface {
	ListMerchants(context.Context, *ListMerchantsRequest) (*ListMerchantsResponse, error)
	ConfirmMerchant(context.Context, *ConfirmMerchantRequest) (*ConfirmMerchantResponse, error)
	mustEmbedUnimplementedMerchantsServiceServer()
}

// UnimplementedMerchantsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMerchantsServiceServer struct{}

func (UnimplementedMerchantsServiceServer) ListMerchants(context.Context, *ListMerchantsRequest) (*ListMerchantsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMerchants not implemented")
}
func (UnimplementedMerchantsServiceServer) ConfirmMerchant(context.Context, *ConfirmMerchantRequest) (*ConfirmMerchantResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmMerchant not implemented")
}
func (UnimplementedMerchantsServiceServer) mustEmbedUnimplementedMerchantsServiceServer() {}
func (UnimplementedMerchantsServiceServer) testEmbeddedByValue()                          {}

// UnsafeMerchantsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MerchantsServiceServer will
// result in compilation errors.
type UnsafeMerchantsServiceServer interface {
	mustEmbedUnimplementedMerchantsServiceServer()
}

func RegisterMerchantsServiceServer(s grpc.ServiceRegistrar, srv MerchantsServiceServer) {
	// If the following call pancis, it indicates UnimplementedMerchantsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MerchantsService_ServiceDesc, srv)
}

func _MerchantsService_ListMerchants_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMerchantsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MerchantsServiceServer).ListMerchants(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MerchantsService_ListMerchants_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MerchantsServiceServer).ListMerchants(ctx, req.(*ListMerchantsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MerchantsService_ConfirmMerchant_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmMerchantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MerchantsServiceServer).ConfirmMerchant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MerchantsService_ConfirmMerchant_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MerchantsServiceServer).ConfirmMerchant(ctx, req.(*ConfirmMerchantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MerchantsService_ServiceDesc is the grpc.ServiceDesc for MerchantsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MerchantsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "homecrew.v1.MerchantsService",
	HandlerType: (*MerchantsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListMerchants",
			Handler:    _MerchantsService_ListMerchants_Handler,
		},
		{
			MethodName: "ConfirmMerchant",
			Handler:    _MerchantsService_ConfirmMerchant_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "homecrew/v1/homecrew.proto",
}

const (
	ExpensesService_ScanReceipt_FullMethodName  = "/homecrew.v1.ExpensesService/ScanReceipt"
	ExpensesService_ListExpenses_FullMethodName = "/homecrew.v1.ExpensesService/ListExpenses"
)

// ExpensesServiceClient is the client API for ExpensesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExpensesServiceClient interface {
	ScanReceipt(ctx context.Context, in *ScanReceiptRequest, opts ...grpc.CallOption) (*ScanReceiptResponse, error)
	ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error)
}

type expensesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExpensesServiceClient(cc grpc.ClientConnInterface) ExpensesServiceClient {
	return &expensesServiceClient{cc}
}

func (c *expensesServiceClient) ScanReceipt(ctx context.Context, in *ScanReceiptRequest, opts ...grpc.CallOption) (*ScanReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScanReceiptResponse)
	err := c.cc.Invoke(ctx, ExpensesService_ScanReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExpensesResponse)
	err := c.cc.Invoke(ctx, ExpensesService_ListExpenses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExpensesServiceServer is the server API for ExpensesService service.
// All implementations must embed UnimplementedExpensesServiceServer
// for forward compatibility.
type ExpensesServiceServer interface {
	ScanReceipt(context.Context, *ScanReceiptRequest) (*ScanReceiptResponse, error)
	ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error)
	mustEmbedUnimplementedExpensesServiceServer()
}

// UnimplementedExpensesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExpensesServiceServer struct{}

func (UnimplementedExpensesServiceServer) ScanReceipt(context.Context, *ScanReceiptRequest) (*ScanReceiptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScanReceipt not implemented")
}
func (UnimplementedExpensesServiceServer) ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExpenses not implemented")
}
func (UnimplementedExpensesServiceServer) mustEmbedUnimplementedExpensesServiceServer() {}
func (UnimplementedExpensesServiceServer) testEmbeddedByValue()                         {}

// UnsafeExpensesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExpensesServiceServer will
// result in compilation errors.
type UnsafeExpensesServiceServer interface {
	mustEmbedUnimplementedExpensesServiceServer()
}

func RegisterExpensesServiceServer(s grpc.ServiceRegistrar, srv ExpensesServiceServer) {
	// If the following call pancis, it indicates UnimplementedExpensesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExpensesService_ServiceDesc, srv)
}

func _ExpensesService_ScanReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).ScanReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_ScanReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).ScanReceipt(ctx, req.(*ScanReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_ListExpenses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExpensesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).ListExpenses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_ListExpenses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).ListExpenses(ctx, req.(*ListExpensesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExpensesService_ServiceDesc is the grpc.ServiceDesc for ExpensesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExpensesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "homecrew.v1.ExpensesService",
	HandlerType: (*ExpensesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ScanReceipt",
			Handler:    _ExpensesService_ScanReceipt_Handler,
		},
		{
			MethodName: "ListExpenses",
			Handler:    _ExpensesService_ListExpenses_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "homecrew/v1/homecrew.proto",
}

const (
	ExportService_ExportExpenses_FullMethodName = "/homecrew.v1.ExportService/ExportExpenses"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportExpenses(ctx context.Context, in *ExportExpensesRequest, opts ...grpc.CallOption) (*ExportExpensesResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportExpenses(ctx context.Context, in *ExportExpensesRequest, opts ...grpc.CallOption) (*ExportExpensesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportExpensesResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportExpenses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportExpenses(context.Context, *ExportExpensesRequest) (*ExportExpensesResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportExpenses(context.Context, *ExportExpensesRequest) (*ExportExpensesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportExpenses not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportExpenses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportExpensesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportExpenses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportExpenses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportExpenses(ctx, req.(*ExportExpensesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "homecrew.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportExpenses",
			Handler:    _ExportService_ExportExpenses_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "homecrew/v1/homecrew.proto",
}
