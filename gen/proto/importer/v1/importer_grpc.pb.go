// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: importer/v1/importer.proto

package importerpb

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
	ImportService_ImportWorkbook_FullMethodName  = "/importer.v1.ImportService/ImportWorkbook"
	ImportService_StartImport_FullMethodName     = "/importer.v1.ImportService/StartImport"
	ImportService_GetImportStatus_FullMethodName = "/importer.v1.ImportService/GetImportStatus"
	ImportService_SyncWorkbook_FullMethodName    = "/importer.v1.ImportService/SyncWorkbook"
	ImportService_RelinkLogos_FullMethodName     = "/importer.v1.ImportService/RelinkLogos"
	ImportService_ListRegistry_FullMethodName    = "/importer.v1.ImportService/ListRegistry"
	ImportService_DeleteItem_FullMethodName      = "/importer.v1.ImportService/DeleteItem"
)

// ImportServiceClient is the client API for ImportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ImportService drives workbook imports against the registry database.
type ImportServiceClient interface {
	// ImportWorkbook runs the batch import synchronously and returns the
	// final stats plus a rendered XLSX report.
	ImportWorkbook(ctx context.Context, in *ImportWorkbookRequest, opts ...grpc.CallOption) (*ImportWorkbookResponse, error)
	// StartImport enqueues a batch import and returns immediately.
	StartImport(ctx context.Context, in *StartImportRequest, opts ...grpc.CallOption) (*StartImportResponse, error)
	// GetImportStatus reports the state of a run started with StartImport.
	GetImportStatus(ctx context.Context, in *GetImportStatusRequest, opts ...grpc.CallOption) (*GetImportStatusResponse, error)
	// SyncWorkbook runs the strict create-or-update policy.
	SyncWorkbook(ctx context.Context, in *SyncWorkbookRequest, opts ...grpc.CallOption) (*SyncWorkbookResponse, error)
	// RelinkLogos re-matches stored items against the institution registry.
	RelinkLogos(ctx context.Context, in *RelinkLogosRequest, opts ...grpc.CallOption) (*RelinkLogosResponse, error)
	// ListRegistry returns the loaded institution registry names.
	ListRegistry(ctx context.Context, in *ListRegistryRequest, opts ...grpc.CallOption) (*ListRegistryResponse, error)
	// DeleteItem removes one item and all of its relations.
	DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*DeleteItemResponse, error)
}

type importServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewImportServiceClient(cc grpc.ClientConnInterface) ImportServiceClient {
	return &importServiceClient{cc}
}

func (c *importServiceClient) ImportWorkbook(ctx context.Context, in *ImportWorkbookRequest, opts ...grpc.CallOption) (*ImportWorkbookResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportWorkbookResponse)
	err := c.cc.Invoke(ctx, ImportService_ImportWorkbook_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) StartImport(ctx context.Context, in *StartImportRequest, opts ...grpc.CallOption) (*StartImportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartImportResponse)
	err := c.cc.Invoke(ctx, ImportService_StartImport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) GetImportStatus(ctx context.Context, in *GetImportStatusRequest, opts ...grpc.CallOption) (*GetImportStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetImportStatusResponse)
	err := c.cc.Invoke(ctx, ImportService_GetImportStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) SyncWorkbook(ctx context.Context, in *SyncWorkbookRequest, opts ...grpc.CallOption) (*SyncWorkbookResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SyncWorkbookResponse)
	err := c.cc.Invoke(ctx, ImportService_SyncWorkbook_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) RelinkLogos(ctx context.Context, in *RelinkLogosRequest, opts ...grpc.CallOption) (*RelinkLogosResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RelinkLogosResponse)
	err := c.cc.Invoke(ctx, ImportService_RelinkLogos_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) ListRegistry(ctx context.Context, in *ListRegistryRequest, opts ...grpc.CallOption) (*ListRegistryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRegistryResponse)
	err := c.cc.Invoke(ctx, ImportService_ListRegistry_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*DeleteItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteItemResponse)
	err := c.cc.Invoke(ctx, ImportService_DeleteItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ImportServiceServer is the server API for ImportService service.
// All implementations must embed UnimplementedImportServiceServer
// for forward compatibility.
//
// ImportService drives workbook imports against the registry database.
type ImportServiceServer interface {
	// ImportWorkbook runs the batch import synchronously and returns the
	// final stats plus a rendered XLSX report.
	ImportWorkbook(context.Context, *ImportWorkbookRequest) (*ImportWorkbookResponse, error)
	// StartImport enqueues a batch import and returns immediately.
	StartImport(context.Context, *StartImportRequest) (*StartImportResponse, error)
	// GetImportStatus reports the state of a run started with StartImport.
	GetImportStatus(context.Context, *GetImportStatusRequest) (*GetImportStatusResponse, error)
	// SyncWorkbook runs the strict create-or-update policy.
	SyncWorkbook(context.Context, *SyncWorkbookRequest) (*SyncWorkbookResponse, error)
	// RelinkLogos re-matches stored items against the institution registry.
	RelinkLogos(context.Context, *RelinkLogosRequest) (*RelinkLogosResponse, error)
	// ListRegistry returns the loaded institution registry names.
	ListRegistry(context.Context, *ListRegistryRequest) (*ListRegistryResponse, error)
	// DeleteItem removes one item and all of its relations.
	DeleteItem(context.Context, *DeleteItemRequest) (*DeleteItemResponse, error)
	mustEmbedUnimplementedImportServiceServer()
}

// UnimplementedImportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedImportServiceServer struct{}

func (UnimplementedImportServiceServer) ImportWorkbook(context.Context, *ImportWorkbookRequest) (*ImportWorkbookResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportWorkbook not implemented")
}
func (UnimplementedImportServiceServer) StartImport(context.Context, *StartImportRequest) (*StartImportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartImport not implemented")
}
func (UnimplementedImportServiceServer) GetImportStatus(context.Context, *GetImportStatusRequest) (*GetImportStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetImportStatus not implemented")
}
func (UnimplementedImportServiceServer) SyncWorkbook(context.Context, *SyncWorkbookRequest) (*SyncWorkbookResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncWorkbook not implemented")
}
func (UnimplementedImportServiceServer) RelinkLogos(context.Context, *RelinkLogosRequest) (*RelinkLogosResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RelinkLogos not implemented")
}
func (UnimplementedImportServiceServer) ListRegistry(context.Context, *ListRegistryRequest) (*ListRegistryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRegistry not implemented")
}
func (UnimplementedImportServiceServer) DeleteItem(context.Context, *DeleteItemRequest) (*DeleteItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteItem not implemented")
}
func (UnimplementedImportServiceServer) mustEmbedUnimplementedImportServiceServer() {}
func (UnimplementedImportServiceServer) testEmbeddedByValue()                       {}

// UnsafeImportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ImportServiceServer will
// result in compilation errors.
type UnsafeImportServiceServer interface {
	mustEmbedUnimplementedImportServiceServer()
}

func RegisterImportServiceServer(s grpc.ServiceRegistrar, srv ImportServiceServer) {
	// If the following call pancis, it indicates UnimplementedImportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ImportService_ServiceDesc, srv)
}

func _ImportService_ImportWorkbook_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportWorkbookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ImportWorkbook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ImportWorkbook_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ImportWorkbook(ctx, req.(*ImportWorkbookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_StartImport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartImportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).StartImport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_StartImport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).StartImport(ctx, req.(*StartImportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_GetImportStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetImportStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).GetImportStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_GetImportStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).GetImportStatus(ctx, req.(*GetImportStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_SyncWorkbook_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncWorkbookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).SyncWorkbook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_SyncWorkbook_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).SyncWorkbook(ctx, req.(*SyncWorkbookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_RelinkLogos_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RelinkLogosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).RelinkLogos(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_RelinkLogos_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).RelinkLogos(ctx, req.(*RelinkLogosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_ListRegistry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRegistryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ListRegistry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ListRegistry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ListRegistry(ctx, req.(*ListRegistryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_DeleteItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).DeleteItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_DeleteItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).DeleteItem(ctx, req.(*DeleteItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ImportService_ServiceDesc is the grpc.ServiceDesc for ImportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ImportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "importer.v1.ImportService",
	HandlerType: (*ImportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ImportWorkbook",
			Handler:    _ImportService_ImportWorkbook_Handler,
		},
		{
			MethodName: "StartImport",
			Handler:    _ImportService_StartImport_Handler,
		},
		{
			MethodName: "GetImportStatus",
			Handler:    _ImportService_GetImportStatus_Handler,
		},
		{
			MethodName: "SyncWorkbook",
			Handler:    _ImportService_SyncWorkbook_Handler,
		},
		{
			MethodName: "RelinkLogos",
			Handler:    _ImportService_RelinkLogos_Handler,
		},
		{
			MethodName: "ListRegistry",
			Handler:    _ImportService_ListRegistry_Handler,
		},
		{
			MethodName: "DeleteItem",
			Handler:    _ImportService_DeleteItem_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "importer/v1/importer.proto",
}
