// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: extractor/v1/extractor.proto

package extractorv1

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
	ExtractorService_ExtractDocument_FullMethodName   = "/extractor.v1.ExtractorService/ExtractDocument"
	ExtractorService_RetryExtraction_FullMethodName   = "/extractor.v1.ExtractorService/RetryExtraction"
	ExtractorService_GetExtraction_FullMethodName     = "/extractor.v1.ExtractorService/GetExtraction"
	ExtractorService_ListExtractions_FullMethodName   = "/extractor.v1.ExtractorService/ListExtractions"
	ExtractorService_SubmitReview_FullMethodName      = "/extractor.v1.ExtractorService/SubmitReview"
	ExtractorService_ListReviews_FullMethodName       = "/extractor.v1.ExtractorService/ListReviews"
	ExtractorService_ExportExtractions_FullMethodName = "/extractor.v1.ExtractorService/ExportExtractions"
)

// ExtractorServiceClient is the client API for ExtractorService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExtractorServiceClient interface {
	// ExtractDocument ingests the text and runs the tiered pipeline.
	ExtractDocument(ctx context.Context, in *ExtractDocumentRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error)
	// RetryExtraction re-runs the AI tier, optionally with another model.
	RetryExtraction(ctx context.Context, in *RetryExtractionRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error)
	GetExtraction(ctx context.Context, in *GetExtractionRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error)
	ListExtractions(ctx context.Context, in *ListExtractionsRequest, opts ...grpc.CallOption) (*ListExtractionsResponse, error)
	SubmitReview(ctx context.Context, in *SubmitReviewRequest, opts ...grpc.CallOption) (*SubmitReviewResponse, error)
	ListReviews(ctx context.Context, in *ListReviewsRequest, opts ...grpc.CallOption) (*ListReviewsResponse, error)
	ExportExtractions(ctx context.Context, in *ExportExtractionsRequest, opts ...grpc.CallOption) (*ExportExtractionsResponse, error)
}

type extractorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractorServiceClient(cc grpc.ClientConnInterface) ExtractorServiceClient {
	return &extractorServiceClient{cc}
}

func (c *extractorServiceClient) ExtractDocument(ctx context.Context, in *ExtractDocumentRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractDocumentResponse)
	err := c.cc.Invoke(ctx, ExtractorService_ExtractDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) RetryExtraction(ctx context.Context, in *RetryExtractionRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractDocumentResponse)
	err := c.cc.Invoke(ctx, ExtractorService_RetryExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) GetExtraction(ctx context.Context, in *GetExtractionRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractDocumentResponse)
	err := c.cc.Invoke(ctx, ExtractorService_GetExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) ListExtractions(ctx context.Context, in *ListExtractionsRequest, opts ...grpc.CallOption) (*ListExtractionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExtractionsResponse)
	err := c.cc.Invoke(ctx, ExtractorService_ListExtractions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) SubmitReview(ctx context.Context, in *SubmitReviewRequest, opts ...grpc.CallOption) (*SubmitReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitReviewResponse)
	err := c.cc.Invoke(ctx, ExtractorService_SubmitReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) ListReviews(ctx context.Context, in *ListReviewsRequest, opts ...grpc.CallOption) (*ListReviewsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReviewsResponse)
	err := c.cc.Invoke(ctx, ExtractorService_ListReviews_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) ExportExtractions(ctx context.Context, in *ExportExtractionsRequest, opts ...grpc.CallOption) (*ExportExtractionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportExtractionsResponse)
	err := c.cc.Invoke(ctx, ExtractorService_ExportExtractions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractorServiceServer is the server API for ExtractorService service.
// All implementations must embed UnimplementedExtractorServiceServer
// for forward compatibility.
type ExtractorServiceServer interface {
	// ExtractDocument ingests the text and runs the tiered pipeline.
	ExtractDocument(context.Context, *ExtractDocumentRequest) (*ExtractDocumentResponse, error)
	// RetryExtraction re-runs the AI tier, optionally with another model.
	RetryExtraction(context.Context, *RetryExtractionRequest) (*ExtractDocumentResponse, error)
	GetExtraction(context.Context, *GetExtractionRequest) (*ExtractDocumentResponse, error)
	ListExtractions(context.Context, *ListExtractionsRequest) (*ListExtractionsResponse, error)
	SubmitReview(context.Context, *SubmitReviewRequest) (*SubmitReviewResponse, error)
	ListReviews(context.Context, *ListReviewsRequest) (*ListReviewsResponse, error)
	ExportExtractions(context.Context, *ExportExtractionsRequest) (*ExportExtractionsResponse, error)
	mustEmbedUnimplementedExtractorServiceServer()
}

// UnimplementedExtractorServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractorServiceServer struct{}

func (UnimplementedExtractorServiceServer) ExtractDocument(context.Context, *ExtractDocumentRequest) (*ExtractDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractDocument not implemented")
}
func (UnimplementedExtractorServiceServer) RetryExtraction(context.Context, *RetryExtractionRequest) (*ExtractDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RetryExtraction not implemented")
}
func (UnimplementedExtractorServiceServer) GetExtraction(context.Context, *GetExtractionRequest) (*ExtractDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetExtraction not implemented")
}
func (UnimplementedExtractorServiceServer) ListExtractions(context.Context, *ListExtractionsRequest) (*ListExtractionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExtractions not implemented")
}
func (UnimplementedExtractorServiceServer) SubmitReview(context.Context, *SubmitReviewRequest) (*SubmitReviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitReview not implemented")
}
func (UnimplementedExtractorServiceServer) ListReviews(context.Context, *ListReviewsRequest) (*ListReviewsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReviews not implemented")
}
func (UnimplementedExtractorServiceServer) ExportExtractions(context.Context, *ExportExtractionsRequest) (*ExportExtractionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportExtractions not implemented")
}
func (UnimplementedExtractorServiceServer) mustEmbedUnimplementedExtractorServiceServer() {}
func (UnimplementedExtractorServiceServer) testEmbeddedByValue()                          {}

// UnsafeExtractorServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractorServiceServer will
// result in compilation errors.
type UnsafeExtractorServiceServer interface {
	mustEmbedUnimplementedExtractorServiceServer()
}

func RegisterExtractorServiceServer(s grpc.ServiceRegistrar, srv ExtractorServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractorServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractorService_ServiceDesc, srv)
}

func _ExtractorService_ExtractDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).ExtractDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_ExtractDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).ExtractDocument(ctx, req.(*ExtractDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_RetryExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetryExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).RetryExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_RetryExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).RetryExtraction(ctx, req.(*RetryExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_GetExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).GetExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_GetExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).GetExtraction(ctx, req.(*GetExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_ListExtractions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExtractionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).ListExtractions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_ListExtractions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).ListExtractions(ctx, req.(*ListExtractionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_SubmitReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).SubmitReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_SubmitReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).SubmitReview(ctx, req.(*SubmitReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_ListReviews_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReviewsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).ListReviews(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_ListReviews_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).ListReviews(ctx, req.(*ListReviewsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_ExportExtractions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportExtractionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).ExportExtractions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_ExportExtractions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).ExportExtractions(ctx, req.(*ExportExtractionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractorService_ServiceDesc is the grpc.ServiceDesc for ExtractorService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "extractor.v1.ExtractorService",
	HandlerType: (*ExtractorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractDocument",
			Handler:    _ExtractorService_ExtractDocument_Handler,
		},
		{
			MethodName: "RetryExtraction",
			Handler:    _ExtractorService_RetryExtraction_Handler,
		},
		{
			MethodName: "GetExtraction",
			Handler:    _ExtractorService_GetExtraction_Handler,
		},
		{
			MethodName: "ListExtractions",
			Handler:    _ExtractorService_ListExtractions_Handler,
		},
		{
			MethodName: "SubmitReview",
			Handler:    _ExtractorService_SubmitReview_Handler,
		},
		{
			MethodName: "ListReviews",
			Handler:    _ExtractorService_ListReviews_Handler,
		},
		{
			MethodName: "ExportExtractions",
			Handler:    _ExtractorService_ExportExtractions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "extractor/v1/extractor.proto",
}
