// Package rpc exposes the shape registry as the gRPC service
// pointcloud.v1.ModelService. Messages are protobuf well-known types, so the
// service descriptor below is written by hand instead of generated.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "pointcloud.v1.ModelService"

const (
	listShapesMethod   = "/" + ServiceName + "/ListShapes"
	getModelMethod     = "/" + ServiceName + "/GetModel"
	streamModelsMethod = "/" + ServiceName + "/StreamModels"
)

// ModelServiceServer is the server API for ModelService.
type ModelServiceServer interface {
	// ListShapes returns the shape names in canonical order.
	ListShapes(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	// GetModel returns one shape as a list of {x, y, z} structs.
	GetModel(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	// StreamModels sends one {name, points} struct per shape.
	StreamModels(*emptypb.Empty, ModelService_StreamModelsServer) error
}

// ModelService_StreamModelsServer is the server side of StreamModels.
type ModelService_StreamModelsServer = grpc.ServerStreamingServer[structpb.Struct]

// ModelService_StreamModelsClient is the client side of StreamModels.
type ModelService_StreamModelsClient = grpc.ServerStreamingClient[structpb.Struct]

// RegisterModelServiceServer registers srv on s.
func RegisterModelServiceServer(s grpc.ServiceRegistrar, srv ModelServiceServer) {
	s.RegisterService(&ModelService_ServiceDesc, srv)
}

func listShapesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelServiceServer).ListShapes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listShapesMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelServiceServer).ListShapes(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getModelHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelServiceServer).GetModel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getModelMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelServiceServer).GetModel(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func streamModelsHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(emptypb.Empty)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ModelServiceServer).StreamModels(in, &grpc.GenericServerStream[emptypb.Empty, structpb.Struct]{ServerStream: stream})
}

// ModelService_ServiceDesc describes ModelService for grpc.Server.
var ModelService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ModelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListShapes", Handler: listShapesHandler},
		{MethodName: "GetModel", Handler: getModelHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "StreamModels", Handler: streamModelsHandler, ServerStreams: true},
	},
	Metadata: "pointcloud/v1/model_service.proto",
}

// ModelServiceClient is the client API for ModelService.
type ModelServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewModelServiceClient wraps a connection.
func NewModelServiceClient(cc grpc.ClientConnInterface) *ModelServiceClient {
	return &ModelServiceClient{cc: cc}
}

// ListShapes calls ModelService.ListShapes.
func (c *ModelServiceClient) ListShapes(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, listShapesMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetModel calls ModelService.GetModel.
func (c *ModelServiceClient) GetModel(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, getModelMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// StreamModels opens ModelService.StreamModels.
func (c *ModelServiceClient) StreamModels(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (ModelService_StreamModelsClient, error) {
	stream, err := c.cc.NewStream(ctx, &ModelService_ServiceDesc.Streams[0], streamModelsMethod, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[emptypb.Empty, structpb.Struct]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
