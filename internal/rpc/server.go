package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/banshee-data/pointcloud/internal/monitoring"
	"github.com/banshee-data/pointcloud/internal/shapes"
)

// MaxMsgSize covers the largest served shape with room for custom budgets.
const MaxMsgSize = 16 * 1024 * 1024 // 16 MB

// Ensure Server implements the gRPC interface.
var _ ModelServiceServer = (*Server)(nil)

// Server implements ModelService over a shape registry.
type Server struct {
	registry *shapes.Registry
}

// NewServer creates a ModelService backed by registry.
func NewServer(registry *shapes.Registry) *Server {
	return &Server{registry: registry}
}

// NewGRPCServer returns a grpc.Server with ModelService registered.
func NewGRPCServer(registry *shapes.Registry, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.MaxRecvMsgSize(MaxMsgSize),
		grpc.MaxSendMsgSize(MaxMsgSize),
	}, opts...)
	gs := grpc.NewServer(opts...)
	RegisterModelServiceServer(gs, NewServer(registry))
	return gs
}

// ListShapes returns the shape names in canonical order.
func (s *Server) ListShapes(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	names := s.registry.Names()
	values := make([]*structpb.Value, len(names))
	for i, n := range names {
		values[i] = structpb.NewStringValue(string(n))
	}
	return &structpb.ListValue{Values: values}, nil
}

// GetModel returns one shape's served cloud.
func (s *Server) GetModel(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	name, ok := s.registry.ParseName(req.GetValue())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "model %q not found", req.GetValue())
	}
	cloud, _ := s.registry.Generate(name)
	return CloudToList(cloud), nil
}

// StreamModels sends every shape in canonical order, stopping early if the
// client goes away.
func (s *Server) StreamModels(_ *emptypb.Empty, stream ModelService_StreamModelsServer) error {
	ctx := stream.Context()
	for _, name := range s.registry.Names() {
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}
		cloud, _ := s.registry.Generate(name)
		msg := &structpb.Struct{Fields: map[string]*structpb.Value{
			"name":   structpb.NewStringValue(string(name)),
			"points": structpb.NewListValue(CloudToList(cloud)),
		}}
		if err := stream.Send(msg); err != nil {
			monitoring.Logf("[gRPC] StreamModels send %s failed: %v", name, err)
			return err
		}
	}
	return nil
}
