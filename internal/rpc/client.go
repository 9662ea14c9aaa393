package rpc

import (
	"context"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
	"github.com/banshee-data/pointcloud/internal/shapes"
)

// NamedCloud is one StreamModels message decoded.
type NamedCloud struct {
	Name  shapes.Name
	Cloud pointcloud.Cloud
}

// FetchModels drains StreamModels and returns the shapes in the order the
// server sent them.
func FetchModels(ctx context.Context, c *ModelServiceClient) ([]NamedCloud, error) {
	stream, err := c.StreamModels(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, fmt.Errorf("stream models: %w", err)
	}

	var out []NamedCloud
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("receive model: %w", err)
		}

		name := msg.GetFields()["name"].GetStringValue()
		if name == "" {
			return nil, fmt.Errorf("model %d has no name", len(out))
		}
		cloud, err := ListToCloud(msg.GetFields()["points"].GetListValue())
		if err != nil {
			return nil, fmt.Errorf("decode model %q: %w", name, err)
		}
		out = append(out, NamedCloud{Name: shapes.Name(name), Cloud: cloud})
	}
}
