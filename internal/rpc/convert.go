package rpc

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

// CloudToList encodes c as a list of {x, y, z} structs in cloud order.
func CloudToList(c pointcloud.Cloud) *structpb.ListValue {
	values := make([]*structpb.Value, len(c))
	for i, p := range c {
		values[i] = structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"x": structpb.NewNumberValue(p.X),
			"y": structpb.NewNumberValue(p.Y),
			"z": structpb.NewNumberValue(p.Z),
		}})
	}
	return &structpb.ListValue{Values: values}
}

// ListToCloud decodes the output of CloudToList.
func ListToCloud(l *structpb.ListValue) (pointcloud.Cloud, error) {
	out := make(pointcloud.Cloud, len(l.GetValues()))
	for i, v := range l.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("point %d: not a struct", i)
		}
		for _, axis := range []struct {
			key string
			dst *float64
		}{{"x", &out[i].X}, {"y", &out[i].Y}, {"z", &out[i].Z}} {
			f, ok := s.GetFields()[axis.key]
			if !ok {
				return nil, fmt.Errorf("point %d: missing %s", i, axis.key)
			}
			n, ok := f.GetKind().(*structpb.Value_NumberValue)
			if !ok {
				return nil, fmt.Errorf("point %d: %s is not a number", i, axis.key)
			}
			*axis.dst = n.NumberValue
		}
	}
	return out, nil
}
