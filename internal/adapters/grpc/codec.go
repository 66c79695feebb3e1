package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec is registered under the "json" subtype so the control surface
// can run over real gRPC framing/HTTP2 without a protoc-generated
// .pb.go: the wire format for each message is plain JSON instead of the
// protobuf binary encoding. Grounded on the teacher's use of
// google.golang.org/grpc for its daemon control surface, generalized to a
// codec that doesn't require proto.Message payloads.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
