// Package proto holds the protobuf definitions for the gRPC surface.
// Generated code lands under gen/proto.
package proto

//go:generate protoc --go_out=.. --go_opt=module=github.com/homecrew/homecrew-backend --go-grpc_out=.. --go-grpc_opt=module=github.com/homecrew/homecrew-backend homecrew/v1/homecrew.proto
