// Package v1 contains the protobuf envelope used to bridge UBX frames.
//
// frame.pb.go is generated from frame.proto:
//
//	protoc --go_out=paths=source_relative:. frame.proto
package v1
