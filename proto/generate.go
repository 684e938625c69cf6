// Package proto holds the wire definitions shared with the bridge gateway.
//
// The Go packages social-bridge/proto/gateway and social-bridge/proto/protocols
// are produced by protoc and are not committed; run `go generate ./proto` after
// a fresh checkout.
package proto

//go:generate protoc --proto_path=. --go_out=paths=source_relative:./gateway --go-grpc_out=paths=source_relative:./gateway gateway.proto
//go:generate protoc --proto_path=. --go_out=paths=source_relative:./protocols protocols.proto
