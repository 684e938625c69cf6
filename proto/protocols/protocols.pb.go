// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: protocols.proto

package protocols

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// CommandConfig is the payload carried by a file-transfer command (id 2).
// The session key is encrypted for the recipient's communication key; the
// destination tells the recipient where to fetch the content from.
type CommandConfig struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	SessionId           uint64                 `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	EncryptedSessionKey []byte                 `protobuf:"bytes,2,opt,name=encrypted_session_key,json=encryptedSessionKey,proto3" json:"encrypted_session_key,omitempty"`
	Destination         *Destination           `protobuf:"bytes,3,opt,name=destination,proto3" json:"destination,omitempty"`
	Meta                []byte                 `protobuf:"bytes,4,opt,name=meta,proto3" json:"meta,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *CommandConfig) Reset() {
	*x = CommandConfig{}
	mi := &file_protocols_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandConfig) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandConfig) ProtoMessage() {}

func (x *CommandConfig) ProtoReflect() protoreflect.Message {
	mi := &file_protocols_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommandConfig.ProtoReflect.Descriptor instead.
func (*CommandConfig) Descriptor() ([]byte, []int) {
	return file_protocols_proto_rawDescGZIP(), []int{0}
}

func (x *CommandConfig) GetSessionId() uint64 {
	if x != nil {
		return x.SessionId
	}
	return 0
}

func (x *CommandConfig) GetEncryptedSessionKey() []byte {
	if x != nil {
		return x.EncryptedSessionKey
	}
	return nil
}

func (x *CommandConfig) GetDestination() *Destination {
	if x != nil {
		return x.Destination
	}
	return nil
}

func (x *CommandConfig) GetMeta() []byte {
	if x != nil {
		return x.Meta
	}
	return nil
}

type Destination struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Destination) Reset() {
	*x = Destination{}
	mi := &file_protocols_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Destination) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Destination) ProtoMessage() {}

func (x *Destination) ProtoReflect() protoreflect.Message {
	mi := &file_protocols_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Destination.ProtoReflect.Descriptor instead.
func (*Destination) Descriptor() ([]byte, []int) {
	return file_protocols_proto_rawDescGZIP(), []int{1}
}

func (x *Destination) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

var File_protocols_proto protoreflect.FileDescriptor

const file_protocols_proto_rawDesc = "" +
	"\n" +
	"\x0fprotocols.proto\x12\x13bridge.protocols.v1\"\xba\x01\n" +
	"\rCommandConfig\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\x04R\tsessionId\x122\n" +
	"\x15encrypted_session_key\x18\x02 \x01(\fR\x13encryptedSessionKey\x12B\n" +
	"\vdestination\x18\x03 \x01(\v2 .bridge.protocols.v1.DestinationR\vdestination\x12\x12\n" +
	"\x04meta\x18\x04 \x01(\fR\x04meta\"\x1f\n" +
	"\vDestination\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03urlB)Z'social-bridge/proto/protocols;protocolsb\x06proto3"

var (
	file_protocols_proto_rawDescOnce sync.Once
	file_protocols_proto_rawDescData []byte
)

func file_protocols_proto_rawDescGZIP() []byte {
	file_protocols_proto_rawDescOnce.Do(func() {
		file_protocols_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_protocols_proto_rawDesc), len(file_protocols_proto_rawDesc)))
	})
	return file_protocols_proto_rawDescData
}

var file_protocols_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_protocols_proto_goTypes = []any{
	(*CommandConfig)(nil), // 0: bridge.protocols.v1.CommandConfig
	(*Destination)(nil),   // 1: bridge.protocols.v1.Destination
}
var file_protocols_proto_depIdxs = []int32{
	1, // 0: bridge.protocols.v1.CommandConfig.destination:type_name -> bridge.protocols.v1.Destination
	1, // [1:1] is the sub-list for method output_type
	1, // [1:1] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_protocols_proto_init() }
func file_protocols_proto_init() {
	if File_protocols_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_protocols_proto_rawDesc), len(file_protocols_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_protocols_proto_goTypes,
		DependencyIndexes: file_protocols_proto_depIdxs,
		MessageInfos:      file_protocols_proto_msgTypes,
	}.Build()
	File_protocols_proto = out.File
	file_protocols_proto_goTypes = nil
	file_protocols_proto_depIdxs = nil
}
