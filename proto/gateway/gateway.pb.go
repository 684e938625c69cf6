// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: gateway.proto

package gateway

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

type PrepareAdminRegisterProfileRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	AuthorityPubkey     string                 `protobuf:"bytes,1,opt,name=authority_pubkey,json=authorityPubkey,proto3" json:"authority_pubkey,omitempty"`
	CommunicationPubkey string                 `protobuf:"bytes,2,opt,name=communication_pubkey,json=communicationPubkey,proto3" json:"communication_pubkey,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *PrepareAdminRegisterProfileRequest) Reset() {
	*x = PrepareAdminRegisterProfileRequest{}
	mi := &file_gateway_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrepareAdminRegisterProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrepareAdminRegisterProfileRequest) ProtoMessage() {}

func (x *PrepareAdminRegisterProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrepareAdminRegisterProfileRequest.ProtoReflect.Descriptor instead.
func (*PrepareAdminRegisterProfileRequest) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{0}
}

func (x *PrepareAdminRegisterProfileRequest) GetAuthorityPubkey() string {
	if x != nil {
		return x.AuthorityPubkey
	}
	return ""
}

func (x *PrepareAdminRegisterProfileRequest) GetCommunicationPubkey() string {
	if x != nil {
		return x.CommunicationPubkey
	}
	return ""
}

type PrepareUserCreateProfileRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	AuthorityPubkey     string                 `protobuf:"bytes,1,opt,name=authority_pubkey,json=authorityPubkey,proto3" json:"authority_pubkey,omitempty"`
	TargetAdminPda      string                 `protobuf:"bytes,2,opt,name=target_admin_pda,json=targetAdminPda,proto3" json:"target_admin_pda,omitempty"`
	CommunicationPubkey string                 `protobuf:"bytes,3,opt,name=communication_pubkey,json=communicationPubkey,proto3" json:"communication_pubkey,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *PrepareUserCreateProfileRequest) Reset() {
	*x = PrepareUserCreateProfileRequest{}
	mi := &file_gateway_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrepareUserCreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrepareUserCreateProfileRequest) ProtoMessage() {}

func (x *PrepareUserCreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrepareUserCreateProfileRequest.ProtoReflect.Descriptor instead.
func (*PrepareUserCreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{1}
}

func (x *PrepareUserCreateProfileRequest) GetAuthorityPubkey() string {
	if x != nil {
		return x.AuthorityPubkey
	}
	return ""
}

func (x *PrepareUserCreateProfileRequest) GetTargetAdminPda() string {
	if x != nil {
		return x.TargetAdminPda
	}
	return ""
}

func (x *PrepareUserCreateProfileRequest) GetCommunicationPubkey() string {
	if x != nil {
		return x.CommunicationPubkey
	}
	return ""
}

type PrepareUserDepositRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	AuthorityPubkey string                 `protobuf:"bytes,1,opt,name=authority_pubkey,json=authorityPubkey,proto3" json:"authority_pubkey,omitempty"`
	AdminProfilePda string                 `protobuf:"bytes,2,opt,name=admin_profile_pda,json=adminProfilePda,proto3" json:"admin_profile_pda,omitempty"`
	Amount          uint64                 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *PrepareUserDepositRequest) Reset() {
	*x = PrepareUserDepositRequest{}
	mi := &file_gateway_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrepareUserDepositRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrepareUserDepositRequest) ProtoMessage() {}

func (x *PrepareUserDepositRequest) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrepareUserDepositRequest.ProtoReflect.Descriptor instead.
func (*PrepareUserDepositRequest) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{2}
}

func (x *PrepareUserDepositRequest) GetAuthorityPubkey() string {
	if x != nil {
		return x.AuthorityPubkey
	}
	return ""
}

func (x *PrepareUserDepositRequest) GetAdminProfilePda() string {
	if x != nil {
		return x.AdminProfilePda
	}
	return ""
}

func (x *PrepareUserDepositRequest) GetAmount() uint64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type PrepareUserDispatchCommandRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	AuthorityPubkey string                 `protobuf:"bytes,1,opt,name=authority_pubkey,json=authorityPubkey,proto3" json:"authority_pubkey,omitempty"`
	TargetAdminPda  string                 `protobuf:"bytes,2,opt,name=target_admin_pda,json=targetAdminPda,proto3" json:"target_admin_pda,omitempty"`
	CommandId       uint32                 `protobuf:"varint,3,opt,name=command_id,json=commandId,proto3" json:"command_id,omitempty"`
	Price           uint64                 `protobuf:"varint,4,opt,name=price,proto3" json:"price,omitempty"`
	Timestamp       int64                  `protobuf:"varint,5,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Payload         []byte                 `protobuf:"bytes,6,opt,name=payload,proto3" json:"payload,omitempty"`
	OraclePubkey    string                 `protobuf:"bytes,7,opt,name=oracle_pubkey,json=oraclePubkey,proto3" json:"oracle_pubkey,omitempty"`
	OracleSignature []byte                 `protobuf:"bytes,8,opt,name=oracle_signature,json=oracleSignature,proto3" json:"oracle_signature,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *PrepareUserDispatchCommandRequest) Reset() {
	*x = PrepareUserDispatchCommandRequest{}
	mi := &file_gateway_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrepareUserDispatchCommandRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrepareUserDispatchCommandRequest) ProtoMessage() {}

func (x *PrepareUserDispatchCommandRequest) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrepareUserDispatchCommandRequest.ProtoReflect.Descriptor instead.
func (*PrepareUserDispatchCommandRequest) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{3}
}

func (x *PrepareUserDispatchCommandRequest) GetAuthorityPubkey() string {
	if x != nil {
		return x.AuthorityPubkey
	}
	return ""
}

func (x *PrepareUserDispatchCommandRequest) GetTargetAdminPda() string {
	if x != nil {
		return x.TargetAdminPda
	}
	return ""
}

func (x *PrepareUserDispatchCommandRequest) GetCommandId() uint32 {
	if x != nil {
		return x.CommandId
	}
	return 0
}

func (x *PrepareUserDispatchCommandRequest) GetPrice() uint64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *PrepareUserDispatchCommandRequest) GetTimestamp() int64 {
	if x != nil {
		return x.Timestamp
	}
	return 0
}

func (x *PrepareUserDispatchCommandRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *PrepareUserDispatchCommandRequest) GetOraclePubkey() string {
	if x != nil {
		return x.OraclePubkey
	}
	return ""
}

func (x *PrepareUserDispatchCommandRequest) GetOracleSignature() []byte {
	if x != nil {
		return x.OracleSignature
	}
	return nil
}

type PrepareLogActionRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	AuthorityPubkey string                 `protobuf:"bytes,1,opt,name=authority_pubkey,json=authorityPubkey,proto3" json:"authority_pubkey,omitempty"`
	UserProfilePda  string                 `protobuf:"bytes,2,opt,name=user_profile_pda,json=userProfilePda,proto3" json:"user_profile_pda,omitempty"`
	AdminProfilePda string                 `protobuf:"bytes,3,opt,name=admin_profile_pda,json=adminProfilePda,proto3" json:"admin_profile_pda,omitempty"`
	SessionId       uint64                 `protobuf:"varint,4,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ActionCode      uint32                 `protobuf:"varint,5,opt,name=action_code,json=actionCode,proto3" json:"action_code,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *PrepareLogActionRequest) Reset() {
	*x = PrepareLogActionRequest{}
	mi := &file_gateway_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrepareLogActionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrepareLogActionRequest) ProtoMessage() {}

func (x *PrepareLogActionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrepareLogActionRequest.ProtoReflect.Descriptor instead.
func (*PrepareLogActionRequest) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{4}
}

func (x *PrepareLogActionRequest) GetAuthorityPubkey() string {
	if x != nil {
		return x.AuthorityPubkey
	}
	return ""
}

func (x *PrepareLogActionRequest) GetUserProfilePda() string {
	if x != nil {
		return x.UserProfilePda
	}
	return ""
}

func (x *PrepareLogActionRequest) GetAdminProfilePda() string {
	if x != nil {
		return x.AdminProfilePda
	}
	return ""
}

func (x *PrepareLogActionRequest) GetSessionId() uint64 {
	if x != nil {
		return x.SessionId
	}
	return 0
}

func (x *PrepareLogActionRequest) GetActionCode() uint32 {
	if x != nil {
		return x.ActionCode
	}
	return 0
}

type PrepareAdminBanUserRequest struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	AuthorityPubkey      string                 `protobuf:"bytes,1,opt,name=authority_pubkey,json=authorityPubkey,proto3" json:"authority_pubkey,omitempty"`
	TargetUserProfilePda string                 `protobuf:"bytes,2,opt,name=target_user_profile_pda,json=targetUserProfilePda,proto3" json:"target_user_profile_pda,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *PrepareAdminBanUserRequest) Reset() {
	*x = PrepareAdminBanUserRequest{}
	mi := &file_gateway_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrepareAdminBanUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrepareAdminBanUserRequest) ProtoMessage() {}

func (x *PrepareAdminBanUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrepareAdminBanUserRequest.ProtoReflect.Descriptor instead.
func (*PrepareAdminBanUserRequest) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{5}
}

func (x *PrepareAdminBanUserRequest) GetAuthorityPubkey() string {
	if x != nil {
		return x.AuthorityPubkey
	}
	return ""
}

func (x *PrepareAdminBanUserRequest) GetTargetUserProfilePda() string {
	if x != nil {
		return x.TargetUserProfilePda
	}
	return ""
}

type UnsignedTransactionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UnsignedTx    []byte                 `protobuf:"bytes,1,opt,name=unsigned_tx,json=unsignedTx,proto3" json:"unsigned_tx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnsignedTransactionResponse) Reset() {
	*x = UnsignedTransactionResponse{}
	mi := &file_gateway_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnsignedTransactionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnsignedTransactionResponse) ProtoMessage() {}

func (x *UnsignedTransactionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnsignedTransactionResponse.ProtoReflect.Descriptor instead.
func (*UnsignedTransactionResponse) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{6}
}

func (x *UnsignedTransactionResponse) GetUnsignedTx() []byte {
	if x != nil {
		return x.UnsignedTx
	}
	return nil
}

type ListenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pda           string                 `protobuf:"bytes,1,opt,name=pda,proto3" json:"pda,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListenRequest) Reset() {
	*x = ListenRequest{}
	mi := &file_gateway_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListenRequest) ProtoMessage() {}

func (x *ListenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListenRequest.ProtoReflect.Descriptor instead.
func (*ListenRequest) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{7}
}

func (x *ListenRequest) GetPda() string {
	if x != nil {
		return x.Pda
	}
	return ""
}

type EventStreamItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Event         *Event                 `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
	Slot          uint64                 `protobuf:"varint,2,opt,name=slot,proto3" json:"slot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EventStreamItem) Reset() {
	*x = EventStreamItem{}
	mi := &file_gateway_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EventStreamItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EventStreamItem) ProtoMessage() {}

func (x *EventStreamItem) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EventStreamItem.ProtoReflect.Descriptor instead.
func (*EventStreamItem) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{8}
}

func (x *EventStreamItem) GetEvent() *Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *EventStreamItem) GetSlot() uint64 {
	if x != nil {
		return x.Slot
	}
	return 0
}

type Event struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*Event_UserCommandDispatched
	//	*Event_UserBanned
	Event         isEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Event) Reset() {
	*x = Event{}
	mi := &file_gateway_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Event) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Event) ProtoMessage() {}

func (x *Event) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Event.ProtoReflect.Descriptor instead.
func (*Event) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{9}
}

func (x *Event) GetEvent() isEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *Event) GetUserCommandDispatched() *UserCommandDispatched {
	if x != nil {
		if x, ok := x.Event.(*Event_UserCommandDispatched); ok {
			return x.UserCommandDispatched
		}
	}
	return nil
}

func (x *Event) GetUserBanned() *UserBanned {
	if x != nil {
		if x, ok := x.Event.(*Event_UserBanned); ok {
			return x.UserBanned
		}
	}
	return nil
}

type isEvent_Event interface {
	isEvent_Event()
}

type Event_UserCommandDispatched struct {
	UserCommandDispatched *UserCommandDispatched `protobuf:"bytes,1,opt,name=user_command_dispatched,json=userCommandDispatched,proto3,oneof"`
}

type Event_UserBanned struct {
	UserBanned *UserBanned `protobuf:"bytes,2,opt,name=user_banned,json=userBanned,proto3,oneof"`
}

func (*Event_UserCommandDispatched) isEvent_Event() {}

func (*Event_UserBanned) isEvent_Event() {}

// UserCommandDispatched is emitted once per confirmed dispatch-command
// transaction. The payload is opaque to the gateway.
type UserCommandDispatched struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SenderUserPda string                 `protobuf:"bytes,1,opt,name=sender_user_pda,json=senderUserPda,proto3" json:"sender_user_pda,omitempty"`
	CommandId     uint32                 `protobuf:"varint,2,opt,name=command_id,json=commandId,proto3" json:"command_id,omitempty"`
	PricePaid     uint64                 `protobuf:"varint,3,opt,name=price_paid,json=pricePaid,proto3" json:"price_paid,omitempty"`
	Payload       []byte                 `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
	Ts            int64                  `protobuf:"varint,5,opt,name=ts,proto3" json:"ts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserCommandDispatched) Reset() {
	*x = UserCommandDispatched{}
	mi := &file_gateway_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserCommandDispatched) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserCommandDispatched) ProtoMessage() {}

func (x *UserCommandDispatched) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserCommandDispatched.ProtoReflect.Descriptor instead.
func (*UserCommandDispatched) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{10}
}

func (x *UserCommandDispatched) GetSenderUserPda() string {
	if x != nil {
		return x.SenderUserPda
	}
	return ""
}

func (x *UserCommandDispatched) GetCommandId() uint32 {
	if x != nil {
		return x.CommandId
	}
	return 0
}

func (x *UserCommandDispatched) GetPricePaid() uint64 {
	if x != nil {
		return x.PricePaid
	}
	return 0
}

func (x *UserCommandDispatched) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *UserCommandDispatched) GetTs() int64 {
	if x != nil {
		return x.Ts
	}
	return 0
}

type UserBanned struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetUserPda string                 `protobuf:"bytes,1,opt,name=target_user_pda,json=targetUserPda,proto3" json:"target_user_pda,omitempty"`
	Ts            int64                  `protobuf:"varint,2,opt,name=ts,proto3" json:"ts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserBanned) Reset() {
	*x = UserBanned{}
	mi := &file_gateway_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserBanned) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserBanned) ProtoMessage() {}

func (x *UserBanned) ProtoReflect() protoreflect.Message {
	mi := &file_gateway_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserBanned.ProtoReflect.Descriptor instead.
func (*UserBanned) Descriptor() ([]byte, []int) {
	return file_gateway_proto_rawDescGZIP(), []int{11}
}

func (x *UserBanned) GetTargetUserPda() string {
	if x != nil {
		return x.TargetUserPda
	}
	return ""
}

func (x *UserBanned) GetTs() int64 {
	if x != nil {
		return x.Ts
	}
	return 0
}

var File_gateway_proto protoreflect.FileDescriptor

const file_gateway_proto_rawDesc = "" +
	"\n" +
	"\rgateway.proto\x12\x11bridge.gateway.v1\"\x82\x01\n" +
	"\"PrepareAdminRegisterProfileRequest\x12)\n" +
	"\x10authority_pubkey\x18\x01 \x01(\tR\x0fauthorityPubkey\x121\n" +
	"\x14communication_pubkey\x18\x02 \x01(\tR\x13communicationPubkey\"\xa9\x01\n" +
	"\x1fPrepareUserCreateProfileRequest\x12)\n" +
	"\x10authority_pubkey\x18\x01 \x01(\tR\x0fauthorityPubkey\x12(\n" +
	"\x10target_admin_pda\x18\x02 \x01(\tR\x0etargetAdminPda\x121\n" +
	"\x14communication_pubkey\x18\x03 \x01(\tR\x13communicationPubkey\"\x8a\x01\n" +
	"\x19PrepareUserDepositRequest\x12)\n" +
	"\x10authority_pubkey\x18\x01 \x01(\tR\x0fauthorityPubkey\x12*\n" +
	"\x11admin_profile_pda\x18\x02 \x01(\tR\x0fadminProfilePda\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x04R\x06amount\"\xb5\x02\n" +
	"!PrepareUserDispatchCommandRequest\x12)\n" +
	"\x10authority_pubkey\x18\x01 \x01(\tR\x0fauthorityPubkey\x12(\n" +
	"\x10target_admin_pda\x18\x02 \x01(\tR\x0etargetAdminPda\x12\x1d\n" +
	"\n" +
	"command_id\x18\x03 \x01(\rR\tcommandId\x12\x14\n" +
	"\x05price\x18\x04 \x01(\x04R\x05price\x12\x1c\n" +
	"\ttimestamp\x18\x05 \x01(\x03R\ttimestamp\x12\x18\n" +
	"\apayload\x18\x06 \x01(\fR\apayload\x12#\n" +
	"\roracle_pubkey\x18\a \x01(\tR\foraclePubkey\x12)\n" +
	"\x10oracle_signature\x18\b \x01(\fR\x0foracleSignature\"\xda\x01\n" +
	"\x17PrepareLogActionRequest\x12)\n" +
	"\x10authority_pubkey\x18\x01 \x01(\tR\x0fauthorityPubkey\x12(\n" +
	"\x10user_profile_pda\x18\x02 \x01(\tR\x0euserProfilePda\x12*\n" +
	"\x11admin_profile_pda\x18\x03 \x01(\tR\x0fadminProfilePda\x12\x1d\n" +
	"\n" +
	"session_id\x18\x04 \x01(\x04R\tsessionId\x12\x1f\n" +
	"\vaction_code\x18\x05 \x01(\rR\n" +
	"actionCode\"~\n" +
	"\x1aPrepareAdminBanUserRequest\x12)\n" +
	"\x10authority_pubkey\x18\x01 \x01(\tR\x0fauthorityPubkey\x125\n" +
	"\x17target_user_profile_pda\x18\x02 \x01(\tR\x14targetUserProfilePda\">\n" +
	"\x1bUnsignedTransactionResponse\x12\x1f\n" +
	"\vunsigned_tx\x18\x01 \x01(\fR\n" +
	"unsignedTx\"!\n" +
	"\rListenRequest\x12\x10\n" +
	"\x03pda\x18\x01 \x01(\tR\x03pda\"U\n" +
	"\x0fEventStreamItem\x12.\n" +
	"\x05event\x18\x01 \x01(\v2\x18.bridge.gateway.v1.EventR\x05event\x12\x12\n" +
	"\x04slot\x18\x02 \x01(\x04R\x04slot\"\xb6\x01\n" +
	"\x05Event\x12b\n" +
	"\x17user_command_dispatched\x18\x01 \x01(\v2(.bridge.gateway.v1.UserCommandDispatchedH\x00R\x15userCommandDispatched\x12@\n" +
	"\vuser_banned\x18\x02 \x01(\v2\x1d.bridge.gateway.v1.UserBannedH\x00R\n" +
	"userBannedB\a\n" +
	"\x05event\"\xa7\x01\n" +
	"\x15UserCommandDispatched\x12&\n" +
	"\x0fsender_user_pda\x18\x01 \x01(\tR\rsenderUserPda\x12\x1d\n" +
	"\n" +
	"command_id\x18\x02 \x01(\rR\tcommandId\x12\x1d\n" +
	"\n" +
	"price_paid\x18\x03 \x01(\x04R\tpricePaid\x12\x18\n" +
	"\apayload\x18\x04 \x01(\fR\apayload\x12\x0e\n" +
	"\x02ts\x18\x05 \x01(\x03R\x02ts\"D\n" +
	"\n" +
	"UserBanned\x12&\n" +
	"\x0ftarget_user_pda\x18\x01 \x01(\tR\rtargetUserPda\x12\x0e\n" +
	"\x02ts\x18\x02 \x01(\x03R\x02ts2\xd4\x06\n" +
	"\x14BridgeGatewayService\x12\x84\x01\n" +
	"\x1bPrepareAdminRegisterProfile\x125.bridge.gateway.v1.PrepareAdminRegisterProfileRequest\x1a..bridge.gateway.v1.UnsignedTransactionResponse\x12~\n" +
	"\x18PrepareUserCreateProfile\x122.bridge.gateway.v1.PrepareUserCreateProfileRequest\x1a..bridge.gateway.v1.UnsignedTransactionResponse\x12r\n" +
	"\x12PrepareUserDeposit\x12,.bridge.gateway.v1.PrepareUserDepositRequest\x1a..bridge.gateway.v1.UnsignedTransactionResponse\x12\x82\x01\n" +
	"\x1aPrepareUserDispatchCommand\x124.bridge.gateway.v1.PrepareUserDispatchCommandRequest\x1a..bridge.gateway.v1.UnsignedTransactionResponse\x12n\n" +
	"\x10PrepareLogAction\x12*.bridge.gateway.v1.PrepareLogActionRequest\x1a..bridge.gateway.v1.UnsignedTransactionResponse\x12t\n" +
	"\x13PrepareAdminBanUser\x12-.bridge.gateway.v1.PrepareAdminBanUserRequest\x1a..bridge.gateway.v1.UnsignedTransactionResponse\x12V\n" +
	"\fListenAsUser\x12 .bridge.gateway.v1.ListenRequest\x1a\".bridge.gateway.v1.EventStreamItem0\x01B%Z#social-bridge/proto/gateway;gatewayb\x06proto3"

var (
	file_gateway_proto_rawDescOnce sync.Once
	file_gateway_proto_rawDescData []byte
)

func file_gateway_proto_rawDescGZIP() []byte {
	file_gateway_proto_rawDescOnce.Do(func() {
		file_gateway_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_gateway_proto_rawDesc), len(file_gateway_proto_rawDesc)))
	})
	return file_gateway_proto_rawDescData
}

var file_gateway_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_gateway_proto_goTypes = []any{
	(*PrepareAdminRegisterProfileRequest)(nil), // 0: bridge.gateway.v1.PrepareAdminRegisterProfileRequest
	(*PrepareUserCreateProfileRequest)(nil),    // 1: bridge.gateway.v1.PrepareUserCreateProfileRequest
	(*PrepareUserDepositRequest)(nil),          // 2: bridge.gateway.v1.PrepareUserDepositRequest
	(*PrepareUserDispatchCommandRequest)(nil),  // 3: bridge.gateway.v1.PrepareUserDispatchCommandRequest
	(*PrepareLogActionRequest)(nil),            // 4: bridge.gateway.v1.PrepareLogActionRequest
	(*PrepareAdminBanUserRequest)(nil),         // 5: bridge.gateway.v1.PrepareAdminBanUserRequest
	(*UnsignedTransactionResponse)(nil),        // 6: bridge.gateway.v1.UnsignedTransactionResponse
	(*ListenRequest)(nil),                      // 7: bridge.gateway.v1.ListenRequest
	(*EventStreamItem)(nil),                    // 8: bridge.gateway.v1.EventStreamItem
	(*Event)(nil),                              // 9: bridge.gateway.v1.Event
	(*UserCommandDispatched)(nil),              // 10: bridge.gateway.v1.UserCommandDispatched
	(*UserBanned)(nil),                         // 11: bridge.gateway.v1.UserBanned
}
var file_gateway_proto_depIdxs = []int32{
	9,  // 0: bridge.gateway.v1.EventStreamItem.event:type_name -> bridge.gateway.v1.Event
	10, // 1: bridge.gateway.v1.Event.user_command_dispatched:type_name -> bridge.gateway.v1.UserCommandDispatched
	11, // 2: bridge.gateway.v1.Event.user_banned:type_name -> bridge.gateway.v1.UserBanned
	0,  // 3: bridge.gateway.v1.BridgeGatewayService.PrepareAdminRegisterProfile:input_type -> bridge.gateway.v1.PrepareAdminRegisterProfileRequest
	1,  // 4: bridge.gateway.v1.BridgeGatewayService.PrepareUserCreateProfile:input_type -> bridge.gateway.v1.PrepareUserCreateProfileRequest
	2,  // 5: bridge.gateway.v1.BridgeGatewayService.PrepareUserDeposit:input_type -> bridge.gateway.v1.PrepareUserDepositRequest
	3,  // 6: bridge.gateway.v1.BridgeGatewayService.PrepareUserDispatchCommand:input_type -> bridge.gateway.v1.PrepareUserDispatchCommandRequest
	4,  // 7: bridge.gateway.v1.BridgeGatewayService.PrepareLogAction:input_type -> bridge.gateway.v1.PrepareLogActionRequest
	5,  // 8: bridge.gateway.v1.BridgeGatewayService.PrepareAdminBanUser:input_type -> bridge.gateway.v1.PrepareAdminBanUserRequest
	7,  // 9: bridge.gateway.v1.BridgeGatewayService.ListenAsUser:input_type -> bridge.gateway.v1.ListenRequest
	6,  // 10: bridge.gateway.v1.BridgeGatewayService.PrepareAdminRegisterProfile:output_type -> bridge.gateway.v1.UnsignedTransactionResponse
	6,  // 11: bridge.gateway.v1.BridgeGatewayService.PrepareUserCreateProfile:output_type -> bridge.gateway.v1.UnsignedTransactionResponse
	6,  // 12: bridge.gateway.v1.BridgeGatewayService.PrepareUserDeposit:output_type -> bridge.gateway.v1.UnsignedTransactionResponse
	6,  // 13: bridge.gateway.v1.BridgeGatewayService.PrepareUserDispatchCommand:output_type -> bridge.gateway.v1.UnsignedTransactionResponse
	6,  // 14: bridge.gateway.v1.BridgeGatewayService.PrepareLogAction:output_type -> bridge.gateway.v1.UnsignedTransactionResponse
	6,  // 15: bridge.gateway.v1.BridgeGatewayService.PrepareAdminBanUser:output_type -> bridge.gateway.v1.UnsignedTransactionResponse
	8,  // 16: bridge.gateway.v1.BridgeGatewayService.ListenAsUser:output_type -> bridge.gateway.v1.EventStreamItem
	10, // [10:17] is the sub-list for method output_type
	3,  // [3:10] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_gateway_proto_init() }
func file_gateway_proto_init() {
	if File_gateway_proto != nil {
		return
	}
	file_gateway_proto_msgTypes[9].OneofWrappers = []any{
		(*Event_UserCommandDispatched)(nil),
		(*Event_UserBanned)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_gateway_proto_rawDesc), len(file_gateway_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_gateway_proto_goTypes,
		DependencyIndexes: file_gateway_proto_depIdxs,
		MessageInfos:      file_gateway_proto_msgTypes,
	}.Build()
	File_gateway_proto = out.File
	file_gateway_proto_goTypes = nil
	file_gateway_proto_depIdxs = nil
}
