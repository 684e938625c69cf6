// Package client wraps the bridge gateway gRPC stub behind the
// TransactionPreparer and EventSubscriber contracts.
package client

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"log/slog"

	"google.golang.org/grpc"

	"social-bridge/contract"
	"social-bridge/domain"
	"social-bridge/domain/event"
	pb "social-bridge/proto/gateway"
)

type GatewayClient struct {
	stub pb.BridgeGatewayServiceClient
	log  *slog.Logger
}

func NewGatewayClient(conn *grpc.ClientConn, log *slog.Logger) *GatewayClient {
	return &GatewayClient{stub: pb.NewBridgeGatewayServiceClient(conn), log: log}
}

func (c *GatewayClient) PrepareAdminRegisterProfile(ctx context.Context, authority, communicationKey ed25519.PublicKey) ([]byte, error) {
	resp, err := c.stub.PrepareAdminRegisterProfile(ctx, &pb.PrepareAdminRegisterProfileRequest{
		AuthorityPubkey:     hex.EncodeToString(authority),
		CommunicationPubkey: hex.EncodeToString(communicationKey),
	})
	if err != nil {
		return nil, err
	}
	return resp.UnsignedTx, nil
}

func (c *GatewayClient) PrepareUserCreateProfile(ctx context.Context, authority ed25519.PublicKey, targetAdmin domain.ProfileAddress, communicationKey ed25519.PublicKey) ([]byte, error) {
	resp, err := c.stub.PrepareUserCreateProfile(ctx, &pb.PrepareUserCreateProfileRequest{
		AuthorityPubkey:     hex.EncodeToString(authority),
		TargetAdminPda:      targetAdmin.String(),
		CommunicationPubkey: hex.EncodeToString(communicationKey),
	})
	if err != nil {
		return nil, err
	}
	return resp.UnsignedTx, nil
}

func (c *GatewayClient) PrepareUserDeposit(ctx context.Context, authority ed25519.PublicKey, admin domain.ProfileAddress, amount uint64) ([]byte, error) {
	resp, err := c.stub.PrepareUserDeposit(ctx, &pb.PrepareUserDepositRequest{
		AuthorityPubkey: hex.EncodeToString(authority),
		AdminProfilePda: admin.String(),
		Amount:          amount,
	})
	if err != nil {
		return nil, err
	}
	return resp.UnsignedTx, nil
}

func (c *GatewayClient) PrepareUserDispatchCommand(ctx context.Context, authority ed25519.PublicKey, targetAdmin domain.ProfileAddress, cmd domain.Command) ([]byte, error) {
	resp, err := c.stub.PrepareUserDispatchCommand(ctx, &pb.PrepareUserDispatchCommandRequest{
		AuthorityPubkey: hex.EncodeToString(authority),
		TargetAdminPda:  targetAdmin.String(),
		CommandId:       uint32(cmd.ID),
		Price:           cmd.Price,
		Timestamp:       cmd.Timestamp,
		Payload:         cmd.Payload,
		OraclePubkey:    hex.EncodeToString(cmd.Authorization.SignerPublicKey),
		OracleSignature: cmd.Authorization.Signature,
	})
	if err != nil {
		return nil, err
	}
	return resp.UnsignedTx, nil
}

func (c *GatewayClient) PrepareLogAction(ctx context.Context, authority ed25519.PublicKey, user, admin domain.ProfileAddress, sessionID uint64, actionCode uint16) ([]byte, error) {
	resp, err := c.stub.PrepareLogAction(ctx, &pb.PrepareLogActionRequest{
		AuthorityPubkey: hex.EncodeToString(authority),
		UserProfilePda:  user.String(),
		AdminProfilePda: admin.String(),
		SessionId:       sessionID,
		ActionCode:      uint32(actionCode),
	})
	if err != nil {
		return nil, err
	}
	return resp.UnsignedTx, nil
}

func (c *GatewayClient) PrepareAdminBanUser(ctx context.Context, authority ed25519.PublicKey, targetUser domain.ProfileAddress) ([]byte, error) {
	resp, err := c.stub.PrepareAdminBanUser(ctx, &pb.PrepareAdminBanUserRequest{
		AuthorityPubkey:      hex.EncodeToString(authority),
		TargetUserProfilePda: targetUser.String(),
	})
	if err != nil {
		return nil, err
	}
	return resp.UnsignedTx, nil
}

// Listen opens the server-streamed subscription for one profile address.
func (c *GatewayClient) Listen(ctx context.Context, address domain.ProfileAddress) (contract.EventStream, error) {
	stream, err := c.stub.ListenAsUser(ctx, &pb.ListenRequest{Pda: address.String()})
	if err != nil {
		return nil, err
	}
	return &eventStream{inner: stream, log: c.log}, nil
}

type eventStream struct {
	inner pb.BridgeGatewayService_ListenAsUserClient
	log   *slog.Logger
}

// Recv blocks for the next decodable event. Items the client does not
// understand (future event kinds, malformed addresses) are skipped, not
// surfaced as errors.
func (s *eventStream) Recv() (event.BridgeEvent, error) {
	for {
		item, err := s.inner.Recv()
		if err != nil {
			return nil, err
		}
		evt, ok := s.decode(item)
		if !ok {
			continue
		}
		return evt, nil
	}
}

func (s *eventStream) decode(item *pb.EventStreamItem) (event.BridgeEvent, bool) {
	switch e := item.GetEvent().GetEvent().(type) {
	case *pb.Event_UserCommandDispatched:
		sender, err := domain.ParseProfileAddress(e.UserCommandDispatched.SenderUserPda)
		if err != nil {
			s.log.Debug("Skipping event with malformed sender", "error", err)
			return nil, false
		}
		return event.CommandDispatched{
			Sender:    sender,
			CommandID: domain.CommandID(e.UserCommandDispatched.CommandId),
			PricePaid: e.UserCommandDispatched.PricePaid,
			Payload:   e.UserCommandDispatched.Payload,
			Ts:        e.UserCommandDispatched.Ts,
		}, true
	case *pb.Event_UserBanned:
		target, err := domain.ParseProfileAddress(e.UserBanned.TargetUserPda)
		if err != nil {
			s.log.Debug("Skipping event with malformed target", "error", err)
			return nil, false
		}
		return event.UserBanned{Target: target, Ts: e.UserBanned.Ts}, true
	default:
		s.log.Debug("Skipping unrecognized event kind")
		return nil, false
	}
}
