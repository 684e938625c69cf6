// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	ed25519 "crypto/ed25519"
	reflect "reflect"
	contract "social-bridge/contract"
	domain "social-bridge/domain"
	event "social-bridge/domain/event"

	gomock "go.uber.org/mock/gomock"
)

// MockISupervisor is a mock of ISupervisor interface.
type MockISupervisor struct {
	ctrl     *gomock.Controller
	recorder *MockISupervisorMockRecorder
	isgomock struct{}
}

// MockISupervisorMockRecorder is the mock recorder for MockISupervisor.
type MockISupervisorMockRecorder struct {
	mock *MockISupervisor
}

// NewMockISupervisor creates a new mock instance.
func NewMockISupervisor(ctrl *gomock.Controller) *MockISupervisor {
	mock := &MockISupervisor{ctrl: ctrl}
	mock.recorder = &MockISupervisorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISupervisor) EXPECT() *MockISupervisorMockRecorder {
	return m.recorder
}

// Add mocks base method.
func (m *MockISupervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range worker {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Add", varargs...)
	ret0, _ := ret[0].(contract.ISupervisor)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockISupervisorMockRecorder) Add(worker ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockISupervisor)(nil).Add), worker...)
}

// Run mocks base method.
func (m *MockISupervisor) Run(ctx context.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Run", ctx)
}

// Run indicates an expected call of Run.
func (mr *MockISupervisorMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockISupervisor)(nil).Run), ctx)
}

// Start mocks base method.
func (m *MockISupervisor) Start(ctx context.Context, worker contract.Worker) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Start", ctx, worker)
}

// Start indicates an expected call of Start.
func (mr *MockISupervisorMockRecorder) Start(ctx, worker any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockISupervisor)(nil).Start), ctx, worker)
}

// Stop mocks base method.
func (m *MockISupervisor) Stop() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stop")
}

// Stop indicates an expected call of Stop.
func (mr *MockISupervisorMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockISupervisor)(nil).Stop))
}

// MockWorker is a mock of Worker interface.
type MockWorker struct {
	ctrl     *gomock.Controller
	recorder *MockWorkerMockRecorder
	isgomock struct{}
}

// MockWorkerMockRecorder is the mock recorder for MockWorker.
type MockWorkerMockRecorder struct {
	mock *MockWorker
}

// NewMockWorker creates a new mock instance.
func NewMockWorker(ctrl *gomock.Controller) *MockWorker {
	mock := &MockWorker{ctrl: ctrl}
	mock.recorder = &MockWorkerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorker) EXPECT() *MockWorkerMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockWorker) Run(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockWorkerMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockWorker)(nil).Run), ctx)
}

// MockTransactionPreparer is a mock of TransactionPreparer interface.
type MockTransactionPreparer struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionPreparerMockRecorder
	isgomock struct{}
}

// MockTransactionPreparerMockRecorder is the mock recorder for MockTransactionPreparer.
type MockTransactionPreparerMockRecorder struct {
	mock *MockTransactionPreparer
}

// NewMockTransactionPreparer creates a new mock instance.
func NewMockTransactionPreparer(ctrl *gomock.Controller) *MockTransactionPreparer {
	mock := &MockTransactionPreparer{ctrl: ctrl}
	mock.recorder = &MockTransactionPreparerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionPreparer) EXPECT() *MockTransactionPreparerMockRecorder {
	return m.recorder
}

// PrepareAdminBanUser mocks base method.
func (m *MockTransactionPreparer) PrepareAdminBanUser(ctx context.Context, authority ed25519.PublicKey, targetUser domain.ProfileAddress) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PrepareAdminBanUser", ctx, authority, targetUser)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PrepareAdminBanUser indicates an expected call of PrepareAdminBanUser.
func (mr *MockTransactionPreparerMockRecorder) PrepareAdminBanUser(ctx, authority, targetUser any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PrepareAdminBanUser", reflect.TypeOf((*MockTransactionPreparer)(nil).PrepareAdminBanUser), ctx, authority, targetUser)
}

// PrepareAdminRegisterProfile mocks base method.
func (m *MockTransactionPreparer) PrepareAdminRegisterProfile(ctx context.Context, authority, communicationKey ed25519.PublicKey) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PrepareAdminRegisterProfile", ctx, authority, communicationKey)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PrepareAdminRegisterProfile indicates an expected call of PrepareAdminRegisterProfile.
func (mr *MockTransactionPreparerMockRecorder) PrepareAdminRegisterProfile(ctx, authority, communicationKey any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PrepareAdminRegisterProfile", reflect.TypeOf((*MockTransactionPreparer)(nil).PrepareAdminRegisterProfile), ctx, authority, communicationKey)
}

// PrepareLogAction mocks base method.
func (m *MockTransactionPreparer) PrepareLogAction(ctx context.Context, authority ed25519.PublicKey, user, admin domain.ProfileAddress, sessionID uint64, actionCode uint16) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PrepareLogAction", ctx, authority, user, admin, sessionID, actionCode)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PrepareLogAction indicates an expected call of PrepareLogAction.
func (mr *MockTransactionPreparerMockRecorder) PrepareLogAction(ctx, authority, user, admin, sessionID, actionCode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PrepareLogAction", reflect.TypeOf((*MockTransactionPreparer)(nil).PrepareLogAction), ctx, authority, user, admin, sessionID, actionCode)
}

// PrepareUserCreateProfile mocks base method.
func (m *MockTransactionPreparer) PrepareUserCreateProfile(ctx context.Context, authority ed25519.PublicKey, targetAdmin domain.ProfileAddress, communicationKey ed25519.PublicKey) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PrepareUserCreateProfile", ctx, authority, targetAdmin, communicationKey)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PrepareUserCreateProfile indicates an expected call of PrepareUserCreateProfile.
func (mr *MockTransactionPreparerMockRecorder) PrepareUserCreateProfile(ctx, authority, targetAdmin, communicationKey any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PrepareUserCreateProfile", reflect.TypeOf((*MockTransactionPreparer)(nil).PrepareUserCreateProfile), ctx, authority, targetAdmin, communicationKey)
}

// PrepareUserDeposit mocks base method.
func (m *MockTransactionPreparer) PrepareUserDeposit(ctx context.Context, authority ed25519.PublicKey, admin domain.ProfileAddress, amount uint64) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PrepareUserDeposit", ctx, authority, admin, amount)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PrepareUserDeposit indicates an expected call of PrepareUserDeposit.
func (mr *MockTransactionPreparerMockRecorder) PrepareUserDeposit(ctx, authority, admin, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PrepareUserDeposit", reflect.TypeOf((*MockTransactionPreparer)(nil).PrepareUserDeposit), ctx, authority, admin, amount)
}

// PrepareUserDispatchCommand mocks base method.
func (m *MockTransactionPreparer) PrepareUserDispatchCommand(ctx context.Context, authority ed25519.PublicKey, targetAdmin domain.ProfileAddress, cmd domain.Command) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PrepareUserDispatchCommand", ctx, authority, targetAdmin, cmd)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PrepareUserDispatchCommand indicates an expected call of PrepareUserDispatchCommand.
func (mr *MockTransactionPreparerMockRecorder) PrepareUserDispatchCommand(ctx, authority, targetAdmin, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PrepareUserDispatchCommand", reflect.TypeOf((*MockTransactionPreparer)(nil).PrepareUserDispatchCommand), ctx, authority, targetAdmin, cmd)
}

// MockLedgerClient is a mock of LedgerClient interface.
type MockLedgerClient struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerClientMockRecorder
	isgomock struct{}
}

// MockLedgerClientMockRecorder is the mock recorder for MockLedgerClient.
type MockLedgerClientMockRecorder struct {
	mock *MockLedgerClient
}

// NewMockLedgerClient creates a new mock instance.
func NewMockLedgerClient(ctrl *gomock.Controller) *MockLedgerClient {
	mock := &MockLedgerClient{ctrl: ctrl}
	mock.recorder = &MockLedgerClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerClient) EXPECT() *MockLedgerClientMockRecorder {
	return m.recorder
}

// Confirm mocks base method.
func (m *MockLedgerClient) Confirm(ctx context.Context, signature string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Confirm", ctx, signature)
	ret0, _ := ret[0].(error)
	return ret0
}

// Confirm indicates an expected call of Confirm.
func (mr *MockLedgerClientMockRecorder) Confirm(ctx, signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Confirm", reflect.TypeOf((*MockLedgerClient)(nil).Confirm), ctx, signature)
}

// LatestAnchor mocks base method.
func (m *MockLedgerClient) LatestAnchor(ctx context.Context) ([32]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestAnchor", ctx)
	ret0, _ := ret[0].([32]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LatestAnchor indicates an expected call of LatestAnchor.
func (mr *MockLedgerClientMockRecorder) LatestAnchor(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestAnchor", reflect.TypeOf((*MockLedgerClient)(nil).LatestAnchor), ctx)
}

// RequestFunding mocks base method.
func (m *MockLedgerClient) RequestFunding(ctx context.Context, recipient ed25519.PublicKey, amount uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RequestFunding", ctx, recipient, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// RequestFunding indicates an expected call of RequestFunding.
func (mr *MockLedgerClientMockRecorder) RequestFunding(ctx, recipient, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RequestFunding", reflect.TypeOf((*MockLedgerClient)(nil).RequestFunding), ctx, recipient, amount)
}

// SubmitSigned mocks base method.
func (m *MockLedgerClient) SubmitSigned(ctx context.Context, signedTx []byte) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubmitSigned", ctx, signedTx)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SubmitSigned indicates an expected call of SubmitSigned.
func (mr *MockLedgerClientMockRecorder) SubmitSigned(ctx, signedTx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubmitSigned", reflect.TypeOf((*MockLedgerClient)(nil).SubmitSigned), ctx, signedTx)
}

// MockTransactionSubmitter is a mock of TransactionSubmitter interface.
type MockTransactionSubmitter struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionSubmitterMockRecorder
	isgomock struct{}
}

// MockTransactionSubmitterMockRecorder is the mock recorder for MockTransactionSubmitter.
type MockTransactionSubmitterMockRecorder struct {
	mock *MockTransactionSubmitter
}

// NewMockTransactionSubmitter creates a new mock instance.
func NewMockTransactionSubmitter(ctrl *gomock.Controller) *MockTransactionSubmitter {
	mock := &MockTransactionSubmitter{ctrl: ctrl}
	mock.recorder = &MockTransactionSubmitterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionSubmitter) EXPECT() *MockTransactionSubmitterMockRecorder {
	return m.recorder
}

// Submit mocks base method.
func (m *MockTransactionSubmitter) Submit(ctx context.Context, unsignedTx []byte, signer domain.Identity) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Submit", ctx, unsignedTx, signer)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Submit indicates an expected call of Submit.
func (mr *MockTransactionSubmitterMockRecorder) Submit(ctx, unsignedTx, signer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Submit", reflect.TypeOf((*MockTransactionSubmitter)(nil).Submit), ctx, unsignedTx, signer)
}

// MockEventStream is a mock of EventStream interface.
type MockEventStream struct {
	ctrl     *gomock.Controller
	recorder *MockEventStreamMockRecorder
	isgomock struct{}
}

// MockEventStreamMockRecorder is the mock recorder for MockEventStream.
type MockEventStreamMockRecorder struct {
	mock *MockEventStream
}

// NewMockEventStream creates a new mock instance.
func NewMockEventStream(ctrl *gomock.Controller) *MockEventStream {
	mock := &MockEventStream{ctrl: ctrl}
	mock.recorder = &MockEventStreamMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventStream) EXPECT() *MockEventStreamMockRecorder {
	return m.recorder
}

// Recv mocks base method.
func (m *MockEventStream) Recv() (event.BridgeEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Recv")
	ret0, _ := ret[0].(event.BridgeEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Recv indicates an expected call of Recv.
func (mr *MockEventStreamMockRecorder) Recv() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Recv", reflect.TypeOf((*MockEventStream)(nil).Recv))
}

// MockEventSubscriber is a mock of EventSubscriber interface.
type MockEventSubscriber struct {
	ctrl     *gomock.Controller
	recorder *MockEventSubscriberMockRecorder
	isgomock struct{}
}

// MockEventSubscriberMockRecorder is the mock recorder for MockEventSubscriber.
type MockEventSubscriberMockRecorder struct {
	mock *MockEventSubscriber
}

// NewMockEventSubscriber creates a new mock instance.
func NewMockEventSubscriber(ctrl *gomock.Controller) *MockEventSubscriber {
	mock := &MockEventSubscriber{ctrl: ctrl}
	mock.recorder = &MockEventSubscriberMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventSubscriber) EXPECT() *MockEventSubscriberMockRecorder {
	return m.recorder
}

// Listen mocks base method.
func (m *MockEventSubscriber) Listen(ctx context.Context, address domain.ProfileAddress) (contract.EventStream, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Listen", ctx, address)
	ret0, _ := ret[0].(contract.EventStream)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Listen indicates an expected call of Listen.
func (mr *MockEventSubscriberMockRecorder) Listen(ctx, address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Listen", reflect.TypeOf((*MockEventSubscriber)(nil).Listen), ctx, address)
}

// MockEventSink is a mock of EventSink interface.
type MockEventSink struct {
	ctrl     *gomock.Controller
	recorder *MockEventSinkMockRecorder
	isgomock struct{}
}

// MockEventSinkMockRecorder is the mock recorder for MockEventSink.
type MockEventSinkMockRecorder struct {
	mock *MockEventSink
}

// NewMockEventSink creates a new mock instance.
func NewMockEventSink(ctrl *gomock.Controller) *MockEventSink {
	mock := &MockEventSink{ctrl: ctrl}
	mock.recorder = &MockEventSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventSink) EXPECT() *MockEventSinkMockRecorder {
	return m.recorder
}

// Consume mocks base method.
func (m *MockEventSink) Consume(e event.BridgeEvent) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Consume", e)
}

// Consume indicates an expected call of Consume.
func (mr *MockEventSinkMockRecorder) Consume(e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consume", reflect.TypeOf((*MockEventSink)(nil).Consume), e)
}

// MockConversationActions is a mock of ConversationActions interface.
type MockConversationActions struct {
	ctrl     *gomock.Controller
	recorder *MockConversationActionsMockRecorder
	isgomock struct{}
}

// MockConversationActionsMockRecorder is the mock recorder for MockConversationActions.
type MockConversationActionsMockRecorder struct {
	mock *MockConversationActions
}

// NewMockConversationActions creates a new mock instance.
func NewMockConversationActions(ctrl *gomock.Controller) *MockConversationActions {
	mock := &MockConversationActions{ctrl: ctrl}
	mock.recorder = &MockConversationActionsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConversationActions) EXPECT() *MockConversationActionsMockRecorder {
	return m.recorder
}

// SendSticker mocks base method.
func (m *MockConversationActions) SendSticker(ctx context.Context, from domain.Identity) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendSticker", ctx, from)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendSticker indicates an expected call of SendSticker.
func (mr *MockConversationActionsMockRecorder) SendSticker(ctx, from any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendSticker", reflect.TypeOf((*MockConversationActions)(nil).SendSticker), ctx, from)
}

// SendText mocks base method.
func (m *MockConversationActions) SendText(ctx context.Context, from domain.Identity, text string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendText", ctx, from, text)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendText indicates an expected call of SendText.
func (mr *MockConversationActionsMockRecorder) SendText(ctx, from, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendText", reflect.TypeOf((*MockConversationActions)(nil).SendText), ctx, from, text)
}

// TransferFile mocks base method.
func (m *MockConversationActions) TransferFile(ctx context.Context, from, to domain.Identity) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransferFile", ctx, from, to)
	ret0, _ := ret[0].(error)
	return ret0
}

// TransferFile indicates an expected call of TransferFile.
func (mr *MockConversationActionsMockRecorder) TransferFile(ctx, from, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransferFile", reflect.TypeOf((*MockConversationActions)(nil).TransferFile), ctx, from, to)
}

// MockStatusReader is a mock of StatusReader interface.
type MockStatusReader struct {
	ctrl     *gomock.Controller
	recorder *MockStatusReaderMockRecorder
	isgomock struct{}
}

// MockStatusReaderMockRecorder is the mock recorder for MockStatusReader.
type MockStatusReaderMockRecorder struct {
	mock *MockStatusReader
}

// NewMockStatusReader creates a new mock instance.
func NewMockStatusReader(ctrl *gomock.Controller) *MockStatusReader {
	mock := &MockStatusReader{ctrl: ctrl}
	mock.recorder = &MockStatusReaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStatusReader) EXPECT() *MockStatusReaderMockRecorder {
	return m.recorder
}

// Status mocks base method.
func (m *MockStatusReader) Status(name string) domain.IdentityStatus {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Status", name)
	ret0, _ := ret[0].(domain.IdentityStatus)
	return ret0
}

// Status indicates an expected call of Status.
func (mr *MockStatusReaderMockRecorder) Status(name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Status", reflect.TypeOf((*MockStatusReader)(nil).Status), name)
}
