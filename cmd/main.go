package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"social-bridge/contract"
	"social-bridge/domain"
	grpcclient "social-bridge/infrastructure/grpc/client"
	"social-bridge/infrastructure/ledger"
	"social-bridge/internal"
	"social-bridge/projection"
	"social-bridge/runtime/workers"
	"social-bridge/services"
	"social-bridge/sink"
	"social-bridge/state"
	"social-bridge/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the client lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like connection cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the workers and the console.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: internal.ParseLogLevel(config.LogLevel),
	}))

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Gateway & Ledger connections
	conn, err := grpc.NewClient(config.GatewayAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connecting to gateway %s: %w", config.GatewayAddress, err)
	}
	defer func() {
		log.Info("Closing gateway connection...")
		_ = conn.Close()
	}()

	gateway := grpcclient.NewGatewayClient(conn, log)
	ledgerClient := ledger.NewClient(config.LedgerRPCURL, config.Commitment,
		config.ConfirmPollInterval, config.ConfirmTimeout, log)
	var fallbackFunding contract.LedgerClient
	if config.FallbackFundingURL != "" {
		fallbackFunding = ledger.NewClient(config.FallbackFundingURL, config.Commitment,
			config.ConfirmPollInterval, config.ConfirmTimeout, log)
	}
	submitter := ledger.NewSubmitter(ledgerClient, log)

	// 4. Identities & shared state
	admin, err := domain.NewIdentity("admin")
	if err != nil {
		return err
	}
	alice, err := domain.NewIdentity("Alice")
	if err != nil {
		return err
	}
	bob, err := domain.NewIdentity("Bob")
	if err != nil {
		return err
	}
	human, err := domain.NewIdentity("You")
	if err != nil {
		return err
	}
	oracle, err := domain.NewIdentity("oracle")
	if err != nil {
		return err
	}
	bots := []domain.Identity{alice, bob}
	adminAddress := domain.DeriveAdminProfileAddress(admin.PublicKey)

	names := lo.SliceToMap(append(bots, human), func(id domain.Identity) (domain.ProfileAddress, string) {
		return domain.DeriveUserProfileAddress(id.PublicKey, adminAddress), id.Name
	})

	notifier := sink.NewNotifier()
	store := state.NewStore(notifier)
	for _, bot := range bots {
		store.SetStatus(bot.Name, domain.StatusOnline)
	}

	dispatch := services.NewDispatchService(gateway, submitter, adminAddress,
		oracle, config.StickerPriceLamports, log)

	// 5. On-chain bootstrap; a failure degrades the session instead of aborting it.
	bootstrap := services.NewBootstrapService(gateway, submitter, ledgerClient,
		fallbackFunding, config.AirdropLamports, config.DepositLamports, log)
	if err := bootstrap.Run(ctx, admin, bots, human); err != nil {
		log.Error("On-chain setup failed, continuing with unregistered identities", "error", err)
		for _, bot := range bots {
			store.SetStatus(bot.Name, domain.StatusError)
		}
		store.Append("[ADMIN]: setup failed, running in degraded mode.")
	}

	// 6. Workers under supervision
	chatLog := projection.NewChatLog(store, names)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	for _, bot := range bots {
		address := domain.DeriveUserProfileAddress(bot.PublicKey, adminAddress)
		sup.Add(workers.NewListenerWorker(gateway, address, bot.Name, chatLog,
			config.StreamBackoff, log))
	}
	sup.Add(workers.NewSchedulerWorker(dispatch, store, bots,
		config.TurnInterval, config.FileTransferModulus, log))
	sup.Add(workers.NewHeartbeatWorker(log, config.HeartbeatInterval))

	go sup.Run(ctx)

	// 7. Console is the foreground loop
	banTargets := lo.SliceToMap(bots, func(id domain.Identity) (string, domain.Identity) {
		return id.Name, id
	})
	console := ui.NewConsole(store, dispatch, dispatch, admin, human, banTargets, log)
	if err := console.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	// 8. Final cleanup
	log.Info("Shutting down gracefully...")
	sup.Stop()
	log.Info("Program stopped cleanly")
	return nil
}
