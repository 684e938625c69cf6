package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"social-bridge/contract"
	"social-bridge/domain"
)

// SchedulerWorker drives the simulated conversation between the two bots:
// one turn per tick, alternating speakers.
//
// Action selection runs on the speaker's own success counter n: every
// eighth successful dispatch is the paid sticker, other multiples of the
// configured file modulus are a file transfer, everything else is a plain
// text message. n only advances on success, so a failed turn is retried
// with the same action next time the speaker comes around.
type SchedulerWorker struct {
	actions      contract.ConversationActions
	statuses     contract.StatusReader
	bots         []domain.Identity
	turnInterval time.Duration
	fileModulus  uint64
	log          *slog.Logger

	turn     int
	counters map[string]uint64
}

const stickerEvery = 8

func NewSchedulerWorker(
	actions contract.ConversationActions,
	statuses contract.StatusReader,
	bots []domain.Identity,
	turnInterval time.Duration,
	fileModulus uint64,
	log *slog.Logger,
) *SchedulerWorker {
	return &SchedulerWorker{
		actions:      actions,
		statuses:     statuses,
		bots:         bots,
		turnInterval: turnInterval,
		fileModulus:  fileModulus,
		log:          log,
		counters:     make(map[string]uint64),
	}
}

func (w *SchedulerWorker) Run(ctx context.Context) error {
	w.log.Info("Starting conversation scheduler", "bots", len(w.bots),
		"turn_interval", w.turnInterval, "file_modulus", w.fileModulus)

	ticker := time.NewTicker(w.turnInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.takeTurn(ctx)
		}
	}
}

// takeTurn always advances the rotation; a banned speaker forfeits the
// turn without any dispatch, and a dispatch failure is logged without
// advancing the speaker's counter.
func (w *SchedulerWorker) takeTurn(ctx context.Context) {
	speaker := w.bots[w.turn%len(w.bots)]
	partner := w.bots[(w.turn+1)%len(w.bots)]
	w.turn++

	if w.statuses.Status(speaker.Name) == domain.StatusBanned {
		w.log.Debug("Skipping turn for banned bot", "name", speaker.Name)
		return
	}

	n := w.counters[speaker.Name]
	if err := w.act(ctx, speaker, partner, n); err != nil {
		w.log.Warn("Turn failed", "name", speaker.Name, "error", err)
		return
	}
	w.counters[speaker.Name] = n + 1
}

func (w *SchedulerWorker) act(ctx context.Context, speaker, partner domain.Identity, n uint64) error {
	switch {
	case n > 0 && n%stickerEvery == 0:
		return w.actions.SendSticker(ctx, speaker)
	case n > 0 && n%w.fileModulus == 0:
		return w.actions.TransferFile(ctx, speaker, partner)
	default:
		return w.actions.SendText(ctx, speaker, fmt.Sprintf("Hello! This is message #%d", n+1))
	}
}
