package mod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/TemplateOverrides_Go/internal/domain"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
)

// Host owns the ordered set of mods and runs them once.
type Host struct {
	mu    sync.Mutex
	mods  []Mod
	names map[string]struct{}
	ran   bool
}

// NewHost creates an empty Host
func NewHost() *Host {
	return &Host{names: make(map[string]struct{})}
}

// Register appends m to the run order. Names must be unique.
func (h *Host) Register(m Mod) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ran {
		return domain.ErrModsAlreadyRan
	}
	if _, ok := h.names[m.Name()]; ok {
		return fmt.Errorf(ErrFmtDuplicateMod, domain.ErrDuplicateMod, m.Name())
	}
	h.names[m.Name()] = struct{}{}
	h.mods = append(h.mods, m)
	return nil
}

// Mods returns the registered mod names in run order.
func (h *Host) Mods() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.mods))
	for i, m := range h.mods {
		out[i] = m.Name()
	}
	return out
}

// Run calls OnLoad on every mod in order and stops at the first failure.
// A Host runs at most once; later calls return domain.ErrModsAlreadyRan.
func (h *Host) Run(ctx context.Context) error {
	h.mu.Lock()
	if h.ran {
		h.mu.Unlock()
		return domain.ErrModsAlreadyRan
	}
	h.ran = true
	mods := append([]Mod(nil), h.mods...)
	h.mu.Unlock()

	ctx = logger.WithRunID(ctx, uuid.New().String())
	log := logger.FromContext(ctx)
	log.Info(LogMsgModsStarting, "mods", len(mods))

	start := time.Now()
	for _, m := range mods {
		modCtx := logger.WithMod(ctx, m.Name())
		modLog := logger.FromContext(modCtx)
		modLog.Info(LogMsgModLoading)

		modStart := time.Now()
		if err := m.OnLoad(modCtx); err != nil {
			modLog.Error(LogMsgModFailed, "error", err)
			return fmt.Errorf(ErrFmtModFailed, m.Name(), err)
		}
		modLog.Info(LogMsgModLoaded, "duration", time.Since(modStart))
	}

	log.Info(LogMsgModsFinished, "mods", len(mods), "duration", time.Since(start))
	return nil
}
