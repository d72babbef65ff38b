package cli

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexboard/pkg/observability"
)

// logHooks surfaces generation progress through the CLI logger at debug
// level. Registered for the duration of a command run.
type logHooks struct {
	logger *log.Logger
}

var _ observability.GenerationHooks = (*logHooks)(nil)

func (h *logHooks) OnBuildComplete(variant string, terrainTiles, portTiles int) {
	h.logger.Debug("board built", "variant", variant, "terrain", terrainTiles, "ports", portTiles)
}

func (h *logHooks) OnTrialComplete(trial int, accepted bool, rejectedBy int) {
	if accepted {
		h.logger.Debug("layout accepted", "trial", trial)
		return
	}
	h.logger.Debug("layout rejected", "trial", trial, "validator", rejectedBy)
}

func (h *logHooks) OnLayoutComplete(trials int, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "trials", trials, "err", err)
		return
	}
	h.logger.Debug("layout complete", "trials", trials)
}
