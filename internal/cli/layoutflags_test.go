package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexboard/pkg/board"
)

func resolveArgs(t *testing.T, args ...string) (resolved, error) {
	t.Helper()
	var flags layoutFlags
	var res resolved
	var resErr error

	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, resErr = flags.resolve(cmd)
			return nil
		},
	}
	flags.register(cmd)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return res, resErr
}

func TestLayoutFlags_Defaults(t *testing.T) {
	res, err := resolveArgs(t)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.variant != board.VariantStandard {
		t.Errorf("variant = %v, want standard", res.variant)
	}
	if res.layout.Numbers != board.ModeStandard {
		t.Errorf("Numbers = %v, want standard", res.layout.Numbers)
	}
	if len(res.buildOpts) != 0 {
		t.Errorf("buildOpts = %d, want none", len(res.buildOpts))
	}
}

func TestLayoutFlags_Overrides(t *testing.T) {
	res, err := resolveArgs(t,
		"--variant", "large", "--frame",
		"--terrain", "beginner", "--numbers", "beginner", "--ports", "beginner",
		"--seed", "9", "--max-trials", "50")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.variant != board.VariantLarge {
		t.Errorf("variant = %v, want large", res.variant)
	}
	if len(res.buildOpts) != 1 {
		t.Errorf("buildOpts = %d, want the frame option", len(res.buildOpts))
	}
	if res.layout.Terrain != board.ModeBeginner {
		t.Errorf("Terrain = %v, want beginner", res.layout.Terrain)
	}
	if res.layout.MaxTrials != 50 {
		t.Errorf("MaxTrials = %d, want 50", res.layout.MaxTrials)
	}
	if res.layout.Rand == nil {
		t.Error("seeded flags should pin the random source")
	}
	if res.rules.Layout.Seed != 9 {
		t.Errorf("rules seed = %d, want 9", res.rules.Layout.Seed)
	}
}

func TestLayoutFlags_FrameRequiresLarge(t *testing.T) {
	if _, err := resolveArgs(t, "--frame"); err == nil {
		t.Error("expected error for --frame on the standard variant")
	}
}

func TestLayoutFlags_BadVariant(t *testing.T) {
	if _, err := resolveArgs(t, "--variant", "huge"); err == nil {
		t.Error("expected error for unknown variant")
	}
}
