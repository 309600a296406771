package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibcompare/internal/config"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/ui"
)

// PrintExecutionConfig displays the run configuration of verify mode.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	th := ui.GetCurrentTheme()
	timeout := "none"
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout.String()
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Calculating %sfib(%d)%s with a timeout of %s%s%s.\n",
		th.Primary, cfg.N, th.Reset, th.Warning, timeout, th.Reset)
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		th.Secondary, runtime.NumCPU(), th.Reset, th.Secondary, runtime.Version(), th.Reset)
	precision := "auto"
	if cfg.Precision > 0 {
		precision = fmt.Sprintf("%d bits", cfg.Precision)
	}
	fmt.Fprintf(out, "Float engine: precision %s%s%s, exponentiation %s%s%s.\n",
		th.Secondary, precision, th.Reset, th.Secondary, cfg.Pow, th.Reset)
}

// PrintExecutionMode names the engines about to run.
func PrintExecutionMode(calculators []fibonacci.Calculator, out io.Writer) {
	th := ui.GetCurrentTheme()
	var modeDesc string
	if len(calculators) > 1 {
		modeDesc = fmt.Sprintf("Parallel cross-check of %d engines", len(calculators))
	} else if len(calculators) == 1 {
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s engine",
			th.Success, calculators[0].Name(), th.Reset)
	} else {
		modeDesc = "No engine selected"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
