package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/agbru/fibcompare/internal/ui"
)

// setCustomUsage installs a colored usage function listing the modes and the
// supported engine types.
func setCustomUsage(fs *flag.FlagSet, engines []string) {
	fs.Usage = func() {
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}
		out := fs.Output()
		name := fs.Name()

		fmt.Fprintf(out, "\n%sFibonacci cross-validation and timing%s\n\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "%sUsage:%s\n", t.Warning, t.Reset)
		fmt.Fprintf(out, "  %s [flags] <type> <n>\n", name)
		fmt.Fprintf(out, "  %s [flags] timing <n>\n", name)
		fmt.Fprintf(out, "  %s [flags] verify <n>\n", name)
		fmt.Fprintf(out, "  %s [flags] graph\n", name)
		fmt.Fprintf(out, "  %s [flags] tui\n\n", name)
		fmt.Fprintf(out, "Supported types are: %s\n\n", strings.Join(engines, ", "))
		fmt.Fprintf(out, "%sFlags:%s\n", t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			argName, usage := flag.UnquoteUsage(f)
			flagSig := "-" + f.Name
			if argName != "" {
				flagSig += " " + argName
			}
			fmt.Fprintf(out, "  %s%-22s%s %s", t.Primary, flagSig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" && f.DefValue != "0s" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintln(out)
	}
}
