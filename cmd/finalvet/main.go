// Command finalvet vets class hierarchy declaration files: it loads
// YAML documents, verifies every declaration against the finality
// rules, and reports the violations. A run over clean documents exits
// zero, anything else exits one, so the tool slots into CI pipelines.
package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/katalvlaran/finality/schema"
)

// version of the tool, overridable at build time.
var version = "0.1.0"

func main() {
	ctl := newApp()

	if err := ctl.Run(os.Args); err != nil {
		fmt.Fprintln(ctl.ErrWriter, err)
		os.Exit(1)
	}
}

func versionPrinter(ctx *cli.Context) {
	_, _ = fmt.Fprintf(ctx.App.Writer, "finalvet\nVersion: %s\nGoVersion: %s\n",
		version,
		runtime.Version(),
	)
}

// newApp assembles the finalvet instance of [cli.App].
func newApp() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "finalvet"
	ctl.Version = version
	ctl.Usage = "vet class hierarchy declarations for finality violations"
	ctl.ErrWriter = os.Stdout
	ctl.Commands = []cli.Command{
		{
			Name:      "check",
			Usage:     "verify declaration documents and report every violation",
			ArgsUsage: "<file.yaml> [file.yaml ...]",
			Action:    checkAction,
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "debug, d",
					Usage: "log per-declaration decisions",
				},
			},
		},
	}

	return ctl
}

// checkAction verifies each document named on the command line.
// Malformed documents abort immediately; finality violations are
// reported per file and turn into a single non-zero exit at the end.
func checkAction(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("declaration file is missing", 1)
	}

	log, err := newLogger(ctx.Bool("debug"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	clean := true
	for _, path := range args {
		f, err := schema.LoadFile(path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		rep, err := schema.Verify(f, schema.WithLogger(log))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		dumpReport(ctx, path, rep)
		if !rep.Clean() {
			clean = false
		}
	}
	if !clean {
		return cli.NewExitError("finality violations found", 1)
	}

	return nil
}

// newLogger builds the decision logger: verbose in debug mode, silent
// otherwise.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewNop(), nil
}

// dumpReport renders one document's outcome onto the app writer.
func dumpReport(ctx *cli.Context, path string, rep *schema.Report) {
	buf := bytes.NewBuffer(nil)

	tw := tabwriter.NewWriter(buf, 0, 4, 4, '\t', 0)
	_, _ = tw.Write([]byte("File:\t" + path + "\n"))
	_, _ = tw.Write([]byte(fmt.Sprintf("Checked:\t%d\n", rep.Checked)))
	_, _ = tw.Write([]byte(fmt.Sprintf("Accepted:\t%d\n", len(rep.Accepted))))
	for _, cls := range rep.Accepted {
		if finals := rep.Finals[cls]; len(finals) > 0 {
			_, _ = tw.Write([]byte(fmt.Sprintf("Sealed:\t%s %v\n", cls, finals)))
		}
	}
	for _, v := range rep.Violations {
		_, _ = tw.Write([]byte("Violation:\t" + v.Err.Error() + "\n"))
	}
	_ = tw.Flush()
	fmt.Fprint(ctx.App.Writer, buf.String())
}
