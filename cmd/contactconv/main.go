// Command contactconv converts a contact file between VCard, CSV and JSON.
//
//	contactconv --vcf2csv [--decode] [--reduce] contacts.vcf
//
// writes contacts.vcf.csv next to the input.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/contactconv"
	"github.com/unkn0wn-root/contactconv/config"
)

var version = "0.1"

type cliFlags struct {
	modes      map[string]*bool
	decode     bool
	reduce     bool
	configPath string
	logBackend string
	verbose    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	fl := &cliFlags{modes: make(map[string]*bool)}

	cmd := &cobra.Command{
		Use:   "contactconv <conversion> [flags] <filename>",
		Short: "Convert contacts between VCard, CSV and JSON",
		Long: `contactconv parses a contact file and writes it in another format.
The output is written next to the input with the new extension appended,
e.g. contacts.vcf -> contacts.vcf.csv.`,
		Version:      version,
		SilenceUsage: true,
		Args: func(c *cobra.Command, args []string) error {
			if len(args) != 1 {
				fmt.Fprint(c.ErrOrStderr(), c.UsageString())
				return fmt.Errorf("expected exactly one filename, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fl, args[0])
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	for _, m := range contactconv.Modes() {
		name := m.String()
		fl.modes[name] = flags.Bool(name, false, fmt.Sprintf("From %s to %s", describe(m.From), describe(m.To)))
	}
	flags.BoolVar(&fl.decode, "decode", false, "Decode quoted-printable attributes")
	flags.BoolVar(&fl.reduce, "reduce", false, "Merge alternate phone keys into the default one")
	flags.StringVar(&fl.configPath, "config", "", "YAML config file")
	flags.StringVar(&fl.logBackend, "log", "", "Log backend: none|zap|logrus|slog")
	flags.BoolVar(&fl.verbose, "verbose", false, "Log at debug level")
	flags.SortFlags = false
	return cmd
}

func run(cmd *cobra.Command, fl *cliFlags, path string) error {
	mode, err := selectedMode(fl)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if fl.configPath != "" {
		if cfg, err = config.Load(fl.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("log") {
		cfg.Log.Backend = fl.logBackend
	}
	if fl.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := buildLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := cfg.Options(fl.decode, fl.reduce, logger)
	if err != nil {
		return err
	}
	conv, err := contactconv.New(opts)
	if err != nil {
		return err
	}

	out, err := conv.Convert(mode, path)
	if err != nil {
		var ce *contactconv.ConvertError
		if errors.As(err, &ce) && contactconv.IsNotFound(err) {
			return fmt.Errorf("file not found: %s", ce.Path)
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func selectedMode(fl *cliFlags) (contactconv.Mode, error) {
	var picked []string
	for _, m := range contactconv.Modes() {
		if p := fl.modes[m.String()]; p != nil && *p {
			picked = append(picked, m.String())
		}
	}
	switch len(picked) {
	case 0:
		return contactconv.Mode{}, errors.New("no conversion given (e.g. --vcf2csv)")
	case 1:
		return contactconv.ParseMode(picked[0])
	default:
		return contactconv.Mode{}, fmt.Errorf("only one conversion allowed, got --%s", strings.Join(picked, ", --"))
	}
}

func describe(f contactconv.Format) string {
	switch f {
	case contactconv.VCF:
		return "VCard"
	case contactconv.CSV, contactconv.JSON:
		return strings.ToUpper(string(f))
	case contactconv.PB:
		return "protobuf"
	default:
		return string(f)
	}
}
