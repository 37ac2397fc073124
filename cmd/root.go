package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/kvq/internal/resolver"
	"github.com/oakwood-commons/kvq/internal/session"
	"github.com/oakwood-commons/kvq/internal/ui"
	"github.com/oakwood-commons/kvq/pkg/loader"
	"github.com/oakwood-commons/kvq/pkg/logger"
	"github.com/oakwood-commons/kvq/pkg/settings"
)

// ErrNoMatch is returned by one-shot queries that resolved to nothing,
// so the process exits non-zero and scripts can branch on it.
var ErrNoMatch = errors.New("no matching keys")

var (
	cliParams = settings.NewCliParams()

	filePath    string
	diffAgainst string
	interactive bool

	outputWidth  int
	outputHeight int
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [query]",
	Short: "Look up dotted key paths in YAML/JSON/TOML documents",
	Long: settings.CliBinaryName + ` resolves a dotted key path (e.g. server.http.port) against a
document. When no exact key matches, it lists indexed keys that end
with — or start with — the query. An exact match can additionally be
diffed character by character against a comparison string.

With a query argument the result prints once and the command exits.
Without one (or with --interactive) a TUI opens with the document, a
live query field, and a live diff field.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Version: fmt.Sprintf("%s (commit %s, built %s)",
		settings.VersionInformation.BuildVersion,
		settings.VersionInformation.Commit,
		settings.VersionInformation.BuildTime),
	RunE: runRoot,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // cobra flag registration
func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "document file to load (default: piped stdin, else a built-in sample)")
	rootCmd.Flags().StringVarP(&diffAgainst, "diff", "d", "", "comparison string to diff against an exact match (one-shot mode)")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the TUI even when a query argument is given")
	rootCmd.Flags().BoolVar(&cliParams.NoColor, "no-color", false, "disable styled output")
	rootCmd.Flags().BoolVar(&cliParams.LiveDocument, "live-document", false, "reparse the document on every keystroke instead of on blur")
	rootCmd.Flags().Int8Var(&cliParams.MinLogLevel, "log-level", 0, "minimum log level (zap levels; -1 debug, 0 info)")
	rootCmd.Flags().BoolVarP(&cliParams.IsQuiet, "quiet", "q", false, "print only the result in one-shot mode")
	rootCmd.Flags().IntVar(&outputWidth, "width", 0, "output width in columns (affects table formatting and TUI layout)")
	rootCmd.Flags().IntVar(&outputHeight, "height", 0, "output height in rows (affects TUI layout)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	log := logger.Get(cliParams.MinLogLevel)

	text, err := loadInputText(cmd.InOrStdin())
	if err != nil {
		return err
	}

	sess := session.New(logger.WithValues(log, "component", "session"))
	if err := sess.SetDocument(text); err != nil {
		// The initial document has no previous good state to fall back to.
		return fmt.Errorf("cannot load document: %w", err)
	}

	if len(args) == 1 && !interactive {
		return runQuery(cmd.OutOrStdout(), sess, args[0])
	}

	cfg := ui.Config{
		NoColor:      cliParams.NoColor,
		LiveDocument: cliParams.LiveDocument,
	}
	if len(args) == 1 {
		sess.SetQuery(args[0])
	}
	return ui.RunModel(sess, cfg, outputWidth, outputHeight)
}

// loadInputText picks the document source: --file wins, then piped
// stdin, then the built-in sample so the tool works out of the box.
func loadInputText(stdin io.Reader) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", filePath, err)
		}
		return string(data), nil
	}
	if f, ok := stdin.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		data, err := io.ReadAll(f)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) != "" {
			return string(data), nil
		}
	}
	return loader.SampleDocument, nil
}

// runQuery resolves once and prints the result. Exit status is 1 when
// nothing matched, so scripts can branch on it.
func runQuery(out io.Writer, sess *session.Session, query string) error {
	sess.SetQuery(query)
	sess.SetComparison(diffAgainst)

	res, ok := sess.Result()
	if !ok {
		return errors.New("empty query")
	}

	width := formatterWidth()
	fmt.Fprint(out, renderResult(sess, res, cliParams.NoColor, cliParams.IsQuiet, width))

	if d, ok := sess.Diff(); ok {
		fmt.Fprintln(out, renderDiffResult(d, cliParams.NoColor))
	}

	if res.Kind == resolver.NoMatch {
		return ErrNoMatch
	}
	return nil
}
