// Package main provides the CLI entrypoint for teaty.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ybert/teaty/internal/config"
	"github.com/ybert/teaty/internal/generator"
	"github.com/ybert/teaty/internal/session"
	"github.com/ybert/teaty/internal/tui"
	"github.com/ybert/teaty/internal/wordlist"
)

const defaultLang = "en"

var (
	rootLang     string
	rootWordlist string

	wordsLang     string
	wordsWordlist string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "teaty",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().StringVar(&rootLang, "lang", defaultLang, "language code (default: en)")
	rootCmd.Flags().StringVar(&rootWordlist, "wordlist", "", "explicit word list path (overrides --lang)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	words, err := resolveCorpus(cmd, &rootLang, &rootWordlist)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	s := session.New(generator.New(), words, time.Now)
	program := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveCorpus merges flags with the config file and loads the word
// corpus: an explicit path wins, then the per-language user list, then
// the embedded default.
func resolveCorpus(cmd *cobra.Command, lang, wordlistPath *string) ([]string, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", lang, fileCfg.Corpus.Lang)
	applyStringConfig(cmd, "wordlist", wordlistPath, fileCfg.Corpus.Wordlist)

	words, err := loadCorpus(*lang, *wordlistPath)
	if err != nil {
		return nil, err
	}
	if len(words) < session.SampleSize {
		return nil, fmt.Errorf("corpus has %d words, need at least %d", len(words), session.SampleSize)
	}
	return words, nil
}

func loadCorpus(lang, explicit string) ([]string, error) {
	if explicit != "" {
		words, err := wordlist.LoadWords(explicit)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", explicit, err)
		}
		return wordlist.Filter(words, wordlist.FilterForLang(lang)), nil
	}
	path := config.DefaultWordListPath(lang)
	words, err := wordlist.LoadWords(path)
	if err != nil {
		if os.IsNotExist(err) {
			return wordlist.Default(), nil
		}
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	return wordlist.Filter(words, wordlist.FilterForLang(lang)), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the active word corpus",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&wordsLang, "lang", defaultLang, "language code (default: en)")
	cmd.Flags().StringVar(&wordsWordlist, "wordlist", "", "explicit word list path (overrides --lang)")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	words, err := resolveCorpus(cmd, &wordsLang, &wordsWordlist)
	if err != nil {
		return err
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# teaty configuration
# Uncomment a value to enable it. CLI flags override config values.

[corpus]
# lang = %q         # Language code (default %q)
# wordlist = ""     # Explicit word list path, one word per line
`,
		defaultLang,
		defaultLang,
	)
}
