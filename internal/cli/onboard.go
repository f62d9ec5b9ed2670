package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/moneta-ai/moneta/internal/currency"
	"github.com/moneta-ai/moneta/internal/i18n"
	"github.com/moneta-ai/moneta/internal/onboarding"
	"github.com/moneta-ai/moneta/internal/prefs"
	"github.com/moneta-ai/moneta/internal/ui"
)

var (
	onboardHeadless  bool
	onboardPrefsPath string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Run the first-launch onboarding flow",
	Long: `Walks through the onboarding pages (language, name, currency,
and a short survey) and saves the selected preferences. With --headless
the answers are taken from previously saved preferences instead of
prompting.`,
	RunE: runOnboard,
}

func init() {
	onboardCmd.Flags().BoolVar(&onboardHeadless, "headless", false, "answer from saved preferences without prompting")
	onboardCmd.Flags().StringVar(&onboardPrefsPath, "prefs", "", "path to the preferences file (default: user config dir)")
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(cmd *cobra.Command, args []string) error {
	path := onboardPrefsPath
	if path == "" {
		path = defaultPrefsPath()
	}
	store := prefs.NewFileStore(path)
	res := i18n.NewResolver()

	hm := ui.NewHeadlessManager()
	if onboardHeadless {
		hm.ForceHeadless(true)
	}

	// A saved language means onboarding already ran once; confirm before
	// overwriting in interactive mode.
	if !hm.IsHeadless() {
		if _, done := store.Get(prefs.KeyLanguage); done {
			rerun, err := confirmRerun()
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return fmt.Errorf("confirm rerun: %w", err)
			}
			if !rerun {
				return nil
			}
		}
	}

	var result *onboarding.Result
	session := onboarding.NewSession(
		onboarding.DefaultQuestions(),
		onboarding.DefaultLanguages(),
		store,
		func(r *onboarding.Result) { result = r },
	)

	if err := ui.Run(session, res, hm); err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Onboarding cancelled.")
			return nil
		}
		return err
	}

	if err := store.Set(prefs.KeyLanguage, result.LanguageCode); err != nil {
		slog.Warn("persist language preference", "error", err)
	}
	if err := store.Set(prefs.KeyUserName, result.UserName); err != nil {
		slog.Warn("persist user name preference", "error", err)
	}

	return printSummary(cmd, res, result)
}

// confirmRerun asks whether to run onboarding again over saved preferences.
func confirmRerun() (bool, error) {
	rerun := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Onboarding already completed").
			Description("Run it again and overwrite your saved preferences?").
			Value(&rerun),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return rerun, nil
}

// printSummary renders the completed onboarding as markdown.
func printSummary(cmd *cobra.Command, res *i18n.Resolver, result *onboarding.Result) error {
	lang := result.LanguageCode
	spec := currency.FormatFor(result.CurrencyCode)

	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", res.Resolve(lang, "onboarding.done.title", result.UserName))
	fmt.Fprintf(&md, "%s\n\n", res.Resolve(lang, "onboarding.done.body"))
	fmt.Fprintf(&md, "- %s: **%s**\n", res.Resolve(lang, "onboarding.language.title"), lang)
	fmt.Fprintf(&md, "- %s: **%s** (%s %s)\n",
		res.Resolve(lang, "onboarding.currency.title"),
		result.CurrencyCode, spec.Symbol, spec.Preview(1234.56))
	for _, q := range onboarding.DefaultQuestions() {
		opt, ok := result.Answers[q.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&md, "- %s: **%s**\n",
			res.QuestionTitle(lang, string(q.ID)),
			res.OptionLabel(lang, string(q.ID), string(opt)))
	}

	out := md.String()
	if renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80)); err == nil {
		if rendered, err := renderer.Render(out); err == nil {
			out = rendered
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// defaultPrefsPath resolves the per-user preferences file location.
func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".moneta-prefs.yaml"
	}
	return filepath.Join(dir, "moneta", "prefs.yaml")
}
