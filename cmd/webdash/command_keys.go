package main

import (
	"errors"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"webdash/internal/config"
	"webdash/internal/dialog"
	"webdash/internal/keyspec"
	"webdash/internal/localization"
)

var errInvalidBindings = errors.New("invalid key bindings")

type keyBindingOutput struct {
	Action string `json:"action" toml:"action" yaml:"action"`
	Spec   string `json:"spec" toml:"spec" yaml:"spec"`
	Key    string `json:"key,omitempty" toml:"key,omitempty" yaml:"key,omitempty"`
	Error  string `json:"error,omitempty" toml:"error,omitempty" yaml:"error,omitempty"`
}

type keysOutput struct {
	Language string             `json:"language" toml:"language" yaml:"language"`
	Bindings []keyBindingOutput `json:"bindings" toml:"bindings" yaml:"bindings"`
	Unknown  []string           `json:"unknown_actions,omitempty" toml:"unknown_actions,omitempty" yaml:"unknown_actions,omitempty"`
}

func newKeysCommand(wiring commandWiring) *cobra.Command {
	var (
		lang   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print key bindings and report entries that do not parse",
		Long: `Print the merged key bindings for a language. The command exits with
status 1 when any binding of the language fails to parse.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(wiring)
			if err != nil {
				return err
			}
			if lang == "" {
				lang = env.prefs.CurrentLanguage()
			}
			loc, err := localization.Load(env.source, lang)
			if err != nil {
				return err
			}
			out := buildKeysOutput(loc)
			if format == "text" {
				printKeys(wiring, out)
			} else if err := config.Encode(wiring.stdout, format, out); err != nil {
				return err
			}
			if invalid := len(loc.InvalidBindings()); invalid > 0 {
				return &exitError{code: 1, err: fmt.Errorf("%w: %d in %s", errInvalidBindings, invalid, loc.Language())}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "language code (default: saved choice)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|toml|json|yaml")
	return cmd
}

func buildKeysOutput(loc *localization.Localization) keysOutput {
	bindings := loc.Bindings()
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	out := keysOutput{Language: loc.Language(), Unknown: loc.UnknownActions(dialog.KnownActions())}
	for _, action := range actions {
		spec := bindings[action]
		entry := keyBindingOutput{Action: action, Spec: spec}
		if bound, err := keyspec.ParseStrict(spec); err != nil {
			entry.Error = err.Error()
		} else {
			entry.Key = bound.String()
		}
		out.Bindings = append(out.Bindings, entry)
	}
	return out
}

func printKeys(wiring commandWiring, out keysOutput) {
	writer := tabwriter.NewWriter(wiring.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ACTION\tSPEC\tKEY")
	for _, entry := range out.Bindings {
		key := entry.Key
		if entry.Error != "" {
			key = "invalid: " + entry.Error
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", entry.Action, entry.Spec, key)
	}
	_ = writer.Flush()
	for _, action := range out.Unknown {
		fmt.Fprintf(wiring.stderr, "warning: %s binds unknown action %q\n", out.Language, action)
	}
}
