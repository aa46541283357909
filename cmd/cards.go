package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrewpaige1/flashnotes/client"
	"github.com/andrewpaige1/flashnotes/store"
	"github.com/andrewpaige1/flashnotes/synth"
	"github.com/andrewpaige1/flashnotes/ui"
	"github.com/spf13/cobra"
)

type viewFlags struct {
	user    string
	remote  bool
	answers bool
	output  string
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.user, "user", "", "user ID the cards belong to")
	cmd.Flags().BoolVar(&f.remote, "remote", false, "use the flashnotes server instead of the local store")
	cmd.Flags().BoolVar(&f.answers, "answers", false, "flip every card to show its answer")
	cmd.Flags().StringVarP(&f.output, "output", "o", ui.FormatText, "output format (text, json, yaml)")
	cmd.Flags().String("local-store", "flashnotes-local.db", "path of the local store")
	cmd.Flags().String("api-url", "http://localhost:8080", "flashnotes server URL")
}

func (f *viewFlags) view(cmd *cobra.Command, notes string) (*ui.TextView, error) {
	switch f.output {
	case ui.FormatText, ui.FormatJSON, ui.FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", f.output)
	}
	return &ui.TextView{
		NotesText: notes,
		User:      f.user,
		Out:       cmd.OutOrStdout(),
		Err:       cmd.ErrOrStderr(),
		Format:    f.output,
		Reveal:    f.answers,
	}, nil
}

// backend returns the collaborator selected by the flags and a release func.
func (f *viewFlags) backend(opts *options) (ui.Backend, func(), error) {
	if f.remote {
		return ui.NewRemoteBackend(client.New(opts.cfg.APIURL, nil)), func() {}, nil
	}

	local, err := store.OpenLocal(opts.cfg.LocalStore)
	if err != nil {
		return nil, nil, err
	}
	return ui.NewLocalBackend(synth.New(), local), func() { _ = local.Close() }, nil
}

func newGenerateCmd(opts *options) *cobra.Command {
	var flags viewFlags
	var file string

	cmd := &cobra.Command{
		Use:   "generate [notes...]",
		Short: "Generate five flashcards from notes",
		Long: `Generate five flashcards from notes given as arguments, read from --file,
or read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := readNotes(cmd, file, args)
			if err != nil {
				return err
			}
			view, err := flags.view(cmd, notes)
			if err != nil {
				return err
			}
			backend, release, err := flags.backend(opts)
			if err != nil {
				return err
			}
			defer release()

			c := ui.NewController(ui.App{View: view, Backend: backend})
			if err := c.OnGenerateClicked(cmd.Context()); err != nil {
				return alertedError{err}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "read notes from this file (- for stdin)")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show stored flashcards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := flags.view(cmd, "")
			if err != nil {
				return err
			}
			backend, release, err := flags.backend(opts)
			if err != nil {
				return err
			}
			defer release()

			c := ui.NewController(ui.App{View: view, Backend: backend})
			if err := c.OnLoad(cmd.Context()); err != nil {
				return alertedError{err}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func readNotes(cmd *cobra.Command, file string, args []string) (string, error) {
	switch {
	case file == "-":
		return readAll(cmd.InOrStdin())
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read notes: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return readAll(cmd.InOrStdin())
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read notes: %w", err)
	}
	return string(data), nil
}
