package cli

import (
	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Play the tile game",
	}

	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionEditCmd())
	cmd.AddCommand(newSessionSubmitCmd())
	cmd.AddCommand(newSessionNewGameCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func sessionPath(id string) string {
	return "/api/v1/sessions/" + id
}

// printSession runs a request that returns a session and prints it
func printSession(cmd *cobra.Command, do func(result *Session) error) error {
	var result Session
	if err := do(&result); err != nil {
		return err
	}
	output(cmd).Print(result)
	return nil
}

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Deal seven tiles and start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSession(cmd, func(result *Session) error {
				return client.Post(cmd.Context(), "/api/v1/sessions", nil, result)
			})
		},
	}
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionList

			if err := client.Get(cmd.Context(), "/api/v1/sessions", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSession(cmd, func(result *Session) error {
				return client.Get(cmd.Context(), sessionPath(args[0]), result)
			})
		},
	}
}

// draftFlags registers --word and --sentence and returns a builder for the
// request body containing only the flags that were set
func draftFlags(cmd *cobra.Command) func() map[string]string {
	var word, sentence string
	cmd.Flags().StringVar(&word, "word", "", "Word built from the tiles")
	cmd.Flags().StringVar(&sentence, "sentence", "", "Sentence using the word")

	return func() map[string]string {
		body := map[string]string{}
		if cmd.Flags().Changed("word") {
			body["word"] = word
		}
		if cmd.Flags().Changed("sentence") {
			body["sentence"] = sentence
		}
		return body
	}
}

func newSessionEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update the draft word and sentence",
		Long:  "Update the draft. A flag that is not given keeps its current value.",
		Args:  cobra.ExactArgs(1),
	}
	body := draftFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		path := sessionPath(args[0])
		draft := body()

		if len(draft) < 2 {
			var current Session
			if err := client.Get(cmd.Context(), path, &current); err != nil {
				return err
			}
			if _, ok := draft["word"]; !ok {
				draft["word"] = current.Word
			}
			if _, ok := draft["sentence"]; !ok {
				draft["sentence"] = current.Sentence
			}
		}

		return printSession(cmd, func(result *Session) error {
			return client.Put(cmd.Context(), path+"/draft", draft, result)
		})
	}

	return cmd
}

func newSessionSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <id>",
		Short: "Submit the draft for judging and wait for the verdict",
		Args:  cobra.ExactArgs(1),
	}
	body := draftFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return printSession(cmd, func(result *Session) error {
			var req any
			if b := body(); len(b) > 0 {
				req = b
			}
			return client.Post(cmd.Context(), sessionPath(args[0])+"/submit", req, result)
		})
	}

	return cmd
}

func newSessionNewGameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new-game <id>",
		Short: "Deal fresh tiles and clear the draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSession(cmd, func(result *Session) error {
				return client.Post(cmd.Context(), sessionPath(args[0])+"/new-game", nil, result)
			})
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), sessionPath(args[0])); err != nil {
				return err
			}
			output(cmd).PrintMessage("Session deleted")
			return nil
		},
	}
}
