package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"AOSocial/internal/app"
	"AOSocial/internal/domain"
	"AOSocial/internal/usecase"
)

func newProfileCmd(opts *rootOptions) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the wallet's profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the cached profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.Application) error {
				p, found, err := a.Profiles.Current(cmd.Context(), a.Owner())
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("no profile stored for %s", a.Owner())
				}
				if opts.json() {
					return printJSON(cmd.OutOrStdout(), p)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "nickname: %s\n", p.Nickname)
				fmt.Fprintf(out, "bio:      %s\n", p.Bio)
				fmt.Fprintf(out, "avatar:   %s\n", p.PortraitImage())
				fmt.Fprintf(out, "banner:   %s\n", p.BannerImage())
				fmt.Fprintf(out, "updated:  %s\n", a.Formatter.Relative(p.Time, true))
				return nil
			})
		},
	}

	var draft domain.Profile
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Publish profile changes to the default process",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.Application) error {
				current, _, err := a.Profiles.Current(cmd.Context(), a.Owner())
				if err != nil {
					return err
				}
				next := mergeDraft(cmd, current, draft)

				outcome, err := a.Profiles.Save(cmd.Context(), a.Owner(), next)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "profile %s\n", outcome)
				return nil
			})
		},
	}
	setCmd.Flags().StringVar(&draft.Nickname, "nickname", "", "display name")
	setCmd.Flags().StringVar(&draft.Bio, "bio", "", "short biography")
	setCmd.Flags().StringVar(&draft.Avatar, "avatar", "", "avatar image URL")
	setCmd.Flags().StringVar(&draft.Banner, "banner", "", "banner image URL")

	profileCmd.AddCommand(showCmd, setCmd)
	return profileCmd
}

// mergeDraft overlays the flags the user actually passed onto current.
func mergeDraft(cmd *cobra.Command, current, draft domain.Profile) domain.Profile {
	next := current
	fields := []struct {
		flag string
		dst  *string
		src  string
	}{
		{"nickname", &next.Nickname, draft.Nickname},
		{"bio", &next.Bio, draft.Bio},
		{"avatar", &next.Avatar, draft.Avatar},
		{"banner", &next.Banner, draft.Banner},
	}
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.dst = f.src
		}
	}
	return next
}

type boardEntryView struct {
	Token   string  `json:"token"`
	Process string  `json:"process"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
	Error   string  `json:"error,omitempty"`
}

type boardView struct {
	Owner       string           `json:"owner"`
	Process     string           `json:"process"`
	RefreshedAt int64            `json:"refreshedAt"`
	Entries     []boardEntryView `json:"entries"`
}

func writeBoard(w io.Writer, board usecase.Board, asJSON bool) error {
	view := boardView{
		Owner:       board.Owner,
		Process:     board.Process,
		RefreshedAt: board.RefreshedAt.Unix(),
		Entries:     make([]boardEntryView, 0, len(board.Entries)),
	}
	for _, e := range board.Entries {
		ev := boardEntryView{Token: e.Token.Name, Process: e.Token.Process, Amount: e.Amount, Display: e.Display}
		if e.Err != nil {
			ev.Error = e.Err.Error()
		}
		view.Entries = append(view.Entries, ev)
	}

	if asJSON {
		return printJSON(w, view)
	}

	fmt.Fprintf(w, "process %s\n", view.Process)
	for _, e := range view.Entries {
		if e.Error != "" {
			fmt.Fprintf(w, "  %-12s %s (unavailable: %s)\n", e.Token, e.Display, e.Error)
			continue
		}
		fmt.Fprintf(w, "  %-12s %s\n", e.Token, e.Display)
	}
	return nil
}

func newBalancesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show token balances held by the default process",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.Application) error {
				board, err := a.Balances.Refresh(cmd.Context(), a.Owner())
				if err != nil {
					return err
				}
				return writeBoard(cmd.OutOrStdout(), board, opts.json())
			})
		},
	}
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Refresh balances on the configured schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			return opts.withApp(cmd, func(a *app.Application) error {
				return a.Watch(ctx, func(board usecase.Board) {
					_ = writeBoard(cmd.OutOrStdout(), board, opts.json())
				})
			})
		},
	}
}

func newQueryCmd(opts *rootOptions) *cobra.Command {
	var (
		page     int
		pageSize string
		postID   string
	)

	cmd := &cobra.Command{
		Use:   "query PROCESS ACTION",
		Short: "Dry-run a paged read action and print the returned records",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.Application) error {
				records, err := a.CU.Query(cmd.Context(), args[0], args[1], page, pageSize, postID)
				if err != nil {
					return err
				}
				if opts.json() {
					return printJSON(cmd.OutOrStdout(), records)
				}
				for _, r := range records {
					fmt.Fprintln(cmd.OutOrStdout(), r)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringVar(&pageSize, "size", "", "page size")
	cmd.Flags().StringVar(&postID, "post", "", "post id for per-post actions")
	return cmd
}
