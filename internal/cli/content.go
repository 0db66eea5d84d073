package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"AOSocial/internal/annotate"
	"AOSocial/internal/domain"
	"AOSocial/internal/format"
	"AOSocial/internal/scanner"
	"AOSocial/internal/usecase"
	"AOSocial/internal/validate"
)

type annotationView struct {
	Kind  domain.AnnotationKind `json:"kind"`
	Start int                   `json:"start"`
	End   int                   `json:"end"`
	Text  string                `json:"text"`
}

type scanView struct {
	Annotations []annotationView         `json:"annotations"`
	Media       map[domain.MediaKind]int `json:"media"`
	TextLength  int                      `json:"textLength"`
}

func newScanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [content|-]",
		Short: "List mentions, hashtags, unlinked URLs and media in content",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd, args)
			if err != nil {
				return err
			}

			res := scanner.Scan(content)
			view := scanView{
				Annotations: []annotationView{},
				Media:       map[domain.MediaKind]int{},
				TextLength:  scanner.TextLength(content),
			}
			for _, group := range [][]domain.Annotation{res.Mentions, res.HashTags, res.URLs} {
				for _, a := range group {
					view.Annotations = append(view.Annotations, annotationView{Kind: a.Kind, Start: a.Start, End: a.End, Text: a.Text})
				}
			}
			for _, kind := range domain.MediaKinds {
				view.Media[kind] = res.Media.Of(kind)
			}

			if opts.json() {
				return printJSON(cmd.OutOrStdout(), view)
			}

			out := cmd.OutOrStdout()
			for _, a := range view.Annotations {
				fmt.Fprintf(out, "%-8s %d-%d %s\n", a.Kind, a.Start, a.End, a.Text)
			}
			for _, kind := range domain.MediaKinds {
				fmt.Fprintf(out, "%-8s %d\n", kind, view.Media[kind])
			}
			fmt.Fprintf(out, "text     %d chars\n", view.TextLength)
			return nil
		},
	}
}

func newAnnotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotate [content|-]",
		Short: "Turn mentions, hashtags and bare URLs into links",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), annotate.Annotate(content))
			return nil
		},
	}
}

func newComposeCmd(opts *rootOptions) *cobra.Command {
	var chars int

	cmd := &cobra.Command{
		Use:   "compose [content|-]",
		Short: "Validate a post and print its publishable form",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd, args)
			if err != nil {
				return err
			}

			post, err := usecase.PreparePost(content, chars)
			if err != nil {
				return err
			}

			if opts.json() {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"content":    post.Content,
					"charCount":  post.CharCount,
					"firstImage": post.FirstImage,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), post.Content)
			return nil
		},
	}

	cmd.Flags().IntVar(&chars, "chars", -1, "visible character count reported by the editor (default: measured)")
	return cmd
}

func newValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check posts, nicknames and numeric input",
	}

	var chars int
	postCmd := &cobra.Command{
		Use:   "post [content|-]",
		Short: "Check media count and length of a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd, args)
			if err != nil {
				return err
			}
			n := chars
			if n < 0 {
				n = scanner.TextLength(content)
			}
			return report(cmd, validate.Content(content, n))
		},
	}
	postCmd.Flags().IntVar(&chars, "chars", -1, "visible character count (default: measured)")

	nicknameCmd := &cobra.Command{
		Use:   "nickname NAME",
		Short: "Check nickname length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, validate.Nickname(args[0]))
		},
	}

	numberCmd := &cobra.Command{
		Use:   "number VALUE",
		Short: "Check that VALUE contains only digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validate.Number(args[0]) {
				return fmt.Errorf("%q is not a number", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	validateCmd.AddCommand(postCmd, nicknameCmd, numberCmd)
	return validateCmd
}

func report(cmd *cobra.Command, res domain.ValidationResult) error {
	if err := res.Err(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func newAgoCmd() *cobra.Command {
	var suffix bool

	cmd := &cobra.Command{
		Use:   "ago UNIX_SECONDS",
		Short: "Render a timestamp relative to now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse timestamp: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.FormatRelative(domain.Timestamp(secs), suffix))
			return nil
		},
	}

	cmd.Flags().BoolVar(&suffix, "suffix", true, `append " ago" to short durations`)
	return cmd
}
