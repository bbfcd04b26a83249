package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/events"
	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/marshaller"
)

type keyView struct {
	Key string `yaml:"key"`
	TTL string `yaml:"ttl"`
}

type pageView struct {
	NextCursor  uint64    `yaml:"next_cursor"`
	Total       *int64    `yaml:"total,omitempty"`
	Keys        []keyView `yaml:"keys"`
	TTLFailures []string  `yaml:"ttl_failures,omitempty"`
	Interrupted bool      `yaml:"interrupted,omitempty"`
	Error       string    `yaml:"error,omitempty"`
}

type infoView struct {
	Database string            `yaml:"database"`
	Keys     int64             `yaml:"keys"`
	Server   map[string]string `yaml:"server"`
}

func printYAML[T any](out io.Writer, value T) error {
	data, err := marshaller.NewTypedYamlMarshaller[T]().Marshal(value)
	if err != nil {
		return err
	}

	_, err = out.Write(data)

	return err //nolint:wrapcheck
}

func newPageView(page driver.Page) pageView {
	view := pageView{
		NextCursor:  page.NextCursor,
		Total:       nil,
		Keys:        make([]keyView, 0, len(page.Keys)),
		TTLFailures: nil,
		Interrupted: page.Interrupted,
		Error:       "",
	}

	if page.HasTotal {
		total := page.Total
		view.Total = &total
	}

	for _, pair := range page.Keys {
		view.Keys = append(view.Keys, keyView{
			Key: pair.Key().KeyString().HumanReadable(),
			TTL: pair.Key().TTL().String(),
		})
	}

	for _, key := range page.TTLFailures {
		view.TTLFailures = append(view.TTLFailures, key.HumanReadable())
	}

	if page.Err != nil {
		view.Error = page.Err.Error()
	}

	return view
}

func newScanCommand() *cobra.Command {
	var (
		cursor  uint64
		pattern string
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List one page of keys with their TTL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				resp, err := s.call(ctx, events.LoadDatabaseContentRequest{
					From: s.sender,
					Page: driver.PageRequest{Cursor: cursor, Pattern: pattern, Limit: s.settings.PageSize},
				})
				if err != nil {
					return err
				}

				content, _ := resp.(events.LoadDatabaseContentResponse)

				return printYAML(cmd.OutOrStdout(), newPageView(content.Page))
			})
		},
	}

	cmd.Flags().Uint64Var(&cursor, "cursor", 0, "Cursor returned by the previous page")
	cmd.Flags().StringVar(&pattern, "pattern", "*", "Glob the keys must match")

	return cmd
}

func newExecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec LINE...",
		Short: "Execute raw command lines in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				out := cmd.OutOrStdout()

				for _, line := range args {
					resp, err := s.call(ctx, events.ExecuteRequest{From: s.sender, Command: line})

					executed, ok := resp.(events.ExecuteResponse)

					switch {
					case ok && executed.Result.Type() == kv.TypeError:
						fmt.Fprintf(out, "(error) %s\n", executed.Result.String(" "))
					case err != nil:
						return err
					case s.isRead(line):
						// Values read back may be binary; print them hexed.
						fmt.Fprintln(out, executed.Result.ForCommandLine("\n"))
					default:
						fmt.Fprintln(out, executed.Result.String("\n"))
					}
				}

				return nil
			})
		},
	}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				resp, err := s.call(ctx, events.LoadKeyRequest{
					From:         s.sender,
					Key:          kv.KeyOf(args[0]),
					ExpectedType: kv.TypeString,
				})
				if err != nil {
					return err
				}

				loaded, _ := resp.(events.LoadKeyResponse)
				if !loaded.Pair.Value().IsSome() {
					fmt.Fprintln(cmd.OutOrStdout(), "(nil)")
					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), loaded.Pair.ValueString())

				return nil
			})
		},
	}
}

func newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE...",
		Short: "Store a value, joining the words with spaces",
		Args:  cobra.MinimumNArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				pair := kv.NewKeyValue(kv.KeyOf(args[0]), kv.StringOf(strings.Join(args[1:], " ")))

				if _, err := s.call(ctx, events.CreateKeyRequest{From: s.sender, Pair: pair}); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "OK")

				return nil
			})
		},
	}
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "del KEY",
		Short: "Delete a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				resp, err := s.call(ctx, events.DeleteKeyRequest{From: s.sender, Key: kv.KeyOf(args[0])})
				if err != nil {
					return err
				}

				deleted, _ := resp.(events.DeleteKeyResponse)
				fmt.Fprintln(cmd.OutOrStdout(), deleted.Deleted)

				return nil
			})
		},
	}
}

func newRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename KEY NEWKEY",
		Short: "Rename a key",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				resp, err := s.call(ctx, events.RenameKeyRequest{
					From:   s.sender,
					Key:    kv.KeyOf(args[0]),
					NewKey: kv.KeyStringOf(args[1]),
				})
				if err != nil {
					return err
				}

				renamed, _ := resp.(events.RenameKeyResponse)
				fmt.Fprintln(cmd.OutOrStdout(), renamed.Key.KeyString().HumanReadable())

				return nil
			})
		},
	}
}

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print server statistics and the current database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				resp, err := s.call(ctx, events.ServerInfoRequest{From: s.sender})
				if err != nil {
					return err
				}

				info, _ := resp.(events.ServerInfoResponse)

				return printYAML(cmd.OutOrStdout(), infoView{
					Database: info.Database.Name,
					Keys:     info.Database.Keys,
					Server:   info.Info,
				})
			})
		},
	}
}
