package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/app"
)

func newEvalCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "Evaluate an expression and record it in history",
		Example: `  calc-wizard eval "2+3*4"
  calc-wizard eval "√(16)^2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.Close()
			warnLoad(cmd, rt)

			out := rt.session.Evaluate(strings.Join(args, " "))
			if out.Err != nil {
				return out.Err
			}
			if err := rt.session.Persist(cmd.Context(), out.Snapshot); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rt.session.Display())
			return nil
		},
	}
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.Close()
			warnLoad(cmd, rt)

			if day != "" {
				if err := rt.session.SelectDay(day); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			pos := 0
			for _, e := range rt.session.Visible().All() {
				fmt.Fprintf(w, "%3d  [%s] %s\n", pos, e.DisplayDate, e.Entry)
				if e.Note != "" {
					fmt.Fprintf(w, "     note: %s\n", e.Note)
				}
				pos++
			}
			if pos == 0 {
				fmt.Fprintln(w, "No history")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&day, "date", "d", "", "only show calculations from this day (YYYY-MM-DD)")
	return cmd
}

func newNoteCmd(flags *rootFlags) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "note INDEX TEXT",
		Short: "Attach a note to a history entry",
		Long: `Attach a note to a history entry. INDEX is the position shown by
"history", with the same --date filter. An empty TEXT removes the note.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			note := app.SanitizeNote(strings.Join(args[1:], " "))
			if err := app.ValidateNote(note); err != nil {
				return err
			}

			rt, err := bootstrap(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.Close()
			warnLoad(cmd, rt)

			if day != "" {
				if err := rt.session.SelectDay(day); err != nil {
					return err
				}
			}

			snap, err := rt.session.SaveNote(pos, note)
			if err != nil {
				return err
			}
			if err := rt.session.Persist(cmd.Context(), snap); err != nil {
				return err
			}

			target, _ := rt.session.NoteTarget(pos)
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", target.DisplayDate, target.Entry)
			return nil
		},
	}
	cmd.Flags().StringVarP(&day, "date", "d", "", "index into the calculations of this day (YYYY-MM-DD)")
	return cmd
}
