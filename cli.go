package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"adminpanel/models"
	"adminpanel/services"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the dashboard stat cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(false)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := context.WithTimeout(withAuthorization(cmd.Context()), cfg.BackendTimeout+5*time.Second)
		defer cancel()

		printCards(cmd.OutOrStdout(), a.stats.Cards(ctx))
		return nil
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Inspect roles",
}

var rolesTreeCmd = &cobra.Command{
	Use:   "tree <role-id>",
	Short: "Print the module tree with the role's permissions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roleID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || roleID <= 0 {
			return fmt.Errorf("invalid role id %q", args[0])
		}

		cfg, err := loadConfig(false)
		if err != nil {
			return err
		}
		// 세션은 이 명령 안에서만 쓰므로 Redis 를 사용하지 않는다.
		cfg.RedisAddr = ""
		a, err := newApp(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := context.WithTimeout(withAuthorization(cmd.Context()), cfg.BackendTimeout+5*time.Second)
		defer cancel()

		state, err := a.editor.Open(ctx, roleID)
		if err != nil {
			return fmt.Errorf("%s: %w", services.UserMessage(err), err)
		}
		defer a.editor.Discard(context.Background(), state.SessionID)

		printTree(cmd.OutOrStdout(), state.View())
		return nil
	},
}

func printCards(out io.Writer, cards []models.StatCard) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CARD\tVALUE\tTOTAL\t%\tDETAIL")
	for _, c := range cards {
		detail := c.Description
		if c.Error != "" {
			detail += " (" + c.Error + ")"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f\t%s\n", c.Title, c.Value, c.Total, c.Percentage, detail)
	}
	tw.Flush()
}

func printTree(out io.Writer, view services.EditorView) {
	fmt.Fprintf(out, "Rol #%d %s (%d/%d módulos con permisos)\n", view.Role.ID, view.Role.Name, view.GrantedCount, view.ModuleCount)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODULO\tC\tL\tA\tE\tESTADO")
	for _, p := range view.Parents {
		state := "parcial"
		if p.Status.FullyConfigured {
			state = "completo"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Module.Name, flags(p.Permission), state)
		for _, c := range p.Children {
			fmt.Fprintf(tw, "  └ %s\t%s\t\n", c.Module.Name, flags(c.Permission))
		}
	}
	for _, o := range view.Orphans {
		fmt.Fprintf(tw, "? %s\t%s\t\n", o.Module.Name, flags(o.Permission))
	}
	tw.Flush()
}

func flags(p models.Permission) string {
	marks := make([]string, 0, 4)
	for _, on := range []bool{p.Create, p.Read, p.Update, p.Delete} {
		if on {
			marks = append(marks, "x")
		} else {
			marks = append(marks, "-")
		}
	}
	return strings.Join(marks, "\t")
}
