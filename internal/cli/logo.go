package cli

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"marlow-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newLogoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logo",
		Short: "Workspace logo (stored locally as a data URI)",
	}
	cmd.AddCommand(newLogoSetCmd(app))
	cmd.AddCommand(newLogoShowCmd(app))
	cmd.AddCommand(newLogoClearCmd(app))
	return cmd
}

func newLogoSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <image-file>",
		Short: "Store an image file as the workspace logo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			mt := mime.TypeByExtension(filepath.Ext(args[0]))
			if mt == "" {
				mt = "application/octet-stream"
			}
			uri := fmt.Sprintf("data:%s;base64,%s", mt, base64.StdEncoding.EncodeToString(data))
			mutate.SetLogo(db, uri)
			s.Save(db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"bytes": len(data),
				"type":  mt,
			}})
		},
	}
	return cmd
}

func newLogoShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored logo data URI",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"logo": db.Logo}})
		},
	}
	return cmd
}

func newLogoClearCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored logo",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			mutate.SetLogo(db, "")
			s.Save(db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"logo": ""}})
		},
	}
	return cmd
}
