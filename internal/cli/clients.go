package cli

import (
	"marlow-cli/internal/model"
	"marlow-cli/internal/mutate"
	"marlow-cli/internal/views"

	"github.com/spf13/cobra"
)

func newClientsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Client commands",
	}
	cmd.AddCommand(newClientsCreateCmd(app))
	cmd.AddCommand(newClientsListCmd(app))
	cmd.AddCommand(newClientsShowCmd(app))
	cmd.AddCommand(newClientsUpdateCmd(app))
	cmd.AddCommand(newClientsDeleteCmd(app))
	cmd.AddCommand(newClientsUseCmd(app))
	cmd.AddCommand(newClientsTodoCmd(app))
	return cmd
}

type socialFlags struct {
	instagram string
	tiktok    string
	youtube   string
	other     string
}

func (f *socialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.instagram, "instagram", "", "Instagram handle or URL")
	cmd.Flags().StringVar(&f.tiktok, "tiktok", "", "TikTok handle or URL")
	cmd.Flags().StringVar(&f.youtube, "youtube", "", "YouTube channel URL")
	cmd.Flags().StringVar(&f.other, "other", "", "Other contact (website, email, ...)")
}

func newClientsCreateCmd(app *App) *cobra.Command {
	var name, onboard, color string
	var socials socialFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client (becomes the active client)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, err := mutate.CreateClient(db, s, mutate.ClientParams{
				Name:        name,
				OnboardDate: onboard,
				Color:       color,
				Socials: model.Socials{
					Instagram: socials.instagram,
					TikTok:    socials.tiktok,
					YouTube:   socials.youtube,
					Other:     socials.other,
				},
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			s.Save(db)
			return writeOut(cmd, app, map[string]any{"data": c})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&onboard, "onboard", "", "Onboarding date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&color, "color", "", "Accent color hex from the palette (default: random)")
	socials.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newClientsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients with their entry counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			counts := views.CountsByClient(db.Events)
			type row struct {
				model.Client
				Entries int  `json:"entries"`
				Active  bool `json:"active"`
			}
			rows := make([]row, 0, len(db.Clients))
			for _, c := range db.Clients {
				rows = append(rows, row{Client: c, Entries: counts[c.ID], Active: c.ID == db.ActiveClientID})
			}
			return writeOut(cmd, app, map[string]any{"data": rows})
		},
	}
	return cmd
}

func newClientsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <client-id>",
		Short: "Show one client and its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, ok := db.FindClient(args[0])
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "client", ID: args[0]})
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"client": c,
				"events": db.EventsForClient(c.ID),
			}})
		},
	}
	return cmd
}

func newClientsUpdateCmd(app *App) *cobra.Command {
	var name, onboard, color, status string
	var socials socialFlags

	cmd := &cobra.Command{
		Use:   "update <client-id>",
		Short: "Update client fields (only the flags you pass change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var patch mutate.ClientPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("onboard") {
				patch.OnboardDate = &onboard
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("status") {
				st := model.ClientStatus(status)
				patch.Status = &st
			}
			if cmd.Flags().Changed("instagram") || cmd.Flags().Changed("tiktok") ||
				cmd.Flags().Changed("youtube") || cmd.Flags().Changed("other") {
				// Socials patch starts from the stored value so unset flags keep
				// their current channel text.
				cur, ok := db.FindClient(args[0])
				if !ok {
					return writeErr(cmd, mutate.NotFoundError{Kind: "client", ID: args[0]})
				}
				next := cur.Socials
				if cmd.Flags().Changed("instagram") {
					next.Instagram = socials.instagram
				}
				if cmd.Flags().Changed("tiktok") {
					next.TikTok = socials.tiktok
				}
				if cmd.Flags().Changed("youtube") {
					next.YouTube = socials.youtube
				}
				if cmd.Flags().Changed("other") {
					next.Other = socials.other
				}
				patch.Socials = &next
			}

			if err := mutate.UpdateClient(db, args[0], patch); err != nil {
				return writeErr(cmd, err)
			}
			s.Save(db)
			c, _ := db.FindClient(args[0])
			return writeOut(cmd, app, map[string]any{"data": c})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&onboard, "onboard", "", "Onboarding date YYYY-MM-DD")
	cmd.Flags().StringVar(&color, "color", "", "Accent color hex from the palette")
	cmd.Flags().StringVar(&status, "status", "", "Client status (scheduling|filming)")
	socials.register(cmd)
	return cmd
}

func newClientsDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <client-id>",
		Short: "Delete a client and all of its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			removed, err := mutate.DeleteClient(db, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			s.Save(db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"deleted":       args[0],
				"removedEvents": removed,
			}})
		},
	}
	return cmd
}

func newClientsUseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <client-id>",
		Short: "Set the active client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.SetActiveClient(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			s.Save(db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"activeClientId": db.ActiveClientID}})
		},
	}
	return cmd
}

func newClientsTodoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Client to-do notes",
	}

	var clientID string

	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Append a note to a client's to-do list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id, err := resolveClientID(db, clientID)
			if err != nil {
				return writeErr(cmd, err)
			}
			td, err := mutate.AddTodo(db, s, id, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			s.Save(db)
			return writeOut(cmd, app, map[string]any{"data": td})
		},
	}
	add.Flags().StringVar(&clientID, "client", "", "Client id (default: active client)")

	var rmClientID string
	remove := &cobra.Command{
		Use:   "remove <todo-id>",
		Short: "Delete one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id, err := resolveClientID(db, rmClientID)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.RemoveTodo(db, id, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			s.Save(db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"removed": args[0]}})
		},
	}
	remove.Flags().StringVar(&rmClientID, "client", "", "Client id (default: active client)")

	var listClientID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List a client's notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id, err := resolveClientID(db, listClientID)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, ok := db.FindClient(id)
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "client", ID: id})
			}
			return writeOut(cmd, app, map[string]any{"data": c.Todos})
		},
	}
	list.Flags().StringVar(&listClientID, "client", "", "Client id (default: active client)")

	cmd.AddCommand(add, remove, list)
	return cmd
}
