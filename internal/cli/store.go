package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vizlab/netvis/pkg/graph"
	"github.com/vizlab/netvis/pkg/store"
)

// storeCommand creates the store management command. All subcommands
// talk directly to the configured MongoDB store; the in-memory backend
// only exists inside a running server.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage stored graph documents",
	}

	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeShowCommand())
	cmd.AddCommand(c.storePushCommand())
	cmd.AddCommand(c.storeDeleteCommand())
	cmd.AddCommand(c.storeBrowseCommand())

	return cmd
}

// openStore connects to the configured MongoDB store.
func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	cfg := c.Config.Store
	if cfg.Backend != "mongo" {
		return nil, fmt.Errorf("store commands need a mongo backend; set [store] backend = \"mongo\" in the config")
	}
	return store.NewMongoStore(ctx, cfg.MongoURI, cfg.Database, cfg.Collection)
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graph documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close(context.Background()) }()

			docs, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				printInfo("Store is empty")
				return nil
			}
			fmt.Println(renderDocumentTable(docs))
			return nil
		},
	}
}

// storeShowCommand creates the "store show" subcommand.
func (c *CLI) storeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Print a stored document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close(context.Background()) }()

			doc, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}
}

// storePushCommand creates the "store push" subcommand.
func (c *CLI) storePushCommand() *cobra.Command {
	var name, heading string

	cmd := &cobra.Command{
		Use:   "push [graph.json]",
		Short: "Store a graph file as a named document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.ReadFile(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = args[0]
			}

			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close(context.Background()) }()

			display := store.Display{
				Height:  c.Config.Display.Height,
				Width:   c.Config.Display.Width,
				BGColor: c.Config.Display.BGColor,
				Heading: heading,
			}
			doc := store.NewDocument(name, graph.Export(g), "", display)
			if err := st.Save(cmd.Context(), doc); err != nil {
				return err
			}
			printSuccess("Stored %s", name)
			printKeyValue("id", doc.ID)
			printStats(len(doc.Graph.Nodes), len(doc.Graph.Edges), false)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "document name (defaults to the file path)")
	cmd.Flags().StringVar(&heading, "heading", "", "document heading shown above the canvas")
	return cmd
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close(context.Background()) }()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}

// storeBrowseCommand creates the "store browse" subcommand: an
// interactive picker that prints the selected document's identity.
func (c *CLI) storeBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse stored documents interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close(context.Background()) }()

			docs, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				printInfo("Store is empty")
				return nil
			}

			model := NewDocumentListModel(docs)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("run picker: %w", err)
			}

			m, ok := final.(DocumentListModel)
			if !ok || m.Selected == nil {
				return nil
			}
			printKeyValue("id", m.Selected.ID)
			printKeyValue("name", m.Selected.Name)
			printNextStep("View it", fmt.Sprintf("netvis store show %s", m.Selected.ID))
			return nil
		},
	}
}
