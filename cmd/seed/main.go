// Command seed populates a running mesh with demo accounts and games for
// local development and manual testing. It speaks to the Identity Service
// and Game Coordinator the same way any other internal caller does —
// through internal/trustplane — rather than writing to the persistence
// database directly, so it never needs to know C1's schema.
//
// Grounded on sql/seed_data.go's bulk-insert-and-report shape, adapted
// from a single direct-to-Postgres transaction into a set of cobra
// subcommands issuing real internal RPCs, and on
// _examples/luxfi-consensus/cmd/consensus's root-command-plus-subcommands
// layout.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arenaforge/duel-server/internal/gameapi"
	"github.com/arenaforge/duel-server/internal/identityapi"
	"github.com/arenaforge/duel-server/internal/trustplane"
)

var (
	identityURL string
	gameURL     string
	callerName  string
	credential  string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate a running duel-server mesh with demo data",
	Long: `seed calls the Identity Service and Game Coordinator as an
authenticated internal caller to create demo accounts and demo games,
for exercising a freshly started mesh without a real client.`,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&identityURL, "identity-url", "https://identity.internal:8402", "Identity Service base URL")
	rootCmd.PersistentFlags().StringVar(&gameURL, "game-url", "https://game.internal:8404", "Game Coordinator base URL")
	rootCmd.PersistentFlags().StringVar(&callerName, "caller-name", "seed", "service name this tool presents to the mesh")
	rootCmd.PersistentFlags().StringVar(&credential, "credential", "", "service credential accepted by both peers' PeerKeys")

	rootCmd.AddCommand(accountsCmd(), gamesCmd(), allCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func identityClient() *identityapi.Client {
	return identityapi.NewClient(trustplane.NewClient(identityURL, callerName, credential))
}

func gameClient() *gameapi.Client {
	return gameapi.NewClient(trustplane.NewClient(gameURL, callerName, credential))
}

var demoAccounts = []struct {
	Username string
	Password string
}{
	{"john_doe", "Correct-Horse-1!"},
	{"jane_smith", "Correct-Horse-2!"},
	{"bob_wilson", "Correct-Horse-3!"},
}

func accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Register the demo accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedAccounts(cmd.Context())
		},
	}
}

func seedAccounts(ctx context.Context) error {
	client := identityClient()
	created := 0
	for _, a := range demoAccounts {
		_, err := client.Register(ctx, &identityapi.RegisterReq{Username: a.Username, Password: a.Password})
		if err != nil {
			fmt.Printf("skipping %s: %v\n", a.Username, err)
			continue
		}
		created++
	}
	fmt.Printf("registered %d/%d demo accounts\n", created, len(demoAccounts))
	return nil
}

var demoGames = []struct {
	Creator string
	Invitee string
}{
	{"john_doe", "jane_smith"},
	{"jane_smith", "bob_wilson"},
}

func gamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "Create the demo game invitations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedGames(cmd.Context())
		},
	}
}

func seedGames(ctx context.Context) error {
	client := gameClient()
	created := 0
	for _, g := range demoGames {
		resp, err := client.Create(ctx, &gameapi.CreateGameReq{Creator: g.Creator, Invitee: g.Invitee})
		if err != nil {
			fmt.Printf("skipping %s -> %s: %v\n", g.Creator, g.Invitee, err)
			continue
		}
		fmt.Printf("created game %s: %s vs %s\n", resp.Game.ID, g.Creator, g.Invitee)
		created++
	}
	fmt.Printf("created %d/%d demo games\n", created, len(demoGames))
	return nil
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Seed demo accounts followed by demo games",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := seedAccounts(cmd.Context()); err != nil {
				return err
			}
			return seedGames(cmd.Context())
		},
	}
}
