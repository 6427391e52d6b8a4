package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// adminAssetClient is the slice of the API client the admin assets commands need
type adminAssetClient interface {
	AdminAssets(assetType string, page int) (*client.SearchResults, error)
	AdminDeleteAsset(assetType string, id int) error
}

func newAdminAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage marketplace assets",
	}

	cmd.AddCommand(newAdminAssetsListCmd())
	cmd.AddCommand(newAdminAssetsDeleteCmd())

	return cmd
}

func newAdminAssetsListCmd() *cobra.Command {
	var assetType, registryAlias string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets across all publishers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if assetType != "" && assetType != "skill" && assetType != "mcp" && assetType != "agent" {
				return fmt.Errorf("unknown type '%s' (expected skill, mcp or agent)", assetType)
			}

			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, store := newSession(registry)
			if _, err := resolveAdmin(store, "/admin"); err != nil {
				return err
			}

			return runAdminAssetsList(api, os.Stdout, assetType, page)
		},
	}

	cmd.Flags().StringVar(&assetType, "type", "", "Restrict to one asset type: skill, mcp or agent")
	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runAdminAssetsList(api adminAssetClient, out io.Writer, assetType string, page int) error {
	results, err := api.AdminAssets(assetType, page)
	if err != nil {
		return err
	}

	empty := true
	if results.Skills != nil {
		printSkillPage(out, results.Skills)
		empty = empty && len(results.Skills.Items) == 0
	}
	if results.MCPs != nil {
		printMCPPage(out, results.MCPs)
		empty = empty && len(results.MCPs.Items) == 0
	}
	if results.Agents != nil {
		printAgentPage(out, results.Agents)
		empty = empty && len(results.Agents.Items) == 0
	}

	if empty {
		fmt.Fprintln(out, "No assets found.")
	}

	return nil
}

func newAdminAssetsDeleteCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "delete <skill|mcp|agent> <id>",
		Short: "Remove an asset from the marketplace",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetType := args[0]
			if assetType != "skill" && assetType != "mcp" && assetType != "agent" {
				return fmt.Errorf("unknown asset type '%s' (expected skill, mcp or agent)", assetType)
			}

			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid asset ID '%s'", args[1])
			}

			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, store := newSession(registry)
			if _, err := resolveAdmin(store, "/admin"); err != nil {
				return err
			}

			return runAdminAssetsDelete(api, os.Stdout, assetType, id)
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runAdminAssetsDelete(api adminAssetClient, out io.Writer, assetType string, id int) error {
	if err := api.AdminDeleteAsset(assetType, id); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Deleted %s %d\n", assetType, id)
	return nil
}
