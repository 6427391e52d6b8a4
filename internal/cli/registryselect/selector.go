package registryselect

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/agenthub-dev/agenthub/internal/cli/config"
	"github.com/agenthub-dev/agenthub/internal/cli/userconfig"
)

// ResolveRegistry determines which registry to use based on the following priority:
// 1. If registryAlias flag is provided, use that registry
// 2. If user has a selected registry in their local config, use that
// 3. If only one registry in project config, use that
// 4. Otherwise, prompt user to select a registry interactively
func ResolveRegistry(projectConfig *config.Config, registryAlias string) (*config.Registry, error) {
	// Priority 1: Use registry alias if provided
	if registryAlias != "" {
		registry, err := projectConfig.GetRegistryByAlias(registryAlias)
		if err != nil {
			return nil, err
		}
		return registry, nil
	}

	// Priority 2: Use selected registry from user config
	selectedURL, err := userconfig.GetSelectedRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if selectedURL != "" {
		registry, err := getRegistryByURL(projectConfig, selectedURL)
		if err != nil {
			// Selected registry no longer exists in project config, clear it and continue
			_ = userconfig.SetSelectedRegistry("")
		} else {
			return registry, nil
		}
	}

	// Priority 3: If only one registry, use it automatically
	if len(projectConfig.Registries) == 1 {
		registry := &projectConfig.Registries[0]
		if err := userconfig.SetSelectedRegistry(registry.URL); err != nil {
			// Don't fail if we can't save, just continue
			fmt.Printf("Warning: failed to save selected registry: %v\n", err)
		}
		return registry, nil
	}

	// Priority 4: Prompt user to select a registry
	registry, err := PromptRegistrySelection(projectConfig)
	if err != nil {
		return nil, err
	}

	if err := userconfig.SetSelectedRegistry(registry.URL); err != nil {
		// Don't fail if we can't save, just continue
		fmt.Printf("Warning: failed to save selected registry: %v\n", err)
	}

	return registry, nil
}

// PromptRegistrySelection shows an interactive prompt for the user to select a registry
func PromptRegistrySelection(projectConfig *config.Config) (*config.Registry, error) {
	if len(projectConfig.Registries) == 0 {
		return nil, fmt.Errorf("no registries configured in agenthub.json")
	}

	type registryOption struct {
		Label    string
		Registry *config.Registry
	}

	options := make([]registryOption, len(projectConfig.Registries))
	for i := range projectConfig.Registries {
		registry := &projectConfig.Registries[i]
		label := fmt.Sprintf("%s (%s)", registry.Alias, registry.URL)
		options[i] = registryOption{
			Label:    label,
			Registry: registry,
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select a registry",
		Items:     options,
		Templates: templates,
		Size:      10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("registry selection cancelled: %w", err)
	}

	return options[index].Registry, nil
}

// getRegistryByURL finds a registry in the config by its URL
func getRegistryByURL(cfg *config.Config, url string) (*config.Registry, error) {
	for i := range cfg.Registries {
		if cfg.Registries[i].URL == url {
			return &cfg.Registries[i], nil
		}
	}
	return nil, fmt.Errorf("registry with URL '%s' not found in project config", url)
}

// GetRegistryByURLOrAlias finds a registry by URL or alias
func GetRegistryByURLOrAlias(cfg *config.Config, urlOrAlias string) (*config.Registry, error) {
	for i := range cfg.Registries {
		if cfg.Registries[i].URL == urlOrAlias {
			return &cfg.Registries[i], nil
		}
	}

	for i := range cfg.Registries {
		if cfg.Registries[i].Alias == urlOrAlias {
			return &cfg.Registries[i], nil
		}
	}

	return nil, fmt.Errorf("registry with URL or alias '%s' not found", urlOrAlias)
}
