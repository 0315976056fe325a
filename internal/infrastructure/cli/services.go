package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/radar/internal/infrastructure/wiring"
)

func loadServices(root string, logOutput io.Writer) (*wiring.AppServices, error) {
	services, err := wiring.BuildAppServices(root, logOutput)
	if err != nil {
		return nil, MapError(fmt.Errorf("failed to build services: %w", err))
	}
	return services, nil
}

func getProjectRoot() (string, error) {
	if projectPath != "" {
		abs, err := filepath.Abs(projectPath)
		if err != nil {
			return "", fmt.Errorf("invalid project path %q: %w", projectPath, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("project path %q: %w", abs, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("project path %q is not a directory", abs)
		}
		return abs, nil
	}
	return os.Getwd()
}

func loadServicesForCurrentDir(logOutput io.Writer) (*wiring.AppServices, error) {
	root, err := getProjectRoot()
	if err != nil {
		return nil, NewCLIError("could not resolve the project root", "Pass an existing directory with --project", err)
	}
	return loadServices(root, logOutput)
}
