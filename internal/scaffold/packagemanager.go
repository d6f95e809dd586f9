package scaffold

import (
	"fmt"
	"strings"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
)

// PackageManager is a supported Node.js package manager.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
)

// PackageManagers lists the supported package managers.
func PackageManagers() []PackageManager {
	return []PackageManager{NPM, PNPM, Yarn}
}

// ParsePackageManager validates a package manager name.
func ParsePackageManager(name string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(strings.TrimSpace(name)))
	switch pm {
	case NPM, PNPM, Yarn:
		return pm, nil
	}
	return "", oerrors.NewValidationError(
		fmt.Sprintf("Invalid package manager: %s", name),
		"", "package-manager",
		"Use one of: npm, pnpm, yarn.")
}

// String returns the executable name.
func (pm PackageManager) String() string {
	return string(pm)
}

// InstallCommand is the dependency install command used in CI.
func (pm PackageManager) InstallCommand() string {
	switch pm {
	case PNPM:
		return "pnpm install --no-frozen-lockfile"
	case Yarn:
		return "yarn install --mode=update-lockfile"
	default:
		return "npm install"
	}
}

// UpdateCommand runs the template:update script.
func (pm PackageManager) UpdateCommand() string {
	switch pm {
	case PNPM:
		return "pnpm run template:update"
	case Yarn:
		return "yarn template:update"
	default:
		return "npm run template:update"
	}
}

// RunCommand runs a package.json script.
func (pm PackageManager) RunCommand(script string) string {
	switch pm {
	case PNPM:
		return "pnpm run " + script
	case Yarn:
		return "yarn " + script
	default:
		return "npm run " + script
	}
}

// DevCommand is the command suggested to start the dev server.
func (pm PackageManager) DevCommand() string {
	if pm == NPM || pm == "" {
		return "npm run dev"
	}
	return string(pm) + " dev"
}
