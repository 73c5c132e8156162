package cli

import "github.com/urfave/cli/v3"

// NewApp exposes the root command for tests
func NewApp() *cli.Command {
	return newApp()
}
