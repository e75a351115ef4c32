// Command typedef inspects the display names the typedef library
// resolves for Go types, working from source rather than a running
// program.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Name    NameCmd    `cmd:"" help:"Resolve display names for specific named types in a package."`
	List    ListCmd    `cmd:"" help:"List every exported named type in a package with its display name."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("typedef"),
		kong.Description("Inspect the display names typedef resolves for Go types."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
