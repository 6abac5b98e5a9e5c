// Package all registers all shell commands.
package all

import (
	_ "github.com/robotalks/ubx.go/pkg/cli/cmds/codec"
	_ "github.com/robotalks/ubx.go/pkg/cli/cmds/device"
)
