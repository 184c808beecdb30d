package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Alia5/formgen/internal/codegen/common"
)

// Version prints the build version.
type Version struct {
	out io.Writer
}

// Run is called by Kong when the version command is executed.
func (v *Version) Run() error {
	version, err := common.GetVersion()
	if err != nil {
		return err
	}
	out := v.out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintf(out, "formgen %s\n", version)
	return err
}
