package cliapp

import (
	"fmt"
	"reflect"

	"github.com/urfave/cli/v2"
)

// ProtectFlags ensures that no flags are safe to mutate / reuse across
// commands by cloning each flag definition. urfave CLI mutates flag values
// during parsing, so sharing flag pointers between commands is unsound.
func ProtectFlags(flags []cli.Flag) []cli.Flag {
	out := make([]cli.Flag, 0, len(flags))
	for _, f := range flags {
		fCopy, err := cloneFlag(f)
		if err != nil {
			panic(fmt.Errorf("failed to clone flag %q: %w", f.Names()[0], err))
		}
		out = append(out, fCopy)
	}
	return out
}

func cloneFlag(f cli.Flag) (cli.Flag, error) {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported flag type %T", f)
	}
	cpy := reflect.New(v.Elem().Type())
	cpy.Elem().Set(v.Elem())
	out, ok := cpy.Interface().(cli.Flag)
	if !ok {
		return nil, fmt.Errorf("copied flag %T is not a cli.Flag", f)
	}
	return out, nil
}
