//go:build windows

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"proctiller/pkg/process"
)

func newPeekCmd(opts *options) *cobra.Command {
	var dtype string

	cmd := &cobra.Command{
		Use:   "peek PID ADDR",
		Short: "Read a value from the memory of a process",
		Long: `Read a value from the memory of a process. ADDR accepts a 0x prefix.
The default type reads one pointer-sized value.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := lookupKind(dtype)
			if err != nil {
				return err
			}
			p, addr, err := openAt(args[0], args[1])
			if err != nil {
				return err
			}
			defer p.Close()

			raw, err := readRaw(p, addr, kind.size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kind.format(raw))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dtype, "type", "t", "ptr", "Value type: "+valueKindNames())
	return cmd
}

func newPokeCmd(opts *options) *cobra.Command {
	var dtype string

	cmd := &cobra.Command{
		Use:   "poke PID ADDR VALUE",
		Short: "Write a value into the memory of a process and print what reads back",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := lookupKind(dtype)
			if err != nil {
				return err
			}
			raw, err := kind.parse(args[2])
			if err != nil {
				return err
			}
			p, addr, err := openAt(args[0], args[1])
			if err != nil {
				return err
			}
			defer p.Close()

			got, err := writeRaw(p, addr, kind.size, raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kind.format(got))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dtype, "type", "t", "int32", "Value type: "+valueKindNames())
	return cmd
}

func openAt(pidArg, addrArg string) (*process.Process, uintptr, error) {
	pid, err := parsePID(pidArg)
	if err != nil {
		return nil, 0, err
	}
	addr, err := parseAddress(addrArg)
	if err != nil {
		return nil, 0, err
	}
	p, err := process.Open(pid)
	if err != nil {
		return nil, 0, err
	}
	return p, addr, nil
}

func readRaw(p *process.Process, addr uintptr, size int) (uint64, error) {
	switch size {
	case 1:
		v, err := process.Read[uint8](p, addr)
		return uint64(v), err
	case 2:
		v, err := process.Read[uint16](p, addr)
		return uint64(v), err
	case 4:
		v, err := process.Read[uint32](p, addr)
		return uint64(v), err
	case 8:
		return process.Read[uint64](p, addr)
	default:
		return 0, fmt.Errorf("unsupported value size %d", size)
	}
}

func writeRaw(p *process.Process, addr uintptr, size int, raw uint64) (uint64, error) {
	switch size {
	case 1:
		v, err := process.WriteAndRead(p, addr, uint8(raw))
		return uint64(v), err
	case 2:
		v, err := process.WriteAndRead(p, addr, uint16(raw))
		return uint64(v), err
	case 4:
		v, err := process.WriteAndRead(p, addr, uint32(raw))
		return uint64(v), err
	case 8:
		return process.WriteAndRead(p, addr, raw)
	default:
		return 0, fmt.Errorf("unsupported value size %d", size)
	}
}
