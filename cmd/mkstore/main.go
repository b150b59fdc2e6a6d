// mkstore builds and inspects qubit store images. Write the output to the
// flash file the simulator uses (qubit.flash by default) to give the shell
// something to ls and cat.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Thoq-jar/qubit/qubitos/store"
)

func main() {
	root := &cobra.Command{
		Use:           "mkstore",
		Short:         "Build and inspect qubit store images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBuildCmd(), newListCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mkstore:", err)
		os.Exit(1)
	}
}

func newBuildCmd() *cobra.Command {
	var flashSize uint32

	cmd := &cobra.Command{
		Use:   "build <output> <path>...",
		Short: "Pack files and directories into a store image",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := args[0]

			var entries []store.ImageEntry
			for _, path := range args[1:] {
				entry, err := entryFromPath(path)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
			}

			img, err := store.EncodeImage(entries)
			if err != nil {
				return err
			}
			if flashSize > 0 {
				if uint32(len(img)) > flashSize {
					return fmt.Errorf("image is %d bytes, exceeds flash size %d", len(img), flashSize)
				}
				// Pad with the NOR erased pattern so the image can be
				// written to a blank device as-is.
				padded := make([]byte, flashSize)
				for i := range padded {
					padded[i] = 0xFF
				}
				copy(padded, img)
				img = padded
			}

			if err := os.WriteFile(out, img, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d entries, %d bytes\n", out, len(entries), len(img))
			return nil
		},
	}
	cmd.Flags().Uint32Var(&flashSize, "flash-size", 0, "Pad the image with 0xFF to this size.")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <image>",
		Short: "Print the entries of a store image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			entries, err := store.DecodeImage(b)
			if err != nil {
				return err
			}
			for _, e := range entries {
				if e.Kind == store.EntryDir {
					fmt.Fprintf(cmd.OutOrStdout(), "dir           %s\n", e.Name)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "file %8d %s\n", len(e.Data), e.Name)
			}
			return nil
		},
	}
}

func entryFromPath(path string) (store.ImageEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return store.ImageEntry{}, err
	}
	name := filepath.Base(path)
	if info.IsDir() {
		return store.ImageEntry{Name: name, Kind: store.EntryDir}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return store.ImageEntry{}, err
	}
	return store.ImageEntry{Name: name, Kind: store.EntryFile, Data: data}, nil
}
