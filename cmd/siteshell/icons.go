package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbmgmt/siteshell"
	"github.com/sbmgmt/siteshell/metadata"
)

func iconsCommand() *cobra.Command {
	var source, out string

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Generate every favicon, touch icon and tile the site declares",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(source)
			if err != nil {
				return fmt.Errorf("open source image: %w", err)
			}
			defer f.Close()

			logger := newLogger()
			written, err := siteshell.GenerateIcons(f, out, metadata.DefaultIcons())
			for _, p := range written {
				logger.Infof("created %s", p)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d icons written to %s\n", len(written), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source image (PNG, JPEG or GIF), ideally square and at least 310px")
	cmd.Flags().StringVarP(&out, "out", "o", "public", "output directory")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}
