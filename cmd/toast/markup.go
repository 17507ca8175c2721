package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-toast/dom"
	"github.com/vcrobe/nojs-toast/vdom"
)

func newMarkupCmd(stdout io.Writer) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "markup",
		Short: "Print the toast markup a page needs",
		Long: `Print the Bootstrap toast container holding one toast per configured level,
with the ids the notifier looks up. Paste it into the page body.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(configPath)
			if err != nil {
				return err
			}
			out, err := vdom.HTML(vdom.ToastContainer(dom.Surfaces(settings.Targets)...))
			if err != nil {
				return fmt.Errorf("render markup: %w", err)
			}
			_, err = fmt.Fprintln(stdout, out)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML settings file")

	return cmd
}
