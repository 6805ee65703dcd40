package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/breeew/gemini-ext/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:   "gemext",
		Short: "gemini extension backend",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("empty command, try `gemext service`")
		},
	}

	root.AddCommand(service.NewCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
