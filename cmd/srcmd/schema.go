package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srcmd/srcmd/config"
)

// schemaCmd represents the schema command.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for the config file format",
	Long: `Schema prints a JSON Schema describing .srcmd.toml / .srcmd.yaml,
for use with editors that validate config files against a schema.`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
