package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/garnish/internal/enumgen"
)

// rootCmd generates enum types from a YAML declaration.
var rootCmd = &cobra.Command{
	Use:   "garnish-enum <enums.yaml>",
	Short: "Generate garnish enum types from a YAML declaration",
	Long: `garnish-enum reads a YAML enum declaration and writes a Go file that
declares each enum as a closed int type, builds its garnish.Enum table and
wires the text, JSON, YAML, MessagePack and BSON hooks to it.

Typical use is a go:generate line next to the declaration:

	//go:generate go run github.com/zoobzio/garnish/cmd/garnish-enum enums.yaml`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		pkg, _ := cmd.Flags().GetString("package")
		return generate(args[0], out, pkg, cmd.OutOrStdout())
	},
}

// Execute runs the root command. It is called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("out", "o", "", `Output file, "-" for stdout (default: <input>_enum.go)`)
	rootCmd.Flags().StringP("package", "p", "", "Override the package clause from the declaration")
}

// generate renders the declaration at in and writes it to out.
func generate(in, out, pkg string, stdout io.Writer) error {
	f, err := enumgen.Load(in)
	if err != nil {
		return err
	}
	if pkg != "" {
		f.Package = pkg
	}

	src, err := enumgen.Generate(f, filepath.Base(in))
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if out == "-" {
		_, err = stdout.Write(src)
		return err
	}
	if out == "" {
		out = defaultOutput(in)
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %s\n", out)
	return nil
}

// defaultOutput places the generated file next to the declaration.
func defaultOutput(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + "_enum.go"
}
