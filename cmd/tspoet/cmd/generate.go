package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/tspoet/errors"
	"github.com/teranos/tspoet/logger"
	"github.com/teranos/tspoet/manifest"
	"github.com/teranos/tspoet/poet"
)

var (
	generateManifest string
	generateOutput   string
	generateIndent   string
)

// GenerateCmd renders every class in a manifest to TypeScript source.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate TypeScript classes from a manifest",
	Long: `Generate TypeScript class declarations from a YAML manifest.

Each class is written to <ClassName>.ts in the output directory, or to
stdout when no output directory is given.

Examples:
  tspoet generate -f classes.yaml                # Write to stdout
  tspoet generate -f classes.yaml -o src/gen/    # One file per class
  tspoet generate -f classes.yaml --indent "    " # Four-space indent`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateManifest, "manifest", "f", "", "Manifest file (required)")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (default: stdout)")
	GenerateCmd.Flags().StringVar(&generateIndent, "indent", "", "Indentation unit (default: two spaces, or the manifest's indent field)")

	_ = GenerateCmd.MarkFlagRequired("manifest")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(generateManifest)
	if err != nil {
		return err
	}

	specs, err := m.Build()
	if err != nil {
		return err
	}
	logger.Debugw("manifest loaded",
		"path", generateManifest,
		"classes", len(specs),
	)

	indent := resolveIndent(m)

	if generateOutput == "" {
		for _, spec := range specs {
			fmt.Println(render(spec, indent))
		}
		return nil
	}

	if err := os.MkdirAll(generateOutput, 0755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	for _, spec := range specs {
		outputPath := filepath.Join(generateOutput, spec.Name()+".ts")
		if err := os.WriteFile(outputPath, []byte(render(spec, indent)), 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", outputPath)
		}
		fmt.Printf("✓ Generated %s\n", outputPath)
	}
	logger.Infow("generation complete",
		"classes", len(specs),
		"output", generateOutput,
	)
	return nil
}

// resolveIndent picks the writer indent: the --indent flag wins, then the
// manifest's indent field, then the default.
func resolveIndent(m *manifest.Manifest) string {
	if generateIndent != "" {
		return generateIndent
	}
	if m.Indent != "" {
		return m.Indent
	}
	return poet.DefaultIndent
}

func render(spec poet.ClassSpec, indent string) string {
	w := poet.NewCodeWriterIndent(indent)
	spec.Emit(w)
	return w.String()
}
