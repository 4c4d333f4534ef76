package cli

import (
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gork-labs/doccheck/internal/lintdocstring"
	"github.com/gork-labs/doccheck/pkg/doccheck"
	"github.com/gork-labs/doccheck/pkg/docstring"
)

func newCheckCommand() *cobra.Command {
	config := defaultConfig()

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Google-style doc comments against function signatures",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				config.Paths = args
			}
			return runCheck(&config, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .doccheck.yml config file")
	cmd.Flags().BoolVar(&config.RequireParamTypes, "require-param-types", false, "Require every documented parameter to carry a type")
	cmd.Flags().BoolVar(&config.CheckReferences, "check-references", true, "Check References sections for format errors")
	cmd.Flags().StringSliceVar(&config.ExcludeFiles, "exclude", nil, "File basenames to skip")
	cmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Report every checked function")

	return cmd
}

// runCheck walks the configured paths, checks every documented function
// using Google-style sections, and prints findings. A non-nil error
// (and thus a non-zero exit) means findings were reported.
func runCheck(config *Config, out io.Writer) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}
	if err := validateConfig(config); err != nil {
		return err
	}

	checker := doccheck.New(doccheck.Config{
		RequireParamTypes: config.RequireParamTypes,
		CheckReferences:   config.CheckReferences,
	})

	total := 0
	for _, root := range config.Paths {
		n, err := checkPath(root, config, checker, out)
		if err != nil {
			return err
		}
		total += n
	}

	if total > 0 {
		return fmt.Errorf("found %d docstring issue(s)", total)
	}
	return nil
}

func checkPath(root string, config *Config, checker *doccheck.Checker, out io.Writer) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if skipDir(de.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(de.Name(), ".go") || excluded(de.Name(), config.ExcludeFiles) {
			return nil
		}
		total += checkFile(path, config, checker, out)
		return nil
	})
	if err != nil {
		return total, fmt.Errorf("walk %s: %w", root, err)
	}
	return total, nil
}

func skipDir(name string) bool {
	if name == "vendor" || name == "testdata" {
		return true
	}
	return strings.HasPrefix(name, ".") && name != "."
}

func excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if name == p {
			return true
		}
	}
	return false
}

// checkFile parses one Go file and reports findings for its documented
// functions. Files that fail to parse are skipped: the tool surfaces
// docstring issues, not build errors.
func checkFile(path string, config *Config, checker *doccheck.Checker, out io.Writer) int {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return 0
	}

	total := 0
	for _, fd := range lintdocstring.Extract(file) {
		doc := docstring.Parse(fd.Doc)
		if len(doc.Sections) == 0 {
			continue
		}
		findings := checker.Check(doc, &fd.Sig)
		if config.Verbose && len(findings) == 0 {
			fmt.Fprintf(out, "%s: %s: ok\n", fset.Position(fd.Pos), fd.Sig.Name)
		}
		for _, f := range findings {
			fmt.Fprintf(out, "%s: %s: %s\n", fset.Position(fd.Pos), fd.Sig.Name, f)
		}
		total += len(findings)
	}
	return total
}
