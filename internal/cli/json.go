package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ngpatch/internal/logging"
	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/jsonedit"
	"github.com/yaklabco/ngpatch/pkg/locate"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

type jsonAppendFlags struct {
	value     string
	key       string
	sorted    bool
	unique    bool
	overwrite bool
}

func newJSONAppendCommand(opts *globalOptions) *cobra.Command {
	flags := &jsonAppendFlags{}

	cmd := &cobra.Command{
		Use:   "json-append <file> [key...]",
		Short: "Append an element or property to a JSON array or object",
		Long: `Follow the object keys from the document root and append to the value found.

For an array, --value is appended as the last element. For an object, --key
names the new property and --value is its value. Values are raw JSON, so
strings need their quotes.

Examples:
  ngpatch json-append tslint.json rules import-blacklist --value '"lodash"' --unique
  ngpatch json-append angular.json projects app architect build options assets --value '"src/robots.txt"'
  ngpatch json-append package.json scripts --key lint:ci --value '"ng lint --format json"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateJSONValue(commandContext(cmd), flags.value); err != nil {
				return err
			}

			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			path, keys := args[0], args[1:]

			file, err := s.parse(ctx, path)
			if err != nil {
				return err
			}
			target, err := resolveJSONPath(file, keys)
			if err != nil {
				return err
			}

			edits, err := flags.plan(s, file, target)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := s.apply(ctx, path, edits); err != nil {
				return err
			}
			return s.finish(ctx)
		},
	}

	cmd.Flags().StringVar(&flags.value, "value", "", "raw JSON value to add (required)")
	cmd.Flags().StringVar(&flags.key, "key", "", "property name when the target is an object")
	cmd.Flags().BoolVar(&flags.sorted, "sorted", false, "insert the property in key order")
	cmd.Flags().BoolVar(&flags.unique, "unique", false, "skip when the array already holds the string value")
	cmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "replace the value of an existing property")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func (f *jsonAppendFlags) plan(s *session, file *srcast.SourceFile, target *srcast.Node) ([]fix.TextEdit, error) {
	switch target.Kind {
	case srcast.KindArray:
		if f.key != "" {
			return nil, fmt.Errorf("%w: --key is only valid for objects", errUsage)
		}
		if f.unique {
			if value, ok := stringLiteral(f.value); ok && jsonedit.ContainsString(target, value) {
				s.logger.Info("already present", logging.FieldValue, f.value)
				return nil, nil
			}
		}
		return jsonedit.AppendArrayElement(target, f.value)

	case srcast.KindObject:
		if f.key == "" {
			return nil, fmt.Errorf("%w: --key is required for objects", errUsage)
		}
		if locate.FindPropertyByName(target, f.key) != nil {
			if !f.overwrite {
				s.logger.Info("already present", logging.FieldKey, f.key)
				return nil, nil
			}
			return jsonedit.SetPropertyValue(target, f.key, f.value)
		}
		if f.sorted {
			return jsonedit.InsertPropertyInOrder(file, target, f.key, f.value, s.cfg.Indent)
		}
		return jsonedit.AppendProperty(file, target, f.key, f.value, s.cfg.Indent)

	default:
		return nil, fmt.Errorf("%w: found %s", jsonedit.ErrNotArray, target.Kind)
	}
}

type jsonRemoveFlags struct {
	value string
	all   bool
}

func newJSONRemoveCommand(opts *globalOptions) *cobra.Command {
	flags := &jsonRemoveFlags{}

	cmd := &cobra.Command{
		Use:   "json-remove <file> <key>... --value <string>",
		Short: "Remove a string element from a JSON array",
		Long: `Remove the first string element equal to --value from the array at the
key path, keeping the array valid. Removing the only element leaves [].

Examples:
  ngpatch json-remove tslint.json rules import-blacklist --value rxjs
  ngpatch json-remove angular.json projects app architect build options styles --value src/old.css --all`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			path, keys := args[0], args[1:]

			for removed := 0; ; removed++ {
				file, err := s.parse(ctx, path)
				if err != nil {
					return err
				}
				target, err := resolveJSONPath(file, keys)
				if err != nil {
					return err
				}

				edits, err := jsonedit.RemoveArrayElement(target, jsonedit.StringEquals(flags.value))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if len(edits) == 0 {
					if removed == 0 {
						s.logger.Info("not present", logging.FieldPath, path, logging.FieldValue, flags.value)
					}
					break
				}
				if err := s.apply(ctx, path, edits); err != nil {
					return err
				}
				if !flags.all {
					break
				}
			}
			return s.finish(ctx)
		},
	}

	cmd.Flags().StringVar(&flags.value, "value", "", "string element to remove (required)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "remove every occurrence")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

type addDependencyFlags struct {
	file      string
	dev       bool
	peer      bool
	overwrite bool
}

func newAddDependencyCommand(opts *globalOptions) *cobra.Command {
	flags := &addDependencyFlags{}

	cmd := &cobra.Command{
		Use:   "add-dependency <name> <version>",
		Short: "Add a dependency to package.json",
		Long: `Add name@version to dependencies (or devDependencies / peerDependencies),
keeping the section in key order and creating it when missing. An existing
entry is kept unless --overwrite is given.

Examples:
  ngpatch add-dependency @angular/cdk ^17.0.0
  ngpatch add-dependency --dev @types/jasmine ~5.1.0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := jsonedit.DependencyDefault
			switch {
			case flags.dev && flags.peer:
				return fmt.Errorf("%w: --dev and --peer are exclusive", errUsage)
			case flags.dev:
				kind = jsonedit.DependencyDev
			case flags.peer:
				kind = jsonedit.DependencyPeer
			}

			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			file, err := s.parse(ctx, flags.file)
			if err != nil {
				return err
			}
			edits, err := jsonedit.AddPackageJSONDependency(file, kind, args[0], args[1], flags.overwrite, s.cfg.Indent)
			if err != nil {
				return fmt.Errorf("%s: %w", flags.file, err)
			}
			if err := s.apply(ctx, flags.file, edits); err != nil {
				return err
			}
			return s.finish(ctx)
		},
	}

	cmd.Flags().StringVar(&flags.file, "file", "package.json", "package.json path relative to the root")
	cmd.Flags().BoolVarP(&flags.dev, "dev", "D", false, "add to devDependencies")
	cmd.Flags().BoolVar(&flags.peer, "peer", false, "add to peerDependencies")
	cmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "replace the version of an existing entry")

	return cmd
}

// resolveJSONPath follows keys from the document root.
func resolveJSONPath(file *srcast.SourceFile, keys []string) (*srcast.Node, error) {
	target := jsonedit.FindPath(file, keys...)
	if target == nil {
		return nil, fmt.Errorf("%s: %w: %s", file.Path, ErrPathNotFound, strings.Join(keys, "."))
	}
	return target, nil
}

// validateJSONValue rejects values that are not a single JSON value.
func validateJSONValue(ctx context.Context, value string) error {
	if _, err := jsonast.New().Parse(ctx, "--value", []byte(value)); err != nil {
		return fmt.Errorf("%w: --value: %w", errUsage, err)
	}
	return nil
}

// stringLiteral decodes value when it is a JSON string literal.
func stringLiteral(value string) (string, bool) {
	file, err := jsonast.New().Parse(context.Background(), "", []byte(value))
	if err != nil {
		return "", false
	}
	return jsonast.StringValue(jsonedit.Root(file))
}
