package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/recipectl/internal/controller"
	"github.com/dshills/recipectl/internal/diff"
	"github.com/dshills/recipectl/internal/instructions"
)

func newRecipeController(a *app) *controller.RecipeController {
	return controller.NewRecipeController(a.client, a.env())
}

func newRecipesCmd(flags *globalFlags, s streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipes",
		Aliases: []string{"recipe"},
		Short:   "Manage recipes",
	}

	// run loads the recipe page, applies action and prints the list.
	run := func(cmd *cobra.Command, action func(*app, *controller.RecipeController) error) error {
		a, err := newApp(flags, s)
		if err != nil {
			return err
		}
		c := newRecipeController(a)
		if err := c.Load(cmd.Context()); err != nil {
			return a.outcome(err)
		}
		if action != nil {
			if err := action(a, c); err != nil {
				return a.outcome(err)
			}
		}
		return a.write("Recipes", c.List, true)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, nil)
		},
	}

	var addFile string
	addCmd := &cobra.Command{
		Use:   "add <name> [instructions]",
		Short: "Add a recipe",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := instructionsArg(cmd, args, addFile)
			if err != nil {
				return err
			}
			return run(cmd, func(a *app, c *controller.RecipeController) error {
				if addFile != "" {
					a.log.Info("instructions loaded", "source", addFile, "lines", instructions.LineCount(text))
				}
				c.Form.AddName.Set(args[0])
				c.Form.AddInstructions.Set(text)
				return c.Add(cmd.Context())
			})
		},
	}
	addCmd.Flags().StringVar(&addFile, "file", "", "Read instructions from this file (- for stdin)")

	var showDiff bool
	var updateFile string
	updateCmd := &cobra.Command{
		Use:   "update <name> [instructions]",
		Short: "Replace the instructions of a recipe (the name is unchanged)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := instructionsArg(cmd, args, updateFile)
			if err != nil {
				return err
			}
			return run(cmd, func(a *app, c *controller.RecipeController) error {
				if updateFile != "" {
					a.log.Info("instructions loaded", "source", updateFile, "lines", instructions.LineCount(text))
				}
				if showDiff {
					if old, ok := c.Find(strings.TrimSpace(args[0])); ok {
						if d := diff.Instructions(old.Instructions, strings.TrimSpace(text)); d != "" {
							fmt.Fprintf(a.io.stderr, "--- %s\n+++ %s\n%s", old.Name, old.Name, d)
						}
					}
				}
				c.Form.UpdateName.Set(args[0])
				c.Form.UpdateInstructions.Set(text)
				return c.Update(cmd.Context())
			})
		},
	}
	updateCmd.Flags().BoolVar(&showDiff, "diff", false, "Print the instruction change to stderr before updating")
	updateCmd.Flags().StringVar(&updateFile, "file", "", "Read instructions from this file (- for stdin)")

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete the recipe with this name (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(_ *app, c *controller.RecipeController) error {
				c.Form.DeleteName.Set(args[0])
				return c.Delete(cmd.Context())
			})
		},
	}

	var remote bool
	searchCmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Show recipes whose name contains term (case-insensitive)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(_ *app, c *controller.RecipeController) error {
				if len(args) == 1 {
					c.Form.Search.Set(args[0])
				}
				if remote {
					return c.SearchRemote(cmd.Context())
				}
				c.Search()
				return nil
			})
		},
	}
	searchCmd.Flags().BoolVar(&remote, "remote", false, "Let the backend filter instead of the loaded list")

	cmd.AddCommand(listCmd, addCmd, updateCmd, deleteCmd, searchCmd)
	return cmd
}

// instructionsArg returns the instructions given either as the second
// positional argument or through --file, never both.
func instructionsArg(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case file != "" && len(args) == 2:
		return "", codeError(exitUsage, "invalid flags: pass instructions as an argument or with --file, not both")
	case file != "":
		text, err := instructions.Load(file, cmd.InOrStdin())
		if err != nil {
			return "", codeError(exitUsage, "%s", err)
		}
		return text, nil
	case len(args) == 2:
		return args[1], nil
	default:
		return "", nil
	}
}
