package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/recipectl/internal/controller"
)

func newIngredientController(a *app) *controller.IngredientController {
	return controller.NewIngredientController(a.client, a.env())
}

func newIngredientsCmd(flags *globalFlags, s streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ingredients",
		Aliases: []string{"ingredient"},
		Short:   "Manage ingredients (admins only)",
	}

	// run loads the ingredient page, applies action and prints the list.
	run := func(cmd *cobra.Command, action func(*controller.IngredientController) error) error {
		a, err := newApp(flags, s)
		if err != nil {
			return err
		}
		c := newIngredientController(a)
		if err := c.Load(cmd.Context()); err != nil {
			return a.outcome(err)
		}
		if action != nil {
			if err := action(c); err != nil {
				return a.outcome(err)
			}
		}
		return a.write("Ingredients", c.List, false)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List ingredients",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, nil)
			},
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: "Add an ingredient",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, func(c *controller.IngredientController) error {
					c.Form.AddName.Set(args[0])
					return c.Add(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete the ingredient with this name (case-insensitive)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, func(c *controller.IngredientController) error {
					c.Form.DeleteName.Set(args[0])
					return c.Delete(cmd.Context())
				})
			},
		},
	)
	return cmd
}
