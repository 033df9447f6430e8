package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/creastat/storefront/cart"
)

// cartCmd groups the cart operations.
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart",
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set a cart line's quantity",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartSet,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "rm <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE:  runCartClear,
}

func init() {
	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartSetCmd, cartRemoveCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}

func runCartShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/cart"); err != nil {
		return err
	}

	snap, err := a.cart.Refresh(ctx)
	if err != nil {
		return err
	}
	printCart(snap)
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/cart"); err != nil {
		return err
	}

	res, err := a.cart.AddItem(ctx, args[0])
	if err != nil {
		return err
	}
	printResult(res)
	fmt.Println(dimStyle.Render(fmt.Sprintf("Cart now holds %d item(s).", a.cart.NumItems())))
	return nil
}

func runCartSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/cart"); err != nil {
		return err
	}

	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("quantity must be a number: %q", args[1])
	}

	// Populate the mirror first so the optimistic patch has a line to hit.
	if _, err := a.cart.Refresh(ctx); err != nil {
		return err
	}

	res, err := a.cart.UpdateQuantity(ctx, args[0], quantity)
	if err != nil {
		return err
	}
	printResult(res)
	printCart(a.cart.Snapshot())
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/cart"); err != nil {
		return err
	}

	if _, err := a.cart.Refresh(ctx); err != nil {
		return err
	}
	res, err := a.cart.RemoveItem(ctx, args[0])
	if err != nil {
		return err
	}
	printResult(res)
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/cart"); err != nil {
		return err
	}

	res, err := a.cart.Clear(ctx)
	if err != nil {
		return err
	}
	printResult(res)
	return nil
}

func printCart(snap cart.Snapshot) {
	if len(snap.Items) == 0 {
		fmt.Println(dimStyle.Render("Your cart is empty."))
		return
	}

	rows := make([][]string, 0, len(snap.Items))
	for _, item := range snap.Items {
		rows = append(rows, []string{
			item.ProductID,
			truncate(item.Title, 40),
			strconv.Itoa(item.Quantity),
			item.UnitPrice.StringFixed(2),
			item.Subtotal().StringFixed(2),
		})
	}
	fmt.Print(renderTable([]string{"ID", "TITLE", "QTY", "PRICE", "SUBTOTAL"}, rows))
	fmt.Printf("%s %s  %s\n",
		headerStyle.Render("Total:"),
		snap.Total().StringFixed(2),
		dimStyle.Render(fmt.Sprintf("(%d item(s) on server)", snap.NumItems)))
}

func printResult(res *cart.Result) {
	if res.Success() {
		msg := res.Message
		if msg == "" {
			msg = "Done."
		}
		fmt.Println(okStyle.Render(msg))
		return
	}
	fmt.Println(errStyle.Render(res.Message))
}
