package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// wishlistCmd groups the favorites operations.
var wishlistCmd = &cobra.Command{
	Use:     "wishlist",
	Aliases: []string{"wishlists"},
	Short:   "Manage the wishlist",
}

var wishlistShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the wishlist",
	RunE:  runWishlistShow,
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistAdd,
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "rm <product-id>",
	Short: "Remove a product from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistRemove,
}

func init() {
	wishlistCmd.AddCommand(wishlistShowCmd, wishlistAddCmd, wishlistRemoveCmd)
	rootCmd.AddCommand(wishlistCmd)
}

func runWishlistShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/wishlists"); err != nil {
		return err
	}

	entries, err := a.wishlist.Refresh(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(dimStyle.Render("Your wishlist is empty."))
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ProductID,
			truncate(e.Title, 40),
			e.Price.StringFixed(2),
			fmt.Sprintf("%.1f", e.RatingsAverage),
		})
	}
	fmt.Print(renderTable([]string{"ID", "TITLE", "PRICE", "RATING"}, rows))
	return nil
}

func runWishlistAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/wishlists"); err != nil {
		return err
	}

	if err := a.wishlist.Add(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println(okStyle.Render("Added to wishlist."))
	return nil
}

func runWishlistRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/wishlists"); err != nil {
		return err
	}

	if err := a.wishlist.Remove(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println(okStyle.Render("Removed from wishlist."))
	return nil
}
