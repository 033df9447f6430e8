package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creastat/storefront/api"
)

var (
	searchTerm string
	categoryID string
)

// productsCmd lists the catalog, optionally filtered by a search term.
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products",
	RunE:  runProducts,
}

// productCmd shows one product with related suggestions.
var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show a product and related items",
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

// categoriesCmd lists categories or the subcategories of one.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	RunE:  runCategories,
}

// brandsCmd lists brands.
var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List brands",
	RunE:  runBrands,
}

func init() {
	productsCmd.Flags().StringVar(&searchTerm, "search", "", "filter products by title")
	categoriesCmd.Flags().StringVar(&categoryID, "category", "", "list subcategories of this category")

	rootCmd.AddCommand(productsCmd, productCmd, categoriesCmd, brandsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/products"); err != nil {
		return err
	}

	products, err := a.backend.Products(ctx)
	if err != nil {
		return err
	}
	products = api.FilterByTitle(products, searchTerm)

	if len(products) == 0 {
		fmt.Println(dimStyle.Render("No products found."))
		return nil
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			truncate(p.Title, 40),
			p.Category.Name,
			p.Price.StringFixed(2),
			fmt.Sprintf("%.1f", p.RatingsAverage),
		})
	}
	fmt.Print(renderTable([]string{"ID", "TITLE", "CATEGORY", "PRICE", "RATING"}, rows))
	return nil
}

func runProduct(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/products"); err != nil {
		return err
	}

	p, err := a.backend.ProductByID(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(p.Title))
	fmt.Printf("%s  %s\n", p.Price.StringFixed(2), dimStyle.Render(fmt.Sprintf("rating %.1f (%d)", p.RatingsAverage, p.RatingsQuantity)))
	fmt.Println(p.Description)

	all, err := a.backend.Products(ctx)
	if err != nil {
		return err
	}
	related := api.RelatedByCategory(all, p.Category.Name, p.ID)
	if len(related) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Related in " + p.Category.Name))
	for _, r := range related {
		fmt.Printf("  %s  %s (%s)\n", r.ID, truncate(r.Title, 40), r.Price.StringFixed(2))
	}
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/categories"); err != nil {
		return err
	}

	if categoryID != "" {
		subs, err := a.backend.Subcategories(ctx, categoryID)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(subs))
		for _, s := range subs {
			rows = append(rows, []string{s.ID, s.Name})
		}
		fmt.Print(renderTable([]string{"ID", "SUBCATEGORY"}, rows))
		return nil
	}

	cats, err := a.backend.Categories(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{c.ID, c.Name})
	}
	fmt.Print(renderTable([]string{"ID", "CATEGORY"}, rows))
	return nil
}

func runBrands(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/brands"); err != nil {
		return err
	}

	brands, err := a.backend.Brands(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(brands))
	for _, b := range brands {
		rows = append(rows, []string{b.ID, b.Name})
	}
	fmt.Print(renderTable([]string{"ID", "BRAND"}, rows))
	return nil
}
