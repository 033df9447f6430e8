package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creastat/storefront/api"
	"github.com/creastat/storefront/cart"
	"github.com/creastat/storefront/validate"
)

var (
	checkoutDetails string
	checkoutPhone   string
	checkoutCity    string
	checkoutMethod  string
)

// checkoutCmd submits the cart with shipping details.
var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for the cart",
	RunE:  runCheckout,
}

// ordersCmd lists the account's placed orders.
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List placed orders",
	RunE:  runOrders,
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutDetails, "details", "", "delivery details")
	checkoutCmd.Flags().StringVar(&checkoutPhone, "phone", "", "contact phone")
	checkoutCmd.Flags().StringVar(&checkoutCity, "city", "", "delivery city")
	checkoutCmd.Flags().StringVar(&checkoutMethod, "method", string(cart.PaymentCash), "payment method: cash or online")

	rootCmd.AddCommand(checkoutCmd, ordersCmd)
}

func runCheckout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/checkout"); err != nil {
		return err
	}

	addr := api.ShippingAddress{
		Details: checkoutDetails,
		Phone:   checkoutPhone,
		City:    checkoutCity,
	}
	method := cart.PaymentMethod(checkoutMethod)
	if errs := validate.Checkout(addr, method); !errs.OK() {
		return formErrors(errs)
	}

	// The checkout view always re-reads the cart before submitting.
	if _, err := a.cart.Refresh(ctx); err != nil {
		return err
	}

	res, err := a.cart.Checkout(ctx, cart.CheckoutRequest{
		Method:    method,
		ReturnURL: a.cfg.ReturnURL,
		Shipping:  addr,
	})
	if err != nil {
		return err
	}

	switch {
	case res.PaymentURL != "":
		fmt.Println(okStyle.Render("Complete your payment at:"))
		fmt.Println(res.PaymentURL)
	case res.Status == "success":
		fmt.Println(okStyle.Render("Order placed. Pay on delivery."))
		if res.OrderID != "" {
			fmt.Println(dimStyle.Render("Order " + res.OrderID))
		}
	default:
		msg := res.Message
		if msg == "" {
			msg = "Checkout failed. Please try again."
		}
		fmt.Println(errStyle.Render(msg))
	}
	return nil
}

func runOrders(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := a.requireAuth(ctx, "/allorders"); err != nil {
		return err
	}

	// The owner identifier comes from the cart mirror, as the order history
	// endpoint is keyed by user rather than by token.
	snap, err := a.cart.Refresh(ctx)
	if err != nil {
		return err
	}
	if snap.OwnerID == "" {
		fmt.Println(dimStyle.Render("No orders found."))
		return nil
	}

	orders, err := a.backend.UserOrders(ctx, snap.OwnerID)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println(dimStyle.Render("No orders found."))
		return nil
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		paid := "unpaid"
		if o.IsPaid {
			paid = "paid"
		}
		rows = append(rows, []string{
			o.ID,
			o.CreatedAt.Format("2006-01-02"),
			o.TotalOrderPrice.StringFixed(2),
			o.PaymentMethodType,
			paid,
		})
	}
	fmt.Print(renderTable([]string{"ID", "DATE", "TOTAL", "METHOD", "STATUS"}, rows))
	return nil
}
