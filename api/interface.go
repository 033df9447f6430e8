package api

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Service provides access to the remote e-commerce backend.
type Service interface {
	// SignIn authenticates with email and password and returns a bearer token.
	SignIn(ctx context.Context, creds Credentials) (*AuthResponse, error)

	// SignUp registers a new account and returns a bearer token.
	SignUp(ctx context.Context, reg Registration) (*AuthResponse, error)

	// Products retrieves the product listing.
	Products(ctx context.Context) ([]Product, error)

	// ProductByID retrieves a single product.
	ProductByID(ctx context.Context, productID string) (*Product, error)

	// Categories retrieves all categories.
	Categories(ctx context.Context) ([]Category, error)

	// Subcategories retrieves the subcategories of a category.
	Subcategories(ctx context.Context, categoryID string) ([]Subcategory, error)

	// Brands retrieves all brands.
	Brands(ctx context.Context) ([]Brand, error)

	// GetCart retrieves the authenticated user's cart.
	GetCart(ctx context.Context) (*CartResponse, error)

	// AddCartItem adds a product to the cart.
	AddCartItem(ctx context.Context, productID string) (*MutationResponse, error)

	// UpdateCartItem sets the quantity of a cart line.
	UpdateCartItem(ctx context.Context, productID string, count int) (*MutationResponse, error)

	// RemoveCartItem removes a product from the cart.
	RemoveCartItem(ctx context.Context, productID string) (*MutationResponse, error)

	// ClearCart removes every item from the cart.
	ClearCart(ctx context.Context) (*MutationResponse, error)

	// GetWishlist retrieves the authenticated user's wishlist.
	GetWishlist(ctx context.Context) (*WishlistResponse, error)

	// AddWishlistItem adds a product to the wishlist.
	AddWishlistItem(ctx context.Context, productID string) (*MutationResponse, error)

	// RemoveWishlistItem removes a product from the wishlist.
	RemoveWishlistItem(ctx context.Context, productID string) (*MutationResponse, error)

	// CreateCashOrder places a cash-on-delivery order for the cart.
	CreateCashOrder(ctx context.Context, cartID string, addr ShippingAddress) (*OrderResponse, error)

	// CreateCheckoutSession starts a hosted online payment session for the cart.
	CreateCheckoutSession(ctx context.Context, cartID, returnURL string, addr ShippingAddress) (*CheckoutSessionResponse, error)

	// UserOrders retrieves all orders placed by a user.
	UserOrders(ctx context.Context, userID string) ([]Order, error)
}

// Credentials are the sign-in form values.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration are the sign-up form values.
type Registration struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	RePassword string `json:"rePassword"`
}

// User is the account profile returned by the auth endpoints.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse is the outcome of a sign-in or sign-up call.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// Category represents a product category.
type Category struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// Subcategory represents a subcategory within a category.
type Subcategory struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}

// Brand represents a product brand.
type Brand struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// Product is a catalog product. It is read-only; the backend owns it.
type Product struct {
	ID              string          `json:"_id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageCover      string          `json:"imageCover"`
	Images          []string        `json:"images"`
	Category        Category        `json:"category"`
	Brand           Brand           `json:"brand"`
	RatingsAverage  float64         `json:"ratingsAverage"`
	RatingsQuantity int             `json:"ratingsQuantity"`
}

// CartLine is one product entry in the server cart.
type CartLine struct {
	Count   int             `json:"count"`
	Price   decimal.Decimal `json:"price"`
	Product Product         `json:"product"`
}

// Cart is the server-side cart document.
type Cart struct {
	ID             string          `json:"_id"`
	CartOwner      string          `json:"cartOwner"`
	Products       []CartLine      `json:"products"`
	TotalCartPrice decimal.Decimal `json:"totalCartPrice"`
}

// CartResponse is the envelope of a cart read.
type CartResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	NumOfCartItems int    `json:"numOfCartItems"`
	CartID         string `json:"cartId"`
	Data           Cart   `json:"data"`
}

// MutationResponse is the envelope of a cart or wishlist write. The backend
// returns line data in inconsistent shapes across write endpoints, so only
// the status fields are decoded; callers needing authoritative state re-fetch.
type MutationResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	NumOfCartItems int    `json:"numOfCartItems"`
	CartID         string `json:"cartId"`
}

// WishlistResponse is the envelope of a wishlist read.
type WishlistResponse struct {
	Status string    `json:"status"`
	Count  int       `json:"count"`
	Data   []Product `json:"data"`
}

// ShippingAddress carries the checkout delivery details.
type ShippingAddress struct {
	Details string `json:"details"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
}

// Order is a placed order.
type Order struct {
	ID                string          `json:"_id"`
	User              User            `json:"user"`
	CartItems         []CartLine      `json:"cartItems"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	TotalOrderPrice   decimal.Decimal `json:"totalOrderPrice"`
	PaymentMethodType string          `json:"paymentMethodType"`
	IsPaid            bool            `json:"isPaid"`
	IsDelivered       bool            `json:"isDelivered"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// OrderResponse is the envelope of a cash order creation.
type OrderResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    Order  `json:"data"`
}

// CheckoutSessionResponse is the envelope of a hosted payment session.
type CheckoutSessionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Session struct {
		URL string `json:"url"`
	} `json:"session"`
}
