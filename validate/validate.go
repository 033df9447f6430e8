// Package validate holds the storefront's form validation as pure functions
// returning field-level errors, decoupled from any UI binding.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/creastat/storefront/api"
	"github.com/creastat/storefront/cart"
)

// Errors maps field names to human-readable validation messages.
// An empty map means the form is valid.
type Errors map[string]string

// OK reports whether the form passed validation.
func (e Errors) OK() bool {
	return len(e) == 0
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Egyptian mobile numbers, as the backend expects them.
	phonePattern = regexp.MustCompile(`^(010|011|012|015)\d{8}$`)
)

// passwordSpecials are the special characters the password rule accepts.
const passwordSpecials = "@$!%*?&#"

// validPassword requires at least one uppercase letter, one lowercase
// letter, one digit and one special character.
func validPassword(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// SignIn validates the login form.
func SignIn(creds api.Credentials) Errors {
	errs := Errors{}
	checkEmail(errs, creds.Email)
	checkPassword(errs, creds.Password)
	return errs
}

// SignUp validates the registration form.
func SignUp(reg api.Registration) Errors {
	errs := Errors{}

	switch {
	case reg.Name == "":
		errs["name"] = "Name is required"
	case len(reg.Name) < 3:
		errs["name"] = "Name min length is 3"
	case len(reg.Name) > 35:
		errs["name"] = "Name max length is 35"
	}

	checkEmail(errs, reg.Email)
	checkPhone(errs, reg.Phone)
	checkPassword(errs, reg.Password)

	switch {
	case reg.RePassword == "":
		errs["rePassword"] = "Confirmation password is required"
	case reg.RePassword != reg.Password:
		errs["rePassword"] = "Password and confirmation password must be identical"
	}

	return errs
}

// Checkout validates the shipping details and payment method.
func Checkout(addr api.ShippingAddress, method cart.PaymentMethod) Errors {
	errs := Errors{}

	switch {
	case addr.Details == "":
		errs["details"] = "Details are required"
	case len(addr.Details) < 3:
		errs["details"] = "Details min length is 3"
	}

	checkPhone(errs, addr.Phone)

	switch {
	case addr.City == "":
		errs["city"] = "City is required"
	case len(addr.City) < 2:
		errs["city"] = "City min length is 2"
	}

	if method != cart.PaymentCash && method != cart.PaymentOnline {
		errs["paymentMethod"] = fmt.Sprintf("Select a valid payment method (%s or %s)", cart.PaymentCash, cart.PaymentOnline)
	}

	return errs
}

func checkEmail(errs Errors, email string) {
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email"
	}
}

func checkPhone(errs Errors, phone string) {
	switch {
	case phone == "":
		errs["phone"] = "Phone is required"
	case !phonePattern.MatchString(phone):
		errs["phone"] = "Phone must be a valid Egyptian number"
	}
}

func checkPassword(errs Errors, password string) {
	switch {
	case password == "":
		errs["password"] = "Password is required"
	case !validPassword(password):
		errs["password"] = "Password must include at least one uppercase letter, one lowercase letter, one number, and one special character"
	}
}
