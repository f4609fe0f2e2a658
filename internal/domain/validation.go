package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidProductName = errors.New("invalid product name")
	ErrInvalidPrice       = errors.New("invalid product price")
	ErrQuantityTooLarge   = errors.New("quantity exceeds maximum allowed")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooWeak    = errors.New("password does not meet requirements")
)

// Validation constants
const (
	MaxProductNameLength = 255
	MinProductNameLength = 1
	MaxEntryQuantity     = 1_000_000_000
	MaxProductPrice      = "1000000000" // 1 billion
	MinPasswordLength    = 8
	MaxPasswordLength    = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateProductName validates a product name
func ValidateProductName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinProductNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProductName)
	}

	if len(name) > MaxProductNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidProductName, MaxProductNameLength)
	}

	return nil
}

// ValidatePrice validates a product unit price
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidPrice)
	}

	maxPrice, _ := decimal.NewFromString(MaxProductPrice)
	if price.GreaterThan(maxPrice) {
		return fmt.Errorf("%w: maximum price is %s", ErrInvalidPrice, MaxProductPrice)
	}

	return nil
}

// ValidateQuantity validates a ledger entry quantity
func ValidateQuantity(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if quantity > MaxEntryQuantity {
		return fmt.Errorf("%w: maximum quantity is %d", ErrQuantityTooLarge, MaxEntryQuantity)
	}

	return nil
}

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooWeak, MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must not exceed %d characters", ErrPasswordTooWeak, MaxPasswordLength)
	}

	// Check for at least one uppercase, one lowercase, and one number
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasUpper || !hasLower || !hasNumber {
		return fmt.Errorf("%w: must contain uppercase, lowercase, and numbers", ErrPasswordTooWeak)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
