package service

import "fmt"

// 提示框标题
const (
	TitleAlert                 = "Alert"
	TitleError                 = "Error"
	TitleSuccess               = "Success"
	TitleIncomplete            = "Incomplete"
	TitleEmailEmpty            = "Please enter email address."
	TitleValidEmailRequired    = "Valid Email Required"
	TitleValidPasswordRequired = "Valid Password Required"
	TitleAccountExists         = "Account Already Exists"
	TitleAccountNotFound       = "Account Not Found"
)

// 提示文案
const (
	MsgEmailAlreadyExists    = "Email already exists. Please login instead."
	MsgEmailNotFound         = "Email not found. Please sign up first."
	MsgInvalidCredentials    = "Invalid email or password."
	MsgCreateAccountFailed   = "Failed to create account. Please try again."
	MsgCompleteProfileFailed = "Failed to complete profile. Please try again."
	MsgNoActiveUser          = "No user is logged in."
	MsgDeleteAccountFailed   = "Failed to delete account. Please try again."
	MsgProductNotAvailable   = "Product not available"
	MsgAddedToCart           = "Item added to cart successfully"
	MsgAddToCartFailed       = "Failed to add item to cart. Please try again."
	MsgItemNotInCart         = "Item not found in cart"
	MsgCartUpdateFailed      = "Failed to update cart. Please try again."
	MsgEnterCardNumber       = "Enter Card Number"
	MsgEnterExpirationDate   = "Enter Expiration Date"
	MsgEnterCVV              = "Enter cvv"
	MsgCardFieldsRequired    = "All fields are required."
	MsgCardNumberLength      = "Card number must be 12-19 digits."
	MsgCVVLength             = "CVV must be 3 or 4 digits."
	MsgCardNotFound          = "Payment card not found"
	MsgCardSaveFailed        = "Failed to save card. Please try again."
	MsgFetchProductsFailed   = "Failed to fetch products"
	MsgProductUpdateFailed   = "Failed to update product. Please try again."
	MsgPaymentCardsClearFail = "Failed to clear payment cards. Please try again."
)

// AppError 面向用户的提示（标题 + 文案）
type AppError struct {
	Title   string
	Message string
	Err     error
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Title, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(title, message string) *AppError {
	return &AppError{Title: title, Message: message}
}

func wrapAppError(title, message string, err error) *AppError {
	return &AppError{Title: title, Message: message, Err: err}
}

func fieldRequiredMessage(field string) string {
	return field + " field is required and cannot be empty"
}
