package service

import (
	"strings"

	"github.com/cartella/internal/models"
)

// MaskCardNumber 去空格后至少 4 位时只保留末四位，否则原样返回
func MaskCardNumber(cardNumber string) string {
	cleaned := strings.ReplaceAll(cardNumber, " ", "")
	if len([]rune(cleaned)) < 4 {
		return cardNumber
	}
	runes := []rune(cleaned)
	return "**** **** **** " + string(runes[len(runes)-4:])
}

// DetectCardType 按卡号前缀推断卡类型，无法识别时按 Visa 展示
func DetectCardType(cardNumber string) string {
	cleaned := strings.ReplaceAll(cardNumber, " ", "")
	switch {
	case strings.HasPrefix(cleaned, "4"):
		return models.CardTypeVisa
	case cleaned != "" && cleaned[0] >= '5' && cleaned[0] <= '6':
		return models.CardTypeMasterCard
	case strings.HasPrefix(cleaned, "34"), strings.HasPrefix(cleaned, "37"):
		return models.CardTypeAmericanExpress
	default:
		return models.CardTypeVisa
	}
}
