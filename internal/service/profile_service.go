package service

import (
	"strings"
	"unicode/utf8"

	"github.com/cartella/internal/models"
	"github.com/cartella/internal/store"
)

// ProfileView 个人资料页
type ProfileView struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CardView 支付卡展示（卡号掩码，不返回 CVV）
type CardView struct {
	ID             string `json:"id"`
	MaskedNumber   string `json:"masked_number"`
	CardType       string `json:"card_type"`
	DisplayType    string `json:"display_type"`
	ExpiryDate     string `json:"expiry_date"`
	CardholderName string `json:"cardholder_name"`
	IsDefault      bool   `json:"is_default"`
}

// CardInput 新增/修改支付卡输入
type CardInput struct {
	CardNumber     string `json:"card_number"`
	CardType       string `json:"card_type"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
}

// ProfileService 个人资料与支付卡管理
type ProfileService struct {
	store *store.Store
}

// NewProfileService 创建资料服务
func NewProfileService(s *store.Store) *ProfileService {
	return &ProfileService{store: s}
}

// CurrentUser 当前登录用户资料
func (s *ProfileService) CurrentUser() (*ProfileView, error) {
	user := s.store.GetCurrentUser()
	if user == nil {
		return nil, newAppError(TitleAlert, MsgNoActiveUser)
	}
	return &ProfileView{Email: user.Email, Name: user.Name}, nil
}

// Cards 支付卡列表（创建时间倒序）
func (s *ProfileService) Cards() []CardView {
	cards := s.store.LoadAllPaymentCards()
	views := make([]CardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, toCardView(card))
	}
	return views
}

// DefaultCard 默认卡
func (s *ProfileService) DefaultCard() (*CardView, error) {
	card := s.store.LoadDefaultPaymentCard()
	if card == nil {
		return nil, newAppError(TitleAlert, MsgCardNotFound)
	}
	view := toCardView(*card)
	return &view, nil
}

// AddCard 校验后新增支付卡；卡类型为空时按卡号推断
func (s *ProfileService) AddCard(input CardInput) (*CardView, error) {
	input = normalizeCardInput(input)
	if err := validateCardInput(input); err != nil {
		return nil, err
	}
	card := s.store.SavePaymentCard(toStoreCardInput(input))
	if card == nil {
		return nil, newAppError(TitleError, MsgCardSaveFailed)
	}
	view := toCardView(*card)
	return &view, nil
}

// UpdateCard 修改支付卡
func (s *ProfileService) UpdateCard(id string, input CardInput) (*CardView, error) {
	input = normalizeCardInput(input)
	if err := validateCardInput(input); err != nil {
		return nil, err
	}
	card := s.store.UpdatePaymentCard(id, toStoreCardInput(input))
	if card == nil {
		return nil, newAppError(TitleAlert, MsgCardNotFound)
	}
	view := toCardView(*card)
	return &view, nil
}

// SetDefaultCard 设为默认卡
func (s *ProfileService) SetDefaultCard(id string) error {
	if !s.store.SetDefaultPaymentCard(id) {
		return newAppError(TitleAlert, MsgCardNotFound)
	}
	return nil
}

// DeleteCard 删除支付卡
func (s *ProfileService) DeleteCard(id string) error {
	if !s.store.DeletePaymentCard(id) {
		return newAppError(TitleError, MsgCardNotFound)
	}
	return nil
}

// ClearCards 清空支付卡
func (s *ProfileService) ClearCards() error {
	if !s.store.ClearAllPaymentCards() {
		return newAppError(TitleError, MsgPaymentCardsClearFail)
	}
	return nil
}

func normalizeCardInput(input CardInput) CardInput {
	input.CardNumber = strings.TrimSpace(input.CardNumber)
	input.CardType = strings.TrimSpace(input.CardType)
	input.ExpiryDate = strings.TrimSpace(input.ExpiryDate)
	input.CVV = strings.TrimSpace(input.CVV)
	input.CardholderName = strings.TrimSpace(input.CardholderName)
	if input.CardType == "" && input.CardNumber != "" {
		input.CardType = DetectCardType(input.CardNumber)
	}
	return input
}

func validateCardInput(input CardInput) error {
	if input.CardNumber == "" || input.CardType == "" || input.ExpiryDate == "" || input.CVV == "" || input.CardholderName == "" {
		return newAppError(TitleError, MsgCardFieldsRequired)
	}
	digits := utf8.RuneCountInString(strings.ReplaceAll(input.CardNumber, " ", ""))
	if digits < 12 || digits > 19 {
		return newAppError(TitleError, MsgCardNumberLength)
	}
	if n := utf8.RuneCountInString(input.CVV); n < 3 || n > 4 {
		return newAppError(TitleError, MsgCVVLength)
	}
	return nil
}

func toStoreCardInput(input CardInput) store.PaymentCardInput {
	return store.PaymentCardInput{
		CardNumber:     input.CardNumber,
		CardType:       input.CardType,
		ExpiryDate:     input.ExpiryDate,
		CVV:            input.CVV,
		CardholderName: input.CardholderName,
	}
}

func toCardView(card models.PaymentCard) CardView {
	return CardView{
		ID:             card.ID,
		MaskedNumber:   MaskCardNumber(card.CardNumber),
		CardType:       card.CardType,
		DisplayType:    displayCardType(card),
		ExpiryDate:     card.ExpiryDate,
		CardholderName: card.CardholderName,
		IsDefault:      card.IsDefault,
	}
}

// displayCardType 存储的类型可识别时直接使用，否则按卡号推断
func displayCardType(card models.PaymentCard) string {
	if t := models.NormalizeCardType(card.CardType); t != models.CardTypeUnknown {
		return t
	}
	return DetectCardType(card.CardNumber)
}
