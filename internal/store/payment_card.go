package store

import (
	"errors"

	"github.com/cartella/internal/events"
	"github.com/cartella/internal/models"

	"gorm.io/gorm"
)

var errCardNotFound = errors.New("payment card not found")

// PaymentCardInput 支付卡可写字段
type PaymentCardInput struct {
	CardNumber     string
	CardType       string
	ExpiryDate     string
	CVV            string
	CardholderName string
}

// SavePaymentCard 总是新增一张非默认卡
func (s *Store) SavePaymentCard(input PaymentCardInput) *models.PaymentCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	card := &models.PaymentCard{
		ID:        models.NewID(),
		IsDefault: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCardInput(card, input)
	if err := s.cardRepo.Create(card); err != nil {
		logFailure("store_save_payment_card_failed", err)
		return nil
	}
	s.publish(events.TopicPaymentCard, "created", card.ID)
	return card
}

// LoadAllPaymentCards 全部支付卡（创建时间倒序）
func (s *Store) LoadAllPaymentCards() []models.PaymentCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.cardRepo.List()
	if err != nil {
		logFailure("store_load_payment_cards_failed", err)
		return []models.PaymentCard{}
	}
	if cards == nil {
		return []models.PaymentCard{}
	}
	return cards
}

// LoadDefaultPaymentCard 默认卡
func (s *Store) LoadDefaultPaymentCard() *models.PaymentCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.cardRepo.GetDefault()
	if err != nil {
		logFailure("store_load_default_payment_card_failed", err)
		return nil
	}
	return card
}

// SetDefaultPaymentCard 同一事务内取消全部默认后设置目标卡；目标不存在时回滚
func (s *Store) SetDefaultPaymentCard(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.cardRepo.Transaction(func(tx *gorm.DB) error {
		found, err := s.cardRepo.WithTx(tx).SetDefault(id)
		if err != nil {
			return err
		}
		if !found {
			return errCardNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, errCardNotFound) {
			logFailure("store_set_default_payment_card_failed", err, "card_id", id)
		}
		return false
	}
	s.publish(events.TopicPaymentCard, "default_set", id)
	return true
}

// UpdatePaymentCard 覆盖支付卡字段，默认标记不变
func (s *Store) UpdatePaymentCard(id string, input PaymentCardInput) *models.PaymentCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.cardRepo.GetByID(id)
	if err != nil {
		logFailure("store_update_payment_card_failed", err, "card_id", id)
		return nil
	}
	if card == nil {
		return nil
	}
	applyCardInput(card, input)
	card.UpdatedAt = s.now()
	if err := s.cardRepo.Update(card); err != nil {
		logFailure("store_update_payment_card_failed", err, "card_id", id)
		return nil
	}
	s.publish(events.TopicPaymentCard, "updated", id)
	return card
}

// DeletePaymentCard 删除支付卡
func (s *Store) DeletePaymentCard(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cardRepo.Delete(id); err != nil {
		logFailure("store_delete_payment_card_failed", err, "card_id", id)
		return false
	}
	s.publish(events.TopicPaymentCard, "deleted", id)
	return true
}

// ClearAllPaymentCards 清空支付卡
func (s *Store) ClearAllPaymentCards() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cardRepo.DeleteAll(); err != nil {
		logFailure("store_clear_payment_cards_failed", err)
		return false
	}
	s.publish(events.TopicPaymentCard, "cleared", "")
	return true
}

func applyCardInput(card *models.PaymentCard, input PaymentCardInput) {
	card.CardNumber = input.CardNumber
	card.CardType = input.CardType
	card.ExpiryDate = input.ExpiryDate
	card.CVV = input.CVV
	card.CardholderName = input.CardholderName
}
