// Package escrowrepo persists per-party withdrawable balances. One row per
// party, created on first credit.
package escrowrepo

import (
	"coldchain/internal/core/domain/model/escrow"
	"coldchain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for a party's balance.
// The balance column is numeric(78,0), matching the order money columns.
type AccountDTO struct {
	Party   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance string    `gorm:"type:numeric(78,0)"`
}

// TableName specifies the database table name for escrow accounts.
func (AccountDTO) TableName() string {
	return "escrow_accounts"
}

func fromDomain(account *escrow.Account) AccountDTO {
	return AccountDTO{
		Party:   account.Party().Bytes(),
		Balance: account.Balance().String(),
	}
}

func toDomain(dto AccountDTO) (*escrow.Account, error) {
	party, err := kernel.UUIDFromBytes(dto.Party[:])
	if err != nil {
		return nil, err
	}

	balance, err := kernel.AmountFromString(dto.Balance)
	if err != nil {
		return nil, err
	}

	return escrow.RestoreAccount(party, balance)
}
