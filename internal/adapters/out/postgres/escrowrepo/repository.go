package escrowrepo

import (
	"context"
	"errors"

	"coldchain/internal/core/domain/model/escrow"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEscrowAccountRepository implements EscrowAccountRepository using GORM.
type GormEscrowAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormEscrowAccountRepository creates a new GORM escrow account repository.
func NewGormEscrowAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormEscrowAccountRepository {
	return &GormEscrowAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the account of a party.
func (r *GormEscrowAccountRepository) Get(ctx context.Context, party kernel.UUID) (*escrow.Account, error) {
	if err := party.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "party = ?", party.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("party", party.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves the account and takes a row lock until the
// surrounding transaction ends. Credits and debits to the same party
// serialize here, so the shared balance never loses an update.
func (r *GormEscrowAccountRepository) GetForUpdate(ctx context.Context, party kernel.UUID) (*escrow.Account, error) {
	if err := party.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "party = ?", party.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("party", party.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the account row, creating it on first credit.
func (r *GormEscrowAccountRepository) Save(ctx context.Context, account *escrow.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := fromDomain(account)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "party"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(account.Party().String(), account)
	return nil
}
