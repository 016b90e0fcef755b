// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and rows.
package orderrepo

import (
	"time"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Identifiers come from the table's bigserial sequence, so they are monotonic
// and never reused even across rolled-back placements. Money columns are
// numeric(78,0): wide enough for any 256-bit token amount, stored exactly.
type OrderDTO struct {
	ID                     uint64     `gorm:"primaryKey;autoIncrement"`
	Customer               uuid.UUID  `gorm:"type:uuid;index"`
	Provider               *uuid.UUID `gorm:"type:uuid;index"`
	Oracle                 uuid.UUID  `gorm:"type:uuid"`
	TemperatureLimit       int
	Deadline               time.Time
	PaymentAmount          string `gorm:"type:numeric(78,0)"`
	TemperaturePenaltyRate string `gorm:"type:numeric(78,0)"`
	OvertimePenaltyRate    string `gorm:"type:numeric(78,0)"`
	StakeAmount            string `gorm:"type:numeric(78,0)"`
	Status                 int    `gorm:"index"`
	ArrivalAt              *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var provider *uuid.UUID
	if id := aggregate.Provider(); id != nil {
		raw := id.Bytes()
		provider = &raw
	}

	return OrderDTO{
		ID:                     uint64(aggregate.ID()),
		Customer:               aggregate.Customer().Bytes(),
		Provider:               provider,
		Oracle:                 aggregate.Oracle().Bytes(),
		TemperatureLimit:       aggregate.TemperatureLimit(),
		Deadline:               aggregate.Deadline(),
		PaymentAmount:          aggregate.PaymentAmount().String(),
		TemperaturePenaltyRate: aggregate.TemperaturePenaltyRate().String(),
		OvertimePenaltyRate:    aggregate.OvertimePenaltyRate().String(),
		StakeAmount:            aggregate.StakeAmount().String(),
		Status:                 int(aggregate.Status()),
		ArrivalAt:              aggregate.ArrivalAt(),
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, which re-checks the structural invariants on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	customer, err := kernel.UUIDFromBytes(dto.Customer[:])
	if err != nil {
		return nil, err
	}

	oracle, err := kernel.UUIDFromBytes(dto.Oracle[:])
	if err != nil {
		return nil, err
	}

	var provider *kernel.UUID
	if dto.Provider != nil {
		p, provErr := kernel.UUIDFromBytes((*dto.Provider)[:])
		if provErr != nil {
			return nil, provErr
		}
		provider = &p
	}

	payment, err := kernel.AmountFromString(dto.PaymentAmount)
	if err != nil {
		return nil, err
	}

	temperaturePenaltyRate, err := kernel.AmountFromString(dto.TemperaturePenaltyRate)
	if err != nil {
		return nil, err
	}

	overtimePenaltyRate, err := kernel.AmountFromString(dto.OvertimePenaltyRate)
	if err != nil {
		return nil, err
	}

	stake, err := kernel.AmountFromString(dto.StakeAmount)
	if err != nil {
		return nil, err
	}

	var arrivalAt *time.Time
	if dto.ArrivalAt != nil {
		at := dto.ArrivalAt.UTC()
		arrivalAt = &at
	}

	return order.RestoreOrder(
		order.ID(dto.ID),
		customer,
		provider,
		oracle,
		dto.TemperatureLimit,
		dto.Deadline.UTC(),
		payment,
		temperaturePenaltyRate,
		overtimePenaltyRate,
		stake,
		order.Status(dto.Status),
		arrivalAt,
	)
}
