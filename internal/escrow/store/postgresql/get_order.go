package postgresql

import (
	"context"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/tracing"
)

func (p *PostgreSQL) GetOrder(ctx context.Context, id int64) (order *escrow.Order, err error) {
	ctx, span := tracing.StartTracing(ctx, "GetOrder", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	row := p.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM escrow.orders o WHERE o.id = $1`, id)

	order, err = scanOrder(row)
	if err != nil {
		return nil, notFound(err)
	}

	return order, nil
}

func (p *PostgreSQL) GetContract(ctx context.Context, orderID int64) (contract *escrow.Contract, err error) {
	ctx, span := tracing.StartTracing(ctx, "GetContract", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	return getContract(ctx, p.db, orderID)
}

func (p *PostgreSQL) GetContractByAddress(ctx context.Context, address string) (contract *escrow.Contract, err error) {
	ctx, span := tracing.StartTracing(ctx, "GetContractByAddress", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	row := p.db.QueryRowContext(ctx, `SELECT `+contractColumns+` FROM escrow.contracts c WHERE c.address = $1`, address)

	contract, err = scanContract(row)
	if err != nil {
		return nil, notFound(err)
	}

	return contract, nil
}
