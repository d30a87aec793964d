package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/vidyarathna/order-workflow-api/internal/entities"
	"github.com/vidyarathna/order-workflow-api/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = "id, product_id, quantity, price, status, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (product_id, quantity, price, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.ProductID,
		orderModifyModel.Quantity,
		orderModifyModel.Price,
		entities.OrderCreated.String(),
	).Scan(
		&orderModel.ID,
		&orderModel.ProductID,
		&orderModel.Quantity,
		&orderModel.Price,
		&orderModel.Status,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.ProductID,
			&orderModel.Quantity,
			&orderModel.Price,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) Update(ctx context.Context, id int64, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	// опциональные поля, статус через Update не меняется
	if orderModifyModel.ProductID != nil {
		builder = builder.Set("product_id", orderModifyModel.ProductID)
	}
	if orderModifyModel.Quantity != nil {
		builder = builder.Set("quantity", orderModifyModel.Quantity)
	}
	if orderModifyModel.Price != nil {
		builder = builder.Set("price", orderModifyModel.Price)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	// терминальный заказ не правим даже при гонке с параллельным Approve/Reject:
	// проверка статуса в сервисе и фиксация здесь происходят не атомарно
	builder = builder.
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"status": []string{
			entities.OrderApproved.String(),
			entities.OrderRejected.String(),
		}}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderModel.ID,
			&orderModel.ProductID,
			&orderModel.Quantity,
			&orderModel.Price,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyUpdateMiss(ctx, id)
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// UpdateStatus выполняет условный переход: запись меняется только если её статус
// всё ещё равен expected на момент коммита. Ноль затронутых строк означает либо
// отсутствие заказа, либо проигранную гонку, различаем повторным чтением.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, expected, next entities.OrderStatusType) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, next.String(), id, expected.String()).
		Scan(
			&orderModel.ID,
			&orderModel.ProductID,
			&orderModel.Quantity,
			&orderModel.Price,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyStatusMiss(ctx, id)
		}

		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) List(ctx context.Context, limit, offset int64) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
	FROM orders
	ORDER BY id
	LIMIT $1 OFFSET $2`

	rows, err := r.querier.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, limit)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.ProductID,
			&orderModel.Quantity,
			&orderModel.Price,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `SELECT status, COUNT(*)
	FROM orders
	GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, 4)
	for rows.Next() {
		var countModel StatusCountDB
		err := rows.Scan(&countModel.Status, &countModel.Count)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
		}
		counts[entities.OrderStatusType(countModel.Status)] = countModel.Count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	return counts, nil
}

func (r *Repository) classifyUpdateMiss(ctx context.Context, id int64) error {
	var status string
	err := r.querier.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return order.ErrOrderTerminal
}

func (r *Repository) classifyStatusMiss(ctx context.Context, id int64) error {
	var status string
	err := r.querier.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	return order.ErrStatusConflict
}
