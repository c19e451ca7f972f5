package cart

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository returns a Repository backed by the cart_items table.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) AddItem(ctx context.Context, item *Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_items (id, cart_id, product_id, name, unit_price, quantity)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		item.ID, item.CartID, item.ProductID, item.Name, item.UnitPrice.String(), item.Quantity)
	return err
}

func scanItem(scan func(...interface{}) error) (*Item, error) {
	item := &Item{}
	var price string
	err := scan(&item.ID, &item.CartID, &item.ProductID, &item.Name, &price,
		&item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	item.UnitPrice = json.Number(price)
	return item, nil
}

func (r *postgresRepo) GetItem(ctx context.Context, cartID, itemID string) (*Item, error) {
	cid, iid, err := parseIDs(cartID, itemID)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id, cart_id, product_id, name, unit_price, quantity, created_at, updated_at
		FROM cart_items WHERE cart_id=$1 AND id=$2`, cid, iid)
	item, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return item, err
}

func (r *postgresRepo) GetItemByProduct(ctx context.Context, cartID, productID string) (*Item, error) {
	cid, pid, err := parseIDs(cartID, productID)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id, cart_id, product_id, name, unit_price, quantity, created_at, updated_at
		FROM cart_items WHERE cart_id=$1 AND product_id=$2`, cid, pid)
	item, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return item, err
}

func (r *postgresRepo) ListItems(ctx context.Context, cartID string) ([]*Item, error) {
	cid, err := uuid.Parse(cartID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cart_id, product_id, name, unit_price, quantity, created_at, updated_at
		FROM cart_items WHERE cart_id=$1 ORDER BY created_at`, cid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	cid, iid, err := parseIDs(cartID, itemID)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items SET quantity=$1, updated_at=NOW()
		WHERE cart_id=$2 AND id=$3`, quantity, cid, iid)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, cartID, itemID string) error {
	cid, iid, err := parseIDs(cartID, itemID)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE cart_id=$1 AND id=$2`, cid, iid)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context, cartID string) error {
	cid, err := uuid.Parse(cartID)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id=$1`, cid)
	return err
}

func parseIDs(first, second string) (uuid.UUID, uuid.UUID, error) {
	a, err := uuid.Parse(first)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	b, err := uuid.Parse(second)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return a, b, nil
}
